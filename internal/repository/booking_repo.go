package repository

import (
	"context"
	"time"

	"travelapp/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	GuestID      int64     `gorm:"column:guest_id"`
	ListingID    int64     `gorm:"column:listing_id"`
	CheckInDate  time.Time `gorm:"column:check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// GuestBookingDetails is a booking row joined with the denormalized names
// the transport representation exposes.
type GuestBookingDetails struct {
	ID            int64     `gorm:"column:id"`
	GuestID       int64     `gorm:"column:guest_id"`
	GuestUsername string    `gorm:"column:guest_username"`
	ListingID     int64     `gorm:"column:listing_id"`
	ListingTitle  string    `gorm:"column:listing_title"`
	CheckInDate   time.Time `gorm:"column:check_in_date"`
	CheckOutDate  time.Time `gorm:"column:check_out_date"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:           m.ID,
		GuestID:      m.GuestID,
		ListingID:    m.ListingID,
		CheckInDate:  m.CheckInDate,
		CheckOutDate: m.CheckOutDate,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		GuestID:      b.GuestID,
		ListingID:    b.ListingID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByGuestWithDetails(ctx context.Context, guestID int64, limit, offset int) ([]GuestBookingDetails, error) {
	var rows []GuestBookingDetails
	q := `
SELECT b.id, b.guest_id, u.username AS guest_username,
       b.listing_id, l.title AS listing_title,
       b.check_in_date, b.check_out_date, b.status, b.created_at
FROM bookings b
JOIN users u ON u.id = b.guest_id
JOIN listings l ON l.id = b.listing_id
WHERE b.guest_id = ?
ORDER BY b.id ASC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, guestID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&bookingModel{}).Error
}
