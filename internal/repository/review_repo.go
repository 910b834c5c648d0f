package repository

import (
	"context"
	"time"

	"travelapp/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	GuestID   int64     `gorm:"column:guest_id"`
	ListingID int64     `gorm:"column:listing_id"`
	Rating    int       `gorm:"column:rating"`
	Comment   *string   `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

// ListingReviewDetails is a review row joined with the guest's username.
type ListingReviewDetails struct {
	ID            int64     `gorm:"column:id"`
	GuestID       int64     `gorm:"column:guest_id"`
	GuestUsername string    `gorm:"column:guest_username"`
	ListingID     int64     `gorm:"column:listing_id"`
	ListingTitle  string    `gorm:"column:listing_title"`
	Rating        int       `gorm:"column:rating"`
	Comment       string    `gorm:"column:comment"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}

	return &domain.Review{
		ID:        m.ID,
		GuestID:   m.GuestID,
		ListingID: m.ListingID,
		Rating:    m.Rating,
		Comment:   comment,
		CreatedAt: m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	var comment *string
	if rv.Comment != "" {
		v := rv.Comment
		comment = &v
	}

	return reviewModel{
		ID:        rv.ID,
		GuestID:   rv.GuestID,
		ListingID: rv.ListingID,
		Rating:    rv.Rating,
		Comment:   comment,
		CreatedAt: rv.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByListingWithDetails(ctx context.Context, listingID int64, limit, offset int) ([]ListingReviewDetails, error) {
	var rows []ListingReviewDetails
	q := `
SELECT r.id, r.guest_id, u.username AS guest_username,
       r.listing_id, l.title AS listing_title,
       r.rating, COALESCE(r.comment, '') AS comment, r.created_at
FROM reviews r
JOIN users u ON u.id = r.guest_id
JOIN listings l ON l.id = r.listing_id
WHERE r.listing_id = ?
ORDER BY r.id ASC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, listingID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *ReviewRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&reviewModel{}).Error
}
