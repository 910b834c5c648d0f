package repository

import (
	"context"
	"time"

	"travelapp/internal/domain"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type listingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	HostID        int64     `gorm:"column:host_id"`
	Title         string    `gorm:"column:title"`
	Description   *string   `gorm:"column:description"`
	Address       string    `gorm:"column:address"`
	City          string    `gorm:"column:city"`
	Country       string    `gorm:"column:country"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	MaxGuests     int       `gorm:"column:max_guests"`
	Bedrooms      int       `gorm:"column:bedrooms"`
	Bathrooms     int       `gorm:"column:bathrooms"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (listingModel) TableName() string { return "listings" }

func toDomainListing(m listingModel) *domain.Listing {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Listing{
		ID:            m.ID,
		HostID:        m.HostID,
		Title:         m.Title,
		Description:   description,
		Address:       m.Address,
		City:          m.City,
		Country:       m.Country,
		PricePerNight: m.PricePerNight,
		MaxGuests:     m.MaxGuests,
		Bedrooms:      m.Bedrooms,
		Bathrooms:     m.Bathrooms,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toListingModel(l *domain.Listing) listingModel {
	var description *string
	if l.Description != "" {
		v := l.Description
		description = &v
	}

	return listingModel{
		ID:            l.ID,
		HostID:        l.HostID,
		Title:         l.Title,
		Description:   description,
		Address:       l.Address,
		City:          l.City,
		Country:       l.Country,
		PricePerNight: l.PricePerNight,
		MaxGuests:     l.MaxGuests,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	m := toListingModel(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainListing(m)
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var m listingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainListing(m), nil
}

func (r *ListingRepository) List(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	var ms []listingModel
	tx := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Offset(offset).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Listing, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainListing(m))
	}
	return out, nil
}

// Update writes every mutable field, zero values included, and refreshes
// updated_at. Select("*") is required: a plain struct Updates would skip a
// cleared description or a zeroed count.
func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	m := toListingModel(l)
	m.UpdatedAt = time.Time{} // let gorm stamp it
	tx := r.db.WithContext(ctx).Model(&listingModel{ID: l.ID}).
		Select("*").Omit("id", "created_at").Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	updated, err := r.GetByID(ctx, l.ID)
	if err != nil {
		return err
	}
	*l = *updated
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&listingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ListingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&listingModel{}).Error
}
