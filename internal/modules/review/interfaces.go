package review

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByListingWithDetails(ctx context.Context, listingID int64, limit, offset int) ([]repository.ListingReviewDetails, error)
}

type ListingGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
