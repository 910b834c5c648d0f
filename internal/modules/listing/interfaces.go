package listing

import (
	"context"

	"travelapp/internal/domain"
)

type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context, limit, offset int) ([]domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id int64) error
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
