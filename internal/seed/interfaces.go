package seed

import (
	"context"

	"travelapp/internal/domain"
)

// Narrow repository views so the workflow can run against mocks without a
// live store.

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	DeleteNonSuperusers(ctx context.Context) error
}

type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	DeleteAll(ctx context.Context) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	DeleteAll(ctx context.Context) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	DeleteAll(ctx context.Context) error
}
