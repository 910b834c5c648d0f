package booking

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByGuestWithDetails(ctx context.Context, guestID int64, limit, offset int) ([]repository.GuestBookingDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type ListingGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
