package booking

import (
	"context"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

type Service struct {
	bookings BookingRepository
	listings ListingGetter
	users    UserGetter
}

func NewService(bookings BookingRepository, listings ListingGetter, users UserGetter) *Service {
	return &Service{bookings: bookings, listings: listings, users: users}
}

// Create stores a booking for guestID (the authenticated caller).
//
// Only the exact (listing, check_in, check_out) duplicate is rejected, via
// the storage unique index. Overlapping date ranges are accepted.
func (s *Service) Create(ctx context.Context, guestID int64, req CreateBookingRequest) (*BookingResponse, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}

	status := domain.BookingPending
	if req.Status != "" {
		status = domain.BookingStatus(req.Status)
		if !status.Valid() {
			return nil, ErrValidation
		}
	}

	l, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		GuestID:      guestID,
		ListingID:    req.ListingID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, err
	}

	u, err := s.users.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}

	return &BookingResponse{
		ID:            b.ID,
		Listing:       b.ListingID,
		ListingTitle:  l.Title,
		Guest:         b.GuestID,
		GuestUsername: u.Username,
		CheckInDate:   b.CheckInDate.Format(dateLayout),
		CheckOutDate:  b.CheckOutDate.Format(dateLayout),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}, nil
}

func (s *Service) GetMyBookings(ctx context.Context, guestID int64, limit, offset int) ([]BookingResponse, error) {
	rows, err := s.bookings.GetByGuestWithDetails(ctx, guestID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]BookingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingResponse{
			ID:            r.ID,
			Listing:       r.ListingID,
			ListingTitle:  r.ListingTitle,
			Guest:         r.GuestID,
			GuestUsername: r.GuestUsername,
			CheckInDate:   r.CheckInDate.Format(dateLayout),
			CheckOutDate:  r.CheckOutDate.Format(dateLayout),
			Status:        r.Status,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}

// UpdateStatus sets any of the three status values. There is no transition
// machine: a cancelled booking can go back to confirmed. Only the booking's
// guest may change it.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, callerID int64, newStatus string) (*domain.Booking, error) {
	status := domain.BookingStatus(newStatus)
	if !status.Valid() {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.GuestID != callerID {
		return nil, ErrForbidden
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}

	b.Status = status
	return b, nil
}
