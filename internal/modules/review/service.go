package review

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/pkg/validator"
	"travelapp/internal/repository"
)

type Service struct {
	reviews  ReviewRepository
	listings ListingGetter
	users    UserGetter
}

func NewService(reviews ReviewRepository, listings ListingGetter, users UserGetter) *Service {
	return &Service{reviews: reviews, listings: listings, users: users}
}

// Create stores a review by guestID (the authenticated caller). The storage
// unique index enforces one review per guest per listing.
func (s *Service) Create(ctx context.Context, guestID int64, req CreateReviewRequest) (*ReviewResponse, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	l, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		GuestID:   guestID,
		ListingID: req.ListingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	u, err := s.users.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}

	return &ReviewResponse{
		ID:            rv.ID,
		Listing:       rv.ListingID,
		ListingTitle:  l.Title,
		Guest:         rv.GuestID,
		GuestUsername: u.Username,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		CreatedAt:     rv.CreatedAt,
	}, nil
}

func (s *Service) GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]ReviewResponse, error) {
	if listingID <= 0 {
		return nil, ErrValidation
	}

	rows, err := s.reviews.GetByListingWithDetails(ctx, listingID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]ReviewResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReviewResponse{
			ID:            r.ID,
			Listing:       r.ListingID,
			ListingTitle:  r.ListingTitle,
			Guest:         r.GuestID,
			GuestUsername: r.GuestUsername,
			Rating:        r.Rating,
			Comment:       r.Comment,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}
