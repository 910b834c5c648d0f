package listing

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/pkg/validator"
	"travelapp/internal/repository"
)

type Service struct {
	listings ListingRepository
	users    UserGetter
}

func NewService(listings ListingRepository, users UserGetter) *Service {
	return &Service{listings: listings, users: users}
}

// Create stores a new listing owned by hostID (the authenticated caller).
func (s *Service) Create(ctx context.Context, hostID int64, req CreateListingRequest) (*ListingResponse, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	l := &domain.Listing{
		HostID:        hostID,
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, l)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*ListingResponse, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.toResponse(ctx, l)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]ListingResponse, error) {
	ls, err := s.listings.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	// Hosts repeat across listings, resolve each username once.
	usernames := make(map[int64]string)
	out := make([]ListingResponse, 0, len(ls))
	for i := range ls {
		l := &ls[i]
		name, ok := usernames[l.HostID]
		if !ok {
			u, err := s.users.GetByID(ctx, l.HostID)
			if err != nil {
				return nil, err
			}
			name = u.Username
			usernames[l.HostID] = name
		}
		out = append(out, buildResponse(l, name))
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id, callerID int64, req UpdateListingRequest) (*ListingResponse, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if l.HostID != callerID {
		return nil, ErrForbidden
	}

	l.Title = req.Title
	l.Description = req.Description
	l.Address = req.Address
	l.City = req.City
	l.Country = req.Country
	l.PricePerNight = req.PricePerNight
	l.MaxGuests = req.MaxGuests
	l.Bedrooms = req.Bedrooms
	l.Bathrooms = req.Bathrooms

	if err := s.listings.Update(ctx, l); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.toResponse(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id, callerID int64) error {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if l.HostID != callerID {
		return ErrForbidden
	}

	return s.listings.Delete(ctx, id)
}

func (s *Service) toResponse(ctx context.Context, l *domain.Listing) (*ListingResponse, error) {
	u, err := s.users.GetByID(ctx, l.HostID)
	if err != nil {
		return nil, err
	}
	res := buildResponse(l, u.Username)
	return &res, nil
}

func buildResponse(l *domain.Listing, hostUsername string) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Host:          l.HostID,
		HostUsername:  hostUsername,
		Description:   l.Description,
		Address:       l.Address,
		City:          l.City,
		Country:       l.Country,
		PricePerNight: l.PricePerNight,
		MaxGuests:     l.MaxGuests,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		CreatedAt:     l.CreatedAt,
	}
}
