package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if args.Error(0) == nil && rv != nil {
		rv.ID = 999
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByListingWithDetails(ctx context.Context, listingID int64, limit, offset int) ([]repository.ListingReviewDetails, error) {
	args := m.Called(ctx, listingID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ListingReviewDetails), args.Error(1)
}

type MockListingGetter struct {
	mock.Mock
}

func (m *MockListingGetter) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockUserGetter struct {
	mock.Mock
}

func (m *MockUserGetter) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestCreateReviewSuccess(t *testing.T) {
	reviews := new(MockReviewRepository)
	listings := new(MockListingGetter)
	users := new(MockUserGetter)

	listings.On("GetByID", mock.Anything, int64(3)).Return(&domain.Listing{ID: 3, Title: "Secluded Mountain Cabin"}, nil)
	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42, Username: "guest_user1"}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(reviews, listings, users)
	res, err := svc.Create(context.Background(), 42, CreateReviewRequest{
		ListingID: 3,
		Rating:    5,
		Comment:   "Absolutely loved this cabin!",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, res.Rating)
	assert.Equal(t, "guest_user1", res.GuestUsername)
	assert.Equal(t, "Secluded Mountain Cabin", res.ListingTitle)
	assert.Equal(t, int64(42), res.Guest)
}

func TestCreateReviewRejectsRatingOutOfRange(t *testing.T) {
	svc := NewService(new(MockReviewRepository), new(MockListingGetter), new(MockUserGetter))

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), 42, CreateReviewRequest{ListingID: 3, Rating: rating})
		assert.ErrorIs(t, err, ErrValidation, "rating %d", rating)
	}
}

func TestCreateReviewOnePerGuestPerListing(t *testing.T) {
	reviews := new(MockReviewRepository)
	listings := new(MockListingGetter)
	users := new(MockUserGetter)

	listings.On("GetByID", mock.Anything, int64(3)).Return(&domain.Listing{ID: 3, Title: "Cabin"}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(errors.New("UNIQUE constraint failed: reviews.listing_id, reviews.guest_id"))

	svc := NewService(reviews, listings, users)
	_, err := svc.Create(context.Background(), 42, CreateReviewRequest{ListingID: 3, Rating: 4})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateReviewListingMissing(t *testing.T) {
	reviews := new(MockReviewRepository)
	listings := new(MockListingGetter)

	listings.On("GetByID", mock.Anything, int64(8)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(reviews, listings, new(MockUserGetter))
	_, err := svc.Create(context.Background(), 42, CreateReviewRequest{ListingID: 8, Rating: 3})

	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestGetByListingMapsRows(t *testing.T) {
	reviews := new(MockReviewRepository)
	reviews.On("GetByListingWithDetails", mock.Anything, int64(3), 20, 0).Return([]repository.ListingReviewDetails{
		{ID: 1, GuestID: 42, GuestUsername: "guest_user1", ListingID: 3, ListingTitle: "Cabin", Rating: 5, Comment: "Great"},
	}, nil)

	svc := NewService(reviews, new(MockListingGetter), new(MockUserGetter))
	res, err := svc.GetByListing(context.Background(), 3, 20, 0)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "guest_user1", res[0].GuestUsername)
	assert.Equal(t, "Cabin", res[0].ListingTitle)
}
