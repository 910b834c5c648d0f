package seed

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"travelapp/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
	created []*domain.User
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = int64(len(m.created) + 1)
		m.created = append(m.created, u)
	}
	return args.Error(0)
}

func (m *MockUserRepository) DeleteNonSuperusers(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockListingRepository struct {
	mock.Mock
	created []*domain.Listing
}

func (m *MockListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	args := m.Called(ctx, l)
	if args.Error(0) == nil {
		l.ID = int64(len(m.created) + 1)
		m.created = append(m.created, l)
	}
	return args.Error(0)
}

func (m *MockListingRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
	created []*domain.Booking
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = int64(len(m.created) + 1)
		m.created = append(m.created, b)
	}
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockReviewRepository struct {
	mock.Mock
	created []*domain.Review
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if args.Error(0) == nil {
		rv.ID = int64(len(m.created) + 1)
		m.created = append(m.created, rv)
	}
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func quietSeeder(users *MockUserRepository, listings *MockListingRepository, bookings *MockBookingRepository, reviews *MockReviewRepository) *Seeder {
	return New(users, listings, bookings, reviews).
		WithLogger(log.New(io.Discard, "", 0))
}

func TestRunCreatesFixedDataset(t *testing.T) {
	users := new(MockUserRepository)
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	reviews := new(MockReviewRepository)

	users.On("DeleteNonSuperusers", mock.Anything).Return(nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	listings.On("DeleteAll", mock.Anything).Return(nil)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)
	bookings.On("DeleteAll", mock.Anything).Return(nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	reviews.On("DeleteAll", mock.Anything).Return(nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	today := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	s := quietSeeder(users, listings, bookings, reviews).
		WithClock(func() time.Time { return today })

	err := s.Run(context.Background())
	assert.NoError(t, err)

	assert.Len(t, users.created, 4)
	assert.Len(t, listings.created, 3)
	assert.Len(t, bookings.created, 3)
	assert.Len(t, reviews.created, 2)

	assert.Equal(t, "host_user1", users.created[0].Username)
	assert.Equal(t, "guest2@example.com", users.created[3].Email)
	assert.False(t, users.created[0].IsSuperuser)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.created[0].PasswordHash), []byte("password123")))

	assert.Equal(t, "Cozy Beachfront Condo", listings.created[0].Title)
	assert.Equal(t, 250.00, listings.created[0].PricePerNight)
	// listings 1 and 3 belong to the first host
	assert.Equal(t, listings.created[0].HostID, listings.created[2].HostID)
	assert.NotEqual(t, listings.created[0].HostID, listings.created[1].HostID)

	midnight := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight.AddDate(0, 0, 10), bookings.created[0].CheckInDate)
	assert.Equal(t, midnight.AddDate(0, 0, 15), bookings.created[0].CheckOutDate)
	assert.Equal(t, domain.BookingConfirmed, bookings.created[0].Status)
	assert.Equal(t, midnight.AddDate(0, 0, 30), bookings.created[1].CheckInDate)
	assert.Equal(t, domain.BookingPending, bookings.created[1].Status)
	assert.Equal(t, midnight.AddDate(0, 0, 5), bookings.created[2].CheckInDate)
	assert.Equal(t, midnight.AddDate(0, 0, 8), bookings.created[2].CheckOutDate)
	assert.Equal(t, domain.BookingConfirmed, bookings.created[2].Status)

	assert.Equal(t, 5, reviews.created[0].Rating)
	assert.Equal(t, 4, reviews.created[1].Rating)
}

func TestRunClearsChildEntitiesFirst(t *testing.T) {
	users := new(MockUserRepository)
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	reviews := new(MockReviewRepository)

	var order []string
	reviews.On("DeleteAll", mock.Anything).Run(func(mock.Arguments) { order = append(order, "reviews") }).Return(nil)
	bookings.On("DeleteAll", mock.Anything).Run(func(mock.Arguments) { order = append(order, "bookings") }).Return(nil)
	listings.On("DeleteAll", mock.Anything).Run(func(mock.Arguments) { order = append(order, "listings") }).Return(nil)
	users.On("DeleteNonSuperusers", mock.Anything).Run(func(mock.Arguments) { order = append(order, "users") }).Return(nil)

	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := quietSeeder(users, listings, bookings, reviews)
	assert.NoError(t, s.Run(context.Background()))
	assert.Equal(t, []string{"reviews", "bookings", "listings", "users"}, order)
}

func TestRunHaltsOnUserStageFailure(t *testing.T) {
	users := new(MockUserRepository)
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	reviews := new(MockReviewRepository)

	users.On("DeleteNonSuperusers", mock.Anything).Return(nil)
	listings.On("DeleteAll", mock.Anything).Return(nil)
	bookings.On("DeleteAll", mock.Anything).Return(nil)
	reviews.On("DeleteAll", mock.Anything).Return(nil)

	boom := errors.New("unique constraint breach")
	users.On("Create", mock.Anything, mock.Anything).Return(boom)

	s := quietSeeder(users, listings, bookings, reviews)
	err := s.Run(context.Background())
	assert.ErrorIs(t, err, boom)

	// later stages never ran
	listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRunHaltsOnBookingStageFailure(t *testing.T) {
	users := new(MockUserRepository)
	listings := new(MockListingRepository)
	bookings := new(MockBookingRepository)
	reviews := new(MockReviewRepository)

	users.On("DeleteNonSuperusers", mock.Anything).Return(nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	listings.On("DeleteAll", mock.Anything).Return(nil)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)
	bookings.On("DeleteAll", mock.Anything).Return(nil)
	reviews.On("DeleteAll", mock.Anything).Return(nil)

	boom := errors.New("insert failed")
	bookings.On("Create", mock.Anything, mock.Anything).Return(boom)

	s := quietSeeder(users, listings, bookings, reviews)
	err := s.Run(context.Background())
	assert.ErrorIs(t, err, boom)

	// completed stages are not rolled back, the review stage never ran
	assert.Len(t, users.created, 4)
	assert.Len(t, listings.created, 3)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
