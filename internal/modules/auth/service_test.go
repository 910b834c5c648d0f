package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelapp/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil && u != nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, username string) (string, error) {
	return "token", nil
}

func TestRegisterHashesPassword(t *testing.T) {
	users := new(MockUserRepository)

	var created *domain.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.User)
	}).Return(nil)

	svc := NewService(users, fakeJWT{})
	res, err := svc.Register(context.Background(), RegisterRequest{
		Username: "guest_user1",
		Email:    "Guest1@Example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token", res.Token)
	assert.Equal(t, "guest1@example.com", created.Email)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
}

func TestRegisterDuplicateUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Create", mock.Anything, mock.Anything).Return(errors.New("UNIQUE constraint failed: users.username"))

	svc := NewService(users, fakeJWT{})
	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "guest_user1",
		Email:    "guest1@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(new(MockUserRepository), fakeJWT{})

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "u", Email: "not-an-email", Password: "password123"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(context.Background(), RegisterRequest{Username: "u", Email: "a@b.com", Password: "short"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "guest_user1").Return(&domain.User{ID: 1, Username: "guest_user1", PasswordHash: string(hash)}, nil)

	svc := NewService(users, fakeJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Username: "guest_user1", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, fakeJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "guest_user1").Return(&domain.User{ID: 1, Username: "guest_user1", PasswordHash: string(hash)}, nil)

	svc := NewService(users, fakeJWT{})
	res, err := svc.Login(context.Background(), LoginRequest{Username: "guest_user1", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, "token", res.Token)
	assert.Equal(t, int64(1), res.User.ID)
}
