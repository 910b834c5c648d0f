package seed

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelapp/internal/database"
	"travelapp/internal/domain"
	"travelapp/internal/repository"
)

func seederWithDB(t *testing.T, name string) (*Seeder, *gorm.DB) {
	t.Helper()
	db, err := database.Connect("file:" + name + "?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	s := New(
		repository.NewUserRepository(db),
		repository.NewListingRepository(db),
		repository.NewBookingRepository(db),
		repository.NewReviewRepository(db),
	).WithLogger(log.New(io.Discard, "", 0))

	return s, db
}

func tableCount(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestRunAgainstStore(t *testing.T) {
	s, db := seederWithDB(t, "seed_store")

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, int64(4), tableCount(t, db, "users"))
	assert.Equal(t, int64(3), tableCount(t, db, "listings"))
	assert.Equal(t, int64(3), tableCount(t, db, "bookings"))
	assert.Equal(t, int64(2), tableCount(t, db, "reviews"))
}

func TestRunTwiceIsRepeatable(t *testing.T) {
	s, db := seederWithDB(t, "seed_repeat")

	// a superuser created outside the workflow must survive both runs
	admin := &domain.User{Username: "admin", Email: "admin@example.com", PasswordHash: "x", IsSuperuser: true}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), admin))

	require.NoError(t, s.Run(context.Background()))
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, int64(5), tableCount(t, db, "users"))
	assert.Equal(t, int64(3), tableCount(t, db, "listings"))
	assert.Equal(t, int64(3), tableCount(t, db, "bookings"))
	assert.Equal(t, int64(2), tableCount(t, db, "reviews"))

	var n int64
	require.NoError(t, db.Table("users").Where("is_superuser = ?", true).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
