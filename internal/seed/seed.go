package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"travelapp/internal/domain"
)

const samplePassword = "password123"

// Seeder populates the store with a fixed demo dataset. It runs five ordered
// stages; a failed stage is reported and aborts the run, already-completed
// stages are not rolled back.
type Seeder struct {
	users    UserRepository
	listings ListingRepository
	bookings BookingRepository
	reviews  ReviewRepository

	log *log.Logger
	now func() time.Time
}

func New(users UserRepository, listings ListingRepository, bookings BookingRepository, reviews ReviewRepository) *Seeder {
	return &Seeder{
		users:    users,
		listings: listings,
		bookings: bookings,
		reviews:  reviews,
		log:      log.Default(),
		now:      time.Now,
	}
}

// WithLogger redirects progress output, mainly for tests.
func (s *Seeder) WithLogger(l *log.Logger) *Seeder {
	s.log = l
	return s
}

// WithClock pins "today" so booking dates are reproducible in tests.
func (s *Seeder) WithClock(now func() time.Time) *Seeder {
	s.now = now
	return s
}

func (s *Seeder) Run(ctx context.Context) error {
	s.log.Println("Starting database seeding...")

	s.log.Println("Clearing old data...")
	if err := s.clear(ctx); err != nil {
		s.log.Printf("Error clearing data: %v", err)
		return fmt.Errorf("clearing data: %w", err)
	}
	s.log.Println("Successfully cleared old data.")

	s.log.Println("Creating sample users...")
	hosts, guests, err := s.createUsers(ctx)
	if err != nil {
		s.log.Printf("Error creating users: %v", err)
		return fmt.Errorf("creating users: %w", err)
	}
	s.log.Println("Sample users created.")

	s.log.Println("Creating sample listings...")
	listings, err := s.createListings(ctx, hosts)
	if err != nil {
		s.log.Printf("Error creating listings: %v", err)
		return fmt.Errorf("creating listings: %w", err)
	}
	s.log.Println("Sample listings created.")

	s.log.Println("Creating sample bookings...")
	if err := s.createBookings(ctx, guests, listings); err != nil {
		s.log.Printf("Error creating bookings: %v", err)
		return fmt.Errorf("creating bookings: %w", err)
	}
	s.log.Println("Sample bookings created.")

	s.log.Println("Creating sample reviews...")
	if err := s.createReviews(ctx, guests, listings); err != nil {
		s.log.Printf("Error creating reviews: %v", err)
		return fmt.Errorf("creating reviews: %w", err)
	}
	s.log.Println("Sample reviews created.")

	s.log.Println("Database seeding completed successfully!")
	return nil
}

// clear wipes old data child-first so referential constraints hold.
// Superuser accounts survive.
func (s *Seeder) clear(ctx context.Context) error {
	if err := s.reviews.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.bookings.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.listings.DeleteAll(ctx); err != nil {
		return err
	}
	return s.users.DeleteNonSuperusers(ctx)
}

func (s *Seeder) createUsers(ctx context.Context) (hosts, guests []*domain.User, err error) {
	accounts := []struct {
		username string
		email    string
		host     bool
	}{
		{"host_user1", "host1@example.com", true},
		{"host_user2", "host2@example.com", true},
		{"guest_user1", "guest1@example.com", false},
		{"guest_user2", "guest2@example.com", false},
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, nil, err
		}

		u := &domain.User{
			Username:     a.username,
			Email:        a.email,
			PasswordHash: string(hash),
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, nil, err
		}

		if a.host {
			hosts = append(hosts, u)
		} else {
			guests = append(guests, u)
		}
	}
	return hosts, guests, nil
}

func (s *Seeder) createListings(ctx context.Context, hosts []*domain.User) ([]*domain.Listing, error) {
	listings := []*domain.Listing{
		{
			HostID:        hosts[0].ID,
			Title:         "Cozy Beachfront Condo",
			Description:   "A beautiful condo right on the beach. Perfect for a summer getaway.",
			Address:       "123 Ocean Drive",
			City:          "Miami",
			Country:       "USA",
			PricePerNight: 250.00,
			MaxGuests:     4,
			Bedrooms:      2,
			Bathrooms:     2,
		},
		{
			HostID:        hosts[1].ID,
			Title:         "Modern Downtown Loft",
			Description:   "A stylish loft in the heart of the city. Close to all attractions.",
			Address:       "456 Main Street",
			City:          "New York",
			Country:       "USA",
			PricePerNight: 350.00,
			MaxGuests:     2,
			Bedrooms:      1,
			Bathrooms:     1,
		},
		{
			HostID:        hosts[0].ID,
			Title:         "Secluded Mountain Cabin",
			Description:   "Escape to this quiet cabin in the mountains. Great for hiking.",
			Address:       "789 Pine Road",
			City:          "Asheville",
			Country:       "USA",
			PricePerNight: 180.00,
			MaxGuests:     6,
			Bedrooms:      3,
			Bathrooms:     2,
		},
	}

	for _, l := range listings {
		if err := s.listings.Create(ctx, l); err != nil {
			return nil, err
		}
	}
	return listings, nil
}

func (s *Seeder) createBookings(ctx context.Context, guests []*domain.User, listings []*domain.Listing) error {
	today := dateOnly(s.now())

	bookings := []*domain.Booking{
		{
			GuestID:      guests[0].ID,
			ListingID:    listings[0].ID,
			CheckInDate:  today.AddDate(0, 0, 10),
			CheckOutDate: today.AddDate(0, 0, 15),
			Status:       domain.BookingConfirmed,
		},
		{
			GuestID:      guests[1].ID,
			ListingID:    listings[1].ID,
			CheckInDate:  today.AddDate(0, 0, 30),
			CheckOutDate: today.AddDate(0, 0, 35),
			Status:       domain.BookingPending,
		},
		{
			GuestID:      guests[0].ID,
			ListingID:    listings[2].ID,
			CheckInDate:  today.AddDate(0, 0, 5),
			CheckOutDate: today.AddDate(0, 0, 8),
			Status:       domain.BookingConfirmed,
		},
	}

	for _, b := range bookings {
		if err := s.bookings.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createReviews(ctx context.Context, guests []*domain.User, listings []*domain.Listing) error {
	reviews := []*domain.Review{
		{
			GuestID:   guests[0].ID,
			ListingID: listings[2].ID,
			Rating:    5,
			Comment:   "Absolutely loved this cabin! So peaceful and clean. The host was great.",
		},
		{
			GuestID:   guests[1].ID,
			ListingID: listings[0].ID,
			Rating:    4,
			Comment:   "Great location, but the place was a bit smaller than expected. Still had a good time.",
		},
	}

	for _, rv := range reviews {
		if err := s.reviews.Create(ctx, rv); err != nil {
			return err
		}
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
