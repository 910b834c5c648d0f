package main

import (
	"context"
	"log"
	"os"

	"travelapp/internal/database"
	"travelapp/internal/repository"
	"travelapp/internal/seed"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "travel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	s := seed.New(
		repository.NewUserRepository(db),
		repository.NewListingRepository(db),
		repository.NewBookingRepository(db),
		repository.NewReviewRepository(db),
	)

	if err := s.Run(context.Background()); err != nil {
		log.Fatal("Seeding aborted:", err)
	}
}
