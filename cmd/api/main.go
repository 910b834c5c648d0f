package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"travelapp/internal/config"
	"travelapp/internal/database"
	"travelapp/internal/middleware"
	"travelapp/internal/modules/auth"
	"travelapp/internal/modules/booking"
	"travelapp/internal/modules/listing"
	"travelapp/internal/modules/review"
	jwtsvc "travelapp/internal/pkg/jwt"
	"travelapp/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	listingHandler := listing.NewHandler(listing.NewService(listingRepo, userRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, listingRepo, userRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, listingRepo, userRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))

		authHandler.RegisterRoutes(v1)
		listingHandler.RegisterRoutes(v1, protected)
		reviewHandler.RegisterRoutes(v1, protected)
		bookingHandler.RegisterRoutes(protected)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
