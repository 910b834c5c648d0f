package listing

import "time"

// CreateListingRequest deliberately has no host field: the host is always
// the authenticated caller, never client input.
type CreateListingRequest struct {
	Title         string  `json:"title" binding:"required" validate:"required"`
	Description   string  `json:"description"`
	Address       string  `json:"address" binding:"required" validate:"required"`
	City          string  `json:"city" binding:"required" validate:"required"`
	Country       string  `json:"country" binding:"required" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	MaxGuests     int     `json:"max_guests" validate:"gte=0"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
}

type UpdateListingRequest struct {
	Title         string  `json:"title" binding:"required" validate:"required"`
	Description   string  `json:"description"`
	Address       string  `json:"address" binding:"required" validate:"required"`
	City          string  `json:"city" binding:"required" validate:"required"`
	Country       string  `json:"country" binding:"required" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	MaxGuests     int     `json:"max_guests" validate:"gte=0"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
}

// ListingResponse mirrors the transport shape: all entity fields plus the
// derived host_username.
type ListingResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Host          int64     `json:"host"`
	HostUsername  string    `json:"host_username"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	PricePerNight float64   `json:"price_per_night"`
	MaxGuests     int       `json:"max_guests"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	CreatedAt     time.Time `json:"created_at"`
}
