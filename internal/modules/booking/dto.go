package booking

import "time"

const dateLayout = "2006-01-02"

// CreateBookingRequest has no guest field: the guest is always the
// authenticated caller. Status is accepted as-is (any of the three values);
// empty means pending.
type CreateBookingRequest struct {
	ListingID    int64  `json:"listing" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Status       string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingResponse exposes all entity fields plus the derived read-only
// guest_username and listing_title.
type BookingResponse struct {
	ID            int64     `json:"id"`
	Listing       int64     `json:"listing"`
	ListingTitle  string    `json:"listing_title"`
	Guest         int64     `json:"guest"`
	GuestUsername string    `json:"guest_username"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
