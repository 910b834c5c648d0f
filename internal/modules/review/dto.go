package review

import "time"

type CreateReviewRequest struct {
	ListingID int64  `json:"listing" binding:"required" validate:"required,gt=0"`
	Rating    int    `json:"rating" binding:"required" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

type ReviewResponse struct {
	ID            int64     `json:"id"`
	Listing       int64     `json:"listing"`
	ListingTitle  string    `json:"listing_title"`
	Guest         int64     `json:"guest"`
	GuestUsername string    `json:"guest_username"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}
