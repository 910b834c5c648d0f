package domain

import (
	"fmt"
	"time"
)

// Review is a guest's rating of a listing. One review per guest per listing.
type Review struct {
	ID        int64     `json:"id"`
	GuestID   int64     `json:"guest_id" gorm:"uniqueIndex:uq_reviews_listing_guest" validate:"required"`
	ListingID int64     `json:"listing_id" gorm:"uniqueIndex:uq_reviews_listing_guest" validate:"required"`
	Rating    int       `json:"rating" gorm:"check:chk_reviews_rating,rating BETWEEN 1 AND 5" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	Guest   *User    `json:"guest,omitempty" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

func (r Review) String() string {
	title := fmt.Sprintf("listing %d", r.ListingID)
	if r.Listing != nil {
		title = r.Listing.Title
	}
	guest := fmt.Sprintf("user %d", r.GuestID)
	if r.Guest != nil {
		guest = r.Guest.Username
	}
	return fmt.Sprintf("Review for %s by %s - %d stars", title, guest, r.Rating)
}
