package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking reserves a listing for a guest over a date range.
//
// The unique index only blocks an exact duplicate of the same listing and
// dates. Overlapping ranges for the same listing are still accepted.
type Booking struct {
	ID           int64         `json:"id"`
	GuestID      int64         `json:"guest_id" validate:"required"`
	ListingID    int64         `json:"listing_id" gorm:"uniqueIndex:uq_bookings_listing_dates" validate:"required"`
	CheckInDate  time.Time     `json:"check_in_date" gorm:"type:date;uniqueIndex:uq_bookings_listing_dates"`
	CheckOutDate time.Time     `json:"check_out_date" gorm:"type:date;uniqueIndex:uq_bookings_listing_dates"`
	Status       BookingStatus `json:"status" gorm:"size:20;default:pending"`
	CreatedAt    time.Time     `json:"created_at"`

	Guest   *User    `json:"guest,omitempty" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE"`
	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

func (b Booking) String() string {
	title := fmt.Sprintf("listing %d", b.ListingID)
	if b.Listing != nil {
		title = b.Listing.Title
	}
	guest := fmt.Sprintf("user %d", b.GuestID)
	if b.Guest != nil {
		guest = b.Guest.Username
	}
	return fmt.Sprintf("Booking for %s by %s", title, guest)
}
