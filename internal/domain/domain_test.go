package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingString(t *testing.T) {
	l := Listing{Title: "Cozy Beachfront Condo"}
	assert.Equal(t, "Cozy Beachfront Condo", l.String())
}

func TestBookingString(t *testing.T) {
	b := Booking{
		Listing: &Listing{Title: "Modern Downtown Loft"},
		Guest:   &User{Username: "guest_user1"},
	}
	assert.Equal(t, "Booking for Modern Downtown Loft by guest_user1", b.String())
}

func TestBookingStringWithoutRelations(t *testing.T) {
	b := Booking{ListingID: 7, GuestID: 3}
	assert.Equal(t, "Booking for listing 7 by user 3", b.String())
}

func TestReviewString(t *testing.T) {
	r := Review{
		Listing: &Listing{Title: "Secluded Mountain Cabin"},
		Guest:   &User{Username: "guest_user2"},
		Rating:  4,
	}
	assert.Equal(t, "Review for Secluded Mountain Cabin by guest_user2 - 4 stars", r.String())
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BookingPending.Valid())
	assert.True(t, BookingConfirmed.Valid())
	assert.True(t, BookingCancelled.Valid())
	assert.False(t, BookingStatus("completed").Valid())
	assert.False(t, BookingStatus("").Valid())
}
