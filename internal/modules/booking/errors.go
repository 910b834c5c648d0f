package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("booking not found")
	ErrListingNotFound  = errors.New("listing not found")
	ErrForbidden        = errors.New("not the booking guest")
	ErrDuplicateBooking = errors.New("duplicate booking for listing and dates")
)
