package review

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrListingNotFound = errors.New("listing not found")
	ErrConflict        = errors.New("conflict")
)
