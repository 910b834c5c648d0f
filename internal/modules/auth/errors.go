package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
