package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidGender      = errors.New("invalid gender value")
	ErrInvalidAgeRange    = errors.New("invalid age range value")
)
