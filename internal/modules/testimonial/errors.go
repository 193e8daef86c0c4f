package testimonial

import "errors"

var (
	ErrNotFound      = errors.New("testimonial not found")
	ErrTextTooShort  = errors.New("testimonial text too short")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus = errors.New("invalid testimonial status")
)
