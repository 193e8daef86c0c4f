package catalog

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrImageRequired   = errors.New("at least one image is required")
	ErrInvalidDealType = errors.New("invalid deal type")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
)
