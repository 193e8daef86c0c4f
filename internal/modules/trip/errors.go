package trip

import "errors"

var (
	ErrNotFound         = errors.New("trip not found")
	ErrTripNotOpen      = errors.New("trip is not open for registration")
	ErrTripFull         = errors.New("trip is full")
	ErrAlreadyJoined    = errors.New("already registered for this trip")
	ErrNotParticipating = errors.New("no registration found for this trip")
	ErrIdentityRequired = errors.New("a user token or guest email is required")
	ErrImageRequired    = errors.New("at least one image is required")
	ErrMissingFields    = errors.New("missing required trip fields")
	ErrInvalidStatus    = errors.New("invalid trip status")
)
