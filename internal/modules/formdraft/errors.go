package formdraft

import "errors"

var (
	ErrNotFound      = errors.New("form draft not found")
	ErrInvalidStatus = errors.New("invalid draft status")
)
