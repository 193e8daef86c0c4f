package request

import "errors"

var (
	ErrNotFound             = errors.New("request not found")
	ErrForbidden            = errors.New("not allowed to view this request")
	ErrNoUser               = errors.New("a user id is required")
	ErrInvalidStatus        = errors.New("invalid request status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrNotOwner             = errors.New("request belongs to another user")
)
