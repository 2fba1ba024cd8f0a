package services

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUpstream         = errors.New("upstream failure")
	ErrPaymentsDisabled = errors.New("payments are not configured")
)
