package models

import "errors"

// Request failures are classified into a small taxonomy; handlers translate
// these into HTTP statuses. Anything unwrapped is an internal error.
var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation failed")
	ErrInsufficientInventory = errors.New("not enough tickets available")
	ErrConflict              = errors.New("conflict")
)
