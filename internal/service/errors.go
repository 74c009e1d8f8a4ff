package service

import "errors"

// Failure categories the handlers map onto HTTP statuses. Services wrap these
// with fmt.Errorf("%w: detail") so callers can classify with errors.Is.
var (
	ErrValidation = errors.New("invalid request")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("invalid credentials")
	ErrForbidden  = errors.New("permission denied")
	ErrNotFound   = errors.New("not found")
)
