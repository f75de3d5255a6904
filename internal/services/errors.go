package services

import "errors"

// Sentinel errors shared across services. Handlers translate these to HTTP
// statuses with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoVirtualTrainers = errors.New("no virtual trainers available")
)
