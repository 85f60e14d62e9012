package usecase

import "errors"

// Sentinels returned by the services. The HTTP layer maps them with errors.Is.
var (
	// ErrInvalidInput is a malformed record or argument (400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is reported for updates that matched no player (404).
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists means the player index is taken (409).
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrDependencyUnavailable covers a nil writer and open breakers (503).
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
