package domain

import "errors"

// Domain errors represent error conditions in the waroster domain.
// These errors are returned by the public API and can be checked with
// errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("waroster: invalid configuration")

	// ErrNoNumbers is returned when the import file yields no valid
	// numbers to process.
	ErrNoNumbers = errors.New("waroster: no valid numbers to process")
)
