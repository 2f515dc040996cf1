package customers

import "errors"

var (
	// ErrNotFound is returned by strict lookup when no candidate passes
	// the exact name and phone checks. Never a fuzzy guess.
	ErrNotFound = errors.New("customers.service: customer not found")

	// ErrInvalidInput is returned when the request lacks a usable
	// identity (no valid phone, email or name).
	ErrInvalidInput = errors.New("customers.service: invalid input")
)
