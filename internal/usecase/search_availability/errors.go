package search_availability

import "errors"

var (
	// ErrInvalidInput is returned for malformed search parameters.
	ErrInvalidInput = errors.New("search_availability: invalid input")
)
