package callbacks

import "errors"

var (
	// ErrCustomerNotFound is returned when the strict lookup finds no
	// matching customer for the callback request.
	ErrCustomerNotFound = errors.New("callbacks.service: customer not found")

	// ErrInvalidInput is returned for requests missing a usable name
	// or phone.
	ErrInvalidInput = errors.New("callbacks.service: invalid input")
)
