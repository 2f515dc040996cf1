package book_service_call

import "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"

// Policy carries the configured booking defaults.
type Policy struct {
	DefaultLeadSource string
}

// Response is the terminal outcome of a booking attempt. Exactly one of
// the two fields is set: Booking for a committed job, OutOfArea for a
// serviceable request from an unserved ZIP.
type Response struct {
	Booking   *domain.BookingResult
	OutOfArea *domain.OutOfAreaResult
}
