package bookinglog

import (
	"context"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// Nop is the booking log used when the database is disabled in config.
// Every write succeeds without doing anything.
type Nop struct{}

// RecordBooking discards the entry.
func (Nop) RecordBooking(context.Context, *domain.BookingRequest, *domain.BookingResult) error {
	return nil
}

// RecordOutOfArea discards the entry.
func (Nop) RecordOutOfArea(context.Context, *domain.BookingRequest, *domain.OutOfAreaResult) error {
	return nil
}
