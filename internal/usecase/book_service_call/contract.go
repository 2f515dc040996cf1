package book_service_call

import (
	"context"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
)

// CRMClient is the slice of the CRM API the orchestrator drives.
type CRMClient interface {
	GetBookingWindows(ctx context.Context, startDate time.Time, showForDays int) ([]domain.TimeWindow, error)
	CreateJob(ctx context.Context, input housecall.JobInput) (*housecall.Job, error)
	CreateAppointment(ctx context.Context, jobID string, start, end time.Time, arrivalWindowMinutes int, dispatchedEmployeeIDs []string) (*housecall.Appointment, error)
	AddNote(ctx context.Context, entityID, content string) error
	CreateLead(ctx context.Context, customerID, source, notes string, tags []string) (*housecall.Lead, error)
}

// CustomerResolver finds or creates the customer behind a request and
// guarantees the service address exists on their record.
type CustomerResolver interface {
	FindOrCreate(ctx context.Context, req *domain.BookingRequest) (*domain.Customer, error)
	EnsureAddress(ctx context.Context, customer *domain.Customer, req *domain.BookingRequest) (*domain.Address, error)
}

// AreaGate decides whether a ZIP is inside the served territory.
type AreaGate interface {
	InService(zip string) bool
}

// Notifier receives fire-and-forget outcome notifications. Failures are
// the notifier's problem; the orchestrator never waits on it.
type Notifier interface {
	BookingConfirmed(result *domain.BookingResult)
	OutOfAreaLead(result *domain.OutOfAreaResult)
}

// BookingLog records committed outcomes for auditing. Best effort: a
// write failure is logged and swallowed.
type BookingLog interface {
	RecordBooking(ctx context.Context, req *domain.BookingRequest, result *domain.BookingResult) error
	RecordOutOfArea(ctx context.Context, req *domain.BookingRequest, result *domain.OutOfAreaResult) error
}

// TimeProvider abstracts the clock for testing.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger is the printf-style logger consumed by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
