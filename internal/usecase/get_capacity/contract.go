package get_capacity

import (
	"context"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
)

// CRMClient is the slice of the CRM API this use case consumes.
type CRMClient interface {
	GetBookingWindows(ctx context.Context, startDate time.Time, showForDays int) ([]domain.TimeWindow, error)
	GetJobsForDay(ctx context.Context, day time.Time) ([]housecall.Job, error)
	GetEmployees(ctx context.Context) ([]housecall.Employee, error)
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
