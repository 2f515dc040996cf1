package search_availability

import (
	"context"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// CRMClient is the slice of the CRM API this use case consumes.
type CRMClient interface {
	GetBookingWindows(ctx context.Context, startDate time.Time, showForDays int) ([]domain.TimeWindow, error)
}

// Logger is the printf-style logger consumed by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
