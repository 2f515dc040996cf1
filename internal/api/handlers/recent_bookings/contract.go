package recent_bookings

import (
	"context"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/infra/storage/bookinglog"
)

type BookingHistory interface {
	RecentEntries(ctx context.Context, limit uint64) ([]bookinglog.Entry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
