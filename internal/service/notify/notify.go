// Package notify delivers booking outcome notifications to the office.
// The current transport is the structured log, which the on-call
// dashboard tails; swapping in SMS or email only needs a new Notifier.
package notify

import "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"

// Logger is the printf-style logger notifications are written to.
type Logger interface {
	Info(format string, v ...interface{})
}

// LogNotifier writes each outcome as one structured log line.
type LogNotifier struct {
	log Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// BookingConfirmed announces a committed booking.
func (n *LogNotifier) BookingConfirmed(result *domain.BookingResult) {
	pinned := result.AppointmentID != nil
	n.log.Info("notify: booking confirmed job=%s customer=%s start=%s pinned=%t matched=%t [corr=%s]",
		result.JobID, result.CustomerID, result.Window.Start.Format("2006-01-02 15:04"),
		pinned, result.MatchedPreference, result.CorrelationID)
}

// OutOfAreaLead announces an out-of-area lead needing a follow-up call.
func (n *LogNotifier) OutOfAreaLead(result *domain.OutOfAreaResult) {
	n.log.Info("notify: out-of-area lead zip=%s customer=%s recorded=%t [corr=%s]",
		result.Zip, result.CustomerID, result.LeadRecorded, result.CorrelationID)
}

// Nop is the notifier used when booking notifications are disabled.
type Nop struct{}

// BookingConfirmed discards the notification.
func (Nop) BookingConfirmed(*domain.BookingResult) {}

// OutOfAreaLead discards the notification.
func (Nop) OutOfAreaLead(*domain.OutOfAreaResult) {}
