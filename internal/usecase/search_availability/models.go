package search_availability

import (
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// Request asks for bookable windows in a date range.
type Request struct {
	Date        time.Time // zero = today
	ServiceType string    // free text, recorded for context only
	Preference  domain.TimePreference
	ShowForDays int // 1..30, default 7
}

// Window is one CRM window annotated for the caller.
type Window struct {
	Start                time.Time
	End                  time.Time
	Available            bool
	ArrivalWindowMinutes int
	MatchesPreference    bool
}

// Response is the read-only availability listing.
type Response struct {
	Windows       []Window
	CorrelationID string
}
