package recent_bookings

import (
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/infra/storage/bookinglog"
)

// EntryResponse is one booking-log row on the wire.
type EntryResponse struct {
	ID                int64  `json:"id"`
	Outcome           string `json:"outcome"`
	CorrelationID     string `json:"correlationId"`
	CustomerID        string `json:"customerId,omitempty"`
	JobID             string `json:"jobId,omitempty"`
	AppointmentID     string `json:"appointmentId,omitempty"`
	Zip               string `json:"zip"`
	LeadSource        string `json:"leadSource,omitempty"`
	WindowStart       string `json:"windowStart,omitempty"`
	WindowEnd         string `json:"windowEnd,omitempty"`
	MatchedPreference bool   `json:"matchedPreference"`
	LeadRecorded      bool   `json:"leadRecorded"`
	CreatedAt         string `json:"createdAt"`
}

// RecentBookingsResponse is the HTTP response model.
type RecentBookingsResponse struct {
	Count   int             `json:"count"`
	Entries []EntryResponse `json:"entries"`
}

// FromEntries converts storage rows into the HTTP model.
func FromEntries(entries []bookinglog.Entry) *RecentBookingsResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp := EntryResponse{
			ID:                e.ID,
			Outcome:           e.Outcome,
			CorrelationID:     e.CorrelationID,
			CustomerID:        e.CustomerID,
			JobID:             e.JobID,
			AppointmentID:     e.AppointmentID,
			Zip:               e.Zip,
			LeadSource:        e.LeadSource,
			MatchedPreference: e.MatchedPref,
			LeadRecorded:      e.LeadRecorded,
			CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		}
		if e.WindowStart != nil {
			resp.WindowStart = e.WindowStart.Format(time.RFC3339)
		}
		if e.WindowEnd != nil {
			resp.WindowEnd = e.WindowEnd.Format(time.RFC3339)
		}
		out = append(out, resp)
	}
	return &RecentBookingsResponse{
		Count:   len(out),
		Entries: out,
	}
}
