package domain

import (
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/normalize"
)

// TimePreference is the customer's requested time-of-day band.
type TimePreference string

const (
	PreferenceAny       TimePreference = "any"
	PreferenceMorning   TimePreference = "morning"
	PreferenceAfternoon TimePreference = "afternoon"
	PreferenceEvening   TimePreference = "evening"
)

// Valid reports whether the preference is one of the known bands.
func (p TimePreference) Valid() bool {
	switch p {
	case PreferenceAny, PreferenceMorning, PreferenceAfternoon, PreferenceEvening:
		return true
	}
	return false
}

// BookingRequest is a service-call request as captured by the chat layer.
type BookingRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Email     *string

	Street  string
	Street2 *string
	City    string
	State   string
	Zip     string
	Country string

	Description  string
	LeadSource   string
	Preference   TimePreference
	EarliestDate time.Time
	SearchDays   int // 1..30
	Tags         []string
}

// NormalizedPhone returns the request phone reduced to 10 digits,
// or "" when the phone is unusable.
func (r *BookingRequest) NormalizedPhone() string {
	return normalize.Phone(r.Phone)
}

// IdentityKey builds the dedup key used to serialize customer creation:
// normalized email when present, else normalized phone, else a
// name+zip composite. Never empty for a validated request.
func (r *BookingRequest) IdentityKey() string {
	if r.Email != nil {
		if email := normalize.Email(*r.Email); email != "" {
			return "email:" + email
		}
	}
	if phone := r.NormalizedPhone(); phone != "" {
		return "phone:" + phone
	}
	return "name:" + normalize.Name(r.FirstName+" "+r.LastName) + ":" + r.Zip
}

// BookingResult is one committed booking. A nil AppointmentID means the
// job exists but could not be pinned to a concrete appointment; that is
// a valid partial success, not a failure.
type BookingResult struct {
	JobID                string
	AppointmentID        *string
	CustomerID           string
	Window               TimeWindow
	ArrivalWindowMinutes int
	MatchedPreference    bool
	CorrelationID        string
}

// OutOfAreaResult is the terminal outcome for a serviceable request from
// an unserved ZIP: a lead/note was recorded and a human follows up. It
// is a success response, never an error.
type OutOfAreaResult struct {
	CustomerID    string
	Zip           string
	LeadRecorded  bool
	CorrelationID string
}
