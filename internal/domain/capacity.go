package domain

import "time"

// CapacityState is the coarse "how booked are we" classification for a
// day, ordered from most open to most constrained.
type CapacityState string

const (
	CapacitySameDayFeeWaived CapacityState = "SAME_DAY_FEE_WAIVED"
	CapacityLimitedSameDay   CapacityState = "LIMITED_SAME_DAY"
	CapacityNextDay          CapacityState = "NEXT_DAY"
	CapacityEmergencyOnly    CapacityState = "EMERGENCY_ONLY"

	// CapacityUnknown is the degraded state when the CRM read fails.
	// Capacity is advisory; a failed read must not become an error.
	CapacityUnknown CapacityState = "UNKNOWN"
)

// CapacityThresholds are the score boundaries between the four states.
// They are policy, loaded from configuration, never hardcoded at call
// sites. A score s maps to:
//
//	s <  FeeWaivedMax       -> SAME_DAY_FEE_WAIVED
//	s <  LimitedSameDayMax  -> LIMITED_SAME_DAY
//	s <  NextDayMax         -> NEXT_DAY
//	otherwise               -> EMERGENCY_ONLY
type CapacityThresholds struct {
	FeeWaivedMax      int
	LimitedSameDayMax int
	NextDayMax        int
}

// Valid reports whether the thresholds are strictly ordered within 0..100.
func (t CapacityThresholds) Valid() bool {
	return t.FeeWaivedMax > 0 &&
		t.FeeWaivedMax < t.LimitedSameDayMax &&
		t.LimitedSameDayMax < t.NextDayMax &&
		t.NextDayMax <= 100
}

// StateForScore maps a 0-100 score to a capacity state. The mapping is
// total and monotonic: every score lands in exactly one state.
func (t CapacityThresholds) StateForScore(score int) CapacityState {
	switch {
	case score < t.FeeWaivedMax:
		return CapacitySameDayFeeWaived
	case score < t.LimitedSameDayMax:
		return CapacityLimitedSameDay
	case score < t.NextDayMax:
		return CapacityNextDay
	default:
		return CapacityEmergencyOnly
	}
}

// ExpressWindow is a soon-startable window with at least one free
// technician, offered for "we can be there shortly" conversations.
type ExpressWindow struct {
	Window      TimeWindow
	Technicians []string
}

// CapacitySnapshot is a point-in-time capacity reading. Callers must
// not use a snapshot past ExpiresAt; recompute instead of extrapolating.
type CapacitySnapshot struct {
	Date           time.Time
	State          CapacityState
	Score          int // 0..100
	ExpressWindows []ExpressWindow
	ExpiresAt      time.Time
	CorrelationID  string
}

// Expired reports whether the snapshot is stale at the given time.
func (s CapacitySnapshot) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
