package domain

import "time"

// TimeWindow is a CRM-offered booking window. Immutable once fetched.
type TimeWindow struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// ArrivalWindowMinutes derives the technician arrival window from the
// slot length, floored at 30 minutes.
func (w TimeWindow) ArrivalWindowMinutes() int {
	minutes := int(w.End.Sub(w.Start).Minutes())
	if minutes < MinArrivalWindowMinutes {
		return MinArrivalWindowMinutes
	}
	return minutes
}

// Local hour-of-day bands for time preferences.
const (
	morningStartHour = 7
	morningEndHour   = 12
	afternoonEndHour = 17
	eveningEndHour   = 21
)

// matchesPreference reports whether the window's local start hour falls
// in the preference band. PreferenceAny matches everything.
func (w TimeWindow) matchesPreference(pref TimePreference, loc *time.Location) bool {
	if pref == PreferenceAny {
		return true
	}

	hour := w.Start.In(loc).Hour()
	switch pref {
	case PreferenceMorning:
		return hour >= morningStartHour && hour < morningEndHour
	case PreferenceAfternoon:
		return hour >= morningEndHour && hour < afternoonEndHour
	case PreferenceEvening:
		return hour >= afternoonEndHour && hour < eveningEndHour
	default:
		return false
	}
}

// WindowSelection is the outcome of choosing a window for a preference.
// MatchedPreference is false when the selector had to fall back to a
// window outside the requested band; callers must disclose that to the
// customer rather than silently substituting.
type WindowSelection struct {
	Window            TimeWindow
	MatchedPreference bool
}

// SelectWindow picks the first available window matching the preference
// in input order. When no window matches the band it falls back to the
// first available window with MatchedPreference=false. When nothing is
// available at all it returns nil: that is a business condition for the
// caller, not an error.
func SelectWindow(windows []TimeWindow, pref TimePreference, loc *time.Location) *WindowSelection {
	var fallback *TimeWindow

	for i := range windows {
		w := windows[i]
		if !w.Available {
			continue
		}
		if fallback == nil {
			fallback = &w
		}
		if w.matchesPreference(pref, loc) {
			return &WindowSelection{Window: w, MatchedPreference: true}
		}
	}

	if fallback == nil {
		return nil
	}
	return &WindowSelection{Window: *fallback, MatchedPreference: false}
}
