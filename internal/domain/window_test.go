package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boston = mustLoad("America/New_York")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func windowAt(hour int, available bool) TimeWindow {
	start := time.Date(2025, 6, 2, hour, 0, 0, 0, boston)
	return TimeWindow{Start: start, End: start.Add(2 * time.Hour), Available: available}
}

func TestSelectWindowMatchesPreference(t *testing.T) {
	windows := []TimeWindow{windowAt(9, true), windowAt(14, true), windowAt(18, true)}

	tests := []struct {
		pref     TimePreference
		wantHour int
		matched  bool
	}{
		{PreferenceMorning, 9, true},
		{PreferenceAfternoon, 14, true},
		{PreferenceEvening, 18, true},
		{PreferenceAny, 9, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.pref), func(t *testing.T) {
			sel := SelectWindow(windows, tt.pref, boston)
			require.NotNil(t, sel)
			assert.Equal(t, tt.wantHour, sel.Window.Start.In(boston).Hour())
			assert.Equal(t, tt.matched, sel.MatchedPreference)
		})
	}
}

func TestSelectWindowFallback(t *testing.T) {
	// Only a 9am window available; an evening request falls back to it
	// and the mismatch is flagged.
	windows := []TimeWindow{windowAt(9, true)}

	sel := SelectWindow(windows, PreferenceEvening, boston)
	require.NotNil(t, sel)
	assert.Equal(t, 9, sel.Window.Start.In(boston).Hour())
	assert.False(t, sel.MatchedPreference)
}

func TestSelectWindowSkipsUnavailable(t *testing.T) {
	windows := []TimeWindow{windowAt(9, false), windowAt(10, true)}

	sel := SelectWindow(windows, PreferenceMorning, boston)
	require.NotNil(t, sel)
	assert.Equal(t, 10, sel.Window.Start.In(boston).Hour())
	assert.True(t, sel.MatchedPreference)
}

func TestSelectWindowNothingAvailable(t *testing.T) {
	windows := []TimeWindow{windowAt(9, false), windowAt(14, false)}
	assert.Nil(t, SelectWindow(windows, PreferenceAny, boston))
	assert.Nil(t, SelectWindow(nil, PreferenceMorning, boston))
}

func TestSelectWindowDeterministic(t *testing.T) {
	windows := []TimeWindow{windowAt(8, true), windowAt(9, true), windowAt(11, true)}

	first := SelectWindow(windows, PreferenceMorning, boston)
	for i := 0; i < 10; i++ {
		again := SelectWindow(windows, PreferenceMorning, boston)
		require.NotNil(t, again)
		assert.Equal(t, *first, *again)
	}
}

func TestSelectWindowBandBoundaries(t *testing.T) {
	// Noon belongs to the afternoon band, 5pm to the evening band.
	noon := []TimeWindow{windowAt(12, true)}
	assert.Nil(t, selectMatching(noon, PreferenceMorning))
	assert.NotNil(t, selectMatching(noon, PreferenceAfternoon))

	five := []TimeWindow{windowAt(17, true)}
	assert.Nil(t, selectMatching(five, PreferenceAfternoon))
	assert.NotNil(t, selectMatching(five, PreferenceEvening))
}

// selectMatching returns the selection only when it matched the band.
func selectMatching(windows []TimeWindow, pref TimePreference) *WindowSelection {
	sel := SelectWindow(windows, pref, boston)
	if sel == nil || !sel.MatchedPreference {
		return nil
	}
	return sel
}

func TestArrivalWindowMinutes(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, boston)

	twoHours := TimeWindow{Start: start, End: start.Add(2 * time.Hour)}
	assert.Equal(t, 120, twoHours.ArrivalWindowMinutes())

	tight := TimeWindow{Start: start, End: start.Add(10 * time.Minute)}
	assert.Equal(t, MinArrivalWindowMinutes, tight.ArrivalWindowMinutes())
}
