package search_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCRM struct {
	windows []domain.TimeWindow
	err     error

	gotStart time.Time
	gotDays  int
}

func (f *fakeCRM) GetBookingWindows(_ context.Context, startDate time.Time, showForDays int) ([]domain.TimeWindow, error) {
	f.gotStart = startDate
	f.gotDays = showForDays
	return f.windows, f.err
}

var boston, _ = time.LoadLocation("America/New_York")

func window(hour int, available bool) domain.TimeWindow {
	start := time.Date(2025, 6, 2, hour, 0, 0, 0, boston)
	return domain.TimeWindow{Start: start, End: start.Add(2 * time.Hour), Available: available}
}

func TestExecuteAnnotatesWindows(t *testing.T) {
	crm := &fakeCRM{windows: []domain.TimeWindow{window(9, true), window(14, true), window(18, false)}}
	uc := NewUseCase(crm, boston, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Preference: domain.PreferenceMorning, ShowForDays: 3})
	require.NoError(t, err)
	require.Len(t, resp.Windows, 3)

	assert.Equal(t, 3, crm.gotDays)
	assert.NotEmpty(t, resp.CorrelationID)

	assert.True(t, resp.Windows[0].MatchesPreference)
	assert.Equal(t, 120, resp.Windows[0].ArrivalWindowMinutes)
	assert.False(t, resp.Windows[1].MatchesPreference)
	assert.False(t, resp.Windows[2].MatchesPreference, "unavailable windows never match")
}

func TestExecuteDefaults(t *testing.T) {
	crm := &fakeCRM{}
	uc := NewUseCase(crm, boston, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSearchDays, crm.gotDays)
	assert.False(t, crm.gotStart.IsZero())
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeCRM{}, boston, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ShowForDays: 45})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = uc.Execute(context.Background(), &Request{Preference: "late night"})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestExecutePropagatesCRMError(t *testing.T) {
	crm := &fakeCRM{err: errors.New("upstream down")}
	uc := NewUseCase(crm, boston, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.Error(t, err)
}
