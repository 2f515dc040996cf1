package get_capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeCRM struct {
	windows     []domain.TimeWindow
	windowsErr  error
	jobs        []housecall.Job
	jobsErr     error
	employees   []housecall.Employee
	employeeErr error
}

func (f *fakeCRM) GetBookingWindows(context.Context, time.Time, int) ([]domain.TimeWindow, error) {
	return f.windows, f.windowsErr
}

func (f *fakeCRM) GetJobsForDay(context.Context, time.Time) ([]housecall.Job, error) {
	return f.jobs, f.jobsErr
}

func (f *fakeCRM) GetEmployees(context.Context) ([]housecall.Employee, error) {
	return f.employees, f.employeeErr
}

var boston, _ = time.LoadLocation("America/New_York")

var noon = time.Date(2025, 6, 2, 12, 0, 0, 0, boston)

func window(hour int, available bool) domain.TimeWindow {
	start := time.Date(2025, 6, 2, hour, 0, 0, 0, boston)
	return domain.TimeWindow{Start: start, End: start.Add(2 * time.Hour), Available: available}
}

func newUseCase(crm CRMClient) *UseCase {
	uc := NewUseCase(crm, domain.DefaultCapacityThresholds,
		Policy{SnapshotTTL: 5 * time.Minute, ExpressLeadTime: 3 * time.Hour},
		boston, nopLogger{})
	uc.timeProvider = fixedClock{now: noon}
	return uc
}

func TestExecuteScoresUtilization(t *testing.T) {
	// 4 windows, 2 available and in the future: utilization 0.5 -> 50.
	crm := &fakeCRM{windows: []domain.TimeWindow{
		window(9, false), window(11, false), window(14, true), window(16, true),
	}}

	snap := newUseCase(crm).Execute(context.Background(), &Request{})
	assert.Equal(t, 50, snap.Score)
	assert.Equal(t, domain.CapacityLimitedSameDay, snap.State)
	assert.Equal(t, noon.Add(5*time.Minute), snap.ExpiresAt)
	assert.NotEmpty(t, snap.CorrelationID)
}

func TestExecuteWideOpenDay(t *testing.T) {
	crm := &fakeCRM{windows: []domain.TimeWindow{
		window(13, true), window(15, true), window(17, true), window(19, true),
	}}

	snap := newUseCase(crm).Execute(context.Background(), &Request{})
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, domain.CapacitySameDayFeeWaived, snap.State)
}

func TestExecuteNoSameDaySlotsFloorsToNextDay(t *testing.T) {
	// One window still "available" but already in the past: raw
	// utilization is low, yet nothing is bookable today.
	crm := &fakeCRM{windows: []domain.TimeWindow{window(8, true), window(9, false)}}

	snap := newUseCase(crm).Execute(context.Background(), &Request{})
	assert.GreaterOrEqual(t, snap.Score, domain.DefaultCapacityThresholds.NextDayMax)
	assert.Contains(t, []domain.CapacityState{domain.CapacityNextDay, domain.CapacityEmergencyOnly}, snap.State)
}

func TestExecuteNoWindowsIsEmergencyOnly(t *testing.T) {
	snap := newUseCase(&fakeCRM{}).Execute(context.Background(), &Request{})
	assert.Equal(t, 100, snap.Score)
	assert.Equal(t, domain.CapacityEmergencyOnly, snap.State)
}

func TestExecuteDegradesOnCRMFailure(t *testing.T) {
	crm := &fakeCRM{windowsErr: errors.New("crm down")}

	snap := newUseCase(crm).Execute(context.Background(), &Request{})
	assert.Equal(t, domain.CapacityUnknown, snap.State)
	assert.Zero(t, snap.Score)
	assert.False(t, snap.Expired(noon), "degraded snapshots still carry a TTL")

	crm = &fakeCRM{windows: []domain.TimeWindow{window(14, true)}, jobsErr: errors.New("crm down")}
	snap = newUseCase(crm).Execute(context.Background(), &Request{})
	assert.Equal(t, domain.CapacityUnknown, snap.State)
}

func TestExpressWindows(t *testing.T) {
	soon := window(13, true) // within the 3h express lead from noon
	late := window(18, true) // beyond the lead time
	crm := &fakeCRM{
		windows: []domain.TimeWindow{soon, soon, late}, // duplicate must collapse
		employees: []housecall.Employee{
			{ID: "emp_1", FirstName: "Pat", LastName: "Johnson"},
			{ID: "emp_2", FirstName: "Sam", LastName: "Rivera"},
		},
		jobs: []housecall.Job{{
			ID:                  "job_1",
			Schedule:            &housecall.JobSchedule{ScheduledStart: soon.Start, ScheduledEnd: soon.End},
			AssignedEmployeeIDs: []string{"emp_1"},
		}},
	}

	snap := newUseCase(crm).Execute(context.Background(), &Request{})
	require.Len(t, snap.ExpressWindows, 1)
	assert.Equal(t, soon.Start, snap.ExpressWindows[0].Window.Start)
	assert.Equal(t, []string{"Sam Rivera"}, snap.ExpressWindows[0].Technicians)
}

func TestExpressWindowsNeedRoster(t *testing.T) {
	crm := &fakeCRM{
		windows:     []domain.TimeWindow{window(13, true)},
		employeeErr: errors.New("employees endpoint gone"),
	}

	snap := newUseCase(crm).Execute(context.Background(), &Request{})
	assert.Empty(t, snap.ExpressWindows)
	assert.NotEqual(t, domain.CapacityUnknown, snap.State, "roster failure must not degrade the snapshot")
}

func TestExpressWindowAllTechniciansBusy(t *testing.T) {
	soon := window(13, true)
	crm := &fakeCRM{
		windows:   []domain.TimeWindow{soon},
		employees: []housecall.Employee{{ID: "emp_1", FirstName: "Pat", LastName: "Johnson"}},
		jobs: []housecall.Job{{
			Schedule:            &housecall.JobSchedule{ScheduledStart: soon.Start, ScheduledEnd: soon.End},
			AssignedEmployeeIDs: []string{"emp_1"},
		}},
	}

	snap := newUseCase(crm).Execute(context.Background(), &Request{})
	assert.Empty(t, snap.ExpressWindows)
}

func TestAreaHintFiltersJobs(t *testing.T) {
	soon := window(13, true)
	crm := &fakeCRM{
		windows:   []domain.TimeWindow{soon},
		employees: []housecall.Employee{{ID: "emp_1", FirstName: "Pat", LastName: "Johnson"}},
		jobs: []housecall.Job{{
			// Busy, but in another part of town.
			Address:             &housecall.JobAddress{Zip: "02301"},
			Schedule:            &housecall.JobSchedule{ScheduledStart: soon.Start, ScheduledEnd: soon.End},
			AssignedEmployeeIDs: []string{"emp_1"},
		}},
	}

	snap := newUseCase(crm).Execute(context.Background(), &Request{AreaHint: "02169"})
	require.Len(t, snap.ExpressWindows, 1, "jobs outside the area hint must not mark technicians busy")
}
