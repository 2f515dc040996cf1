package get_capacity

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/correlation"
)

// UseCase computes the day's capacity snapshot: a 0-100 score, the
// coarse four-state classification and the express windows a dispatcher
// could still fill today. Capacity is advisory; a failed CRM read
// degrades to an UNKNOWN snapshot instead of an error, so capacity
// queries can never block booking.
type UseCase struct {
	crm          CRMClient
	thresholds   domain.CapacityThresholds
	policy       Policy
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the capacity use case.
func NewUseCase(crm CRMClient, thresholds domain.CapacityThresholds, policy Policy, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		crm:          crm,
		thresholds:   thresholds,
		policy:       policy,
		loc:          loc,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// Execute produces a snapshot for the requested date. It never returns
// an error: failure modes are encoded in the snapshot state.
func (uc *UseCase) Execute(ctx context.Context, req *Request) *domain.CapacitySnapshot {
	corrID := correlation.FromContext(ctx)
	now := uc.timeProvider.Now().In(uc.loc)

	date := req.Date
	if date.IsZero() {
		date = now
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)

	windows, err := uc.crm.GetBookingWindows(ctx, date, 1)
	if err != nil {
		uc.logger.Warn("GetCapacity: windows fetch failed, degrading: %v [corr=%s]", err, corrID)
		return uc.degraded(date, now, corrID)
	}

	jobs, err := uc.crm.GetJobsForDay(ctx, date)
	if err != nil {
		uc.logger.Warn("GetCapacity: jobs fetch failed, degrading: %v [corr=%s]", err, corrID)
		return uc.degraded(date, now, corrID)
	}

	if req.AreaHint != "" {
		jobs = filterJobsByZip(jobs, req.AreaHint)
	}

	score, sameDaySlots := uc.score(windows, now)
	state := uc.thresholds.StateForScore(score)

	express := uc.expressWindows(ctx, windows, jobs, now)

	uc.logger.Info("GetCapacity: date=%s score=%d state=%s same_day_slots=%d express=%d [corr=%s]",
		date.Format(domain.DateFormat), score, state, sameDaySlots, len(express), corrID)

	return &domain.CapacitySnapshot{
		Date:           date,
		State:          state,
		Score:          score,
		ExpressWindows: express,
		ExpiresAt:      now.Add(uc.policy.SnapshotTTL),
		CorrelationID:  corrID,
	}
}

// score derives the 0-100 booked-ness score. Base is utilization
// (1 - available/total); a day with no same-day slot left is floored
// into the NEXT_DAY band regardless of raw utilization.
func (uc *UseCase) score(windows []domain.TimeWindow, now time.Time) (int, int) {
	if len(windows) == 0 {
		return 100, 0
	}

	available := 0
	sameDaySlots := 0
	for _, w := range windows {
		if !w.Available {
			continue
		}
		available++
		if w.Start.After(now) {
			sameDaySlots++
		}
	}

	utilization := 1 - float64(available)/float64(len(windows))
	score := int(math.Round(utilization * 100))

	if sameDaySlots == 0 && score < uc.thresholds.NextDayMax {
		score = uc.thresholds.NextDayMax
	}
	if score > 100 {
		score = 100
	}
	return score, sameDaySlots
}

// expressWindows returns soon-startable windows with at least one free
// technician, deduplicated by time range. An employee roster failure
// quietly yields no express windows; the rest of the snapshot stands.
func (uc *UseCase) expressWindows(ctx context.Context, windows []domain.TimeWindow, jobs []housecall.Job, now time.Time) []domain.ExpressWindow {
	cutoff := now.Add(uc.policy.ExpressLeadTime)

	var candidates []domain.TimeWindow
	for _, w := range windows {
		if w.Available && w.Start.After(now) && !w.Start.After(cutoff) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	employees, err := uc.crm.GetEmployees(ctx)
	if err != nil || len(employees) == 0 {
		uc.logger.Warn("GetCapacity: employee roster unavailable, skipping express windows: %v", err)
		return nil
	}

	seen := make(map[string]struct{}, len(candidates))
	var express []domain.ExpressWindow
	for _, w := range candidates {
		key := fmt.Sprintf("%d-%d", w.Start.Unix(), w.End.Unix())
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		free := freeTechnicians(employees, jobs, w)
		if len(free) == 0 {
			continue
		}
		express = append(express, domain.ExpressWindow{Window: w, Technicians: free})
	}
	return express
}

// freeTechnicians lists employees with no job overlapping the window.
func freeTechnicians(employees []housecall.Employee, jobs []housecall.Job, w domain.TimeWindow) []string {
	busy := make(map[string]struct{})
	for _, j := range jobs {
		if j.Schedule == nil {
			continue
		}
		if j.Schedule.ScheduledStart.Before(w.End) && j.Schedule.ScheduledEnd.After(w.Start) {
			for _, id := range j.AssignedEmployeeIDs {
				busy[id] = struct{}{}
			}
		}
	}

	var free []string
	for _, e := range employees {
		if _, taken := busy[e.ID]; !taken {
			free = append(free, e.FirstName+" "+e.LastName)
		}
	}
	return free
}

func filterJobsByZip(jobs []housecall.Job, zip string) []housecall.Job {
	if len(zip) > 5 {
		zip = zip[:5]
	}
	filtered := jobs[:0:0]
	for _, j := range jobs {
		if j.Address == nil || j.Address.Zip == "" {
			filtered = append(filtered, j)
			continue
		}
		if len(j.Address.Zip) >= 5 && j.Address.Zip[:5] == zip {
			filtered = append(filtered, j)
		}
	}
	return filtered
}

func (uc *UseCase) degraded(date, now time.Time, corrID string) *domain.CapacitySnapshot {
	return &domain.CapacitySnapshot{
		Date:          date,
		State:         domain.CapacityUnknown,
		Score:         0,
		ExpiresAt:     now.Add(uc.policy.SnapshotTTL),
		CorrelationID: corrID,
	}
}
