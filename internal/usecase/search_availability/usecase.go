package search_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/correlation"
)

// UseCase lists bookable windows without writing anything.
type UseCase struct {
	crm    CRMClient
	loc    *time.Location
	now    func() time.Time
	logger Logger
}

// NewUseCase creates the availability search use case.
func NewUseCase(crm CRMClient, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		crm:    crm,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

// Execute fetches windows and annotates each with its derived arrival
// window and whether it falls in the requested preference band.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	corrID := correlation.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchAvailability: validation failed: %v [corr=%s]", err, corrID)
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = uc.now().In(uc.loc)
	}
	days := req.ShowForDays
	if days == 0 {
		days = domain.DefaultSearchDays
	}
	pref := req.Preference
	if pref == "" {
		pref = domain.PreferenceAny
	}

	windows, err := uc.crm.GetBookingWindows(ctx, date, days)
	if err != nil {
		uc.logger.Error("SearchAvailability: booking windows fetch failed: %v [corr=%s]", err, corrID)
		return nil, err
	}

	resp := &Response{CorrelationID: corrID, Windows: make([]Window, 0, len(windows))}
	for _, w := range windows {
		matched := false
		if w.Available {
			if sel := domain.SelectWindow([]domain.TimeWindow{w}, pref, uc.loc); sel != nil {
				matched = sel.MatchedPreference
			}
		}
		resp.Windows = append(resp.Windows, Window{
			Start:                w.Start,
			End:                  w.End,
			Available:            w.Available,
			ArrivalWindowMinutes: w.ArrivalWindowMinutes(),
			MatchesPreference:    matched,
		})
	}

	uc.logger.Info("SearchAvailability: %d windows from %s over %d days [corr=%s]",
		len(resp.Windows), date.Format(domain.DateFormat), days, corrID)
	return resp, nil
}

func validateRequest(req *Request) error {
	if req.Preference != "" && !req.Preference.Valid() {
		return fmt.Errorf("%w: unknown time preference %q", ErrInvalidInput, req.Preference)
	}
	if req.ShowForDays != 0 && (req.ShowForDays < domain.MinSearchDays || req.ShowForDays > domain.MaxSearchDays) {
		return fmt.Errorf("%w: show_for_days must be between %d and %d",
			ErrInvalidInput, domain.MinSearchDays, domain.MaxSearchDays)
	}
	return nil
}
