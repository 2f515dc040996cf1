package book_service_call

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/correlation"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/ptr"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

// UseCase orchestrates a full service-call booking: validation, the
// service-area gate, window selection, customer resolution, job and
// appointment creation. Side effects happen in a fixed order so a
// failure leaves the CRM in a known state: nothing until a window is
// chosen, customer-only after resolution, job-without-appointment at
// worst.
type UseCase struct {
	crm          CRMClient
	customers    CustomerResolver
	area         AreaGate
	notifier     Notifier
	bookingLog   BookingLog
	policy       Policy
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking orchestrator.
func NewUseCase(
	crm CRMClient,
	customers CustomerResolver,
	area AreaGate,
	notifier Notifier,
	bookingLog BookingLog,
	policy Policy,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		crm:          crm,
		customers:    customers,
		area:         area,
		notifier:     notifier,
		bookingLog:   bookingLog,
		policy:       policy,
		loc:          loc,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the booking flow for one request.
func (uc *UseCase) Execute(ctx context.Context, req *domain.BookingRequest) (*Response, error) {
	corrID := correlation.FromContext(ctx)

	uc.logger.Info("BookServiceCall: name=%q zip=%s pref=%s [corr=%s]",
		req.FirstName+" "+req.LastName, req.Zip, req.Preference, corrID)

	if err := validateRequest(req, corrID); err != nil {
		uc.logger.Warn("BookServiceCall: validation failed: %v [corr=%s]", err, corrID)
		return nil, err
	}
	applyDefaults(req)
	if req.LeadSource == "" {
		req.LeadSource = uc.policy.DefaultLeadSource
	}

	if !uc.area.InService(req.Zip) {
		return uc.handleOutOfArea(ctx, req, corrID), nil
	}

	// Window selection comes before customer resolution: a fully
	// booked day must fail without a single CRM write.
	selection, err := uc.selectWindow(ctx, req, corrID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customers.FindOrCreate(ctx, req)
	if err != nil {
		uc.logger.Error("BookServiceCall: customer resolution failed: %v [corr=%s]", err, corrID)
		return nil, structerr.Classify(err, corrID)
	}

	address, err := uc.customers.EnsureAddress(ctx, customer, req)
	if err != nil {
		uc.logger.Error("BookServiceCall: address resolution failed for customer=%s: %v [corr=%s]",
			customer.ID, err, corrID)
		return nil, structerr.Classify(err, corrID)
	}

	job, err := uc.crm.CreateJob(ctx, housecall.JobInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		Schedule: &housecall.JobSchedule{
			ScheduledStart: selection.Window.Start,
			ScheduledEnd:   selection.Window.End,
		},
		Notes:      req.Description,
		Tags:       req.Tags,
		LeadSource: req.LeadSource,
	})
	if err != nil {
		uc.logger.Error("BookServiceCall: job creation failed for customer=%s: %v [corr=%s]",
			customer.ID, err, corrID)
		return nil, structerr.Classify(err, corrID)
	}

	result := &domain.BookingResult{
		JobID:                job.ID,
		CustomerID:           customer.ID,
		Window:               selection.Window,
		ArrivalWindowMinutes: selection.Window.ArrivalWindowMinutes(),
		MatchedPreference:    selection.MatchedPreference,
		CorrelationID:        corrID,
	}

	// The job is the commit point. A failed appointment pin is a
	// partial success the office resolves by hand, never a rollback.
	appointment, err := uc.crm.CreateAppointment(ctx, job.ID,
		selection.Window.Start, selection.Window.End,
		result.ArrivalWindowMinutes, nil)
	if err != nil {
		uc.logger.Warn("BookServiceCall: appointment pin failed for job=%s, continuing: %v [corr=%s]",
			job.ID, err, corrID)
	} else {
		result.AppointmentID = ptr.Ptr(appointment.ID)
	}

	if err := uc.bookingLog.RecordBooking(ctx, req, result); err != nil {
		uc.logger.Warn("BookServiceCall: booking log write failed for job=%s: %v [corr=%s]",
			job.ID, err, corrID)
	}
	uc.notifier.BookingConfirmed(result)

	uc.logger.Info("BookServiceCall: booked job=%s customer=%s window=%s matched=%t [corr=%s]",
		job.ID, customer.ID, selection.Window.Start.Format(time.RFC3339), selection.MatchedPreference, corrID)

	return &Response{Booking: result}, nil
}

// selectWindow fetches availability and picks the window per the
// preference rules. An empty or fully-booked schedule is a business
// condition, not an API failure.
func (uc *UseCase) selectWindow(ctx context.Context, req *domain.BookingRequest, corrID string) (*domain.WindowSelection, error) {
	startDate := req.EarliestDate
	if startDate.IsZero() {
		startDate = uc.timeProvider.Now().In(uc.loc)
	}

	windows, err := uc.crm.GetBookingWindows(ctx, startDate, req.SearchDays)
	if err != nil {
		uc.logger.Error("BookServiceCall: availability fetch failed: %v [corr=%s]", err, corrID)
		return nil, structerr.Classify(err, corrID)
	}

	selection := domain.SelectWindow(windows, req.Preference, uc.loc)
	if selection == nil {
		uc.logger.Warn("BookServiceCall: no bookable windows in %d days from %s [corr=%s]",
			req.SearchDays, startDate.Format(domain.DateFormat), corrID)
		return nil, structerr.New(structerr.TypeBusinessLogic, structerr.CodeNoWindows,
			fmt.Sprintf("no bookable windows within %d days", req.SearchDays), corrID)
	}
	return selection, nil
}

// handleOutOfArea records the unserved-territory request as a lead so a
// human can follow up. Every step is best effort: the caller always
// gets a terminal out-of-area response, never an error.
func (uc *UseCase) handleOutOfArea(ctx context.Context, req *domain.BookingRequest, corrID string) *Response {
	uc.logger.Info("BookServiceCall: zip=%s outside service area, recording lead [corr=%s]", req.Zip, corrID)

	result := &domain.OutOfAreaResult{
		Zip:           req.Zip,
		CorrelationID: corrID,
	}

	customer, err := uc.customers.FindOrCreate(ctx, req)
	if err != nil {
		uc.logger.Warn("BookServiceCall: out-of-area customer record failed: %v [corr=%s]", err, corrID)
	} else {
		result.CustomerID = customer.ID
		result.LeadRecorded = uc.recordLead(ctx, customer.ID, req, corrID)
	}

	if err := uc.bookingLog.RecordOutOfArea(ctx, req, result); err != nil {
		uc.logger.Warn("BookServiceCall: out-of-area log write failed: %v [corr=%s]", err, corrID)
	}
	uc.notifier.OutOfAreaLead(result)
	return &Response{OutOfArea: result}
}

// recordLead creates a CRM lead, falling back to a customer note when
// the account has no leads feature.
func (uc *UseCase) recordLead(ctx context.Context, customerID string, req *domain.BookingRequest, corrID string) bool {
	notes := fmt.Sprintf("[%s] Out-of-area request from %s: %s",
		uc.timeProvider.Now().UTC().Format(time.RFC3339), req.Zip, req.Description)

	_, err := uc.crm.CreateLead(ctx, customerID, req.LeadSource, notes, req.Tags)
	if err == nil {
		return true
	}
	if !errors.Is(err, housecall.ErrLeadsUnsupported) {
		uc.logger.Warn("BookServiceCall: lead creation failed for customer=%s: %v [corr=%s]", customerID, err, corrID)
		return false
	}

	if err := uc.crm.AddNote(ctx, customerID, notes); err != nil {
		uc.logger.Warn("BookServiceCall: lead fallback note failed for customer=%s: %v [corr=%s]", customerID, err, corrID)
		return false
	}
	return true
}
