package book_service_call

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/integrations/housecall"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/ptr"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var boston, _ = time.LoadLocation("America/New_York")

var testNow = time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeCRM struct {
	windows    []domain.TimeWindow
	windowsErr error

	jobErr      error
	createdJobs []housecall.JobInput

	appointmentErr error
	appointments   int

	notes   []string
	noteErr error

	leads     int
	leadNotes []string
	leadErr   error
}

func (f *fakeCRM) GetBookingWindows(context.Context, time.Time, int) ([]domain.TimeWindow, error) {
	return f.windows, f.windowsErr
}

func (f *fakeCRM) CreateJob(_ context.Context, input housecall.JobInput) (*housecall.Job, error) {
	if f.jobErr != nil {
		return nil, f.jobErr
	}
	f.createdJobs = append(f.createdJobs, input)
	return &housecall.Job{ID: "job_1", CustomerID: input.CustomerID, Schedule: input.Schedule}, nil
}

func (f *fakeCRM) CreateAppointment(_ context.Context, jobID string, _, _ time.Time, _ int, _ []string) (*housecall.Appointment, error) {
	if f.appointmentErr != nil {
		return nil, f.appointmentErr
	}
	f.appointments++
	return &housecall.Appointment{ID: "appt_1", JobID: jobID}, nil
}

func (f *fakeCRM) AddNote(_ context.Context, _, content string) error {
	if f.noteErr != nil {
		return f.noteErr
	}
	f.notes = append(f.notes, content)
	return nil
}

func (f *fakeCRM) CreateLead(_ context.Context, _, _, notes string, _ []string) (*housecall.Lead, error) {
	if f.leadErr != nil {
		return nil, f.leadErr
	}
	f.leads++
	f.leadNotes = append(f.leadNotes, notes)
	return &housecall.Lead{ID: "lead_1"}, nil
}

type fakeResolver struct {
	customer     *domain.Customer
	findCalls    int
	findErr      error
	address      *domain.Address
	addressCalls int
	addressErr   error
}

func (f *fakeResolver) FindOrCreate(context.Context, *domain.BookingRequest) (*domain.Customer, error) {
	f.findCalls++
	return f.customer, f.findErr
}

func (f *fakeResolver) EnsureAddress(context.Context, *domain.Customer, *domain.BookingRequest) (*domain.Address, error) {
	f.addressCalls++
	return f.address, f.addressErr
}

type staticGate bool

func (g staticGate) InService(string) bool { return bool(g) }

type recordingNotifier struct {
	bookings  []*domain.BookingResult
	outOfArea []*domain.OutOfAreaResult
}

func (n *recordingNotifier) BookingConfirmed(r *domain.BookingResult) {
	n.bookings = append(n.bookings, r)
}

func (n *recordingNotifier) OutOfAreaLead(r *domain.OutOfAreaResult) {
	n.outOfArea = append(n.outOfArea, r)
}

type fakeLog struct {
	bookings  int
	outOfArea int
	err       error
}

func (l *fakeLog) RecordBooking(context.Context, *domain.BookingRequest, *domain.BookingResult) error {
	l.bookings++
	return l.err
}

func (l *fakeLog) RecordOutOfArea(context.Context, *domain.BookingRequest, *domain.OutOfAreaResult) error {
	l.outOfArea++
	return l.err
}

func window(day, hour int, available bool) domain.TimeWindow {
	start := time.Date(2025, 6, day, hour, 0, 0, 0, boston)
	return domain.TimeWindow{Start: start, End: start.Add(2 * time.Hour), Available: available}
}

func validRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		FirstName:   "Dana",
		LastName:    "Whitfield",
		Phone:       "(617) 555-0142",
		Street:      "14 Sea St",
		City:        "Quincy",
		State:       "MA",
		Zip:         "02169",
		Description: "water heater leaking from the base",
		LeadSource:  "chat",
		Preference:  domain.PreferenceMorning,
	}
}

type fixture struct {
	crm      *fakeCRM
	resolver *fakeResolver
	notifier *recordingNotifier
	log      *fakeLog
	uc       *UseCase
}

func newFixture(inArea bool) *fixture {
	f := &fixture{
		crm: &fakeCRM{windows: []domain.TimeWindow{window(3, 9, true), window(3, 14, true)}},
		resolver: &fakeResolver{
			customer: &domain.Customer{ID: "cus_1", FirstName: "Dana", LastName: "Whitfield"},
			address:  &domain.Address{ID: "adr_1", Zip: "02169"},
		},
		notifier: &recordingNotifier{},
		log:      &fakeLog{},
	}
	f.uc = NewUseCase(f.crm, f.resolver, staticGate(inArea), f.notifier, f.log,
		Policy{DefaultLeadSource: "website_chat"}, boston, nopLogger{})
	f.uc.timeProvider = fixedClock{now: testNow}
	return f
}

func TestExecuteBooksPreferredWindow(t *testing.T) {
	f := newFixture(true)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Nil(t, resp.OutOfArea)

	b := resp.Booking
	assert.Equal(t, "job_1", b.JobID)
	assert.Equal(t, "cus_1", b.CustomerID)
	require.NotNil(t, b.AppointmentID)
	assert.Equal(t, "appt_1", *b.AppointmentID)
	assert.True(t, b.MatchedPreference)
	assert.Equal(t, 9, b.Window.Start.Hour())
	assert.Equal(t, 120, b.ArrivalWindowMinutes)
	assert.NotEmpty(t, b.CorrelationID)

	require.Len(t, f.crm.createdJobs, 1)
	assert.Equal(t, "adr_1", f.crm.createdJobs[0].AddressID)
	assert.Equal(t, "chat", f.crm.createdJobs[0].LeadSource)
	assert.Equal(t, 1, f.log.bookings)
	require.Len(t, f.notifier.bookings, 1)
}

func TestExecuteFallsBackOffPreference(t *testing.T) {
	f := newFixture(true)
	f.crm.windows = []domain.TimeWindow{window(3, 14, true)} // afternoon only

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.False(t, resp.Booking.MatchedPreference)
	assert.Equal(t, 14, resp.Booking.Window.Start.Hour())
}

func TestExecuteNoWindowsIsBusinessLogic(t *testing.T) {
	f := newFixture(true)
	f.crm.windows = []domain.TimeWindow{window(3, 9, false)}

	_, err := f.uc.Execute(context.Background(), validRequest())
	serr, ok := structerr.As(err)
	require.True(t, ok)
	assert.Equal(t, structerr.TypeBusinessLogic, serr.Type)
	assert.Equal(t, structerr.CodeNoWindows, serr.Code)

	// The no-availability branch is write-free: no customer, no
	// address, no job may reach the CRM.
	assert.Zero(t, f.resolver.findCalls, "customer resolution must not run without a window")
	assert.Zero(t, f.resolver.addressCalls)
	assert.Empty(t, f.crm.createdJobs, "no job may be created without a window")
}

func TestExecuteValidation(t *testing.T) {
	f := newFixture(true)

	tests := []struct {
		name   string
		mutate func(*domain.BookingRequest)
	}{
		{"missing phone", func(r *domain.BookingRequest) { r.Phone = "555" }},
		{"missing address", func(r *domain.BookingRequest) { r.Street = "" }},
		{"missing description", func(r *domain.BookingRequest) { r.Description = "" }},
		{"bad preference", func(r *domain.BookingRequest) { r.Preference = "dawn" }},
		{"search days out of range", func(r *domain.BookingRequest) { r.SearchDays = 45 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			serr, ok := structerr.As(err)
			require.True(t, ok)
			assert.Equal(t, structerr.TypeValidation, serr.Type)
		})
	}
	assert.Empty(t, f.crm.createdJobs, "validation failures must not reach the CRM")
}

func TestExecuteAppointmentFailureIsPartialSuccess(t *testing.T) {
	f := newFixture(true)
	f.crm.appointmentErr = fmt.Errorf("appointment endpoint down")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "a booked job without an appointment pin is still a success")
	require.NotNil(t, resp.Booking)
	assert.Nil(t, resp.Booking.AppointmentID)
	assert.Equal(t, "job_1", resp.Booking.JobID)
	require.Len(t, f.notifier.bookings, 1)
}

func TestExecuteCustomerFailurePropagates(t *testing.T) {
	f := newFixture(true)
	f.resolver.findErr = structerr.New(structerr.TypeAPIError, structerr.CodeUpstream5xx, "crm 500", "corr-1")

	_, err := f.uc.Execute(context.Background(), validRequest())
	serr, ok := structerr.As(err)
	require.True(t, ok)
	assert.Equal(t, structerr.TypeAPIError, serr.Type)
	assert.Empty(t, f.crm.createdJobs)
}

func TestExecuteOutOfAreaRecordsLead(t *testing.T) {
	f := newFixture(false)
	req := validRequest()
	req.Zip = "03060" // Nashua NH

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err, "out-of-area is a terminal response, not an error")
	require.NotNil(t, resp.OutOfArea)
	assert.Nil(t, resp.Booking)

	o := resp.OutOfArea
	assert.Equal(t, "03060", o.Zip)
	assert.Equal(t, "cus_1", o.CustomerID)
	assert.True(t, o.LeadRecorded)
	assert.Equal(t, 1, f.crm.leads)
	require.Len(t, f.crm.leadNotes, 1)
	assert.Contains(t, f.crm.leadNotes[0], "["+testNow.Format(time.RFC3339)+"]")
	assert.Empty(t, f.crm.createdJobs)
	assert.Equal(t, 1, f.log.outOfArea)
	require.Len(t, f.notifier.outOfArea, 1)
}

func TestExecuteOutOfAreaDegradesToNote(t *testing.T) {
	f := newFixture(false)
	f.crm.leadErr = fmt.Errorf("%w: POST /leads: 404", housecall.ErrLeadsUnsupported)
	req := validRequest()
	req.Zip = "03060"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.OutOfArea.LeadRecorded)
	require.Len(t, f.crm.notes, 1)
	assert.Contains(t, f.crm.notes[0], "03060")
	assert.Contains(t, f.crm.notes[0], "["+testNow.Format(time.RFC3339)+"]")
}

func TestExecuteOutOfAreaSwallowsFailures(t *testing.T) {
	f := newFixture(false)
	f.resolver.findErr = errors.New("crm down")
	f.log.err = errors.New("db down")
	req := validRequest()
	req.Zip = "03060"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.OutOfArea)
	assert.Empty(t, resp.OutOfArea.CustomerID)
	assert.False(t, resp.OutOfArea.LeadRecorded)
}

func TestExecuteBookingLogFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture(true)
	f.log.err = errors.New("db down")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
}

func TestExecuteUsesEarliestDateAndDefaults(t *testing.T) {
	f := newFixture(true)
	req := validRequest()
	req.Preference = ""
	req.SearchDays = 0
	req.LeadSource = ""

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, domain.PreferenceAny, req.Preference, "defaults applied before selection")
	require.Len(t, f.crm.createdJobs, 1)
	assert.Equal(t, "website_chat", f.crm.createdJobs[0].LeadSource)
	assert.Equal(t, "appt_1", ptr.Deref(resp.Booking.AppointmentID))
}
