// Package callbacks handles reschedule and cancellation requests. These
// never touch a job's schedule: the engine only appends a timestamped
// note for the office, and every response tells the caller a human will
// confirm by phone.
package callbacks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	customersService "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/customers"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/correlation"
)

// Kind distinguishes the two callback flavors.
type Kind string

const (
	KindReschedule   Kind = "reschedule"
	KindCancellation Kind = "cancellation"
)

// Instruction is the fixed guidance returned with every logged callback.
const Instruction = "Our office will call you to confirm. Nothing has been changed or cancelled yet."

// Service logs callback requests as CRM notes.
type Service struct {
	customers CustomerLookup
	notes     NoteWriter
	clock     func() time.Time
	log       Logger
}

// NewService creates the callbacks service.
func NewService(customers CustomerLookup, notes NoteWriter, log Logger) *Service {
	return &Service{
		customers: customers,
		notes:     notes,
		clock:     time.Now,
		log:       log,
	}
}

// Request identifies the customer and what they want a call about.
type Request struct {
	FirstName string
	LastName  string
	Phone     string
	JobID     *string
	Reason    *string
}

// Result confirms the callback was logged. It never implies the job
// itself changed.
type Result struct {
	Kind          Kind
	CustomerID    string
	JobID         *string
	Instruction   string
	CorrelationID string
}

// RequestReschedule logs a reschedule callback.
func (s *Service) RequestReschedule(ctx context.Context, req *Request) (*Result, error) {
	return s.logCallback(ctx, KindReschedule, req)
}

// RequestCancellation logs a cancellation callback.
func (s *Service) RequestCancellation(ctx context.Context, req *Request) (*Result, error) {
	return s.logCallback(ctx, KindCancellation, req)
}

func (s *Service) logCallback(ctx context.Context, kind Kind, req *Request) (*Result, error) {
	corrID := correlation.FromContext(ctx)

	customer, err := s.customers.Lookup(ctx, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		if errors.Is(err, customersService.ErrNotFound) {
			s.log.Warn("Callback %s: no strict customer match [corr=%s]", kind, corrID)
			return nil, ErrCustomerNotFound
		}
		if errors.Is(err, customersService.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	note := s.composeNote(kind, customer, req)

	// The note lands on the job when one is referenced, otherwise on
	// the customer record.
	target := customer.ID
	if req.JobID != nil && *req.JobID != "" {
		target = *req.JobID
	}

	if err := s.notes.AddNote(ctx, target, note); err != nil {
		s.log.Error("Callback %s: failed to add note for customer id=%s: %v [corr=%s]",
			kind, customer.ID, err, corrID)
		return nil, err
	}

	s.log.Info("Callback %s: logged for customer id=%s [corr=%s]", kind, customer.ID, corrID)
	return &Result{
		Kind:          kind,
		CustomerID:    customer.ID,
		JobID:         req.JobID,
		Instruction:   Instruction,
		CorrelationID: corrID,
	}, nil
}

func (s *Service) composeNote(kind Kind, customer *domain.Customer, req *Request) string {
	note := fmt.Sprintf("[%s] %s callback requested by %s %s.",
		s.clock().UTC().Format(time.RFC3339), kind, customer.FirstName, customer.LastName)
	if req.JobID != nil && *req.JobID != "" {
		note += " Job: " + *req.JobID + "."
	}
	if req.Reason != nil && *req.Reason != "" {
		note += " Reason: " + *req.Reason
	}
	note += " Office to confirm by phone before any schedule change."
	return note
}
