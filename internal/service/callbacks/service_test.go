package callbacks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
	customersService "github.com/Johnsonbros/JohnsonBros.com-sub004/internal/service/customers"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeLookup struct {
	customer *domain.Customer
	err      error
}

func (f *fakeLookup) Lookup(context.Context, string, string, string) (*domain.Customer, error) {
	return f.customer, f.err
}

type noteRecorder struct {
	entityID string
	content  string
	err      error
}

func (n *noteRecorder) AddNote(_ context.Context, entityID, content string) error {
	n.entityID = entityID
	n.content = content
	return n.err
}

func callbackReq() *Request {
	return &Request{FirstName: "Jane", LastName: "Doe", Phone: "6175551234"}
}

func TestRescheduleLogsNoteOnCustomer(t *testing.T) {
	notes := &noteRecorder{}
	svc := NewService(&fakeLookup{customer: &domain.Customer{ID: "cus_1", FirstName: "Jane", LastName: "Doe"}}, notes, nopLogger{})

	res, err := svc.RequestReschedule(context.Background(), callbackReq())
	require.NoError(t, err)

	assert.Equal(t, KindReschedule, res.Kind)
	assert.Equal(t, "cus_1", res.CustomerID)
	assert.Equal(t, Instruction, res.Instruction)
	assert.NotEmpty(t, res.CorrelationID)

	assert.Equal(t, "cus_1", notes.entityID)
	assert.Contains(t, notes.content, "reschedule")
	assert.Contains(t, notes.content, "confirm by phone")
}

func TestCancellationTargetsJobWhenGiven(t *testing.T) {
	notes := &noteRecorder{}
	svc := NewService(&fakeLookup{customer: &domain.Customer{ID: "cus_1"}}, notes, nopLogger{})

	req := callbackReq()
	req.JobID = ptr.Ptr("job_7")
	req.Reason = ptr.Ptr("found the leak myself")

	res, err := svc.RequestCancellation(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, KindCancellation, res.Kind)
	assert.Equal(t, "job_7", notes.entityID)
	assert.Contains(t, notes.content, "found the leak myself")
}

func TestCallbackCustomerNotFound(t *testing.T) {
	svc := NewService(&fakeLookup{err: customersService.ErrNotFound}, &noteRecorder{}, nopLogger{})

	_, err := svc.RequestReschedule(context.Background(), callbackReq())
	assert.True(t, errors.Is(err, ErrCustomerNotFound))
}

func TestCallbackNoteFailurePropagates(t *testing.T) {
	notes := &noteRecorder{err: errors.New("crm down")}
	svc := NewService(&fakeLookup{customer: &domain.Customer{ID: "cus_1"}}, notes, nopLogger{})

	_, err := svc.RequestCancellation(context.Background(), callbackReq())
	assert.Error(t, err)
}
