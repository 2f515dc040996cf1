package housecall

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// CreateAppointment pins a job to a concrete start/end with an arrival
// window and an optional dispatch list. Callers treat failures here as
// absorbable: the job already exists.
func (c *Client) CreateAppointment(ctx context.Context, jobID string, start, end time.Time, arrivalWindowMinutes int, dispatchedEmployeeIDs []string) (*Appointment, error) {
	payload := struct {
		StartTime             time.Time `json:"start_time"`
		EndTime               time.Time `json:"end_time"`
		ArrivalWindowMinutes  int       `json:"arrival_window_in_minutes"`
		DispatchedEmployeeIDs []string  `json:"dispatched_employee_ids,omitempty"`
	}{start, end, arrivalWindowMinutes, dispatchedEmployeeIDs}

	var out Appointment
	path := fmt.Sprintf("/jobs/%s/appointments", jobID)
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
