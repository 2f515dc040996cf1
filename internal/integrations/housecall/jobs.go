package housecall

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// CreateJob creates a job for a customer at one of their addresses.
func (c *Client) CreateJob(ctx context.Context, input JobInput) (*Job, error) {
	var out Job
	if err := c.do(ctx, http.MethodPost, "/jobs", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJob fetches one job by id.
func (c *Client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	var out Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+jobID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJobs lists jobs, optionally filtered by customer and date range.
func (c *Client) GetJobs(ctx context.Context, customerID string, from, to *time.Time) ([]Job, error) {
	q := url.Values{}
	if customerID != "" {
		q.Set("customer_id", customerID)
	}
	if from != nil {
		q.Set("scheduled_start_min", from.Format(time.RFC3339))
	}
	if to != nil {
		q.Set("scheduled_start_max", to.Format(time.RFC3339))
	}
	q.Set("page_size", fmt.Sprint(c.pageSize))

	var out jobListWire
	if err := c.do(ctx, http.MethodGet, "/jobs", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

// GetJobsForDay lists jobs scheduled on the given calendar day.
func (c *Client) GetJobsForDay(ctx context.Context, day time.Time) ([]Job, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return c.GetJobs(ctx, "", &start, &end)
}
