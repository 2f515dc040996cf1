// Package bookinglog persists an audit trail of booking outcomes to
// Postgres for the office dashboard. The CRM stays the system of
// record; this table is write-mostly and every write is best effort.
//
// Expected schema:
//
//	CREATE TABLE booking_log (
//	    id             BIGSERIAL PRIMARY KEY,
//	    outcome        TEXT        NOT NULL, -- 'booked' | 'out_of_area'
//	    correlation_id TEXT        NOT NULL,
//	    customer_id    TEXT        NOT NULL DEFAULT '',
//	    job_id         TEXT        NOT NULL DEFAULT '',
//	    appointment_id TEXT        NOT NULL DEFAULT '',
//	    zip            TEXT        NOT NULL,
//	    lead_source    TEXT        NOT NULL DEFAULT '',
//	    window_start   TIMESTAMPTZ,
//	    window_end     TIMESTAMPTZ,
//	    matched_pref   BOOLEAN     NOT NULL DEFAULT FALSE,
//	    lead_recorded  BOOLEAN     NOT NULL DEFAULT FALSE,
//	    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
package bookinglog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	outcomeBooked    = "booked"
	outcomeOutOfArea = "out_of_area"
)

// Entry is one audit row.
type Entry struct {
	ID            int64
	Outcome       string
	CorrelationID string
	CustomerID    string
	JobID         string
	AppointmentID string
	Zip           string
	LeadSource    string
	WindowStart   *time.Time
	WindowEnd     *time.Time
	MatchedPref   bool
	LeadRecorded  bool
	CreatedAt     time.Time
}

// Repository writes and reads booking_log rows.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the booking log repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// RecordBooking appends an audit row for a committed booking.
func (r *Repository) RecordBooking(ctx context.Context, req *domain.BookingRequest, result *domain.BookingResult) error {
	appointmentID := ""
	if result.AppointmentID != nil {
		appointmentID = *result.AppointmentID
	}

	query, args, err := psql.Insert("booking_log").
		Columns(
			"outcome",
			"correlation_id",
			"customer_id",
			"job_id",
			"appointment_id",
			"zip",
			"lead_source",
			"window_start",
			"window_end",
			"matched_pref",
		).
		Values(
			outcomeBooked,
			result.CorrelationID,
			result.CustomerID,
			result.JobID,
			appointmentID,
			req.Zip,
			req.LeadSource,
			result.Window.Start,
			result.Window.End,
			result.MatchedPreference,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RecordBooking - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RecordBooking - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// RecordOutOfArea appends an audit row for an out-of-area lead.
func (r *Repository) RecordOutOfArea(ctx context.Context, req *domain.BookingRequest, result *domain.OutOfAreaResult) error {
	query, args, err := psql.Insert("booking_log").
		Columns(
			"outcome",
			"correlation_id",
			"customer_id",
			"zip",
			"lead_source",
			"lead_recorded",
		).
		Values(
			outcomeOutOfArea,
			result.CorrelationID,
			result.CustomerID,
			result.Zip,
			req.LeadSource,
			result.LeadRecorded,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RecordOutOfArea - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RecordOutOfArea - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// RecentEntries returns the newest audit rows, newest first.
func (r *Repository) RecentEntries(ctx context.Context, limit uint64) ([]Entry, error) {
	query, args, err := psql.Select(
		"id",
		"outcome",
		"correlation_id",
		"customer_id",
		"job_id",
		"appointment_id",
		"zip",
		"lead_source",
		"window_start",
		"window_end",
		"matched_pref",
		"lead_recorded",
		"created_at",
	).
		From("booking_log").
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RecentEntries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RecentEntries - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.Outcome,
			&e.CorrelationID,
			&e.CustomerID,
			&e.JobID,
			&e.AppointmentID,
			&e.Zip,
			&e.LeadSource,
			&e.WindowStart,
			&e.WindowEnd,
			&e.MatchedPref,
			&e.LeadRecorded,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: RecentEntries - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RecentEntries - iterate rows: %v", ErrExecQuery, err)
	}
	return entries, nil
}
