package get_capacity

import "time"

// Request asks for a capacity reading.
type Request struct {
	Date     time.Time // zero = today in the business timezone
	AreaHint string    // optional ZIP narrowing the job set
}

// Policy is the configured capacity policy this use case applies.
type Policy struct {
	SnapshotTTL     time.Duration
	ExpressLeadTime time.Duration
}
