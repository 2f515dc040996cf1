package tooldiag

import (
	"encoding/json"
	"time"
)

// Envelope is the normalized shape every tool response is reported in:
// the payload plus correlation id, coarse status and timing.
type Envelope struct {
	Tool          string          `json:"tool"`
	Status        string          `json:"status"` // "ok" or "error"
	CorrelationID string          `json:"correlationId"`
	DurationMS    int64           `json:"durationMs"`
	Data          json.RawMessage `json:"data,omitempty"`
}

// Normalize wraps a tool response payload in the standard envelope.
// A payload that cannot be marshaled is left out rather than failing
// the call; normalization must never break a completed operation.
func Normalize(tool, correlationID string, err error, elapsed time.Duration, payload any) Envelope {
	status := "ok"
	if err != nil {
		status = "error"
	}

	env := Envelope{
		Tool:          tool,
		Status:        status,
		CorrelationID: correlationID,
		DurationMS:    elapsed.Milliseconds(),
	}

	if payload != nil {
		if raw, mErr := json.Marshal(payload); mErr == nil {
			env.Data = raw
		}
	}

	return env
}
