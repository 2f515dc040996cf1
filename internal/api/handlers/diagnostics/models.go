package diagnostics

import (
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/tooldiag"
)

// ToolStatsResponse is one tool's aggregate counters on the wire.
type ToolStatsResponse struct {
	Tool         string  `json:"tool"`
	Calls        int64   `json:"calls"`
	Successes    int64   `json:"successes"`
	Failures     int64   `json:"failures"`
	FailureRate  float64 `json:"failureRate"`
	AvgLatencyMS int64   `json:"avgLatencyMs"`
	LastError    string  `json:"lastError,omitempty"`
	LastFailure  string  `json:"lastFailure,omitempty"`
}

// DiagnosticsResponse is the HTTP response model.
type DiagnosticsResponse struct {
	TotalCalls      int64               `json:"totalCalls"`
	OverallSuccess  float64             `json:"overallSuccess"`
	AvgLatencyMS    int64               `json:"avgLatencyMs"`
	Tools           []ToolStatsResponse `json:"tools"`
	FailureHotspots []ToolStatsResponse `json:"failureHotspots"`
}

// FromSnapshot converts the registry snapshot into the HTTP model.
func FromSnapshot(snap tooldiag.Snapshot) *DiagnosticsResponse {
	return &DiagnosticsResponse{
		TotalCalls:      snap.TotalCalls,
		OverallSuccess:  snap.OverallSuccess,
		AvgLatencyMS:    snap.AvgLatency.Milliseconds(),
		Tools:           toWire(snap.Tools),
		FailureHotspots: toWire(snap.FailureHotspots),
	}
}

func toWire(stats []tooldiag.ToolStats) []ToolStatsResponse {
	out := make([]ToolStatsResponse, 0, len(stats))
	for _, s := range stats {
		resp := ToolStatsResponse{
			Tool:         s.Tool,
			Calls:        s.Calls,
			Successes:    s.Successes,
			Failures:     s.Failures,
			FailureRate:  s.FailureRate,
			AvgLatencyMS: s.AvgLatency.Milliseconds(),
			LastError:    s.LastError,
		}
		if !s.LastFailure.IsZero() {
			resp.LastFailure = s.LastFailure.Format(time.RFC3339)
		}
		out = append(out, resp)
	}
	return out
}
