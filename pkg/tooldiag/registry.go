// Package tooldiag tracks per-tool invocation diagnostics: call counts,
// latency, last failure. Every externally invoked operation reports here
// through Track, and the aggregate snapshot backs the diagnostics
// endpoint. The registry is explicit, injectable state (no package-level
// map) so tests and multi-instance setups stay clean.
package tooldiag

import (
	"sort"
	"sync"
	"time"
)

// Sink receives every completed invocation, typically Prometheus.
type Sink interface {
	ObserveToolCall(tool string, success bool, elapsed time.Duration)
}

// Registry accumulates per-tool metrics for the process lifetime.
type Registry struct {
	mu    sync.Mutex
	tools map[string]*toolMetric
	sink  Sink
	clock func() time.Time
}

type toolMetric struct {
	calls        int64
	successes    int64
	failures     int64
	totalLatency time.Duration
	lastError    string
	lastFailure  time.Time
}

// NewRegistry creates an empty registry. The sink may be nil.
func NewRegistry(sink Sink) *Registry {
	return &Registry{
		tools: make(map[string]*toolMetric),
		sink:  sink,
		clock: time.Now,
	}
}

// Track starts timing one invocation of the named tool. The returned
// function must be called exactly once with the operation's outcome.
func (r *Registry) Track(tool string) func(err error) {
	start := r.clock()
	return func(err error) {
		r.record(tool, r.clock().Sub(start), err)
	}
}

func (r *Registry) record(tool string, elapsed time.Duration, err error) {
	r.mu.Lock()
	m, ok := r.tools[tool]
	if !ok {
		m = &toolMetric{}
		r.tools[tool] = m
	}

	m.calls++
	m.totalLatency += elapsed
	if err != nil {
		m.failures++
		m.lastError = err.Error()
		m.lastFailure = r.clock()
	} else {
		m.successes++
	}
	r.mu.Unlock()

	if r.sink != nil {
		r.sink.ObserveToolCall(tool, err == nil, elapsed)
	}
}

// ToolStats is a point-in-time view of one tool's counters.
type ToolStats struct {
	Tool        string
	Calls       int64
	Successes   int64
	Failures    int64
	FailureRate float64
	AvgLatency  time.Duration
	LastError   string
	LastFailure time.Time
}

// Snapshot is the aggregate diagnostics view.
type Snapshot struct {
	TotalCalls      int64
	OverallSuccess  float64 // 0..1, 1 when no calls yet
	AvgLatency      time.Duration
	Tools           []ToolStats // sorted by tool name
	FailureHotspots []ToolStats // top-N by failure rate, failures only
}

// Snapshot returns the current aggregate view. topN bounds the hotspot
// list; values below 1 default to 5.
func (r *Registry) Snapshot(topN int) Snapshot {
	if topN < 1 {
		topN = 5
	}

	r.mu.Lock()
	stats := make([]ToolStats, 0, len(r.tools))
	var totalCalls, totalSuccess int64
	var totalLatency time.Duration
	for name, m := range r.tools {
		s := ToolStats{
			Tool:        name,
			Calls:       m.calls,
			Successes:   m.successes,
			Failures:    m.failures,
			AvgLatency:  avgLatency(m.totalLatency, m.calls),
			LastError:   m.lastError,
			LastFailure: m.lastFailure,
		}
		if m.calls > 0 {
			s.FailureRate = float64(m.failures) / float64(m.calls)
		}
		stats = append(stats, s)
		totalCalls += m.calls
		totalSuccess += m.successes
		totalLatency += m.totalLatency
	}
	r.mu.Unlock()

	sort.Slice(stats, func(i, j int) bool { return stats[i].Tool < stats[j].Tool })

	snap := Snapshot{
		TotalCalls:     totalCalls,
		OverallSuccess: 1,
		AvgLatency:     avgLatency(totalLatency, totalCalls),
		Tools:          stats,
	}
	if totalCalls > 0 {
		snap.OverallSuccess = float64(totalSuccess) / float64(totalCalls)
	}

	hotspots := make([]ToolStats, 0, len(stats))
	for _, s := range stats {
		if s.Failures > 0 {
			hotspots = append(hotspots, s)
		}
	}
	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].FailureRate > hotspots[j].FailureRate
	})
	if len(hotspots) > topN {
		hotspots = hotspots[:topN]
	}
	snap.FailureHotspots = hotspots

	return snap
}

func avgLatency(total time.Duration, calls int64) time.Duration {
	if calls == 0 {
		return 0
	}
	return total / time.Duration(calls)
}
