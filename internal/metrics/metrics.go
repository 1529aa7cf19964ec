package metrics

import (
	"sync"
	"time"
)

type callStats struct {
	calls           int
	errors          int
	lastStatus      int
	lastCallLatency time.Duration
}

type actionStats struct {
	outcomes map[string]int
}

// Recorder captures lightweight, in-memory metrics about service calls and user actions.
// OpenTelemetry instruments are fed alongside when Setup enabled them.
type Recorder struct {
	mu      sync.Mutex
	calls   map[string]*callStats
	actions map[string]*actionStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		calls:   make(map[string]*callStats),
		actions: make(map[string]*actionStats),
		otel:    otel,
	}
}

// RecordCall counts one outbound call to path. status is 0 when no response arrived.
func (r *Recorder) RecordCall(method, path string, status int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.calls[path]
	if !ok {
		stats = &callStats{}
		r.calls[path] = stats
	}
	stats.calls++
	stats.lastStatus = status
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCall(method, path, status, duration, err)
	}
}

// RecordAction counts one finished user action (ingest, recommend, health) by outcome.
func (r *Recorder) RecordAction(action, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.actions[action]
	if !ok {
		stats = &actionStats{outcomes: make(map[string]int)}
		r.actions[action] = stats
	}
	stats.outcomes[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAction(action, outcome, duration)
	}
}

// Calls returns the total attempts recorded for a path.
func (r *Recorder) Calls(path string) int {
	return r.Snapshot(path).Calls
}

// CallErrors returns the total failed attempts recorded for a path.
func (r *Recorder) CallErrors(path string) int {
	return r.Snapshot(path).Errors
}

// LastCallLatency returns the last recorded latency for a path.
func (r *Recorder) LastCallLatency(path string) time.Duration {
	return r.Snapshot(path).LastCallLatency
}

// ActionOutcomes returns how often action finished with outcome.
func (r *Recorder) ActionOutcomes(action, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.actions[action]; ok {
		return stats.outcomes[outcome]
	}
	return 0
}

// Snapshot returns a copy of the current stats for the path.
type Snapshot struct {
	Calls           int
	Errors          int
	LastStatus      int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(path string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.calls[path]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastStatus:      stats.lastStatus,
		LastCallLatency: stats.lastCallLatency,
	}
}
