package entity

import "time"

// TraceEventKind is the lifecycle step a trace event records.
type TraceEventKind string

const (
	TraceEventCreate  TraceEventKind = "create"
	TraceEventAcquire TraceEventKind = "acquire"
	TraceEventRelease TraceEventKind = "release"
)

// TraceEvent is one diagnostic record emitted by a traced wake lock.
// It has no effect on program behavior.
type TraceEvent struct {
	// ID and PID are only set on events read back from the journal.
	ID         int64
	PID        int
	Kind       TraceEventKind
	Tag        string
	LockID     WakeLockID
	Timeout    time.Duration
	HasTimeout bool
	Elapsed    time.Duration
	HasStart   bool
	OccurredAt time.Time
}

// TimeoutString renders the timeout the way trace lines print it.
func (e TraceEvent) TimeoutString() string {
	if !e.HasTimeout {
		return "none"
	}
	return e.Timeout.String()
}
