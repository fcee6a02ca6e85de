package power

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/waketrace/internal/application/port"
	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/logging"
)

var _ port.WakeLock = (*TracingWakeLock)(nil)

// holdState is the bookkeeping of one traced lock.
// start is only meaningful while hasStart is set.
type holdState struct {
	start      time.Time
	hasStart   bool
	timeout    time.Duration
	hasTimeout bool
}

// TracingWakeLock forwards to a platform wake lock and traces each call.
type TracingWakeLock struct {
	manager *TracingPowerManager
	handle  port.PlatformWakeLock
	flags   entity.WakeLockFlags
	tag     string
	id      entity.WakeLockID

	// mu serializes platform calls and guards state.
	mu    sync.Mutex
	state holdState
}

// ID returns the identifier assigned at creation.
func (l *TracingWakeLock) ID() entity.WakeLockID {
	return l.id
}

// Tag returns the caller supplied tag.
func (l *TracingWakeLock) Tag() string {
	return l.tag
}

// Flags returns the flags the platform lock was created with.
func (l *TracingWakeLock) Flags() entity.WakeLockFlags {
	return l.flags
}

// IsHeld asks the platform handle whether it is currently held.
func (l *TracingWakeLock) IsHeld() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handle.IsHeld()
}

// AcquireTimeout holds the lock for at most timeout. The platform releases
// it once the timeout expires. A start time already recorded by an earlier
// acquire is kept.
func (l *TracingWakeLock) AcquireTimeout(ctx context.Context, timeout time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.handle.AcquireTimeout(timeout); err != nil {
		return err
	}

	l.emit(ctx, entity.TraceEvent{
		Kind:       entity.TraceEventAcquire,
		Timeout:    timeout,
		HasTimeout: true,
	})
	l.markStarted()
	l.state.timeout = timeout
	l.state.hasTimeout = true

	return nil
}

// Acquire holds the lock without a timeout.
func (l *TracingWakeLock) Acquire(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.handle.Acquire(); err != nil {
		return err
	}

	l.emit(ctx, entity.TraceEvent{Kind: entity.TraceEventAcquire})
	l.markStarted()
	l.state.timeout = 0
	l.state.hasTimeout = false

	return nil
}

// SetReferenceCounted forwards to the platform handle.
func (l *TracingWakeLock) SetReferenceCounted(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handle.SetReferenceCounted(enabled)
}

// Release traces the hold duration and releases the platform lock.
// The call is forwarded even if the lock was never acquired; whatever the
// platform returns is passed back untouched.
func (l *TracingWakeLock) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	event := entity.TraceEvent{
		Kind:       entity.TraceEventRelease,
		Timeout:    l.state.timeout,
		HasTimeout: l.state.hasTimeout,
	}
	if l.state.hasStart {
		event.HasStart = true
		event.Elapsed = l.manager.clock.Now().Sub(l.state.start)
	}
	l.emit(ctx, event)

	if err := l.handle.Release(); err != nil {
		return err
	}

	l.state.start = time.Time{}
	l.state.hasStart = false

	return nil
}

func (l *TracingWakeLock) markStarted() {
	if l.state.hasStart {
		return
	}
	l.state.start = l.manager.clock.Now()
	l.state.hasStart = true
}

// emit writes the trace line and hands the event to the sink, if any.
func (l *TracingWakeLock) emit(ctx context.Context, event entity.TraceEvent) {
	event.Tag = l.tag
	event.LockID = l.id
	event.OccurredAt = l.manager.clock.Now()

	log := logging.FromContext(ctx)
	logTraceEvent(log, event)

	if l.manager.sink == nil {
		return
	}
	if err := l.manager.sink.Record(ctx, event); err != nil {
		log.Debug().Err(err).
			Str("tag", event.Tag).
			Uint64("id", uint64(event.LockID)).
			Msg("tracing wake lock: trace sink rejected event")
	}
}

func logTraceEvent(log *zerolog.Logger, event entity.TraceEvent) {
	e := log.Trace().
		Str("tag", event.Tag).
		Uint64("id", uint64(event.LockID))

	switch event.Kind {
	case entity.TraceEventCreate:
		e.Msg("tracing wake lock: created")
	case entity.TraceEventAcquire:
		if event.HasTimeout {
			e.Dur("timeout", event.Timeout).Msg("tracing wake lock: acquired")
			return
		}
		e.Msg("tracing wake lock: acquired with no timeout")
	case entity.TraceEventRelease:
		e = e.Str("timeout", event.TimeoutString())
		if event.HasStart {
			e.Dur("elapsed", event.Elapsed).Msg("tracing wake lock: releasing")
			return
		}
		e.Msg("tracing wake lock: releasing with no known start")
	default:
		e.Str("kind", string(event.Kind)).Msg("tracing wake lock: event")
	}
}
