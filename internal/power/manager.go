// Package power traces wake lock usage on top of a platform power service.
//
// Every wake lock handed out by a TracingPowerManager forwards to the
// platform handle and emits trace-level log lines (and optional trace sink
// records) at creation, acquire and release, carrying the lock tag and id.
package power

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/waketrace/internal/application/port"
	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/infrastructure/clock"
	"github.com/bnema/waketrace/internal/logging"
)

// Compile-time interface check.
var _ port.PowerManager = (*TracingPowerManager)(nil)

// Option configures a TracingPowerManager.
type Option func(*TracingPowerManager)

// WithClock overrides the clock used to measure hold durations.
func WithClock(c port.Clock) Option {
	return func(m *TracingPowerManager) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithTraceSink forwards every trace event to sink in addition to the log.
func WithTraceSink(sink port.TraceSink) Option {
	return func(m *TracingPowerManager) {
		m.sink = sink
	}
}

// TracingPowerManager creates traced wake locks backed by a platform service.
// Identifiers come from a counter owned by the manager, so they are unique
// and increasing for all locks created through it.
type TracingPowerManager struct {
	service port.PowerService
	clock   port.Clock
	sink    port.TraceSink
	nextID  atomic.Uint64
}

// NewTracingPowerManager wraps service.
func NewTracingPowerManager(ctx context.Context, service port.PowerService, opts ...Option) *TracingPowerManager {
	m := &TracingPowerManager{
		service: service,
		clock:   clock.System{},
	}
	for _, opt := range opts {
		opt(m)
	}

	logging.FromContext(ctx).Trace().
		Str("backend", service.Name()).
		Msg("tracing power manager: created")

	return m
}

var (
	defaultMu      sync.Mutex
	defaultManager *TracingPowerManager
)

// GetOrCreate returns the process-wide manager, building it from factory on
// the first call. Later calls ignore factory and opts.
func GetOrCreate(
	ctx context.Context,
	factory func(context.Context) port.PowerService,
	opts ...Option,
) *TracingPowerManager {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultManager == nil {
		defaultManager = NewTracingPowerManager(ctx, factory(ctx), opts...)
	}
	return defaultManager
}

// Service returns the wrapped platform service.
func (m *TracingPowerManager) Service() port.PowerService {
	return m.service
}

// NewWakeLock creates a partial wake lock that keeps the CPU running.
func (m *TracingPowerManager) NewWakeLock(ctx context.Context, tag string) (port.WakeLock, error) {
	lock, err := m.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, tag)
	if err != nil {
		return nil, err
	}
	return lock, nil
}

// NewWakeLockWithFlags creates a traced wake lock with explicit flags.
// An empty tag is allowed. Errors from the platform are returned unchanged.
func (m *TracingPowerManager) NewWakeLockWithFlags(
	ctx context.Context,
	flags entity.WakeLockFlags,
	tag string,
) (*TracingWakeLock, error) {
	handle, err := m.service.NewWakeLock(flags, tag)
	if err != nil {
		return nil, err
	}

	lock := &TracingWakeLock{
		manager: m,
		handle:  handle,
		flags:   flags,
		tag:     tag,
		id:      entity.WakeLockID(m.nextID.Add(1) - 1),
	}
	lock.emit(ctx, entity.TraceEvent{Kind: entity.TraceEventCreate})

	return lock, nil
}
