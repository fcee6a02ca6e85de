package power_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/waketrace/internal/application/port"
	portmocks "github.com/bnema/waketrace/internal/application/port/mocks"
	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/infrastructure/clock"
	"github.com/bnema/waketrace/internal/infrastructure/wakelock"
	"github.com/bnema/waketrace/internal/logging"
	"github.com/bnema/waketrace/internal/power"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// captureContext returns a context whose logger writes JSON trace lines to buf.
func captureContext(buf *bytes.Buffer) context.Context {
	logger := logging.New(logging.Config{Level: zerolog.TraceLevel, Format: "json", Output: buf})
	return logging.WithContext(context.Background(), logger)
}

func traceLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

// recordingSink collects trace events in memory.
type recordingSink struct {
	mu     sync.Mutex
	events []entity.TraceEvent
}

func (s *recordingSink) Record(_ context.Context, event entity.TraceEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) last() entity.TraceEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[len(s.events)-1]
}

func TestNewWakeLock_IDsStrictlyIncreasing(t *testing.T) {
	ctx := testContext()
	pm := power.NewTracingPowerManager(ctx, wakelock.NewMemoryService(ctx))

	const n = 50
	prev := -1
	for i := 0; i < n; i++ {
		lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "sync:imap")
		require.NoError(t, err)
		assert.Equal(t, entity.WakeLockID(i), lock.ID())
		assert.Greater(t, int(lock.ID()), prev)
		prev = int(lock.ID())
	}
}

func TestNewWakeLock_IDsUniqueUnderConcurrency(t *testing.T) {
	ctx := testContext()
	pm := power.NewTracingPowerManager(ctx, wakelock.NewMemoryService(ctx))

	const n = 200
	ids := make(chan entity.WakeLockID, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "")
			if err != nil {
				return err
			}
			ids <- lock.ID()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(ids)

	seen := make(map[entity.WakeLockID]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestNewWakeLock_DefaultsToPartial(t *testing.T) {
	ctx := testContext()
	svc := portmocks.NewMockPowerService(t)
	handle := portmocks.NewMockPlatformWakeLock(t)

	svc.EXPECT().Name().Return("mock")
	svc.EXPECT().NewWakeLock(entity.PartialWakeLock, "sync:imap").Return(handle, nil).Once()

	pm := power.NewTracingPowerManager(ctx, svc)
	lock, err := pm.NewWakeLock(ctx, "sync:imap")
	require.NoError(t, err)
	require.NotNil(t, lock)
}

func TestNewWakeLock_PlatformErrorPassesThrough(t *testing.T) {
	ctx := testContext()
	pm := power.NewTracingPowerManager(ctx, wakelock.NewMemoryService(ctx))

	lock, err := pm.NewWakeLockWithFlags(ctx, entity.WakeLockFlags(0x3), "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidWakeLockFlags)
	assert.Nil(t, lock)

	// A failed allocation does not consume an id.
	next, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "good")
	require.NoError(t, err)
	assert.Equal(t, entity.WakeLockID(0), next.ID())

	wl, err := pm.NewWakeLock(ctx, "ok")
	require.NoError(t, err)
	assert.NotNil(t, wl)
}

func TestExample_SyncIMAP(t *testing.T) {
	var buf bytes.Buffer
	ctx := captureContext(&buf)
	clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := &recordingSink{}
	svc := wakelock.NewMemoryService(ctx)
	pm := power.NewTracingPowerManager(ctx, svc, power.WithClock(clk), power.WithTraceSink(sink))

	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "sync:imap")
	require.NoError(t, err)
	assert.Equal(t, entity.WakeLockID(0), lock.ID())
	assert.Equal(t, "sync:imap", lock.Tag())
	assert.Equal(t, entity.PartialWakeLock, lock.Flags())

	require.NoError(t, lock.AcquireTimeout(ctx, 30*time.Second))
	assert.True(t, lock.IsHeld())

	clk.Advance(1200 * time.Millisecond)
	require.NoError(t, lock.Release(ctx))
	assert.False(t, lock.IsHeld())

	release := sink.last()
	assert.Equal(t, entity.TraceEventRelease, release.Kind)
	assert.True(t, release.HasStart)
	assert.Equal(t, 1200*time.Millisecond, release.Elapsed)
	assert.True(t, release.HasTimeout)
	assert.Equal(t, 30*time.Second, release.Timeout)

	var (
		messages []string
		last     map[string]any
	)
	for _, line := range traceLines(t, &buf) {
		if line["level"] != "trace" {
			continue
		}
		messages = append(messages, line["message"].(string))
		last = line
	}
	assert.Equal(t, []string{
		"tracing power manager: created",
		"tracing wake lock: created",
		"tracing wake lock: acquired",
		"tracing wake lock: releasing",
	}, messages)

	require.NotNil(t, last)
	assert.Equal(t, "sync:imap", last["tag"])
	assert.EqualValues(t, 0, last["id"])
	assert.EqualValues(t, 1200, last["elapsed"])
	assert.Equal(t, "30s", last["timeout"])
}

func TestRelease_AfterTimeoutExpiryClearsStart(t *testing.T) {
	ctx := testContext()
	clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := &recordingSink{}
	svc := wakelock.NewMemoryService(ctx)
	pm := power.NewTracingPowerManager(ctx, svc, power.WithClock(clk), power.WithTraceSink(sink))

	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "sync:imap")
	require.NoError(t, err)

	require.NoError(t, lock.AcquireTimeout(ctx, 10*time.Millisecond))
	assert.Eventually(t, func() bool { return !lock.IsHeld() }, time.Second, 5*time.Millisecond)

	// The platform dropped the hold, but the caller's release still succeeds.
	require.NoError(t, lock.Release(ctx))

	clk.Advance(time.Hour)
	require.NoError(t, lock.Acquire(ctx))
	clk.Advance(time.Second)
	require.NoError(t, lock.Release(ctx))

	release := sink.last()
	assert.Equal(t, entity.TraceEventRelease, release.Kind)
	assert.True(t, release.HasStart)
	assert.Equal(t, time.Second, release.Elapsed)
	assert.False(t, release.HasTimeout)
	assert.Empty(t, svc.ActiveHolds())
}

func TestRelease_ReportsNoTimeoutAfterUnboundedAcquire(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	pm := power.NewTracingPowerManager(ctx, wakelock.NewMemoryService(ctx), power.WithTraceSink(sink))

	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "push")
	require.NoError(t, err)

	require.NoError(t, lock.AcquireTimeout(ctx, time.Minute))
	require.NoError(t, lock.Acquire(ctx))
	require.NoError(t, lock.Release(ctx))

	release := sink.last()
	assert.False(t, release.HasTimeout)
	assert.Equal(t, "none", release.TimeoutString())
	assert.True(t, release.HasStart)
	assert.GreaterOrEqual(t, release.Elapsed, time.Duration(0))

	require.NoError(t, lock.Release(ctx))
}

func TestAcquire_DoesNotResetStart(t *testing.T) {
	ctx := testContext()
	clk := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := &recordingSink{}
	pm := power.NewTracingPowerManager(ctx, wakelock.NewMemoryService(ctx),
		power.WithClock(clk), power.WithTraceSink(sink))

	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "sync:pop3")
	require.NoError(t, err)

	require.NoError(t, lock.Acquire(ctx))
	clk.Advance(5 * time.Second)
	require.NoError(t, lock.AcquireTimeout(ctx, 10*time.Second))
	clk.Advance(2 * time.Second)

	// Reference counted: the first release only reports, the hold remains.
	require.NoError(t, lock.Release(ctx))
	first := sink.last()
	assert.Equal(t, 7*time.Second, first.Elapsed, "elapsed spans from the first acquire")
	assert.Equal(t, 10*time.Second, first.Timeout)
	assert.True(t, lock.IsHeld())

	require.NoError(t, lock.Release(ctx))
	assert.False(t, lock.IsHeld())
}

func TestRelease_NeverAcquiredForwardsToPlatform(t *testing.T) {
	var buf bytes.Buffer
	ctx := captureContext(&buf)

	svc := portmocks.NewMockPowerService(t)
	handle := portmocks.NewMockPlatformWakeLock(t)
	svc.EXPECT().Name().Return("mock")
	svc.EXPECT().NewWakeLock(entity.PartialWakeLock, "idle").Return(handle, nil)
	handle.EXPECT().Release().Return(nil).Once()

	pm := power.NewTracingPowerManager(ctx, svc)
	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "idle")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		require.NoError(t, lock.Release(ctx))
	})

	lines := traceLines(t, &buf)
	last := lines[len(lines)-1]
	assert.Equal(t, "tracing wake lock: releasing with no known start", last["message"])
	assert.Equal(t, "none", last["timeout"])
	assert.NotContains(t, last, "elapsed")
}

func TestRelease_PlatformErrorReturnedUnchanged(t *testing.T) {
	ctx := testContext()
	pm := power.NewTracingPowerManager(ctx, wakelock.NewMemoryService(ctx))

	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "double")
	require.NoError(t, err)

	require.NoError(t, lock.Acquire(ctx))
	require.NoError(t, lock.Release(ctx))

	err = lock.Release(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrUnderLocked)
}

func TestAcquire_PlatformErrorLeavesStateUntouched(t *testing.T) {
	ctx := testContext()
	boom := errors.New("denied")

	svc := portmocks.NewMockPowerService(t)
	handle := portmocks.NewMockPlatformWakeLock(t)
	sink := portmocks.NewMockTraceSink(t)
	svc.EXPECT().Name().Return("mock")
	svc.EXPECT().NewWakeLock(entity.FullWakeLock, "screen").Return(handle, nil)
	sink.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e entity.TraceEvent) bool {
		return e.Kind == entity.TraceEventCreate
	})).Return(nil).Once()
	handle.EXPECT().AcquireTimeout(time.Second).Return(boom).Once()
	handle.EXPECT().Acquire().Return(boom).Once()

	pm := power.NewTracingPowerManager(ctx, svc, power.WithTraceSink(sink))
	lock, err := pm.NewWakeLockWithFlags(ctx, entity.FullWakeLock, "screen")
	require.NoError(t, err)

	assert.Same(t, boom, lock.AcquireTimeout(ctx, time.Second))
	assert.Same(t, boom, lock.Acquire(ctx))
}

func TestSetReferenceCounted_Forwards(t *testing.T) {
	ctx := testContext()
	svc := portmocks.NewMockPowerService(t)
	handle := portmocks.NewMockPlatformWakeLock(t)
	svc.EXPECT().Name().Return("mock")
	svc.EXPECT().NewWakeLock(entity.PartialWakeLock, "").Return(handle, nil)
	handle.EXPECT().SetReferenceCounted(false).Return().Once()

	pm := power.NewTracingPowerManager(ctx, svc)
	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "")
	require.NoError(t, err)

	lock.SetReferenceCounted(false)
}

func TestTraceSinkErrorIsIgnored(t *testing.T) {
	ctx := testContext()
	sink := portmocks.NewMockTraceSink(t)
	sink.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	pm := power.NewTracingPowerManager(ctx, wakelock.NewMemoryService(ctx), power.WithTraceSink(sink))
	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "sink")
	require.NoError(t, err)

	require.NoError(t, lock.Acquire(ctx))
	require.NoError(t, lock.Release(ctx))
}

func TestConcurrentAcquireRelease(t *testing.T) {
	ctx := testContext()
	svc := wakelock.NewMemoryService(ctx)
	pm := power.NewTracingPowerManager(ctx, svc)

	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "parallel")
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			if err := lock.AcquireTimeout(ctx, time.Minute); err != nil {
				return err
			}
			return lock.Release(ctx)
		})
	}
	require.NoError(t, g.Wait())
	assert.False(t, lock.IsHeld())
	assert.Empty(t, svc.ActiveHolds())
}

func TestGetOrCreate_ReturnsSingleton(t *testing.T) {
	power.ResetDefault()
	t.Cleanup(power.ResetDefault)

	ctx := testContext()
	var mu sync.Mutex
	built := 0
	factory := func(ctx context.Context) port.PowerService {
		mu.Lock()
		built++
		mu.Unlock()
		return wakelock.NewMemoryService(ctx)
	}

	const callers = 64
	managers := make([]*power.TracingPowerManager, callers)
	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			managers[i] = power.GetOrCreate(ctx, factory)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, built)
	for _, m := range managers {
		assert.Same(t, managers[0], m)
	}
	assert.Equal(t, wakelock.BackendMemory, managers[0].Service().Name())
}
