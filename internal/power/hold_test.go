package power_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/infrastructure/wakelock"
	"github.com/bnema/waketrace/internal/power"
)

func TestWithWakeLock_HoldsDuringFn(t *testing.T) {
	ctx := testContext()
	svc := wakelock.NewMemoryService(ctx)
	pm := power.NewTracingPowerManager(ctx, svc)

	lock, err := pm.NewWakeLock(ctx, "send:smtp")
	require.NoError(t, err)

	err = power.WithWakeLock(ctx, lock, 0, func(context.Context) error {
		assert.Len(t, svc.ActiveHolds(), 1)
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, svc.ActiveHolds())
}

func TestWithWakeLock_ReturnsFnError(t *testing.T) {
	ctx := testContext()
	svc := wakelock.NewMemoryService(ctx)
	pm := power.NewTracingPowerManager(ctx, svc)

	lock, err := pm.NewWakeLock(ctx, "fetch")
	require.NoError(t, err)

	boom := errors.New("connection reset")
	err = power.WithWakeLock(ctx, lock, time.Minute, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, svc.ActiveHolds())
}

func TestWithWakeLock_ExpiredTimeoutIsNotAnError(t *testing.T) {
	ctx := testContext()
	svc := wakelock.NewMemoryService(ctx)
	pm := power.NewTracingPowerManager(ctx, svc)

	lock, err := pm.NewWakeLock(ctx, "slow")
	require.NoError(t, err)

	err = power.WithWakeLock(ctx, lock, 10*time.Millisecond, func(context.Context) error {
		assert.Eventually(t, func() bool { return len(svc.ActiveHolds()) == 0 }, time.Second, 5*time.Millisecond)
		return nil
	})
	require.NoError(t, err)
}

func TestWithWakeLock_ReportsDoubleReleaseOfBoundedHold(t *testing.T) {
	ctx := testContext()
	svc := wakelock.NewMemoryService(ctx)
	pm := power.NewTracingPowerManager(ctx, svc)

	lock, err := pm.NewWakeLock(ctx, "fetch")
	require.NoError(t, err)

	err = power.WithWakeLock(ctx, lock, time.Minute, func(ctx context.Context) error {
		return lock.Release(ctx)
	})
	assert.ErrorIs(t, err, entity.ErrUnderLocked)
	assert.Empty(t, svc.ActiveHolds())
}

func TestWithWakeLock_AcquireFailure(t *testing.T) {
	ctx := testContext()
	svc := wakelock.NewMemoryService(ctx)
	pm := power.NewTracingPowerManager(ctx, svc)

	lock, err := pm.NewWakeLockWithFlags(ctx, entity.PartialWakeLock, "nope")
	require.NoError(t, err)

	boom := errors.New("inhibit denied")
	svc.FailNextInhibit(boom)

	called := false
	err = power.WithWakeLock(ctx, lock, 0, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}
