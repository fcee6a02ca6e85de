package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/waketrace/internal/domain/entity"
)

func TestWakeLockFlags_Validate(t *testing.T) {
	valid := []entity.WakeLockFlags{
		entity.PartialWakeLock,
		entity.ScreenDimWakeLock,
		entity.ScreenBrightWakeLock,
		entity.FullWakeLock,
		entity.ProximityScreenOffWakeLock,
		entity.FullWakeLock | entity.AcquireCausesWakeup | entity.OnAfterRelease,
	}
	for _, f := range valid {
		assert.NoError(t, f.Validate(), f.String())
	}

	err := entity.WakeLockFlags(0).Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidWakeLockFlags)

	err = (entity.WakeLockFlags(0x3) | entity.AcquireCausesWakeup).Validate()
	assert.ErrorIs(t, err, entity.ErrInvalidWakeLockFlags)
}

func TestWakeLockFlags_KeepsScreenOn(t *testing.T) {
	assert.False(t, entity.PartialWakeLock.KeepsScreenOn())
	assert.True(t, entity.ScreenDimWakeLock.KeepsScreenOn())
	assert.True(t, (entity.FullWakeLock | entity.OnAfterRelease).KeepsScreenOn())
	assert.False(t, entity.ProximityScreenOffWakeLock.KeepsScreenOn())
}

func TestWakeLockFlags_String(t *testing.T) {
	assert.Equal(t, "partial", entity.PartialWakeLock.String())
	assert.Equal(t, "full|acquire_causes_wakeup", (entity.FullWakeLock | entity.AcquireCausesWakeup).String())
	assert.Equal(t, "unknown(0x3)", entity.WakeLockFlags(3).String())
}

func TestTraceEvent_TimeoutString(t *testing.T) {
	assert.Equal(t, "none", entity.TraceEvent{}.TimeoutString())
	assert.Equal(t, "30s", entity.TraceEvent{Timeout: 30_000_000_000, HasTimeout: true}.TimeoutString())
}
