package wakelock

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/waketrace/internal/domain/entity"
)

func newFakeSysfs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, sysfsWakeLockPath, nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, sysfsWakeUnlockPath, nil, 0o644))
	return fs
}

func TestSysfsInhibitor_Unavailable(t *testing.T) {
	_, err := newSysfsInhibitor(afero.NewMemMapFs())
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrBackendUnavailable)
}

func TestSysfsInhibitor_WritesLockAndUnlock(t *testing.T) {
	fs := newFakeSysfs(t)
	backend, err := newSysfsInhibitor(fs)
	require.NoError(t, err)

	svc := newService(context.Background(), BackendSysfs, backend)
	lock, err := svc.NewWakeLock(entity.PartialWakeLock, "sync imap")
	require.NoError(t, err)

	require.NoError(t, lock.Acquire())
	name := lock.(*platformLock).req.Name

	locked, err := afero.ReadFile(fs, sysfsWakeLockPath)
	require.NoError(t, err)
	assert.Equal(t, name, string(locked))
	assert.NotContains(t, name, " ", "kernel wakelock names cannot contain spaces")
	assert.Contains(t, name, "sync_imap")

	require.NoError(t, lock.Release())
	unlocked, err := afero.ReadFile(fs, sysfsWakeUnlockPath)
	require.NoError(t, err)
	assert.Equal(t, name, string(unlocked))
}

func TestHandleName(t *testing.T) {
	assert.NotContains(t, handleName(1, ""), "..")
	assert.Contains(t, handleName(7, "a b/c"), ".a_b_c")
	assert.NotEqual(t, handleName(1, "x"), handleName(2, "x"))
}

func TestPortalAndLogindFlagMapping(t *testing.T) {
	assert.Equal(t, uint32(portalFlagSuspend), portalFlags(entity.PartialWakeLock))
	assert.Equal(t, uint32(portalFlagSuspend|portalFlagIdle), portalFlags(entity.ScreenBrightWakeLock))
}
