package port

import (
	"context"
	"time"

	"github.com/bnema/waketrace/internal/domain/entity"
)

// PowerService is the platform power-management service a wake lock is
// allocated from. Implementations wrap one OS mechanism each.
type PowerService interface {
	// Name identifies the backend ("logind", "portal", "memory", ...).
	Name() string

	// NewWakeLock allocates a platform handle. It does not acquire it.
	NewWakeLock(flags entity.WakeLockFlags, tag string) (PlatformWakeLock, error)

	// Close releases backend resources such as bus connections.
	Close() error
}

// PlatformWakeLock is a raw handle returned by a PowerService.
// Reference counting is enabled by default.
type PlatformWakeLock interface {
	Acquire() error
	AcquireTimeout(timeout time.Duration) error
	SetReferenceCounted(enabled bool)
	Release() error
	IsHeld() bool
}

// PowerManager hands out wake locks without exposing platform types.
type PowerManager interface {
	NewWakeLock(ctx context.Context, tag string) (WakeLock, error)
}

// WakeLock keeps the machine awake while held.
type WakeLock interface {
	// Acquire holds the lock with no upper bound. A lock acquired this way
	// keeps the machine awake until Release is called.
	Acquire(ctx context.Context) error

	// AcquireTimeout holds the lock for at most timeout.
	AcquireTimeout(ctx context.Context, timeout time.Duration) error

	SetReferenceCounted(enabled bool)

	Release(ctx context.Context) error
}
