package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidWakeLockFlags is returned when the level bits of a flag set are unknown.
	ErrInvalidWakeLockFlags = errors.New("invalid wake lock flags")
	// ErrUnderLocked is returned when a reference-counted wake lock is released
	// more often than it was acquired.
	ErrUnderLocked = errors.New("wake lock under-locked")
	// ErrBackendUnavailable means the platform mechanism cannot be reached.
	ErrBackendUnavailable = errors.New("wake lock backend unavailable")
)

// WakeLockFlags selects what a wake lock keeps on. The low 16 bits hold the
// level, the high bits hold modifiers.
type WakeLockFlags uint32

const (
	PartialWakeLock            WakeLockFlags = 0x00000001
	ScreenDimWakeLock          WakeLockFlags = 0x00000006
	ScreenBrightWakeLock       WakeLockFlags = 0x0000000a
	FullWakeLock               WakeLockFlags = 0x0000001a
	ProximityScreenOffWakeLock WakeLockFlags = 0x00000020

	AcquireCausesWakeup WakeLockFlags = 0x10000000
	OnAfterRelease      WakeLockFlags = 0x20000000

	wakeLockLevelMask WakeLockFlags = 0x0000ffff
)

// Level returns the level bits without modifiers.
func (f WakeLockFlags) Level() WakeLockFlags {
	return f & wakeLockLevelMask
}

// Validate checks the level is one of the known levels.
func (f WakeLockFlags) Validate() error {
	switch f.Level() {
	case PartialWakeLock, ScreenDimWakeLock, ScreenBrightWakeLock, FullWakeLock, ProximityScreenOffWakeLock:
		return nil
	default:
		return fmt.Errorf("%w: 0x%x", ErrInvalidWakeLockFlags, uint32(f))
	}
}

// KeepsScreenOn reports whether the level also holds the display.
func (f WakeLockFlags) KeepsScreenOn() bool {
	switch f.Level() {
	case ScreenDimWakeLock, ScreenBrightWakeLock, FullWakeLock:
		return true
	default:
		return false
	}
}

func (f WakeLockFlags) String() string {
	var name string
	switch f.Level() {
	case PartialWakeLock:
		name = "partial"
	case ScreenDimWakeLock:
		name = "screen_dim"
	case ScreenBrightWakeLock:
		name = "screen_bright"
	case FullWakeLock:
		name = "full"
	case ProximityScreenOffWakeLock:
		name = "proximity_screen_off"
	default:
		return fmt.Sprintf("unknown(0x%x)", uint32(f))
	}

	parts := []string{name}
	if f&AcquireCausesWakeup != 0 {
		parts = append(parts, "acquire_causes_wakeup")
	}
	if f&OnAfterRelease != 0 {
		parts = append(parts, "on_after_release")
	}
	return strings.Join(parts, "|")
}

// WakeLockID identifies a traced wake lock within one power manager.
type WakeLockID uint64
