//go:build windows

package wakelock

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/bnema/waketrace/internal/domain/entity"
)

const (
	powerRequestContextVersion      = 0
	powerRequestContextSimpleString = 0x1

	powerRequestDisplayRequired = 0
	powerRequestSystemRequired  = 1
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procPowerCreateRequest = kernel32.NewProc("PowerCreateRequest")
	procPowerSetRequest    = kernel32.NewProc("PowerSetRequest")
	procPowerClearRequest  = kernel32.NewProc("PowerClearRequest")
)

// reasonContext mirrors REASON_CONTEXT with a simple reason string.
type reasonContext struct {
	Version      uint32
	Flags        uint32
	SimpleReason *uint16
}

// powerRequestInhibitor uses power request objects. Unlike
// SetThreadExecutionState they are not bound to the calling OS thread,
// which goroutines do not stay on.
type powerRequestInhibitor struct{}

func newPowerRequestInhibitor(_ context.Context) (*powerRequestInhibitor, error) {
	if err := procPowerCreateRequest.Find(); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrBackendUnavailable, err)
	}
	return &powerRequestInhibitor{}, nil
}

func (p *powerRequestInhibitor) inhibit(req inhibitRequest) (func() error, error) {
	why, err := windows.UTF16PtrFromString(reason(req))
	if err != nil {
		return nil, err
	}
	rc := reasonContext{
		Version:      powerRequestContextVersion,
		Flags:        powerRequestContextSimpleString,
		SimpleReason: why,
	}

	r, _, callErr := procPowerCreateRequest.Call(uintptr(unsafe.Pointer(&rc)))
	handle := windows.Handle(r)
	if handle == windows.InvalidHandle || handle == 0 {
		return nil, fmt.Errorf("PowerCreateRequest: %w", callErr)
	}

	kinds := []uintptr{powerRequestSystemRequired}
	if req.Flags.KeepsScreenOn() {
		kinds = append(kinds, powerRequestDisplayRequired)
	}

	for i, kind := range kinds {
		if ok, _, setErr := procPowerSetRequest.Call(uintptr(handle), kind); ok == 0 {
			for _, done := range kinds[:i] {
				_, _, _ = procPowerClearRequest.Call(uintptr(handle), done)
			}
			_ = windows.CloseHandle(handle)
			return nil, fmt.Errorf("PowerSetRequest: %w", setErr)
		}
	}

	return func() error {
		for _, kind := range kinds {
			_, _, _ = procPowerClearRequest.Call(uintptr(handle), kind)
		}
		return windows.CloseHandle(handle)
	}, nil
}

func (p *powerRequestInhibitor) close() error {
	return nil
}
