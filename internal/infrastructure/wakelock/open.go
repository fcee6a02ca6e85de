package wakelock

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/logging"
)

// Backend names accepted by Open.
const (
	BackendAuto       = "auto"
	BackendLogind     = "logind"
	BackendPortal     = "portal"
	BackendSysfs      = "sysfs"
	BackendCaffeinate = "caffeinate"
	BackendWindows    = "windows"
	BackendMemory     = "memory"
)

// backendFactory opens one backend. Factories are listed per platform in
// preference order.
type backendFactory struct {
	name string
	open func(ctx context.Context) (inhibitor, error)
}

// BackendStatus is the probe result for one backend.
type BackendStatus struct {
	Name      string
	Available bool
	Err       error
}

// Open returns a service for the named backend. With BackendAuto the first
// usable platform backend wins and the memory backend is the last resort.
func Open(ctx context.Context, name string) (*Service, error) {
	log := logging.FromContext(ctx)

	switch name {
	case "", BackendAuto:
		var errs []error
		for _, f := range platformBackends() {
			backend, err := f.open(ctx)
			if err != nil {
				log.Debug().Err(err).Str("backend", f.name).Msg("wake lock: backend unavailable")
				errs = append(errs, err)
				continue
			}
			log.Debug().Str("backend", f.name).Msg("wake lock: backend selected")
			return newService(ctx, f.name, backend), nil
		}
		log.Warn().Err(errors.Join(errs...)).Msg("wake lock: no platform backend, holds are not enforced")
		return NewMemoryService(ctx).Service, nil

	case BackendMemory:
		return NewMemoryService(ctx).Service, nil
	}

	for _, f := range platformBackends() {
		if f.name != name {
			continue
		}
		backend, err := f.open(ctx)
		if err != nil {
			return nil, err
		}
		return newService(ctx, f.name, backend), nil
	}

	return nil, fmt.Errorf("%w: %q is not supported on this platform", entity.ErrBackendUnavailable, name)
}

// Probe tries every platform backend concurrently and reports which ones
// can be used. Opened backends are closed again immediately.
func Probe(ctx context.Context) []BackendStatus {
	factories := platformBackends()
	statuses := make([]BackendStatus, len(factories), len(factories)+1)

	var g errgroup.Group
	for i, f := range factories {
		g.Go(func() error {
			backend, err := f.open(ctx)
			if err == nil {
				_ = backend.close()
			}
			statuses[i] = BackendStatus{Name: f.name, Available: err == nil, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return append(statuses, BackendStatus{Name: BackendMemory, Available: true})
}
