//go:build linux

package wakelock

import (
	"context"

	"github.com/spf13/afero"
)

func platformBackends() []backendFactory {
	return []backendFactory{
		{name: BackendLogind, open: func(ctx context.Context) (inhibitor, error) {
			return newLogindInhibitor(ctx)
		}},
		{name: BackendPortal, open: func(ctx context.Context) (inhibitor, error) {
			return newPortalInhibitor(ctx)
		}},
		{name: BackendSysfs, open: func(_ context.Context) (inhibitor, error) {
			return newSysfsInhibitor(afero.NewOsFs())
		}},
	}
}
