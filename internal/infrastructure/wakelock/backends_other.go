//go:build !linux && !darwin && !windows

package wakelock

import "context"

func platformBackends() []backendFactory {
	return []backendFactory{
		{name: BackendPortal, open: func(ctx context.Context) (inhibitor, error) {
			return newPortalInhibitor(ctx)
		}},
	}
}
