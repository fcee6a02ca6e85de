//go:build windows

package wakelock

import "context"

func platformBackends() []backendFactory {
	return []backendFactory{
		{name: BackendWindows, open: func(ctx context.Context) (inhibitor, error) {
			return newPowerRequestInhibitor(ctx)
		}},
	}
}
