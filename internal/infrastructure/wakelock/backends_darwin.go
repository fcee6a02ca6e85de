//go:build darwin

package wakelock

import "context"

func platformBackends() []backendFactory {
	return []backendFactory{
		{name: BackendCaffeinate, open: func(ctx context.Context) (inhibitor, error) {
			return newCaffeinateInhibitor(ctx)
		}},
	}
}
