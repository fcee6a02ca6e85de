package power

import (
	"context"
	"time"

	"github.com/bnema/waketrace/internal/application/port"
)

// WithWakeLock holds lock while fn runs. A positive timeout bounds the hold;
// zero or less holds it until fn returns. The lock is always released and
// the first error is returned.
func WithWakeLock(
	ctx context.Context,
	lock port.WakeLock,
	timeout time.Duration,
	fn func(context.Context) error,
) (err error) {
	if timeout > 0 {
		err = lock.AcquireTimeout(ctx, timeout)
	} else {
		err = lock.Acquire(ctx)
	}
	if err != nil {
		return err
	}

	defer func() {
		relErr := lock.Release(ctx)
		if err == nil {
			err = relErr
		}
	}()

	return fn(ctx)
}
