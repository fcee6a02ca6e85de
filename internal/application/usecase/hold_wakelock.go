package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/logging"
	"github.com/bnema/waketrace/internal/power"
)

// HoldWakeLockUseCase keeps the system awake for the duration of a task.
type HoldWakeLockUseCase struct {
	manager *power.TracingPowerManager
}

// NewHoldWakeLockUseCase creates a new HoldWakeLockUseCase.
func NewHoldWakeLockUseCase(manager *power.TracingPowerManager) *HoldWakeLockUseCase {
	return &HoldWakeLockUseCase{manager: manager}
}

// HoldInput describes the lock to hold.
type HoldInput struct {
	Tag string
	// Timeout bounds the hold. Zero holds until the task returns or ctx is done.
	Timeout time.Duration
	// Flags defaults to a partial wake lock.
	Flags            entity.WakeLockFlags
	ReferenceCounted bool
}

// HoldTask runs while the lock is held. The context is cancelled when the
// caller's context is done or the timeout elapses.
type HoldTask func(ctx context.Context, lock *power.TracingWakeLock) error

// Execute creates a traced lock, acquires it and runs task. A nil task
// simply waits for the context or the timeout. Reaching the timeout is not
// an error.
func (uc *HoldWakeLockUseCase) Execute(ctx context.Context, input HoldInput, task HoldTask) error {
	log := logging.FromContext(ctx)

	flags := input.Flags
	if flags == 0 {
		flags = entity.PartialWakeLock
	}

	lock, err := uc.manager.NewWakeLockWithFlags(ctx, flags, input.Tag)
	if err != nil {
		return err
	}
	lock.SetReferenceCounted(input.ReferenceCounted)

	if task == nil {
		task = func(ctx context.Context, _ *power.TracingWakeLock) error {
			<-ctx.Done()
			return nil
		}
	}

	err = power.WithWakeLock(ctx, lock, input.Timeout, func(ctx context.Context) error {
		taskCtx := ctx
		if input.Timeout > 0 {
			var cancel context.CancelFunc
			taskCtx, cancel = context.WithTimeout(ctx, input.Timeout)
			defer cancel()
		}
		return task(taskCtx, lock)
	})

	if errors.Is(err, context.DeadlineExceeded) && input.Timeout > 0 {
		log.Debug().
			Uint64("lock_id", uint64(lock.ID())).
			Dur("timeout", input.Timeout).
			Msg("hold wake lock: timeout reached")
		return nil
	}
	return err
}
