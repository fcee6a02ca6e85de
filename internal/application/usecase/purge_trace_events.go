package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/waketrace/internal/application/port"
	"github.com/bnema/waketrace/internal/logging"
)

// ErrInvalidPurgeWindow is returned for a non-positive purge age.
var ErrInvalidPurgeWindow = errors.New("purge window must be positive")

// PurgeTraceEventsUseCase drops old events from the trace journal.
type PurgeTraceEventsUseCase struct {
	repo  port.TraceEventRepository
	clock port.Clock
}

// NewPurgeTraceEventsUseCase creates a new PurgeTraceEventsUseCase.
func NewPurgeTraceEventsUseCase(repo port.TraceEventRepository, clock port.Clock) *PurgeTraceEventsUseCase {
	return &PurgeTraceEventsUseCase{repo: repo, clock: clock}
}

// Execute deletes events recorded more than olderThan ago and returns how
// many were removed.
func (uc *PurgeTraceEventsUseCase) Execute(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, ErrInvalidPurgeWindow
	}

	cutoff := uc.clock.Now().Add(-olderThan)
	deleted, err := uc.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge trace events: %w", err)
	}

	if deleted > 0 {
		logging.FromContext(ctx).Info().
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Msg("purged trace events")
	}
	return deleted, nil
}
