package port

import (
	"context"
	"time"

	"github.com/bnema/waketrace/internal/domain/entity"
)

// TraceSink receives trace events next to the log output.
type TraceSink interface {
	Record(ctx context.Context, event entity.TraceEvent) error
}

// TraceEventRepository persists trace events for later inspection.
type TraceEventRepository interface {
	TraceSink

	// GetRecent returns up to limit events, newest first.
	GetRecent(ctx context.Context, limit int) ([]entity.TraceEvent, error)

	// DeleteOlderThan removes events recorded before cutoff and returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
