package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/bnema/waketrace/internal/application/port"
	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/logging"
)

type traceEventRepo struct {
	provider port.DatabaseProvider
	pid      int
}

// NewTraceEventRepository stores trace events in the journal. The database
// is only opened when the first event is recorded or read.
func NewTraceEventRepository(provider port.DatabaseProvider) port.TraceEventRepository {
	return &traceEventRepo{provider: provider, pid: os.Getpid()}
}

func (r *traceEventRepo) Record(ctx context.Context, event entity.TraceEvent) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	var timeoutMs, elapsedMs sql.NullInt64
	if event.HasTimeout {
		timeoutMs = sql.NullInt64{Int64: event.Timeout.Milliseconds(), Valid: true}
	}
	if event.HasStart {
		elapsedMs = sql.NullInt64{Int64: event.Elapsed.Milliseconds(), Valid: true}
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO trace_events (kind, tag, lock_id, pid, timeout_ms, elapsed_ms, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(event.Kind), event.Tag, int64(event.LockID), r.pid, timeoutMs, elapsedMs,
		event.OccurredAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert trace event: %w", err)
	}
	return nil
}

func (r *traceEventRepo) GetRecent(ctx context.Context, limit int) ([]entity.TraceEvent, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, kind, tag, lock_id, pid, timeout_ms, elapsed_ms, occurred_at
		 FROM trace_events
		 ORDER BY occurred_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query trace events: %w", err)
	}
	defer rows.Close()

	var events []entity.TraceEvent
	for rows.Next() {
		var (
			e                    entity.TraceEvent
			kind                 string
			lockID               int64
			timeoutMs, elapsedMs sql.NullInt64
			occurredAt           int64
		)
		if err := rows.Scan(&e.ID, &kind, &e.Tag, &lockID, &e.PID, &timeoutMs, &elapsedMs, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan trace event: %w", err)
		}
		e.Kind = entity.TraceEventKind(kind)
		e.LockID = entity.WakeLockID(lockID)
		e.OccurredAt = time.UnixMilli(occurredAt)
		if timeoutMs.Valid {
			e.HasTimeout = true
			e.Timeout = time.Duration(timeoutMs.Int64) * time.Millisecond
		}
		if elapsedMs.Valid {
			e.HasStart = true
			e.Elapsed = time.Duration(elapsedMs.Int64) * time.Millisecond
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *traceEventRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM trace_events WHERE occurred_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("delete trace events: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	logging.FromContext(ctx).Debug().Int64("deleted", n).Time("cutoff", cutoff).Msg("trace journal pruned")
	return n, nil
}
