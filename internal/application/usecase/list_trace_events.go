package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/waketrace/internal/application/port"
	"github.com/bnema/waketrace/internal/domain/entity"
)

// DefaultTraceEventLimit is used when no positive limit is given.
const DefaultTraceEventLimit = 50

// ListTraceEventsUseCase reads the trace journal.
type ListTraceEventsUseCase struct {
	repo port.TraceEventRepository
}

// NewListTraceEventsUseCase creates a new ListTraceEventsUseCase.
func NewListTraceEventsUseCase(repo port.TraceEventRepository) *ListTraceEventsUseCase {
	return &ListTraceEventsUseCase{repo: repo}
}

// Execute returns up to limit events, newest first.
func (uc *ListTraceEventsUseCase) Execute(ctx context.Context, limit int) ([]entity.TraceEvent, error) {
	if limit <= 0 {
		limit = DefaultTraceEventLimit
	}

	events, err := uc.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list trace events: %w", err)
	}
	return events, nil
}
