package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/waketrace/internal/application/port/mocks"
	"github.com/bnema/waketrace/internal/application/usecase"
	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/infrastructure/clock"
)

func TestListTraceEventsUseCase_Execute_DefaultLimit(t *testing.T) {
	ctx := testContext()
	repo := portmocks.NewMockTraceEventRepository(t)

	events := []entity.TraceEvent{{ID: 2, Kind: entity.TraceEventRelease, Tag: "a"}}
	repo.EXPECT().GetRecent(ctx, usecase.DefaultTraceEventLimit).Return(events, nil)

	got, err := usecase.NewListTraceEventsUseCase(repo).Execute(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestListTraceEventsUseCase_Execute_WrapsError(t *testing.T) {
	ctx := testContext()
	repo := portmocks.NewMockTraceEventRepository(t)
	dbErr := errors.New("disk I/O error")

	repo.EXPECT().GetRecent(ctx, 5).Return(nil, dbErr)

	_, err := usecase.NewListTraceEventsUseCase(repo).Execute(ctx, 5)

	assert.ErrorIs(t, err, dbErr)
}

func TestPurgeTraceEventsUseCase_Execute(t *testing.T) {
	ctx := testContext()
	repo := portmocks.NewMockTraceEventRepository(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().DeleteOlderThan(ctx, now.Add(-48*time.Hour)).Return(int64(7), nil)

	deleted, err := usecase.NewPurgeTraceEventsUseCase(repo, clock.NewManual(now)).Execute(ctx, 48*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestPurgeTraceEventsUseCase_Execute_RejectsNonPositive(t *testing.T) {
	ctx := testContext()
	repo := portmocks.NewMockTraceEventRepository(t)

	_, err := usecase.NewPurgeTraceEventsUseCase(repo, clock.System{}).Execute(ctx, 0)

	assert.ErrorIs(t, err, usecase.ErrInvalidPurgeWindow)
}
