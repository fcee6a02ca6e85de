package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/waketrace/internal/infrastructure/clock"
)

func TestManual_Advance(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)

	assert.Equal(t, start, c.Now())
	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), c.Now())
}

func TestSystem_IsMonotonic(t *testing.T) {
	c := clock.System{}
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b.Sub(a), time.Duration(0))
}
