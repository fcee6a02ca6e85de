// Package clock provides the time sources used to measure wake lock holds.
package clock

import (
	"sync"
	"time"

	"github.com/bnema/waketrace/internal/application/port"
)

var (
	_ port.Clock = System{}
	_ port.Clock = (*Manual)(nil)
)

// System reads the wall clock. Values carry a monotonic reading, so
// differences are immune to wall clock adjustments.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a clock that only moves when told to.
type Manual struct {
	mu      sync.Mutex
	current time.Time
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
