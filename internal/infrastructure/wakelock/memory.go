package wakelock

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/waketrace/internal/domain/entity"
)

// MemoryService is a Service whose holds only exist in process memory.
// It backs tests and the "memory" backend used when nothing else is usable.
type MemoryService struct {
	*Service
	backend *memoryInhibitor
}

// NewMemoryService creates an in-memory power service.
func NewMemoryService(ctx context.Context) *MemoryService {
	backend := &memoryInhibitor{active: make(map[string]entity.WakeLockFlags)}
	return &MemoryService{
		Service: newService(ctx, BackendMemory, backend),
		backend: backend,
	}
}

// ActiveHolds returns the names of handles currently holding, sorted.
func (m *MemoryService) ActiveHolds() []string {
	m.backend.mu.Lock()
	defer m.backend.mu.Unlock()

	names := make([]string, 0, len(m.backend.active))
	for name := range m.backend.active {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InhibitCount returns how many holds were taken since creation.
func (m *MemoryService) InhibitCount() int {
	m.backend.mu.Lock()
	defer m.backend.mu.Unlock()
	return m.backend.inhibits
}

// FailNextInhibit makes the next hold attempt fail with err.
func (m *MemoryService) FailNextInhibit(err error) {
	m.backend.mu.Lock()
	defer m.backend.mu.Unlock()
	m.backend.failNext = err
}

// Closed reports whether Close was called.
func (m *MemoryService) Closed() bool {
	m.backend.mu.Lock()
	defer m.backend.mu.Unlock()
	return m.backend.closed
}

type memoryInhibitor struct {
	mu       sync.Mutex
	active   map[string]entity.WakeLockFlags
	inhibits int
	failNext error
	closed   bool
}

func (m *memoryInhibitor) inhibit(req inhibitRequest) (func() error, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failNext; err != nil {
		m.failNext = nil
		return nil, err
	}

	m.active[req.Name] = req.Flags
	m.inhibits++

	return func() error {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.active, req.Name)
		return nil
	}, nil
}

func (m *memoryInhibitor) close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
