package wakelock

import (
	"fmt"
	"sync"
	"time"

	"github.com/bnema/waketrace/internal/domain/entity"
)

// platformLock follows the usual OS wake lock contract. In reference
// counted mode (the default) every acquire must be matched by a release and
// the backend hold is taken on the first acquire and dropped on the last
// release; releasing below zero reports ErrUnderLocked. Otherwise acquire is
// idempotent and a single release drops the hold. A bounded acquire
// schedules one automatic release.
type platformLock struct {
	svc *Service
	req inhibitRequest

	mu         sync.Mutex
	refCounted bool
	// internal counts acquires not yet released by anyone; external counts
	// acquires not yet released by the caller.
	internal int
	external int
	held     bool
	drop     func() error
	timers   map[uint64]*time.Timer
	timerSeq uint64
	// generation invalidates timers that fired after being cancelled.
	generation uint64
}

func (l *platformLock) Acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquireLocked()
}

func (l *platformLock) AcquireTimeout(timeout time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.acquireLocked(); err != nil {
		return err
	}

	if l.timers == nil {
		l.timers = make(map[uint64]*time.Timer)
	}
	l.timerSeq++
	gen, seq := l.generation, l.timerSeq
	l.timers[seq] = time.AfterFunc(timeout, func() {
		l.expire(gen, seq)
	})
	return nil
}

func (l *platformLock) SetReferenceCounted(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refCounted = enabled
}

func (l *platformLock) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.releaseLocked(false)
}

// pendingTimers reports how many timed releases are still scheduled.
func (l *platformLock) pendingTimers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

func (l *platformLock) IsHeld() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

func (l *platformLock) acquireLocked() error {
	l.internal++
	l.external++
	if l.refCounted && l.internal > 1 {
		return nil
	}
	l.cancelTimersLocked()
	if l.held {
		return nil
	}

	drop, err := l.svc.backend.inhibit(l.req)
	if err != nil {
		l.internal--
		l.external--
		return fmt.Errorf("%s: acquire %s: %w", l.svc.name, l.req.Name, err)
	}

	l.drop = drop
	l.held = true
	l.svc.log.Debug().
		Str("handle", l.req.Name).
		Str("flags", l.req.Flags.String()).
		Msg("wake lock: hold taken")
	return nil
}

// releaseLocked gives back one acquire. A timed release leaves the
// caller's count alone.
func (l *platformLock) releaseLocked(timed bool) error {
	if l.internal > 0 {
		l.internal--
	}
	if !timed {
		l.external--
	}
	if l.refCounted && l.external < 0 {
		l.external = 0
		return fmt.Errorf("%w: %s", entity.ErrUnderLocked, l.req.Name)
	}
	if !l.refCounted {
		l.internal = 0
		if l.external < 0 {
			l.external = 0
		}
	} else if l.internal > 0 {
		return nil
	}

	l.cancelTimersLocked()

	if !l.held {
		return nil
	}

	drop := l.drop
	l.drop = nil
	l.held = false

	if err := drop(); err != nil {
		return fmt.Errorf("%s: release %s: %w", l.svc.name, l.req.Name, err)
	}

	l.svc.log.Debug().Str("handle", l.req.Name).Msg("wake lock: hold dropped")
	return nil
}

func (l *platformLock) expire(gen, seq uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.timers, seq)
	if gen != l.generation {
		return
	}

	l.svc.log.Debug().Str("handle", l.req.Name).Msg("wake lock: timeout expired")
	if err := l.releaseLocked(true); err != nil {
		l.svc.log.Warn().Err(err).Str("handle", l.req.Name).Msg("wake lock: timed release failed")
	}
}

func (l *platformLock) cancelTimersLocked() {
	for _, t := range l.timers {
		t.Stop()
	}
	l.timers = nil
	l.generation++
}
