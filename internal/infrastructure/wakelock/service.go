// Package wakelock implements platform power services on top of the sleep
// inhibition mechanisms available to the process: systemd-logind, the XDG
// desktop portal, Linux kernel wakelocks, caffeinate on macOS and power
// requests on Windows. An in-memory service is provided for tests.
package wakelock

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bnema/waketrace/internal/application/port"
	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/logging"
)

// Compile-time interface check.
var _ port.PowerService = (*Service)(nil)

// inhibitor takes and drops the OS level hold for one handle.
type inhibitor interface {
	// inhibit blocks sleep as described by req and returns a function that
	// lifts the block again.
	inhibit(req inhibitRequest) (release func() error, err error)
	close() error
}

type inhibitRequest struct {
	Flags entity.WakeLockFlags
	Tag   string
	// Name is unique per handle within the process.
	Name string
}

// Service hands out platform wake locks that share one backend.
type Service struct {
	name    string
	backend inhibitor
	log     *zerolog.Logger
	handles atomic.Uint64
}

func newService(ctx context.Context, name string, backend inhibitor) *Service {
	ctx = logging.WithBackend(ctx, name)
	return &Service{
		name:    name,
		backend: backend,
		log:     logging.FromContext(ctx),
	}
}

// Name returns the backend name.
func (s *Service) Name() string {
	return s.name
}

// NewWakeLock validates flags and allocates a handle. Nothing is held until
// the handle is acquired.
func (s *Service) NewWakeLock(flags entity.WakeLockFlags, tag string) (port.PlatformWakeLock, error) {
	if err := flags.Validate(); err != nil {
		return nil, err
	}

	n := s.handles.Add(1)
	return &platformLock{
		svc:        s,
		refCounted: true,
		req: inhibitRequest{
			Flags: flags,
			Tag:   tag,
			Name:  handleName(n, tag),
		},
	}, nil
}

// Close releases backend resources. Handles still held keep whatever the
// backend does on close (bus connections dropping end their inhibitors).
func (s *Service) Close() error {
	return s.backend.close()
}

// handleName builds a whitespace free identifier, usable as a kernel
// wakelock name.
func handleName(n uint64, tag string) string {
	name := fmt.Sprintf("waketrace.%d.%d", os.Getpid(), n)
	if tag == "" {
		return name
	}
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_', r == ':':
			return r
		default:
			return '_'
		}
	}, tag)
	return name + "." + clean
}

func reason(req inhibitRequest) string {
	if req.Tag == "" {
		return "keeping the system awake"
	}
	return req.Tag
}
