//go:build linux

package wakelock

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"

	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/logging"
)

const (
	logindDest         = "org.freedesktop.login1"
	logindPath         = "/org/freedesktop/login1"
	logindManagerIface = "org.freedesktop.login1.Manager"

	inhibitorWho = "waketrace"
)

// logindInhibitor takes systemd-logind inhibitor locks. Each hold is a file
// descriptor; logind lifts the block as soon as the descriptor is closed.
type logindInhibitor struct {
	conn *dbus.Conn
}

func newLogindInhibitor(ctx context.Context) (*logindInhibitor, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("%w: system bus: %w", entity.ErrBackendUnavailable, err)
	}

	obj := conn.Object(logindDest, logindPath)
	blocked, err := obj.GetProperty(logindManagerIface + ".BlockInhibited")
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: logind: %w", entity.ErrBackendUnavailable, err)
	}

	logging.FromContext(ctx).Debug().
		Str("block_inhibited", fmt.Sprint(blocked.Value())).
		Msg("logind inhibitor: available")

	return &logindInhibitor{conn: conn}, nil
}

func logindWhat(flags entity.WakeLockFlags) string {
	if flags.KeepsScreenOn() {
		return "sleep:idle"
	}
	return "sleep"
}

func (l *logindInhibitor) inhibit(req inhibitRequest) (func() error, error) {
	// Inhibit(what: s, who: s, why: s, mode: s) -> fd: h
	obj := l.conn.Object(logindDest, logindPath)

	var fd dbus.UnixFD
	err := obj.Call(logindManagerIface+".Inhibit", 0,
		logindWhat(req.Flags),
		inhibitorWho,
		reason(req),
		"block",
	).Store(&fd)
	if err != nil {
		return nil, fmt.Errorf("logind inhibit: %w", err)
	}

	return func() error {
		if err := unix.Close(int(fd)); err != nil {
			return fmt.Errorf("close inhibitor fd: %w", err)
		}
		return nil
	}, nil
}

func (l *logindInhibitor) close() error {
	return l.conn.Close()
}
