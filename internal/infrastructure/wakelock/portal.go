package wakelock

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/bnema/waketrace/internal/domain/entity"
	"github.com/bnema/waketrace/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// Inhibit flags of org.freedesktop.portal.Inhibit
	portalFlagSuspend = 4
	portalFlagIdle    = 8
)

// portalInhibitor takes holds through the XDG Desktop Portal. It works in
// sandboxes and under any Wayland compositor, but only while a desktop
// session is running.
type portalInhibitor struct {
	conn *dbus.Conn
	log  *zerolog.Logger

	// watchCtx bounds the Response watchers; cancelled on close.
	watchCtx context.Context
	cancel   context.CancelFunc

	mu sync.Mutex
	// completed marks requests the portal already ended with a Response
	// signal. Those request objects no longer exist and must not be closed.
	completed map[dbus.ObjectPath]bool
}

func newPortalInhibitor(ctx context.Context) (*portalInhibitor, error) {
	log := logging.FromContext(ctx)

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: session bus: %w", entity.ErrBackendUnavailable, err)
	}

	obj := conn.Object(portalDest, portalPath)
	var version uint32
	err = obj.Call("org.freedesktop.DBus.Properties.Get", 0,
		portalInterface, "version").Store(&version)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: portal inhibit interface: %w", entity.ErrBackendUnavailable, err)
	}
	log.Debug().Uint32("version", version).Msg("portal inhibitor: available")

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	return &portalInhibitor{
		conn:      conn,
		log:       log,
		watchCtx:  watchCtx,
		cancel:    cancel,
		completed: make(map[dbus.ObjectPath]bool),
	}, nil
}

func portalFlags(flags entity.WakeLockFlags) uint32 {
	if flags.KeepsScreenOn() {
		return portalFlagIdle | portalFlagSuspend
	}
	return portalFlagSuspend
}

func (p *portalInhibitor) inhibit(req inhibitRequest) (func() error, error) {
	// Inhibit(window: s, flags: u, options: a{sv}) -> handle: o
	obj := p.conn.Object(portalDest, portalPath)

	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(reason(req)),
	}

	var handlePath dbus.ObjectPath
	err := obj.Call(portalInterface+".Inhibit", 0,
		"", // window identifier (empty for non-sandboxed)
		portalFlags(req.Flags),
		options,
	).Store(&handlePath)
	if err != nil {
		return nil, fmt.Errorf("portal inhibit: %w", err)
	}

	// Some portals complete the request immediately with a Response signal
	go p.watchForResponse(handlePath)

	p.log.Debug().
		Str("handle", string(handlePath)).
		Str("reason", reason(req)).
		Msg("portal inhibitor: activated")

	return func() error { return p.closeRequest(handlePath) }, nil
}

// watchForResponse monitors for the Response signal on the request object.
// Some portals (particularly GNOME) complete the Inhibit request immediately,
// which removes the Request object.
func (p *portalInhibitor) watchForResponse(handlePath dbus.ObjectPath) {
	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, handlePath,
	)

	if err := p.conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		p.log.Debug().Err(err).Msg("portal inhibitor: failed to add signal match")
		return
	}

	signals := make(chan *dbus.Signal, 1)
	p.conn.Signal(signals)

	defer func() {
		p.conn.RemoveSignal(signals)
		_ = p.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return
			}
			if sig.Path == handlePath && sig.Name == requestIface+".Response" {
				p.mu.Lock()
				p.completed[handlePath] = true
				p.mu.Unlock()
				p.log.Debug().
					Str("handle", string(handlePath)).
					Msg("portal inhibitor: request completed by portal")
				return
			}
		case <-p.watchCtx.Done():
			return
		}
	}
}

func (p *portalInhibitor) closeRequest(handlePath dbus.ObjectPath) error {
	p.mu.Lock()
	done := p.completed[handlePath]
	delete(p.completed, handlePath)
	p.mu.Unlock()

	if done {
		p.log.Debug().Str("handle", string(handlePath)).Msg("portal inhibitor: deactivated (completed by portal)")
		return nil
	}

	obj := p.conn.Object(portalDest, handlePath)
	if err := obj.Call(requestIface+".Close", 0).Err; err != nil {
		// The Response signal can beat the match rule; the request is done.
		if requestAlreadyGone(err) {
			p.log.Debug().Str("handle", string(handlePath)).Msg("portal inhibitor: deactivated (request already gone)")
			return nil
		}
		return fmt.Errorf("portal close request: %w", err)
	}

	p.log.Debug().Str("handle", string(handlePath)).Msg("portal inhibitor: deactivated")
	return nil
}

// requestAlreadyGone reports whether err says the request object no longer
// exists on the bus.
func requestAlreadyGone(err error) bool {
	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) {
		return isGoneErrorName(dbusErr.Name)
	}
	var dbusErrPtr *dbus.Error
	if errors.As(err, &dbusErrPtr) && dbusErrPtr != nil {
		return isGoneErrorName(dbusErrPtr.Name)
	}
	return false
}

func isGoneErrorName(name string) bool {
	switch name {
	case "org.freedesktop.DBus.Error.UnknownObject",
		"org.freedesktop.DBus.Error.UnknownMethod":
		return true
	}
	return false
}

func (p *portalInhibitor) close() error {
	p.cancel()
	return p.conn.Close()
}
