//go:build linux

package app

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.x.clicky"
	busPath   = dbus.ObjectPath("/org/x/clicky")
	busIface  = "org.x.clicky"
	busMethod = busIface + ".Activate"
)

// activator is exported on the session bus by the primary instance.
type activator struct {
	fn func()
}

// Activate is called by a second launch; it runs on the D-Bus goroutine.
func (a activator) Activate() *dbus.Error {
	if a.fn != nil {
		a.fn()
	}
	return nil
}

// acquireInstance claims the application's bus name. The primary instance
// exports Activate and keeps the connection until release. Otherwise the
// running instance is asked to present its window and primary is false.
// When the session bus is unreachable the process runs as primary.
func acquireInstance(onActivate func(), logger *slog.Logger) (primary bool, release func(), err error) {
	noop := func() {}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return true, noop, fmt.Errorf("session bus: %w", err)
	}
	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return true, noop, fmt.Errorf("request name %s: %w", busName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		defer conn.Close()
		if call := conn.Object(busName, busPath).Call(busMethod, 0); call.Err != nil {
			return true, noop, fmt.Errorf("activate running instance: %w", call.Err)
		}
		return false, noop, nil
	}
	if err := conn.Export(activator{fn: onActivate}, busPath, busIface); err != nil {
		conn.Close()
		return true, noop, fmt.Errorf("export %s: %w", busPath, err)
	}
	if logger != nil {
		logger.Debug("single instance acquired", "name", busName)
	}
	return true, func() {
		_, _ = conn.ReleaseName(busName)
		conn.Close()
	}, nil
}
