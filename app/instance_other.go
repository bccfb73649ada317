//go:build !linux

package app

import "log/slog"

// acquireInstance only provides in-process single-window semantics here.
func acquireInstance(onActivate func(), logger *slog.Logger) (bool, func(), error) {
	return true, func() {}, nil
}
