package screenshot

import (
	"log/slog"
	"os"

	"github.com/soocke/clicky-go/config"
)

// NewCapturer selects a capture backend by name (see config.Backend*).
// "auto" prefers the portal on pure Wayland sessions and direct grabs otherwise.
func NewCapturer(backend string, logger *slog.Logger) (Capturer, error) {
	switch backend {
	case config.BackendPortal:
		return newPortal(logger)
	case config.BackendGrab:
		return NewCaptureService(logger, Backends{}), nil
	}
	if waylandOnly() {
		c, err := newPortal(logger)
		if err == nil {
			return c, nil
		}
		if logger != nil {
			logger.Warn("portal unavailable, falling back to direct grab", "error", err)
		}
	}
	return NewCaptureService(logger, Backends{}), nil
}

func waylandOnly() bool {
	return os.Getenv("WAYLAND_DISPLAY") != "" && os.Getenv("DISPLAY") == ""
}
