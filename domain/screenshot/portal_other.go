//go:build !linux

package screenshot

import (
	"fmt"
	"log/slog"
)

func newPortal(logger *slog.Logger) (Capturer, error) {
	return nil, fmt.Errorf("portal: %w", ErrUnsupported)
}
