package navigation

import (
	"fmt"
	"log/slog"
)

// Navigator is the page state machine of the main window. It starts on
// PageMain. All calls happen on the UI loop, so there is no locking.
type Navigator struct {
	current   Page
	logger    *slog.Logger
	listeners []Listener
}

func NewNavigator(logger *slog.Logger) *Navigator {
	return &Navigator{current: PageMain, logger: logger}
}

func (n *Navigator) Current() Page { return n.current }

func (n *Navigator) AddListener(l Listener) {
	if l != nil {
		n.listeners = append(n.listeners, l)
	}
}

// NavigateTo makes p current and returns the previous page. Navigating to the
// current page is accepted but does not notify listeners.
func (n *Navigator) NavigateTo(p Page) (Page, error) {
	prev := n.current
	if !Known(p) {
		if n.logger != nil {
			n.logger.Warn("navigation rejected", "page", string(p), "current", prev.String())
		}
		return prev, fmt.Errorf("%w: %q", ErrUnknownPage, string(p))
	}
	if prev == p {
		return prev, nil
	}
	n.current = p
	for _, l := range n.listeners {
		l(prev, p)
	}
	return prev, nil
}

// LogTransitions returns a listener that records every page change.
func LogTransitions(logger *slog.Logger) Listener {
	return func(prev, next Page) {
		if logger != nil {
			logger.Info("page transition", "from", prev.String(), "to", next.String())
		}
	}
}

var _ Contract = (*Navigator)(nil)
