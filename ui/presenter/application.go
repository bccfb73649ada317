package presenter

import (
	"fmt"
	"log/slog"
)

// MainWindow is the built top-level window.
type MainWindow interface {
	Present()
}

// WindowFactory builds the main window on first activation.
type WindowFactory func() (MainWindow, error)

// ApplicationPresenter gives the process single-window semantics: the first
// activation builds the window, later ones present it again.
type ApplicationPresenter struct {
	factory  WindowFactory
	window   MainWindow
	requests chan struct{}
	logger   *slog.Logger
}

func NewApplicationPresenter(factory WindowFactory, logger *slog.Logger) *ApplicationPresenter {
	return &ApplicationPresenter{factory: factory, requests: make(chan struct{}, 8), logger: logger}
}

// Activate must run on the UI loop.
func (a *ApplicationPresenter) Activate() error {
	if a == nil || a.factory == nil {
		return nil
	}
	if a.window == nil {
		w, err := a.factory()
		if err != nil {
			return fmt.Errorf("build main window: %w", err)
		}
		a.window = w
		if a.logger != nil {
			a.logger.Info("main window created")
		}
	} else if a.logger != nil {
		a.logger.Debug("re-presenting existing window")
	}
	a.window.Present()
	return nil
}

// RequestActivate queues an activation from any goroutine. Requests beyond
// the buffer collapse into the ones already queued.
func (a *ApplicationPresenter) RequestActivate() {
	if a == nil {
		return
	}
	select {
	case a.requests <- struct{}{}:
	default:
	}
}

// Drain handles queued activations; called from the UI loop tick.
func (a *ApplicationPresenter) Drain() {
	if a == nil {
		return
	}
	for {
		select {
		case <-a.requests:
			if err := a.Activate(); err != nil && a.logger != nil {
				a.logger.Error("activation failed", "error", err)
			}
		default:
			return
		}
	}
}

func (a *ApplicationPresenter) Window() MainWindow {
	if a == nil {
		return nil
	}
	return a.window
}
