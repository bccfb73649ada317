package app

import (
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/clicky-go/config"
	"github.com/soocke/clicky-go/ui/presenter"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	loop    *presenter.Loop
	afterID string
}

// Run starts the application and blocks until the main window is closed.
// A second launch hands activation to the running instance and returns nil.
func Run(cfg *config.Config, cfgPath string, logger *slog.Logger) error {
	c, err := BuildContainer(cfg, cfgPath, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	primary, release, err := acquireInstance(c.AppPresenter.RequestActivate, logger)
	if err != nil && logger != nil {
		logger.Warn("single instance unavailable, continuing", "error", err)
	}
	if !primary {
		if logger != nil {
			logger.Info("activated running instance")
		}
		return nil
	}
	defer release()

	a := &app{c: c, logger: logger}
	c.OnQuit = a.exitHandler
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)

	if err := c.AppPresenter.Activate(); err != nil {
		return err
	}
	a.loop = presenter.NewLoop(c.AppPresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
	return nil
}

func (a *app) exitHandler() {
	a.c.CapturePresenter.Cancel()
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if a.logger != nil {
		a.logger.Info("quit")
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}
