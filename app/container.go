package app

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	. "modernc.org/tk9.0"

	"github.com/soocke/clicky-go/assets"
	"github.com/soocke/clicky-go/config"
	"github.com/soocke/clicky-go/domain/navigation"
	"github.com/soocke/clicky-go/domain/screenshot"
	"github.com/soocke/clicky-go/domain/settings"
	"github.com/soocke/clicky-go/ui/layout"
	"github.com/soocke/clicky-go/ui/model"
	"github.com/soocke/clicky-go/ui/presenter"
	"github.com/soocke/clicky-go/ui/theme"
	"github.com/soocke/clicky-go/ui/view"
)

const appVersion = "0.3.0"

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Definition *layout.Definition
	Capture    *model.CaptureModel
	Selection  *model.SelectionModel
	Capturer   screenshot.Capturer
	Navigator  *navigation.Navigator
	Settings   settings.Backend
	Actions    *presenter.Actions
	RootView   *view.RootView

	// Presenters
	NavigationPresenter *presenter.NavigationPresenter
	CapturePresenter    *presenter.CapturePresenter
	PreferencePresenter *presenter.PreferencePresenter
	AppPresenter        *presenter.ApplicationPresenter

	// OnQuit is set by the app, which owns the event loop.
	OnQuit func()
}

// BuildContainer constructs all components. No widgets are created until the
// application presenter's first activation.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*AppContainer, error) {
	def, err := layout.Parse(assets.MainWindowUI)
	if err != nil {
		return nil, fmt.Errorf("ui definition: %w", err)
	}
	capturer, err := screenshot.NewCapturer(cfg.Backend, logger)
	if err != nil {
		return nil, fmt.Errorf("capture backend %q: %w", cfg.Backend, err)
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger, Definition: def, Capturer: capturer}
	c.Capture = &model.CaptureModel{}
	c.Selection = model.NewSelectionModel(image.Rect(cfg.SelectionX, cfg.SelectionY, cfg.SelectionX+cfg.SelectionW, cfg.SelectionY+cfg.SelectionH))
	store, backend := settings.Open(cfg.SettingsPath, logger)
	c.Settings = store
	if logger != nil {
		logger.Info("settings backend", "backend", backend, "schema", settings.SchemaID)
	}
	c.Navigator = navigation.NewNavigator(logger)
	c.Navigator.AddListener(navigation.LogTransitions(logger))
	c.Actions = presenter.NewActions(logger)

	// View
	picker := view.NewSelectionOverlay(screenshot.NewScreenGrabber().Bounds, logger)
	c.RootView = view.NewRootView(def, c.Actions, view.Options{
		PreviewMaxW: cfg.PreviewMaxW,
		PreviewMaxH: cfg.PreviewMaxH,
		Picker:      picker,
	}, logger)

	// Presenters
	c.NavigationPresenter = presenter.NewNavigationPresenter(c.Navigator, c.RootView, logger)
	rv := c.RootView
	c.CapturePresenter = presenter.NewCapturePresenter(c.Capture, c.Selection, capturer, tclScheduler(), c.NavigationPresenter,
		presenter.CaptureViews{Window: rv, Options: rv, Preview: rv, Trigger: rv, Notify: rv, Picker: rv},
		presenter.CaptureSettings{Delay: cfg.CaptureDelay(), SaveDir: cfg.SaveDirectory, SaveFormat: cfg.SaveFormat},
		logger)
	c.CapturePresenter.OnAreaSelected = c.rememberSelection
	c.PreferencePresenter = presenter.NewPreferencePresenter(store, theme.Global{}, rv, logger)
	c.AppPresenter = presenter.NewApplicationPresenter(c.buildWindow, logger)

	c.registerActions()
	for _, id := range def.Actions() {
		if !c.Actions.Has(id) {
			return nil, fmt.Errorf("ui definition: no handler for action %q", id)
		}
	}
	for _, id := range def.Toggles() {
		if !c.Actions.HasToggle(id) {
			return nil, fmt.Errorf("ui definition: no handler for toggle %q", id)
		}
	}
	return c, nil
}

// registerActions fills the dispatch table.
func (c *AppContainer) registerActions() {
	a := c.Actions
	a.Register(presenter.ActionTakeScreenshot, c.CapturePresenter.StartScreenshot)
	a.Register(presenter.ActionGoBack, c.NavigationPresenter.GoBack)
	a.Register(presenter.ActionSave, c.CapturePresenter.SaveScreenshot)
	a.Register(presenter.ActionPreferences, c.NavigationPresenter.OpenPreferences)
	a.Register(presenter.ActionShortcuts, func() {
		c.RootView.ShowShortcuts(presenter.ShortcutsText(presenter.DefaultAccelerators()))
	})
	a.Register(presenter.ActionAbout, func() { c.RootView.ShowAbout("Clicky", appVersion) })
	a.Register(presenter.ActionQuit, func() {
		if c.OnQuit != nil {
			c.OnQuit()
		}
	})
	a.RegisterToggle(presenter.ToggleDarkMode, c.PreferencePresenter.OnToggle)
}

// buildWindow is the window factory used on first activation.
func (c *AppContainer) buildWindow() (presenter.MainWindow, error) {
	theme.Init(false)
	if err := c.RootView.Build(); err != nil {
		return nil, err
	}
	c.RootView.SelectMode(c.Config.DefaultMode)
	c.PreferencePresenter.LoadPreference()
	c.NavigationPresenter.Sync()
	for _, acc := range presenter.DefaultAccelerators() {
		action := acc.Action
		Bind(App, acc.Sequence, Command(func() { c.Actions.Activate(action) }))
	}
	return c.RootView, nil
}

func (c *AppContainer) rememberSelection(r image.Rectangle) {
	c.Config.SelectionX, c.Config.SelectionY = r.Min.X, r.Min.Y
	c.Config.SelectionW, c.Config.SelectionH = r.Dx(), r.Dy()
	if err := c.Config.Save(c.ConfigPath); err != nil && c.Logger != nil {
		c.Logger.Error("config save failed", "error", err)
	}
}

// Close releases the settings database.
func (c *AppContainer) Close() error {
	if cl, ok := c.Settings.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
