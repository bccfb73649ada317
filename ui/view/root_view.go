package view

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"github.com/soocke/clicky-go/domain/navigation"
	"github.com/soocke/clicky-go/domain/screenshot"
	"github.com/soocke/clicky-go/ui/layout"
	"github.com/soocke/clicky-go/ui/presenter"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dispatcher routes affordance ids to handlers (presenter.Actions).
type Dispatcher interface {
	Activate(id string) bool
	Toggle(id string, v bool) bool
}

// RootView is the main window built from a layout.Definition. It implements
// the view contracts of the capture, navigation and preference presenters.
type RootView struct {
	def     *layout.Definition
	actions Dispatcher
	logger  *slog.Logger

	pages   map[navigation.Page]*FrameWidget
	buttons map[string]*TButtonWidget
	radios  map[string]*TRadiobuttonWidget
	back    *TButtonWidget
	preview *capturePreview
	picker  *SelectionOverlay

	// selections mirrored from widget commands
	mode          string
	includeFrame  bool
	includeCursor bool
	dark          bool
	darkSwitch    *TCheckbuttonWidget
	syncing       bool

	previewMaxW, previewMaxH int
}

// Options configure NewRootView.
type Options struct {
	PreviewMaxW, PreviewMaxH int
	Picker                   *SelectionOverlay
}

func NewRootView(def *layout.Definition, actions Dispatcher, opts Options, logger *slog.Logger) *RootView {
	return &RootView{
		def:         def,
		actions:     actions,
		logger:      logger,
		pages:       make(map[navigation.Page]*FrameWidget),
		buttons:     make(map[string]*TButtonWidget),
		radios:      make(map[string]*TRadiobuttonWidget),
		picker:      opts.Picker,
		previewMaxW: opts.PreviewMaxW,
		previewMaxH: opts.PreviewMaxH,
	}
}

// Build constructs the window from the definition. Tk reports widget errors
// by panicking; they are returned as an error here.
func (rv *RootView) Build() (err error) {
	if rv == nil || rv.def == nil {
		return fmt.Errorf("view: no definition")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("view: build: %v", r)
		}
	}()
	b := &builder{rv: rv}
	b.window(rv.def.Window)
	b.menu(rv.def.Menu)
	b.header(rv.def.Header)
	b.stack(rv.def.Stack)
	if rv.back == nil || rv.preview == nil || rv.darkSwitch == nil || rv.buttons[layout.IDTakeScreenshot] == nil {
		return fmt.Errorf("view: definition built without required widgets")
	}
	return nil
}

// --- WindowView ---

func (rv *RootView) HideWindow() {
	WmAttributes(App, "-alpha", 0.0)
	if runtime.GOOS == "windows" {
		WmAttributes(App, "-toolwindow", true)
	}
	WmWithdraw(App)
}

func (rv *RootView) ShowWindow() {
	WmDeiconify(App)
	if runtime.GOOS == "windows" {
		WmAttributes(App, "-toolwindow", false)
	}
	WmAttributes(App, "-alpha", 1.0)
}

// Present restores and raises the window (second activation).
func (rv *RootView) Present() {
	rv.ShowWindow()
	WmAttributes(App, "-topmost", 1)
	WmAttributes(App, "-topmost", 0)
}

// --- OptionsView ---

// SelectMode checks the radio button whose value is mode ("desktop",
// "window" or "area"). Unknown values are ignored.
// SelectMode checks the radio for a mode name such as "window".
func (rv *RootView) SelectMode(name string) {
	m, err := screenshot.ParseMode(name)
	if err != nil {
		if rv.logger != nil {
			rv.logger.Warn("ignoring capture mode", "error", err)
		}
		return
	}
	if rb := rv.radios[m.String()]; rb != nil && rv.mode != m.String() {
		rb.Invoke()
	}
}

func (rv *RootView) WindowModeSelected() bool { return rv.mode == screenshot.ModeWindow.String() }
func (rv *RootView) AreaModeSelected() bool   { return rv.mode == screenshot.ModeArea.String() }
func (rv *RootView) IncludeFrame() bool       { return rv.includeFrame }
func (rv *RootView) IncludeCursor() bool      { return rv.includeCursor }

// --- PreviewView / TriggerView ---

func (rv *RootView) SetPreview(img image.Image) {
	if rv.preview != nil {
		rv.preview.SetPreview(img)
	}
}

func (rv *RootView) SetTriggerEnabled(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	if b := rv.buttons[layout.IDTakeScreenshot]; b != nil {
		b.Configure(State(state))
	}
}

// --- Notifier ---

func (rv *RootView) Notice(level presenter.NoticeLevel, title, msg string) {
	icon := "info"
	if level == presenter.NoticeWarning {
		icon = "warning"
	}
	MessageBox(Title(title), Msg(title), Detail(msg), Icon(icon))
}

// --- StackView ---

func (rv *RootView) SetBackVisible(visible bool) {
	if rv.back == nil {
		return
	}
	if visible {
		Grid(rv.back, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
		return
	}
	GridForget(rv.back.Window)
}

func (rv *RootView) ShowPage(p navigation.Page) {
	target, ok := rv.pages[p]
	if !ok {
		if rv.logger != nil {
			rv.logger.Error("no frame for page", "page", p.String())
		}
		return
	}
	for name, f := range rv.pages {
		if name != p {
			GridForget(f.Window)
		}
	}
	Grid(target, Row(1), Column(0), Columnspan(2), Sticky("nsew"), Padx("0.6m"), Pady("0.4m"))
}

// --- SwitchView ---

// SetDarkSwitch shows v on the switch without dispatching a toggle.
func (rv *RootView) SetDarkSwitch(v bool) {
	if rv.darkSwitch == nil || rv.dark == v {
		return
	}
	rv.syncing = true
	rv.darkSwitch.Invoke()
	rv.syncing = false
}

// --- AreaPicker ---

func (rv *RootView) PickArea(initial image.Rectangle, done func(image.Rectangle, error)) {
	if rv.picker == nil {
		done(image.Rectangle{}, fmt.Errorf("area picker unavailable"))
		return
	}
	rv.picker.PickArea(initial, done)
}

// ShowShortcuts opens a read-only window listing the keyboard shortcuts.
func (rv *RootView) ShowShortcuts(text string) {
	win := App.Toplevel()
	win.WmTitle("Keyboard Shortcuts")
	txt := win.Text(Height(8), Width(44), Font("TkFixedFont"))
	Pack(txt, Padx("2m"), Pady("2m"))
	txt.Insert("1.0", text)
	txt.Configure(State("disabled"))
	Pack(win.TButton(Txt("Close"), Command(func() { Destroy(win) })), Pady("1m"))
	Bind(win, "<Escape>", Command(func() { Destroy(win) }))
}

// ShowAbout shows the application name and version.
func (rv *RootView) ShowAbout(name, version string) {
	MessageBox(Title("About "+name), Msg(name+" "+version), Detail("Take screenshots of the desktop, a window or an area."), Icon("info"))
}

var (
	_ presenter.WindowView  = (*RootView)(nil)
	_ presenter.OptionsView = (*RootView)(nil)
	_ presenter.PreviewView = (*RootView)(nil)
	_ presenter.TriggerView = (*RootView)(nil)
	_ presenter.Notifier    = (*RootView)(nil)
	_ presenter.StackView   = (*RootView)(nil)
	_ presenter.SwitchView  = (*RootView)(nil)
	_ presenter.AreaPicker  = (*RootView)(nil)
	_ presenter.MainWindow  = (*RootView)(nil)
)
