package view

import (
	"image"
	"log/slog"
	"runtime"
	"time"

	"github.com/soocke/clicky-go/domain/screenshot"
	"github.com/soocke/clicky-go/ui/layout"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// settleDelay lets the window manager unmap the overlay before the grab.
const settleDelay = 150 * time.Millisecond

// SelectionOverlay is a translucent, movable and resizable window the user
// places over the area to capture. Confirm reports its geometry; cancel or
// closing the window reports screenshot.ErrAborted.
type SelectionOverlay struct {
	logger  *slog.Logger
	desktop func() (image.Rectangle, error)
	win     *ToplevelWidget
	done    func(image.Rectangle, error)
}

// NewSelectionOverlay creates a new overlay manager. desktop reports the
// virtual screen used to center the first selection.
func NewSelectionOverlay(desktop func() (image.Rectangle, error), logger *slog.Logger) *SelectionOverlay {
	return &SelectionOverlay{logger: logger, desktop: desktop}
}

// PickArea opens the overlay at initial (or a centered default) and reports
// the chosen rectangle through done once the overlay has gone.
func (v *SelectionOverlay) PickArea(initial image.Rectangle, done func(image.Rectangle, error)) {
	if v.win != nil {
		// A newer request supersedes the open overlay.
		v.finish(image.Rectangle{}, screenshot.ErrAborted)
	}
	v.done = done
	win := App.Toplevel(Borderwidth(2), Background("#008080"))
	win.WmTitle("Select Area")
	v.win = win
	WmGeometry(win.Window, layout.Geometry(v.initialRect(initial)))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-alpha", 0.45)
	if runtime.GOOS == "windows" {
		WmAttributes(win.Window, "-toolwindow", true)
		WmAttributes(win.Window, "-transparentcolor", "#008080")
	}
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.cancel)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(0))
	GridColumnConfigure(win.Window, 1, Weight(1))
	GridColumnConfigure(win.Window, 2, Weight(0))
	left := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(left, Row(0), Column(0), Sticky("ns"))
	center := win.Frame(Background("#008080"))
	Grid(center, Row(0), Column(1), Sticky("nsew"))
	right := win.Frame(Width(4), Background("#FFFFFF"))
	Grid(right, Row(0), Column(2), Sticky("ns"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Columnspan(3), Sticky("we"))
	confirm := win.Button(Txt("Capture [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.cancel))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.cancel))
}

// initialRect reuses the last selection, or centers two thirds of the desktop.
func (v *SelectionOverlay) initialRect(initial image.Rectangle) image.Rectangle {
	if !initial.Empty() {
		return initial
	}
	bounds := image.Rect(0, 0, 1920, 1080)
	if v.desktop != nil {
		if b, err := v.desktop(); err == nil && !b.Empty() {
			bounds = b
		}
	}
	return layout.CenteredRect(bounds, bounds.Dx()*2/3, bounds.Dy()*5/9)
}

func (v *SelectionOverlay) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	rect, ok := layout.ParseGeometry(geom)
	if !ok {
		if v.logger != nil {
			v.logger.Warn("unparseable overlay geometry", "geometry", geom)
		}
		v.finish(image.Rectangle{}, screenshot.ErrEmptyArea)
		return
	}
	v.finish(rect, nil)
}

func (v *SelectionOverlay) cancel() { v.finish(image.Rectangle{}, screenshot.ErrAborted) }

func (v *SelectionOverlay) finish(r image.Rectangle, err error) {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
	done := v.done
	v.done = nil
	if done == nil {
		return
	}
	TclAfter(settleDelay, func() { done(r, err) })
}
