package presenter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/soocke/clicky-go/domain/navigation"
	"github.com/soocke/clicky-go/domain/screenshot"
	"github.com/soocke/clicky-go/ui/images"
	"github.com/soocke/clicky-go/ui/model"
)

// WindowView hides and restores the main window around a capture.
// HideWindow withdraws the window, drops its opacity to 0 and keeps it out of
// the taskbar; ShowWindow undoes all three.
type WindowView interface {
	HideWindow()
	ShowWindow()
}

// OptionsView reads the capture selections on the main page.
type OptionsView interface {
	WindowModeSelected() bool
	AreaModeSelected() bool
	IncludeFrame() bool
	IncludeCursor() bool
}

// PreviewView shows the captured image on the screenshot page.
type PreviewView interface{ SetPreview(image.Image) }

// TriggerView enables or disables the "take screenshot" control.
type TriggerView interface{ SetTriggerEnabled(bool) }

// NoticeLevel classifies user notices.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
)

// Notifier surfaces non-fatal messages to the user.
type Notifier interface {
	Notice(level NoticeLevel, title, msg string)
}

// AreaPicker lets the user drag a rectangle on screen. done is called on the
// UI loop with the rectangle in screen coordinates, or screenshot.ErrAborted.
type AreaPicker interface {
	PickArea(initial image.Rectangle, done func(image.Rectangle, error))
}

// Navigation is the slice of NavigationPresenter the capture flow needs.
type Navigation interface {
	NavigateTo(navigation.Page) error
}

// CaptureViews groups the UI surfaces the capture presenter drives.
type CaptureViews struct {
	Window  WindowView
	Options OptionsView
	Preview PreviewView
	Trigger TriggerView
	Notify  Notifier
	Picker  AreaPicker
}

// CaptureSettings are the config values the capture flow uses.
type CaptureSettings struct {
	Delay      time.Duration
	Timeout    time.Duration
	SaveDir    string
	SaveFormat string
}

var errNoImage = errors.New("capture returned no image")

const defaultCaptureTimeout = 2 * time.Minute

// CapturePresenter owns the screenshot workflow: hide the window, wait, grab,
// show the result and restore the window.
type CapturePresenter struct {
	model     *model.CaptureModel
	selection *model.SelectionModel
	capturer  screenshot.Capturer
	sched     Scheduler
	nav       Navigation
	views     CaptureViews
	settings  CaptureSettings
	logger    *slog.Logger
	task      Task
	now       func() time.Time
	// OnAreaSelected is called with every confirmed area so it can be persisted.
	OnAreaSelected func(image.Rectangle)
}

func NewCapturePresenter(m *model.CaptureModel, sel *model.SelectionModel, c screenshot.Capturer, sched Scheduler, nav Navigation, views CaptureViews, settings CaptureSettings, logger *slog.Logger) *CapturePresenter {
	if settings.Timeout <= 0 {
		settings.Timeout = defaultCaptureTimeout
	}
	if sel == nil {
		sel = &model.SelectionModel{}
	}
	return &CapturePresenter{model: m, selection: sel, capturer: c, sched: sched, nav: nav, views: views, settings: settings, logger: logger, now: time.Now}
}

func (p *CapturePresenter) ready() bool {
	return p != nil && p.model != nil && p.capturer != nil && p.sched != nil &&
		p.views.Window != nil && p.views.Options != nil && p.views.Trigger != nil
}

// StartScreenshot hides the window and schedules the capture after the
// configured delay. Ignored while a capture is already pending.
func (p *CapturePresenter) StartScreenshot() {
	if !p.ready() {
		return
	}
	if !p.model.TryBegin() {
		if p.logger != nil {
			p.logger.Debug("capture already pending, trigger ignored")
		}
		return
	}
	p.views.Trigger.SetTriggerEnabled(false)
	p.views.Window.HideWindow()
	p.task = p.sched.After(p.settings.Delay, p.takeScreenshot)
}

// Cancel drops a scheduled capture that has not started and restores the window.
func (p *CapturePresenter) Cancel() {
	if p == nil || p.task == nil {
		return
	}
	p.task.Cancel()
	p.task = nil
	p.restore()
	if p.logger != nil {
		p.logger.Info("pending capture cancelled")
	}
}

// SelectMode maps the radio selections to a mode. WINDOW wins over AREA,
// which wins over DESKTOP.
func SelectMode(window, area bool) screenshot.Mode {
	switch {
	case window:
		return screenshot.ModeWindow
	case area:
		return screenshot.ModeArea
	default:
		return screenshot.ModeDesktop
	}
}

func (p *CapturePresenter) options() screenshot.Options {
	o := p.views.Options
	return screenshot.Options{
		Mode:          SelectMode(o.WindowModeSelected(), o.AreaModeSelected()),
		IncludeFrame:  o.IncludeFrame(),
		IncludeCursor: o.IncludeCursor(),
	}
}

func (p *CapturePresenter) takeScreenshot() {
	p.task = nil
	opts := p.options()
	if opts.Mode == screenshot.ModeArea && !p.capturer.SelectsArea() {
		if p.views.Picker == nil {
			p.finish(opts, nil, fmt.Errorf("area selection: %w", screenshot.ErrUnsupported))
			return
		}
		initial, _ := p.selection.Rect()
		p.views.Picker.PickArea(initial, func(r image.Rectangle, err error) {
			if err != nil {
				p.finish(opts, nil, err)
				return
			}
			p.selection.Set(r)
			if p.OnAreaSelected != nil {
				p.OnAreaSelected(r)
			}
			opts.Area = r
			img, err := p.invoke(opts)
			p.finish(opts, img, err)
		})
		return
	}
	img, err := p.invoke(opts)
	p.finish(opts, img, err)
}

// invoke calls the capture service, converting a panic into an error.
func (p *CapturePresenter) invoke(opts screenshot.Options) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			if p.logger != nil {
				p.logger.Error("capture panic", "error", r, "stack", string(debug.Stack()))
			}
			img, err = nil, fmt.Errorf("capture panic: %v", r)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), p.settings.Timeout)
	defer cancel()
	return p.capturer.Capture(ctx, opts)
}

// finish always restores the window and the trigger. A result is installed
// before the window reappears; a failure notice only after it is visible.
func (p *CapturePresenter) finish(opts screenshot.Options, img image.Image, err error) {
	if err == nil && img == nil {
		err = errNoImage
	}
	if err != nil {
		p.restore()
		p.reportFailure(opts, err)
		return
	}
	defer p.restore()
	p.model.SetImage(img, p.now())
	if p.views.Preview != nil {
		p.views.Preview.SetPreview(img)
	}
	if p.nav != nil {
		if nerr := p.nav.NavigateTo(navigation.PageScreenshot); nerr != nil && p.logger != nil {
			p.logger.Error("navigate to preview failed", "error", nerr)
		}
	}
}

func (p *CapturePresenter) restore() {
	p.views.Window.ShowWindow()
	p.views.Trigger.SetTriggerEnabled(true)
	p.model.Finish()
}

func (p *CapturePresenter) reportFailure(opts screenshot.Options, err error) {
	if errors.Is(err, screenshot.ErrAborted) {
		if p.logger != nil {
			p.logger.Info("capture aborted", "mode", opts.Mode.String())
		}
		p.notify(NoticeInfo, "Screenshot cancelled", "No screenshot was taken.")
		return
	}
	if p.logger != nil {
		p.logger.Warn("capture failed", "mode", opts.Mode.String(), "error", err)
	}
	p.notify(NoticeWarning, "Screenshot failed", err.Error())
}

func (p *CapturePresenter) notify(level NoticeLevel, title, msg string) {
	if p.views.Notify != nil {
		p.views.Notify.Notice(level, title, msg)
	}
}

// SaveScreenshot writes the previewed image into the save directory.
func (p *CapturePresenter) SaveScreenshot() {
	if p == nil || p.model == nil {
		return
	}
	img, taken := p.model.Image()
	if img == nil {
		p.notify(NoticeInfo, "Nothing to save", "Take a screenshot first.")
		return
	}
	if taken.IsZero() {
		taken = p.now()
	}
	path, size, err := images.SaveTimestamped(img, p.settings.SaveDir, p.settings.SaveFormat, taken)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("save failed", "dir", p.settings.SaveDir, "error", err)
		}
		p.notify(NoticeWarning, "Save failed", err.Error())
		return
	}
	if p.logger != nil {
		p.logger.Info("screenshot saved", "path", path, "bytes", size)
	}
	p.notify(NoticeInfo, "Screenshot saved", fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(size))))
}
