package presenter

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/clicky-go/domain/navigation"
	"github.com/soocke/clicky-go/domain/screenshot"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// eventLog records calls across mocks so tests can assert ordering.
type eventLog struct{ events []string }

func (l *eventLog) add(e string) { l.events = append(l.events, e) }

func (l *eventLog) index(e string) int {
	for i, v := range l.events {
		if v == e {
			return i
		}
	}
	return -1
}

func (l *eventLog) lastIndex(e string) int {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i] == e {
			return i
		}
	}
	return -1
}

func (l *eventLog) count(e string) int {
	n := 0
	for _, v := range l.events {
		if v == e {
			n++
		}
	}
	return n
}

type fakeTask struct {
	fn        func()
	delay     time.Duration
	cancelled bool
}

func (t *fakeTask) Cancel() { t.cancelled = true }

type fakeScheduler struct{ tasks []*fakeTask }

func (s *fakeScheduler) After(d time.Duration, fn func()) Task {
	t := &fakeTask{fn: fn, delay: d}
	s.tasks = append(s.tasks, t)
	return t
}

// runAll fires every scheduled, non-cancelled task once.
func (s *fakeScheduler) runAll() {
	tasks := s.tasks
	s.tasks = nil
	for _, t := range tasks {
		if !t.cancelled {
			t.fn()
		}
	}
}

type fakeCapturer struct {
	log      *eventLog
	img      image.Image
	err      error
	panicked bool
	selects  bool
	calls    []screenshot.Options
}

func (c *fakeCapturer) Capture(ctx context.Context, opts screenshot.Options) (image.Image, error) {
	c.log.add("capture")
	c.calls = append(c.calls, opts)
	if c.panicked {
		panic("capture exploded")
	}
	return c.img, c.err
}

func (c *fakeCapturer) SelectsArea() bool { return c.selects }

type fakeViews struct {
	log            *eventLog
	window, area   bool
	frame, cursor  bool
	visible        bool
	triggerEnabled bool
	preview        image.Image
	previewCalls   int
	notices        []NoticeLevel
	backVisible    bool
	page           navigation.Page
	darkSwitch     bool
	pickRect       image.Rectangle
	pickErr        error
	pickInitial    image.Rectangle
	deferredPick   func()
	deferPick      bool
}

func newFakeViews(log *eventLog) *fakeViews {
	return &fakeViews{log: log, visible: true, triggerEnabled: true, page: navigation.PageMain}
}

func (v *fakeViews) HideWindow()              { v.visible = false; v.log.add("hide") }
func (v *fakeViews) ShowWindow()              { v.visible = true; v.log.add("show") }
func (v *fakeViews) WindowModeSelected() bool { return v.window }
func (v *fakeViews) AreaModeSelected() bool   { return v.area }
func (v *fakeViews) IncludeFrame() bool       { return v.frame }
func (v *fakeViews) IncludeCursor() bool      { return v.cursor }
func (v *fakeViews) SetPreview(img image.Image) {
	v.preview = img
	v.previewCalls++
	v.log.add("preview")
}
func (v *fakeViews) SetTriggerEnabled(b bool) {
	v.triggerEnabled = b
	if b {
		v.log.add("trigger-on")
	} else {
		v.log.add("trigger-off")
	}
}
func (v *fakeViews) Notice(level NoticeLevel, title, msg string) {
	v.notices = append(v.notices, level)
	v.log.add("notice")
}
func (v *fakeViews) SetBackVisible(b bool) { v.backVisible = b; v.log.add("back") }
func (v *fakeViews) ShowPage(p navigation.Page) {
	v.page = p
	v.log.add("page:" + p.String())
}
func (v *fakeViews) SetDarkSwitch(b bool) { v.darkSwitch = b }
func (v *fakeViews) PickArea(initial image.Rectangle, done func(image.Rectangle, error)) {
	v.log.add("pick")
	v.pickInitial = initial
	call := func() { done(v.pickRect, v.pickErr) }
	if v.deferPick {
		v.deferredPick = call
		return
	}
	call()
}
