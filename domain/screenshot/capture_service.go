package screenshot

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Backends groups the platform hooks used by the grab capturer.
// Nil fields fall back to the platform defaults.
type Backends struct {
	Grabber Grabber
	Window  WindowLocator
	Cursor  CursorLocator
}

// CaptureService grabs pixels directly from the display server.
type CaptureService struct {
	grabber      Grabber
	window       WindowLocator
	cursor       CursorLocator
	logger       *slog.Logger
	captures     atomic.Uint64
	failures     atomic.Uint64
	captureNanos atomic.Uint64
	lastRegion   atomic.Pointer[image.Rectangle]
}

// NewCaptureService constructs a capturer that grabs pixels directly from the
// display server.
func NewCaptureService(logger *slog.Logger, b Backends) *CaptureService {
	if b.Grabber == nil {
		b.Grabber = NewScreenGrabber()
	}
	if b.Window == nil {
		b.Window = ActiveWindowRect
	}
	if b.Cursor == nil {
		b.Cursor = CurrentCursor
	}
	return &CaptureService{grabber: b.Grabber, window: b.Window, cursor: b.Cursor, logger: logger}
}

func (s *CaptureService) SelectsArea() bool { return false }

func (s *CaptureService) Capture(ctx context.Context, opts Options) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	start := time.Now()
	region, err := s.region(opts)
	if err != nil {
		s.fail(id, opts, err)
		return nil, err
	}
	grabbed, err := s.grabber.Grab(region)
	if err != nil {
		err = fmt.Errorf("grab %v: %w", region, err)
		s.fail(id, opts, err)
		return nil, err
	}
	if grabbed == nil {
		err = fmt.Errorf("grab %v: empty image", region)
		s.fail(id, opts, err)
		return nil, err
	}
	var img image.Image = grabbed
	if opts.IncludeCursor {
		if c, cerr := s.cursor(); cerr != nil {
			if s.logger != nil {
				s.logger.Debug("cursor lookup failed", "capture_id", id, "error", cerr)
			}
		} else {
			img = DrawCursor(img, region.Min, c)
		}
	}
	elapsed := time.Since(start)
	s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
	s.captures.Add(1)
	s.lastRegion.Store(&region)
	if s.logger != nil {
		s.logger.Info("screenshot captured",
			"capture_id", id,
			"mode", opts.Mode.String(),
			"frame", opts.IncludeFrame,
			"cursor", opts.IncludeCursor,
			"region", region.String(),
			"elapsed", elapsed,
		)
		s.logStats()
	}
	return img, nil
}

// region resolves the screen rectangle for the requested mode, clipped to the desktop.
func (s *CaptureService) region(opts Options) (image.Rectangle, error) {
	desktop, err := s.grabber.Bounds()
	if err != nil {
		return image.Rectangle{}, err
	}
	if desktop.Empty() {
		return image.Rectangle{}, ErrNoDisplay
	}
	var r image.Rectangle
	switch opts.Mode {
	case ModeDesktop:
		return desktop, nil
	case ModeWindow:
		r, err = s.window(opts.IncludeFrame)
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("active window: %w", err)
		}
		if r.Empty() {
			return image.Rectangle{}, ErrNoActiveWindow
		}
	case ModeArea:
		r = opts.Area.Canon()
		if r.Empty() {
			return image.Rectangle{}, ErrEmptyArea
		}
	default:
		return image.Rectangle{}, fmt.Errorf("screenshot: unknown mode %d", opts.Mode)
	}
	clipped := r.Intersect(desktop)
	if clipped.Empty() {
		return image.Rectangle{}, fmt.Errorf("region %v outside desktop %v: %w", r, desktop, ErrEmptyArea)
	}
	return clipped, nil
}

func (s *CaptureService) fail(id string, opts Options, err error) {
	s.failures.Add(1)
	if s.logger != nil {
		s.logger.Warn("screenshot failed", "capture_id", id, "mode", opts.Mode.String(), "error", err)
	}
}

// Stats returns counters accumulated since construction.
func (s *CaptureService) Stats() CaptureStats {
	captures := s.captures.Load()
	var avg time.Duration
	if captures > 0 {
		avg = time.Duration(s.captureNanos.Load() / captures)
	}
	var last image.Rectangle
	if r := s.lastRegion.Load(); r != nil {
		last = *r
	}
	return CaptureStats{
		Captures:   captures,
		Failures:   s.failures.Load(),
		AvgCapture: avg,
		LastRegion: last,
	}
}

func (s *CaptureService) logStats() {
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"captures", stats.Captures,
		"failures", stats.Failures,
		"avg_capture", stats.AvgCapture,
	)
}

var _ Capturer = (*CaptureService)(nil)
