package screenshot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"
)

// Mode selects what part of the screen is captured.
type Mode int

const (
	ModeDesktop Mode = iota
	ModeWindow
	ModeArea
)

func (m Mode) String() string {
	switch m {
	case ModeDesktop:
		return "desktop"
	case ModeWindow:
		return "window"
	case ModeArea:
		return "area"
	default:
		return "unknown"
	}
}

// ParseMode converts "desktop", "window" or "area" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desktop":
		return ModeDesktop, nil
	case "window":
		return ModeWindow, nil
	case "area":
		return ModeArea, nil
	}
	return ModeDesktop, fmt.Errorf("screenshot: unknown mode %q", s)
}

// Options describe a single capture request.
type Options struct {
	Mode          Mode
	IncludeFrame  bool
	IncludeCursor bool
	// Area is the user-selected rectangle in screen coordinates (ModeArea only).
	Area image.Rectangle
}

var (
	ErrAborted        = errors.New("screenshot: capture aborted")
	ErrNoDisplay      = errors.New("screenshot: no display available")
	ErrNoActiveWindow = errors.New("screenshot: no active window")
	ErrEmptyArea      = errors.New("screenshot: empty area selection")
	ErrUnsupported    = errors.New("screenshot: not supported on this platform")
)

// Capturer produces a pixel buffer for a capture request.
//
// SelectsArea reports whether the backend runs its own interactive area
// selection; when false the caller supplies Options.Area for ModeArea.
type Capturer interface {
	Capture(ctx context.Context, opts Options) (image.Image, error)
	SelectsArea() bool
}

// Grabber reads raw pixels from the screen.
type Grabber interface {
	// Bounds returns the virtual desktop rectangle covering every display.
	Bounds() (image.Rectangle, error)
	Grab(r image.Rectangle) (*image.RGBA, error)
}

// WindowLocator returns the active window rectangle in screen coordinates.
type WindowLocator func(includeFrame bool) (image.Rectangle, error)

// CursorLocator returns the current pointer image and position.
type CursorLocator func() (Cursor, error)

// Cursor is a pointer sprite positioned in screen coordinates.
type Cursor struct {
	Image    image.Image
	Hotspot  image.Point
	Position image.Point
}

// CaptureStats summarises capture behaviour for instrumentation.
type CaptureStats struct {
	Captures   uint64
	Failures   uint64
	AvgCapture time.Duration
	LastRegion image.Rectangle
}
