package screenshot

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type fakeGrabber struct {
	bounds  image.Rectangle
	grabbed []image.Rectangle
	err     error
}

func (g *fakeGrabber) Bounds() (image.Rectangle, error) { return g.bounds, nil }
func (g *fakeGrabber) Grab(r image.Rectangle) (*image.RGBA, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.grabbed = append(g.grabbed, r)
	return image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy())), nil
}

func newTestService(g *fakeGrabber, win WindowLocator, cur CursorLocator) *CaptureService {
	if win == nil {
		win = func(bool) (image.Rectangle, error) { return image.Rectangle{}, ErrUnsupported }
	}
	if cur == nil {
		cur = func() (Cursor, error) { return Cursor{}, ErrUnsupported }
	}
	return NewCaptureService(discardLogger, Backends{Grabber: g, Window: win, Cursor: cur})
}

func TestCapture_DesktopUsesFullBounds(t *testing.T) {
	g := &fakeGrabber{bounds: image.Rect(0, 0, 3840, 1080)}
	s := newTestService(g, nil, nil)
	img, err := s.Capture(context.Background(), Options{Mode: ModeDesktop})
	require.NoError(t, err)
	assert.Equal(t, 3840, img.Bounds().Dx())
	require.Len(t, g.grabbed, 1)
	assert.Equal(t, g.bounds, g.grabbed[0])
	assert.EqualValues(t, 1, s.Stats().Captures)
}

func TestCapture_WindowPassesFrameFlagAndClips(t *testing.T) {
	g := &fakeGrabber{bounds: image.Rect(0, 0, 1920, 1080)}
	var gotFrame bool
	win := func(frame bool) (image.Rectangle, error) {
		gotFrame = frame
		return image.Rect(1800, 100, 2100, 400), nil
	}
	s := newTestService(g, win, nil)
	_, err := s.Capture(context.Background(), Options{Mode: ModeWindow, IncludeFrame: true})
	require.NoError(t, err)
	assert.True(t, gotFrame)
	assert.Equal(t, image.Rect(1800, 100, 1920, 400), g.grabbed[0])
}

func TestCapture_WindowLookupFailure(t *testing.T) {
	g := &fakeGrabber{bounds: image.Rect(0, 0, 100, 100)}
	win := func(bool) (image.Rectangle, error) { return image.Rectangle{}, ErrNoActiveWindow }
	s := newTestService(g, win, nil)
	img, err := s.Capture(context.Background(), Options{Mode: ModeWindow})
	assert.Nil(t, img)
	assert.ErrorIs(t, err, ErrNoActiveWindow)
	assert.Empty(t, g.grabbed)
	assert.EqualValues(t, 1, s.Stats().Failures)
}

func TestCapture_AreaEmptyAndOutside(t *testing.T) {
	g := &fakeGrabber{bounds: image.Rect(0, 0, 100, 100)}
	s := newTestService(g, nil, nil)
	_, err := s.Capture(context.Background(), Options{Mode: ModeArea})
	assert.ErrorIs(t, err, ErrEmptyArea)
	_, err = s.Capture(context.Background(), Options{Mode: ModeArea, Area: image.Rect(200, 200, 300, 300)})
	assert.ErrorIs(t, err, ErrEmptyArea)
	// reversed corners are canonicalised
	img, err := s.Capture(context.Background(), Options{Mode: ModeArea, Area: image.Rect(50, 60, 10, 20)})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 40), img.Bounds().Size())
}

func TestCapture_GrabErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	g := &fakeGrabber{bounds: image.Rect(0, 0, 10, 10), err: boom}
	s := newTestService(g, nil, nil)
	_, err := s.Capture(context.Background(), Options{Mode: ModeDesktop})
	assert.ErrorIs(t, err, boom)
}

func TestCapture_CancelledContext(t *testing.T) {
	g := &fakeGrabber{bounds: image.Rect(0, 0, 10, 10)}
	s := newTestService(g, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Capture(ctx, Options{Mode: ModeDesktop})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, g.grabbed)
}

func TestCapture_CursorComposited(t *testing.T) {
	g := &fakeGrabber{bounds: image.Rect(0, 0, 200, 200)}
	sprite := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{0xff, 0, 0, 0xff}
	for i := 0; i < 4; i++ {
		sprite.SetRGBA(i%2, i/2, red)
	}
	cur := func() (Cursor, error) {
		return Cursor{Image: sprite, Hotspot: image.Pt(1, 1), Position: image.Pt(60, 70)}, nil
	}
	s := newTestService(g, nil, cur)
	img, err := s.Capture(context.Background(), Options{Mode: ModeArea, Area: image.Rect(50, 50, 100, 100), IncludeCursor: true})
	require.NoError(t, err)
	at := func(x, y int) color.NRGBA { return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA) }
	// position (60,70) minus hotspot (1,1) minus origin (50,50)
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, at(9, 19))
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, at(10, 20))
	assert.Equal(t, color.NRGBA{}, at(11, 21))
	assert.Equal(t, image.Pt(50, 50), img.Bounds().Size())
}

func TestDrawCursor_OutsideLeavesImage(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := Cursor{Image: ArrowCursor(), Position: image.Pt(500, 500)}
	assert.Same(t, dst, DrawCursor(dst, image.Point{}, c))
}

func TestCapture_CursorFailureIgnored(t *testing.T) {
	g := &fakeGrabber{bounds: image.Rect(0, 0, 10, 10)}
	s := newTestService(g, nil, nil)
	img, err := s.Capture(context.Background(), Options{Mode: ModeDesktop, IncludeCursor: true})
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Window ")
	require.NoError(t, err)
	assert.Equal(t, ModeWindow, m)
	_, err = ParseMode("screen")
	assert.Error(t, err)
	assert.Equal(t, "area", ModeArea.String())
}

func TestArrowCursor_HotspotAtOrigin(t *testing.T) {
	a := ArrowCursor()
	assert.Equal(t, uint8(0xff), a.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), a.RGBAAt(11, 0).A)
}
