package screenshot

import (
	"image"

	kbscreenshot "github.com/kbinani/screenshot"
	"github.com/vova616/screenshot"
)

type screenGrabber struct{}

// NewScreenGrabber returns a Grabber that reads pixels from the running display server.
func NewScreenGrabber() Grabber { return screenGrabber{} }

// Bounds returns the union of all active display bounds.
func (screenGrabber) Bounds() (image.Rectangle, error) {
	n := kbscreenshot.NumActiveDisplays()
	if n == 0 {
		// fall back to the primary screen as reported by the grab library
		r, err := screenshot.ScreenRect()
		if err != nil {
			return image.Rectangle{}, ErrNoDisplay
		}
		return r, nil
	}
	var all image.Rectangle
	for i := 0; i < n; i++ {
		all = all.Union(kbscreenshot.GetDisplayBounds(i))
	}
	return all, nil
}

func (screenGrabber) Grab(r image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(r)
}
