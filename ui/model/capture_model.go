package model

import (
	"image"
	"sync/atomic"
	"time"
)

// CaptureModel tracks the pending capture and the image currently shown in
// the preview. The zero value is idle, empty and usable.
// The pending flag is atomic because activation and quit paths may read it
// from outside the UI tick.
type CaptureModel struct {
	pending atomic.Bool
	img     image.Image
	taken   time.Time
}

// Pending reports whether a capture has been scheduled and not yet finished.
func (m *CaptureModel) Pending() bool {
	if m == nil {
		return false
	}
	return m.pending.Load()
}

// TryBegin marks a capture pending. It returns false if one already is.
func (m *CaptureModel) TryBegin() bool {
	if m == nil {
		return false
	}
	return m.pending.CompareAndSwap(false, true)
}

// Finish clears the pending flag.
func (m *CaptureModel) Finish() {
	if m == nil {
		return
	}
	m.pending.Store(false)
}

// SetImage replaces the previewed image. Only called on the UI loop.
func (m *CaptureModel) SetImage(img image.Image, taken time.Time) {
	if m == nil {
		return
	}
	m.img, m.taken = img, taken
}

// Image returns the previewed image and when it was taken, or nil.
func (m *CaptureModel) Image() (image.Image, time.Time) {
	if m == nil {
		return nil, time.Time{}
	}
	return m.img, m.taken
}
