package view

import (
	"image"

	"github.com/soocke/clicky-go/ui/images"
	"github.com/soocke/clicky-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// capturePreview shows the last screenshot on the screenshot page. The current
// photo is deleted before it is replaced so Tk image data does not pile up.
type capturePreview struct {
	label     *TLabelWidget
	targetW   int
	targetH   int
	prevPhoto *Img // last Tk photo image instance
}

const (
	placeholderW = 200
	placeholderH = 120
)

// NewCapturePreview creates the preview label placed by the caller.
func NewCapturePreview(maxW, maxH int) *capturePreview {
	photo := NewPhoto(Data(placeholderPNG()))
	label := TLabel(Image(photo), Style(theme.StylePreviewLabel), Anchor("center"))
	v := &capturePreview{label: label, prevPhoto: photo}
	v.setTargetSize(maxW, maxH)
	return v
}

func placeholderPNG() []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH)))
}

func (v *capturePreview) SetPreview(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	// Scale for display only; the model keeps the full-size image for saving.
	scaled := images.ScaleToFit(img, v.targetW, v.targetH)
	v.replace(images.EncodePNG(scaled))
}

func (v *capturePreview) replace(pngBytes []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}

// setTargetSize updates desired scaling dimensions used by SetPreview.
func (v *capturePreview) setTargetSize(w, h int) {
	if v == nil {
		return
	}
	if w < 50 {
		w = 50
	}
	if h < 50 {
		h = 50
	}
	v.targetW, v.targetH = w, h
}
