package images

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// EncodePNG returns the PNG encoding of img, or nil when img is nil or
// cannot be encoded.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil
	}
	return buf.Bytes()
}

// ScaleToFit shrinks src with a Lanczos filter so it fits within maxW x maxH,
// keeping the aspect ratio. Images that already fit are returned unchanged.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	size := src.Bounds().Size()
	if size.X <= maxW && size.Y <= maxH {
		return src
	}
	return imaging.Fit(src, max(maxW, 1), max(maxH, 1), imaging.Lanczos)
}
