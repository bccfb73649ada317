package screenshot

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// DrawCursor returns dst with c composited on top. origin is the screen
// coordinate of dst's top-left pixel; the sprite is placed so its hotspot
// lands on c.Position. dst is returned unchanged when the cursor is outside it.
func DrawCursor(dst image.Image, origin image.Point, c Cursor) image.Image {
	if dst == nil || c.Image == nil {
		return dst
	}
	at := c.Position.Sub(c.Hotspot).Sub(origin).Add(dst.Bounds().Min)
	r := image.Rectangle{Min: at, Max: at.Add(c.Image.Bounds().Size())}
	if r.Intersect(dst.Bounds()).Empty() {
		return dst
	}
	return imaging.Overlay(dst, c.Image, at, 1.0)
}

// arrowMask is a classic left-pointing arrow: 'X' outline, 'o' fill.
var arrowMask = []string{
	"X...........",
	"XX..........",
	"XoX.........",
	"XooX........",
	"XoooX.......",
	"XooooX......",
	"XoooooX.....",
	"XooooooX....",
	"XoooooooX...",
	"XooooooooX..",
	"XoooooXXXXX.",
	"XooXooX.....",
	"XoX.XooX....",
	"XX..XooX....",
	"X....XooX...",
	".....XooX...",
	"......XX....",
}

// ArrowCursor returns the built-in pointer sprite used when the platform
// cannot supply the real cursor image. Its hotspot is (0,0).
func ArrowCursor() *image.RGBA {
	h := len(arrowMask)
	w := len(arrowMask[0])
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, row := range arrowMask {
		for x, ch := range row {
			switch ch {
			case 'X':
				img.SetRGBA(x, y, color.RGBA{0, 0, 0, 0xff})
			case 'o':
				img.SetRGBA(x, y, color.RGBA{0xff, 0xff, 0xff, 0xff})
			}
		}
	}
	return img
}
