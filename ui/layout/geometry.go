package layout

import (
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"
)

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)([+-]-?\d+)([+-]-?\d+)$`)

// ParseGeometry parses a Tk geometry string into a screen rectangle.
func ParseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, okX := offset(m[3])
	y, okY := offset(m[4])
	if w <= 0 || h <= 0 || !okX || !okY {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}

// offset accepts "+10", "-10" and "+-10".
func offset(s string) (int, bool) {
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.Atoi(s)
	return v, err == nil
}

// Geometry formats r as a Tk geometry string.
func Geometry(r image.Rectangle) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
}

// CenteredRect returns a w x h rectangle centered in bounds.
func CenteredRect(bounds image.Rectangle, w, h int) image.Rectangle {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := bounds.Min.Add(image.Pt(bounds.Dx()/2, bounds.Dy()/2))
	min := c.Sub(image.Pt(w/2, h/2))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(w, h))}
}
