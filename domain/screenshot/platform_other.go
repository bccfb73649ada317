//go:build !linux && !windows

package screenshot

import "image"

func ActiveWindowRect(includeFrame bool) (image.Rectangle, error) {
	return image.Rectangle{}, ErrUnsupported
}

func CurrentCursor() (Cursor, error) {
	return Cursor{}, ErrUnsupported
}
