//go:build linux

package screenshot

// X11 lookups for the active window and the pointer sprite. Each call opens
// a short-lived connection to $DISPLAY.

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xfixes"
	"github.com/BurntSushi/xgb/xproto"
)

const netActiveWindow = "_NET_ACTIVE_WINDOW"

func connectX() (*xgb.Conn, xproto.Window, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root
	return conn, root, nil
}

// ActiveWindowRect returns the rectangle of the window named by the EWMH
// _NET_ACTIVE_WINDOW root property. With includeFrame the window manager's
// decoration frame (the root's direct child) is measured instead.
func ActiveWindowRect(includeFrame bool) (image.Rectangle, error) {
	conn, root, err := connectX()
	if err != nil {
		return image.Rectangle{}, err
	}
	defer conn.Close()

	atom, err := xproto.InternAtom(conn, true, uint16(len(netActiveWindow)), netActiveWindow).Reply()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("intern %s: %w", netActiveWindow, err)
	}
	if atom.Atom == xproto.AtomNone {
		return image.Rectangle{}, ErrNoActiveWindow
	}
	prop, err := xproto.GetProperty(conn, false, root, atom.Atom, xproto.AtomWindow, 0, 1).Reply()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("get %s: %w", netActiveWindow, err)
	}
	if prop == nil || len(prop.Value) < 4 {
		return image.Rectangle{}, ErrNoActiveWindow
	}
	win := xproto.Window(xgb.Get32(prop.Value))
	if win == 0 || win == root {
		return image.Rectangle{}, ErrNoActiveWindow
	}
	if includeFrame {
		win = topLevel(conn, root, win)
	}
	geom, err := xproto.GetGeometry(conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("window geometry: %w", err)
	}
	pos, err := xproto.TranslateCoordinates(conn, win, root, 0, 0).Reply()
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("translate coordinates: %w", err)
	}
	x, y := int(pos.DstX), int(pos.DstY)
	return image.Rect(x, y, x+int(geom.Width), y+int(geom.Height)), nil
}

// topLevel walks up the tree until the parent is the root window.
func topLevel(conn *xgb.Conn, root, win xproto.Window) xproto.Window {
	for {
		tree, err := xproto.QueryTree(conn, win).Reply()
		if err != nil || tree.Parent == root || tree.Parent == 0 {
			return win
		}
		win = tree.Parent
	}
}

// CurrentCursor reads the pointer sprite through the XFixes extension.
func CurrentCursor() (Cursor, error) {
	conn, root, err := connectX()
	if err != nil {
		return Cursor{}, err
	}
	defer conn.Close()

	if err := xfixes.Init(conn); err != nil {
		return pointerOnly(conn, root)
	}
	if _, err := xfixes.QueryVersion(conn, 4, 0).Reply(); err != nil {
		return pointerOnly(conn, root)
	}
	reply, err := xfixes.GetCursorImage(conn).Reply()
	if err != nil {
		return pointerOnly(conn, root)
	}
	w, h := int(reply.Width), int(reply.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, px := range reply.CursorImage {
		if i >= w*h {
			break
		}
		// premultiplied ARGB, same convention as image.RGBA
		img.SetRGBA(i%w, i/w, color.RGBA{
			R: uint8(px >> 16),
			G: uint8(px >> 8),
			B: uint8(px),
			A: uint8(px >> 24),
		})
	}
	return Cursor{
		Image:    img,
		Hotspot:  image.Pt(int(reply.Xhot), int(reply.Yhot)),
		Position: image.Pt(int(reply.X), int(reply.Y)),
	}, nil
}

// pointerOnly pairs the built-in arrow with the core protocol pointer position.
func pointerOnly(conn *xgb.Conn, root xproto.Window) (Cursor, error) {
	ptr, err := xproto.QueryPointer(conn, root).Reply()
	if err != nil {
		return Cursor{}, fmt.Errorf("query pointer: %w", err)
	}
	return Cursor{Image: ArrowCursor(), Position: image.Pt(int(ptr.RootX), int(ptr.RootY))}, nil
}
