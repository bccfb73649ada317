//go:build windows

package screenshot

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
	procGetWindowRect       = user32.NewProc("GetWindowRect")
	procGetClientRect       = user32.NewProc("GetClientRect")
	procClientToScreen      = user32.NewProc("ClientToScreen")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type point struct {
	X, Y int32
}

// ActiveWindowRect returns the foreground window bounds. Without the frame
// only the client area is measured.
func ActiveWindowRect(includeFrame bool) (image.Rectangle, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return image.Rectangle{}, ErrNoActiveWindow
	}
	if includeFrame {
		var r rect
		ok, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
		if ok == 0 {
			return image.Rectangle{}, fmt.Errorf("GetWindowRect: %w", err)
		}
		return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)), nil
	}
	var r rect
	ok, _, err := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return image.Rectangle{}, fmt.Errorf("GetClientRect: %w", err)
	}
	origin := point{}
	ok, _, err = procClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&origin)))
	if ok == 0 {
		return image.Rectangle{}, fmt.Errorf("ClientToScreen: %w", err)
	}
	x, y := int(origin.X), int(origin.Y)
	return image.Rect(x, y, x+int(r.Right-r.Left), y+int(r.Bottom-r.Top)), nil
}

// CurrentCursor pairs the built-in arrow with the pointer position.
func CurrentCursor() (Cursor, error) {
	var p point
	ok, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ok == 0 {
		return Cursor{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return Cursor{Image: ArrowCursor(), Position: image.Pt(int(p.X), int(p.Y))}, nil
}
