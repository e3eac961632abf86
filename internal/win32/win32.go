// Package win32 wraps the user32 window calls used to find, size and drive
// the Skype window. Every call fails with ErrUnsupported off Windows.
package win32

import (
	"errors"
	"image"

	"github.com/OsbornePro/skypelogin/internal/window"
)

// ErrUnsupported is returned on platforms without a Win32 window manager.
var ErrUnsupported = errors.New("win32: not supported on this platform")

// Window messages posted to the target.
const (
	WM_KEYDOWN     = 0x0100
	WM_CHAR        = 0x0102
	WM_MOUSEMOVE   = 0x0200
	WM_LBUTTONDOWN = 0x0201
	WM_LBUTTONUP   = 0x0202

	MK_LBUTTON = 0x0001
)

// MakeLParam packs client coordinates the way mouse messages expect
// (x in the low word, y in the high word).
func MakeLParam(x, y int) uintptr {
	return uintptr(uint32(uint16(int16(x))) | uint32(uint16(int16(y)))<<16)
}

// Desktop adapts the package functions to the login runner.
type Desktop struct{}

func (Desktop) Windows() ([]window.Info, error) {
	return TopLevelWindows()
}

func (Desktop) Foreground() window.Handle {
	return Foreground()
}

func (Desktop) SetForeground(h window.Handle) error {
	return SetForeground(h)
}

func (Desktop) FirstChild(h window.Handle) window.Handle {
	return FirstChild(h)
}

func (Desktop) ClassName(h window.Handle) (string, error) {
	return ClassName(h)
}

func (Desktop) ClientSize(h window.Handle) (int, int, error) {
	r, err := ClientRect(h)
	if err != nil {
		return 0, 0, err
	}
	return r.Dx(), r.Dy(), nil
}

func (Desktop) Move(h window.Handle, x, y, w, hgt int) error {
	return Move(h, x, y, w, hgt)
}

func (Desktop) Minimize(h window.Handle) error {
	return Minimize(h)
}

func (Desktop) ScreenRect(h window.Handle) (image.Rectangle, error) {
	return WindowRect(h)
}

func (Desktop) IsWindow(h window.Handle) bool {
	return IsWindow(h)
}
