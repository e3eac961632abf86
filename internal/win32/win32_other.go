//go:build !windows

package win32

import (
	"image"

	"github.com/OsbornePro/skypelogin/internal/window"
)

func TopLevelWindows() ([]window.Info, error) {
	return nil, ErrUnsupported
}

func WindowText(window.Handle) string {
	return ""
}

func ClassName(window.Handle) (string, error) {
	return "", ErrUnsupported
}

func Foreground() window.Handle {
	return 0
}

func SetForeground(window.Handle) error {
	return ErrUnsupported
}

func FirstChild(window.Handle) window.Handle {
	return 0
}

func ClientRect(window.Handle) (image.Rectangle, error) {
	return image.Rectangle{}, ErrUnsupported
}

func WindowRect(window.Handle) (image.Rectangle, error) {
	return image.Rectangle{}, ErrUnsupported
}

func Move(window.Handle, int, int, int, int) error {
	return ErrUnsupported
}

func Minimize(window.Handle) error {
	return ErrUnsupported
}

func ClientToScreen(window.Handle, int, int) (int, int, error) {
	return 0, 0, ErrUnsupported
}

func PostMessage(window.Handle, uint32, uintptr, uintptr) error {
	return ErrUnsupported
}

func IsWindow(window.Handle) bool {
	return false
}
