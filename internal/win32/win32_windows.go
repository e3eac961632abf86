// internal/win32/win32_windows.go
//go:build windows

package win32

import (
	"fmt"
	"image"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/OsbornePro/skypelogin/internal/window"
)

// Shared WinAPI DLL/proc handles. Define them ONCE.
var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows          = user32.NewProc("EnumWindows")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetClassNameW        = user32.NewProc("GetClassNameW")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow  = user32.NewProc("SetForegroundWindow")
	procFindWindowExW        = user32.NewProc("FindWindowExW")
	procGetClientRect        = user32.NewProc("GetClientRect")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procMoveWindow           = user32.NewProc("MoveWindow")
	procCloseWindow          = user32.NewProc("CloseWindow")
	procClientToScreen       = user32.NewProc("ClientToScreen")
	procPostMessageW         = user32.NewProc("PostMessageW")
	procIsWindow             = user32.NewProc("IsWindow")
)

type point struct {
	X, Y int32
}

// EnumWindows callbacks are a limited resource, so one is created for the
// process and fed through enumMu/enumOut.
var (
	enumMu   sync.Mutex
	enumOut  []window.Handle
	enumOnce sync.Once
	enumCB   uintptr
)

func enumCallback() uintptr {
	enumOnce.Do(func() {
		enumCB = windows.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
			enumOut = append(enumOut, window.Handle(hwnd))
			return 1 // continue enumeration
		})
	})
	return enumCB
}

// TopLevelWindows lists every top-level window with its title and class.
func TopLevelWindows() ([]window.Info, error) {
	enumMu.Lock()
	enumOut = enumOut[:0]
	r1, _, err := procEnumWindows.Call(enumCallback(), 0)
	handles := append([]window.Handle(nil), enumOut...)
	enumMu.Unlock()

	if r1 == 0 && err != windows.ERROR_SUCCESS {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}

	out := make([]window.Info, 0, len(handles))
	for _, h := range handles {
		class, _ := ClassName(h)
		out = append(out, window.Info{Handle: h, Title: WindowText(h), Class: class})
	}
	return out, nil
}

// WindowText returns the window title, or "" when it has none.
func WindowText(h window.Handle) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(n+1),
	)
	return windows.UTF16ToString(buf)
}

func ClassName(h window.Handle) (string, error) {
	var buf [256]uint16
	r1, _, err := procGetClassNameW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if r1 == 0 {
		if err != windows.ERROR_SUCCESS {
			return "", fmt.Errorf("GetClassNameW: %w", err)
		}
		return "", fmt.Errorf("GetClassNameW returned 0")
	}
	return windows.UTF16ToString(buf[:r1]), nil
}

func Foreground() window.Handle {
	r1, _, _ := procGetForegroundWindow.Call()
	return window.Handle(r1)
}

// SetForeground asks Windows to activate h. Windows may refuse when another
// process holds the foreground lock.
func SetForeground(h window.Handle) error {
	r1, _, err := procSetForegroundWindow.Call(uintptr(h))
	if r1 == 0 {
		return fmt.Errorf("SetForegroundWindow(%v): %v", h, err)
	}
	return nil
}

// FirstChild returns the first child window of h, or 0.
func FirstChild(h window.Handle) window.Handle {
	r1, _, _ := procFindWindowExW.Call(uintptr(h), 0, 0, 0)
	return window.Handle(r1)
}

// ClientRect returns the client area; Min is always (0,0).
func ClientRect(h window.Handle) (image.Rectangle, error) {
	var r windows.Rect
	r1, _, err := procGetClientRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if r1 == 0 {
		return image.Rectangle{}, fmt.Errorf("GetClientRect(%v): %v", h, err)
	}
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)), nil
}

// WindowRect returns the window bounds in screen coordinates.
func WindowRect(h window.Handle) (image.Rectangle, error) {
	var r windows.Rect
	r1, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if r1 == 0 {
		return image.Rectangle{}, fmt.Errorf("GetWindowRect(%v): %v", h, err)
	}
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)), nil
}

// Move positions and sizes h, repainting it.
func Move(h window.Handle, x, y, w, hgt int) error {
	r1, _, err := procMoveWindow.Call(uintptr(h), uintptr(x), uintptr(y), uintptr(w), uintptr(hgt), 1)
	if r1 == 0 {
		return fmt.Errorf("MoveWindow(%v): %v", h, err)
	}
	return nil
}

// Minimize calls CloseWindow, which minimizes rather than destroys.
func Minimize(h window.Handle) error {
	r1, _, err := procCloseWindow.Call(uintptr(h))
	if r1 == 0 {
		return fmt.Errorf("CloseWindow(%v): %v", h, err)
	}
	return nil
}

func ClientToScreen(h window.Handle, x, y int) (int, int, error) {
	p := point{X: int32(x), Y: int32(y)}
	r1, _, err := procClientToScreen.Call(uintptr(h), uintptr(unsafe.Pointer(&p)))
	if r1 == 0 {
		return 0, 0, fmt.Errorf("ClientToScreen(%v): %v", h, err)
	}
	return int(p.X), int(p.Y), nil
}

func PostMessage(h window.Handle, msg uint32, wparam, lparam uintptr) error {
	r1, _, err := procPostMessageW.Call(uintptr(h), uintptr(msg), wparam, lparam)
	if r1 == 0 {
		return fmt.Errorf("PostMessageW(%v, 0x%04X): %v", h, msg, err)
	}
	return nil
}

func IsWindow(h window.Handle) bool {
	r1, _, _ := procIsWindow.Call(uintptr(h))
	return r1 != 0
}
