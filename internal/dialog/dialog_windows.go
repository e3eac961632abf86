//go:build windows

package dialog

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const maxPath = 32 * 1024

// OpenExecutable asks for an .exe with the common file dialog.
func OpenExecutable(opts Options) (string, error) {
	buf := make([]uint16, maxPath)
	filter := filterUTF16("Executables (*.exe)", "*.exe", "All files", "*.*")

	ofn := win.OPENFILENAME{
		LpstrFilter:  &filter[0],
		NFilterIndex: 1,
		LpstrFile:    &buf[0],
		NMaxFile:     uint32(len(buf)),
		Flags:        win.OFN_FILEMUSTEXIST | win.OFN_PATHMUSTEXIST | win.OFN_NOCHANGEDIR | win.OFN_EXPLORER,
	}
	ofn.LStructSize = uint32(unsafe.Sizeof(ofn))

	title := opts.Title
	if title == "" {
		title = Title
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return "", err
	}
	ofn.LpstrTitle = titlePtr

	if dir := usableDir(opts.InitialDir); dir != "" {
		dirPtr, err := windows.UTF16PtrFromString(dir)
		if err != nil {
			return "", err
		}
		ofn.LpstrInitialDir = dirPtr
	}

	if !win.GetOpenFileName(&ofn) {
		if code := win.CommDlgExtendedError(); code != 0 {
			return "", fmt.Errorf("GetOpenFileName failed: 0x%X", code)
		}
		return "", ErrCancelled
	}
	return windows.UTF16ToString(buf), nil
}

// Error shows a modal error box.
func Error(msg string) {
	show(msg, win.MB_OK|win.MB_ICONERROR)
}

// Info shows a modal information box.
func Info(msg string) {
	show(msg, win.MB_OK|win.MB_ICONINFORMATION)
}

func show(msg string, flags uint32) {
	text, err := windows.UTF16PtrFromString(msg)
	if err != nil {
		return
	}
	caption, _ := windows.UTF16PtrFromString(Title)
	win.MessageBox(0, text, caption, flags|win.MB_SETFOREGROUND)
}
