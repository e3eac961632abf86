// Package dialog shows the few native dialogs skypelogin needs: picking the
// executable and reporting the outcome.
package dialog

import (
	"errors"
	"os"
	"unicode/utf16"
)

// ErrCancelled is returned when the user closes the file dialog without
// choosing a file.
var ErrCancelled = errors.New("no file selected")

// Title is the caption used for every dialog.
const Title = "skypelogin"

// Options for OpenExecutable.
type Options struct {
	Title      string
	InitialDir string
}

// usableDir returns dir when it is an existing directory, else "".
func usableDir(dir string) string {
	if dir == "" {
		return ""
	}
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		return ""
	}
	return dir
}

// filterUTF16 builds a double-NUL terminated filter list from
// description/pattern pairs.
func filterUTF16(pairs ...string) []uint16 {
	var out []uint16
	for _, s := range pairs {
		out = append(out, utf16.Encode([]rune(s))...)
		out = append(out, 0)
	}
	return append(out, 0)
}
