//go:build !windows

package dialog

import (
	"errors"
	"fmt"
	"os"
)

// OpenExecutable has no picker off Windows; pass --exe instead.
func OpenExecutable(Options) (string, error) {
	return "", errors.New("file dialog not supported on this platform; use --exe")
}

func Error(msg string) { fmt.Fprintln(os.Stderr, "error:", msg) }

func Info(msg string) { fmt.Fprintln(os.Stderr, msg) }
