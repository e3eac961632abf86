// Package launcher starts the Skype executable and watches the process.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"

	ps "github.com/mitchellh/go-ps"
)

// ErrNotSkype is returned when the chosen file is not the expected executable.
var ErrNotSkype = errors.New("not a Skype executable")

var pathSep = regexp.MustCompile(`[\/\\]+`)

// Args returns the command-line arguments for a launch. A second instance
// needs secondaryFlag or Skype just focuses the running one.
func Args(secondaryFlag string, secondary bool) []string {
	if !secondary || secondaryFlag == "" {
		return nil
	}
	return []string{secondaryFlag}
}

// BaseName returns the last element of a Windows or Unix style path.
func BaseName(path string) string {
	parts := pathSep.Split(path, -1)
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// ValidateExecutable checks the base name of path against pattern.
func ValidateExecutable(path, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("executable pattern: %w", err)
	}
	base := BaseName(path)
	if base == "" || !re.MatchString(base) {
		return fmt.Errorf("%w: %q", ErrNotSkype, path)
	}
	return nil
}

// Launcher starts processes. The zero value is ready to use.
type Launcher struct {
	SecondaryFlag string
}

// Launch starts exe without waiting for it and returns its pid.
func (l Launcher) Launch(exe string, secondary bool) (int, error) {
	cmd := exec.Command(exe, Args(l.SecondaryFlag, secondary)...)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", exe, err)
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("release pid %d: %w", pid, err)
	}
	return pid, nil
}

// Running reports whether pid is still in the process table.
func (Launcher) Running(pid int) bool {
	return Running(pid)
}

// Running reports whether pid is still in the process table.
func Running(pid int) bool {
	if pid <= 0 {
		return false
	}
	p, err := ps.FindProcess(pid)
	return err == nil && p != nil
}
