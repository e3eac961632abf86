// Package input delivers synthetic clicks and keystrokes to a window.
package input

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/OsbornePro/skypelogin/internal/layout"
	"github.com/OsbornePro/skypelogin/internal/window"
)

// ErrUnknownBackend is returned by New for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown input backend")

// ErrUnsupportedKey is returned when a key name has no mapping.
var ErrUnsupportedKey = errors.New("unsupported key")

// Backend names.
const (
	BackendMessage = "message"
	BackendRobotgo = "robotgo"
)

// Backend sends input to a window. Coordinates are client-area pixels.
type Backend interface {
	// Click performs a left click at p.
	Click(ctx context.Context, h window.Handle, p layout.Point) error
	// TypeLine types text followed by Enter.
	TypeLine(ctx context.Context, h window.Handle, text string) error
	// Press taps the named key (see keymap) once.
	Press(ctx context.Context, h window.Handle, key string) error
}

// New returns the backend called name. pace is the pause between the parts
// of a click.
func New(name string, pace time.Duration, log logrus.FieldLogger) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendMessage:
		return NewMessage(pace, log), nil
	case BackendRobotgo:
		return newRobot(pace, log)
	default:
		return nil, fmt.Errorf("%w: %q (use %q or %q)", ErrUnknownBackend, name, BackendMessage, BackendRobotgo)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	return window.Sleep(ctx, d)
}
