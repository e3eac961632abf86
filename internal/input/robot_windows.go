//go:build windows

package input

import (
	"context"
	"fmt"
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/sirupsen/logrus"

	"github.com/OsbornePro/skypelogin/internal/keymap"
	"github.com/OsbornePro/skypelogin/internal/layout"
	"github.com/OsbornePro/skypelogin/internal/win32"
	"github.com/OsbornePro/skypelogin/internal/window"
)

// robot drives the real cursor and keyboard through robotgo. It needs the
// target in the foreground and is a fallback for builds of Skype that
// ignore posted messages.
type robot struct {
	pace time.Duration
	log  logrus.FieldLogger
}

func newRobot(pace time.Duration, log logrus.FieldLogger) (Backend, error) {
	return &robot{pace: pace, log: log}, nil
}

func (r *robot) activate(ctx context.Context, h window.Handle) error {
	if err := win32.SetForeground(h); err != nil {
		r.log.WithError(err).Debug("set foreground refused")
	}
	return sleep(ctx, r.pace)
}

func (r *robot) Click(ctx context.Context, h window.Handle, p layout.Point) error {
	if err := r.activate(ctx, h); err != nil {
		return err
	}
	x, y, err := win32.ClientToScreen(h, p.X, p.Y)
	if err != nil {
		return err
	}
	robotgo.Move(x, y)
	if err := sleep(ctx, r.pace); err != nil {
		return err
	}
	robotgo.Click("left")
	return sleep(ctx, r.pace)
}

func (r *robot) TypeLine(ctx context.Context, h window.Handle, text string) error {
	if err := r.activate(ctx, h); err != nil {
		return err
	}
	for _, c := range text {
		robotgo.TypeStr(string(c))
		if err := sleep(ctx, 30*time.Millisecond); err != nil {
			return err
		}
	}
	return r.Press(ctx, h, "enter")
}

func (r *robot) Press(ctx context.Context, h window.Handle, key string) error {
	name := keymap.RobotName(key)
	if name == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
	}
	if err := robotgo.KeyTap(name); err != nil {
		return fmt.Errorf("robotgo key %s: %w", name, err)
	}
	return nil
}
