// internal/input/message.go
package input

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/OsbornePro/skypelogin/internal/keymap"
	"github.com/OsbornePro/skypelogin/internal/layout"
	"github.com/OsbornePro/skypelogin/internal/win32"
	"github.com/OsbornePro/skypelogin/internal/window"
)

// Message posts window messages straight into the target's queue, so the
// cursor and the real keyboard are left alone.
type Message struct {
	pace time.Duration
	log  logrus.FieldLogger

	post       func(h window.Handle, msg uint32, wparam, lparam uintptr) error
	foreground func(h window.Handle) error
}

func NewMessage(pace time.Duration, log logrus.FieldLogger) *Message {
	return &Message{
		pace:       pace,
		log:        log,
		post:       win32.PostMessage,
		foreground: win32.SetForeground,
	}
}

func (m *Message) activate(h window.Handle) {
	if err := m.foreground(h); err != nil {
		m.log.WithError(err).Debug("set foreground refused")
	}
}

func (m *Message) Click(ctx context.Context, h window.Handle, p layout.Point) error {
	lparam := win32.MakeLParam(p.X, p.Y)
	m.activate(h)

	steps := []struct {
		msg    uint32
		wparam uintptr
	}{
		{win32.WM_MOUSEMOVE, 1},
		{win32.WM_LBUTTONDOWN, win32.MK_LBUTTON},
		{win32.WM_LBUTTONUP, win32.MK_LBUTTON},
	}
	for _, s := range steps {
		if err := m.post(h, s.msg, s.wparam, lparam); err != nil {
			return fmt.Errorf("click (%d,%d): %w", p.X, p.Y, err)
		}
		if err := sleep(ctx, m.pace); err != nil {
			return err
		}
	}
	return nil
}

// TypeLine posts one WM_CHAR per rune, then Enter.
func (m *Message) TypeLine(ctx context.Context, h window.Handle, text string) error {
	m.activate(h)
	for _, r := range text {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.post(h, win32.WM_CHAR, uintptr(r), 0); err != nil {
			return fmt.Errorf("type: %w", err)
		}
	}
	return m.Press(ctx, h, "enter")
}

// Press posts WM_KEYDOWN only; Skype acts on the key-down.
func (m *Message) Press(ctx context.Context, h window.Handle, key string) error {
	vk := keymap.Code(key)
	if vk == 0 {
		return fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
	}
	if err := m.post(h, win32.WM_KEYDOWN, uintptr(vk), 0); err != nil {
		return fmt.Errorf("press %s: %w", key, err)
	}
	return nil
}
