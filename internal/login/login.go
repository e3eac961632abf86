// Package login drives one Skype login from launch to verification.
package login

import (
	"context"
	"errors"
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/OsbornePro/skypelogin/internal/config"
	"github.com/OsbornePro/skypelogin/internal/credential"
	"github.com/OsbornePro/skypelogin/internal/input"
	"github.com/OsbornePro/skypelogin/internal/layout"
	"github.com/OsbornePro/skypelogin/internal/window"
)

// Desktop is the window manager surface the runner needs.
type Desktop interface {
	Windows() ([]window.Info, error)
	Foreground() window.Handle
	SetForeground(h window.Handle) error
	FirstChild(h window.Handle) window.Handle
	ClassName(h window.Handle) (string, error)
	ClientSize(h window.Handle) (width, height int, err error)
	Move(h window.Handle, x, y, w, hgt int) error
	Minimize(h window.Handle) error
	ScreenRect(h window.Handle) (image.Rectangle, error)
	IsWindow(h window.Handle) bool
}

// Launcher starts the executable.
type Launcher interface {
	Launch(exe string, secondary bool) (pid int, err error)
	Running(pid int) bool
}

// SnapshotFunc saves a picture of rect under dir and returns the path.
type SnapshotFunc func(rect image.Rectangle, dir string) (string, error)

// Runner holds everything one login needs. Snapshot is optional.
type Runner struct {
	Desktop  Desktop
	Input    input.Backend
	Launcher Launcher
	Config   *config.Config
	Log      logrus.FieldLogger
	Snapshot SnapshotFunc
}

func (r *Runner) sleep(ctx context.Context, ms int) error {
	return window.Sleep(ctx, config.Ms(ms))
}

func (r *Runner) poll(ctx context.Context, check func(ctx context.Context) (bool, error)) error {
	return window.Poll(ctx, r.Config.PollInterval(), r.Config.PollAttempts, check)
}

// foreground asks for focus. Windows may refuse; posted input still lands.
func (r *Runner) foreground(h window.Handle) {
	if err := r.Desktop.SetForeground(h); err != nil {
		r.Log.WithError(err).WithField("hwnd", h).Debug("set foreground refused")
	}
}

// Run launches exe, finds its window and signs in with pair.
func (r *Runner) Run(ctx context.Context, exe string, pair credential.Pair) error {
	if !pair.Valid() {
		return credential.ErrEmptyField
	}
	m, err := window.NewMatcher(r.Config.TitlePattern, r.Config.ClassPattern)
	if err != nil {
		return err
	}

	h, err := r.Start(ctx, exe, m)
	if err != nil {
		return err
	}
	log := r.Log.WithField("hwnd", h)

	if err := r.sleep(ctx, r.Config.Delays.Settle); err != nil {
		return err
	}
	r.foreground(h)
	if cls, err := r.Desktop.ClassName(h); err == nil {
		log.WithField("class", cls).Info("skype window found")
	}
	if err := r.sleep(ctx, r.Config.Delays.Foreground); err != nil {
		return err
	}

	if err := r.WaitInner(ctx, h); err != nil {
		return err
	}

	kind, err := r.DetectLayout(ctx, h)
	if err != nil {
		return err
	}
	if kind != layout.Login {
		log.Info("not a login screen")
		return ErrNotLoginScreen
	}

	log.Info("login screen detected; entering credentials")
	if err := r.Navigate(ctx, h); err != nil {
		return err
	}
	if err := r.EnterCredentials(ctx, h, pair); err != nil {
		return err
	}
	return r.Verify(ctx, h)
}

// Start records the existing windows, launches exe and waits for the new
// window. A second instance is started with the secondary flag.
func (r *Runner) Start(ctx context.Context, exe string, m *window.Matcher) (window.Handle, error) {
	all, err := r.Desktop.Windows()
	if err != nil {
		return 0, fmt.Errorf("enumerate windows: %w", err)
	}
	before := m.Filter(all)
	secondary := len(before) > 0

	pid, err := r.Launcher.Launch(exe, secondary)
	if err != nil {
		return 0, err
	}
	r.Log.WithFields(logrus.Fields{
		"exe":       exe,
		"pid":       pid,
		"existing":  len(before),
		"secondary": secondary,
	}).Info("launched")

	var (
		found    window.Handle
		exitSeen bool
	)
	err = r.poll(ctx, func(context.Context) (bool, error) {
		all, err := r.Desktop.Windows()
		if err != nil {
			return false, fmt.Errorf("enumerate windows: %w", err)
		}
		if h, ok := window.NewHandle(before, m.Filter(all)); ok {
			found = h
			return true, nil
		}
		if !exitSeen && !r.Launcher.Running(pid) {
			exitSeen = true
			r.Log.WithField("pid", pid).Debug("launched process exited; waiting for the window it handed off to")
		}
		return false, nil
	})
	if errors.Is(err, window.ErrTimeout) {
		return 0, fmt.Errorf("%w after %d attempts", ErrNoWindow, r.Config.PollAttempts)
	}
	if err != nil {
		return 0, err
	}
	return found, nil
}

// WaitInner waits until h is in the foreground and has a child widget.
func (r *Runner) WaitInner(ctx context.Context, h window.Handle) error {
	var inner window.Handle
	err := r.poll(ctx, func(context.Context) (bool, error) {
		if r.Desktop.Foreground() != h {
			r.foreground(h)
			return false, nil
		}
		inner = r.Desktop.FirstChild(h)
		return inner != 0, nil
	})
	if errors.Is(err, window.ErrTimeout) {
		return fmt.Errorf("%w: %s after %d attempts", ErrNoInnerWidget, h, r.Config.PollAttempts)
	}
	if err != nil {
		return err
	}
	fields := logrus.Fields{"hwnd": h, "inner": inner}
	if cls, err := r.Desktop.ClassName(inner); err == nil {
		fields["inner_class"] = cls
	}
	r.Log.WithFields(fields).Debug("inner widget ready")
	return r.sleep(ctx, r.Config.Delays.InnerSettle)
}

// DetectLayout shrinks the window to the compact size and classifies it by
// its client width. A full layout is resized back to a usable size.
func (r *Runner) DetectLayout(ctx context.Context, h window.Handle) (layout.Kind, error) {
	ref := r.Config.Layout
	if err := r.sleep(ctx, r.Config.Delays.LayoutCheck); err != nil {
		return layout.Full, err
	}
	r.foreground(h)
	if err := r.Desktop.Move(h, 0, 0, ref.Compact.Width, ref.Compact.Height); err != nil {
		return layout.Full, fmt.Errorf("resize %s: %w", h, err)
	}
	if err := r.sleep(ctx, r.Config.Delays.Resize); err != nil {
		return layout.Full, err
	}
	r.foreground(h)

	width, height, err := r.Desktop.ClientSize(h)
	if err != nil {
		return layout.Full, fmt.Errorf("client size %s: %w", h, err)
	}
	kind := ref.Classify(width)
	r.Log.WithFields(logrus.Fields{
		"hwnd":   h,
		"width":  width,
		"height": height,
		"layout": kind,
	}).Debug("layout measured")

	if kind == layout.Full {
		if err := r.Desktop.Move(h, 0, 0, ref.Restore.Width, ref.Restore.Height); err != nil {
			return kind, fmt.Errorf("restore size %s: %w", h, err)
		}
	}
	return kind, nil
}

// Navigate clicks through the welcome pages to the account field.
func (r *Runner) Navigate(ctx context.Context, h window.Handle) error {
	p := r.Config.Points
	if err := r.sleep(ctx, r.Config.Delays.BeforeClicks); err != nil {
		return err
	}
	for _, pt := range []layout.Point{p.Start, p.Middle, p.OtherAccount, p.StartOrBuild} {
		if err := r.Input.Click(ctx, h, pt); err != nil {
			return err
		}
	}
	if err := r.sleep(ctx, r.Config.Delays.Navigate); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if err := r.Input.Click(ctx, h, p.AccountInput); err != nil {
			return err
		}
	}
	return r.sleep(ctx, r.Config.Delays.FocusInput)
}

// EnterCredentials types the account and the password, each followed by
// Enter, then backspaces over everything typed so nothing is left in a
// field if the page did not advance.
func (r *Runner) EnterCredentials(ctx context.Context, h window.Handle, pair credential.Pair) error {
	if err := r.Input.TypeLine(ctx, h, pair.Account); err != nil {
		return fmt.Errorf("type account: %w", err)
	}
	if err := r.sleep(ctx, r.Config.Delays.BetweenField); err != nil {
		return err
	}
	if err := r.Input.TypeLine(ctx, h, pair.Password); err != nil {
		return fmt.Errorf("type password: %w", err)
	}

	if err := r.sleep(ctx, r.Config.Delays.Erase); err != nil {
		return err
	}
	n := utf8.RuneCountInString(pair.Account) + utf8.RuneCountInString(pair.Password)
	for i := 0; i < n; i++ {
		if err := r.Input.Press(ctx, h, "back"); err != nil {
			return err
		}
	}
	if err := r.sleep(ctx, r.Config.Delays.Erase); err != nil {
		return err
	}
	return r.sleep(ctx, r.Config.Delays.Verify)
}

// Verify checks the layout again. If the login screen is still up it saves
// a snapshot when configured, minimizes the window and fails.
func (r *Runner) Verify(ctx context.Context, h window.Handle) error {
	if !r.Desktop.IsWindow(h) {
		return fmt.Errorf("%w: %s", ErrWindowClosed, h)
	}
	kind, err := r.DetectLayout(ctx, h)
	if err != nil {
		return err
	}
	if kind != layout.Login {
		r.Log.WithField("hwnd", h).Info("login complete")
		return nil
	}

	if dir := r.Config.FailureScreenshotDir; dir != "" && r.Snapshot != nil {
		rect, err := r.Desktop.ScreenRect(h)
		if err == nil {
			var path string
			path, err = r.Snapshot(rect, dir)
			if err == nil {
				r.Log.WithField("path", path).Info("failure screenshot saved")
			}
		}
		if err != nil {
			r.Log.WithError(err).Warn("failure screenshot")
		}
	}
	if err := r.Desktop.Minimize(h); err != nil {
		r.Log.WithError(err).WithField("hwnd", h).Warn("minimize window")
	}
	return ErrLoginFailed
}
