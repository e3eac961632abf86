package login

import "errors"

var (
	// ErrLoginFailed means the login layout was still showing after the
	// credentials were submitted. The window has been minimized.
	ErrLoginFailed = errors.New("login failed: login screen still showing")

	// ErrNotLoginScreen means the new window did not open on the login
	// layout, usually because the account is already signed in.
	ErrNotLoginScreen = errors.New("window is not showing the login screen")

	// ErrNoWindow means no new Skype window appeared after launch.
	ErrNoWindow = errors.New("no new Skype window appeared")

	// ErrNoInnerWidget means the new window never came to the foreground
	// with its child widget in place.
	ErrNoInnerWidget = errors.New("skype window has no inner widget")

	// ErrWindowClosed means the window was destroyed before the result
	// could be checked.
	ErrWindowClosed = errors.New("skype window closed during login")
)
