//go:build !windows

package logging

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// newEventLogHook is only available on Windows.
func newEventLogHook(name string, r *redactor) (logrus.Hook, error) {
	return nil, errors.New("event log is only supported on windows")
}
