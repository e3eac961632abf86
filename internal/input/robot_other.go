//go:build !windows

package input

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/OsbornePro/skypelogin/internal/win32"
)

func newRobot(time.Duration, logrus.FieldLogger) (Backend, error) {
	return nil, win32.ErrUnsupported
}
