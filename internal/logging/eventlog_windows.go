//go:build windows

package logging

import (
	"github.com/kardianos/service"
	"github.com/sirupsen/logrus"
)

type eventLogHook struct {
	logger service.Logger
	redact *redactor
}

// newEventLogHook returns a logrus hook writing to the Windows Event Log
// under the given source name.
func newEventLogHook(name string, r *redactor) (logrus.Hook, error) {
	// Create a dummy service.Config so we can get a logger bound to the name.
	cfg := &service.Config{
		Name:        name,
		DisplayName: name,
		Description: name,
	}

	// Not installed, just used for logging.
	svc, err := service.New(nil, cfg)
	if err != nil {
		return nil, err
	}

	logger, err := svc.Logger(nil)
	if err != nil {
		return nil, err
	}

	return &eventLogHook{logger: logger, redact: r}, nil
}

// Levels: the event log only gets warnings and worse.
func (h *eventLogHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
}

func (h *eventLogHook) Fire(e *logrus.Entry) error {
	line, _ := e.String()
	line = h.redact.line(line)

	switch e.Level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return h.logger.Error(line)
	case logrus.WarnLevel:
		return h.logger.Warning(line)
	default:
		return h.logger.Info(line)
	}
}
