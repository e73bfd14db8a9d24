// Package logrushook provides a Logrus hook that forwards entries to a
// remote collector through a syslog Sender.
package logrushook

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/embedlog/syslog"
)

// Hook sends every fired Logrus entry through a Sender. The datagram body
// is the entry rendered by the logger's own formatter.
type Hook struct {
	sender *syslog.Sender
}

// New returns a Hook that forwards entries through s. The Hook does not own
// s; closing the Sender is still the caller's job.
func New(s *syslog.Sender) *Hook {
	return &Hook{sender: s}
}

// Levels reports that the hook fires for all Logrus levels.
func (h *Hook) Levels() []logrus.Level { return logrus.AllLevels }

// Fire renders entry and sends it at the matching syslog severity.
func (h *Hook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return errors.Wrap(err, "render entry")
	}
	line = strings.TrimRight(line, "\n")
	return h.sender.Log(severityOf(entry.Level), line, syslog.Overrides{})
}

func severityOf(level logrus.Level) syslog.Severity {
	switch level {
	case logrus.PanicLevel:
		return syslog.SevCrit
	case logrus.FatalLevel:
		return syslog.SevCrit
	case logrus.ErrorLevel:
		return syslog.SevErr
	case logrus.WarnLevel:
		return syslog.SevWarning
	case logrus.InfoLevel:
		return syslog.SevInfo
	default:
		return syslog.SevDebug
	}
}
