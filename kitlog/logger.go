// Package kitlog exposes a Sender as a go-kit log.Logger, so structured log
// events flow to a remote collector through the usual level-decorated
// pipeline.
package kitlog

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/embedlog/syslog"
)

// SeveritySelector inspects the keyvals of one log event and selects the
// syslog severity it is sent at.
type SeveritySelector func(keyvals ...interface{}) syslog.Severity

// NewSyslogLogger returns a Logger that sends each event through s. The
// datagram body is the event rendered by the Logger returned by newLogger,
// for example log.NewLogfmtLogger, with any trailing newline trimmed.
func NewSyslogLogger(s *syslog.Sender, newLogger func(io.Writer) log.Logger, options ...Option) log.Logger {
	l := &syslogLogger{
		sender:    s,
		newLogger: newLogger,
		selector:  defaultSeveritySelector,
		bufPool: sync.Pool{New: func() interface{} {
			return &loggerBuf{}
		}},
	}
	for _, option := range options {
		option(l)
	}
	return l
}

type syslogLogger struct {
	sender    *syslog.Sender
	newLogger func(io.Writer) log.Logger
	selector  SeveritySelector
	bufPool   sync.Pool
}

func (l *syslogLogger) Log(keyvals ...interface{}) error {
	severity := l.selector(keyvals...)

	lb := l.getLoggerBuf()
	defer l.putLoggerBuf(lb)
	if err := lb.logger.Log(keyvals...); err != nil {
		return err
	}
	line := strings.TrimRight(lb.buf.String(), "\n")
	return l.sender.Log(severity, line, syslog.Overrides{})
}

type loggerBuf struct {
	buf    *bytes.Buffer
	logger log.Logger
}

func (l *syslogLogger) getLoggerBuf() *loggerBuf {
	lb := l.bufPool.Get().(*loggerBuf)
	if lb.buf == nil {
		lb.buf = &bytes.Buffer{}
		lb.logger = l.newLogger(lb.buf)
	} else {
		lb.buf.Reset()
	}
	return lb
}

func (l *syslogLogger) putLoggerBuf(lb *loggerBuf) {
	l.bufPool.Put(lb)
}

// Option sets a parameter for syslog loggers.
type Option func(*syslogLogger)

// SeveritySelectorOption sets the function that chooses a severity per
// event.
func SeveritySelectorOption(selector SeveritySelector) Option {
	return func(l *syslogLogger) { l.selector = selector }
}

// defaultSeveritySelector maps the go-kit level keyval onto the matching
// syslog severity. Events with no level are sent at SevInfo.
func defaultSeveritySelector(keyvals ...interface{}) syslog.Severity {
	for i := 0; i < len(keyvals); i += 2 {
		if keyvals[i] == level.Key() {
			if v, ok := keyvals[i+1].(level.Value); ok {
				switch v {
				case level.DebugValue():
					return syslog.SevDebug
				case level.InfoValue():
					return syslog.SevInfo
				case level.WarnValue():
					return syslog.SevWarning
				case level.ErrorValue():
					return syslog.SevErr
				}
			}
		}
	}
	return syslog.SevInfo
}
