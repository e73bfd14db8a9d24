package kitlog_test

import (
	"net"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/embedlog/syslog"
	"github.com/embedlog/syslog/kitlog"
)

// spyConn records each Write as one datagram.
type spyConn struct {
	datagrams []string
}

func (c *spyConn) Read(b []byte) (int, error) { return 0, nil }

func (c *spyConn) Write(b []byte) (int, error) {
	c.datagrams = append(c.datagrams, string(b))
	return len(b), nil
}

func (c *spyConn) Close() error                       { return nil }
func (c *spyConn) LocalAddr() net.Addr                { return nil }
func (c *spyConn) RemoteAddr() net.Addr               { return nil }
func (c *spyConn) SetDeadline(t time.Time) error      { return nil }
func (c *spyConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *spyConn) SetWriteDeadline(t time.Time) error { return nil }

func TestDefaultSeveritySelector(t *testing.T) {
	conn := &spyConn{}
	s := syslog.New(conn, syslog.WithoutTimestamp())
	defer s.Close()

	logger := kitlog.NewSyslogLogger(s, log.NewLogfmtLogger)

	for _, tc := range []struct {
		log  func(log.Logger) log.Logger
		want string
	}{
		{level.Debug, "<15>level=debug msg=hello"},
		{level.Info, "<14>level=info msg=hello"},
		{level.Warn, "<12>level=warn msg=hello"},
		{level.Error, "<11>level=error msg=hello"},
	} {
		if err := tc.log(logger).Log("msg", "hello"); err != nil {
			t.Fatal(err)
		}
		if want, have := tc.want, conn.datagrams[len(conn.datagrams)-1]; want != have {
			t.Errorf("want %q, have %q", want, have)
		}
	}
}

func TestNoLevelDefaultsToInfo(t *testing.T) {
	conn := &spyConn{}
	s := syslog.New(conn, syslog.WithoutTimestamp())
	defer s.Close()

	logger := kitlog.NewSyslogLogger(s, log.NewLogfmtLogger)
	if err := logger.Log("msg", "hello"); err != nil {
		t.Fatal(err)
	}
	if want, have := "<14>msg=hello", conn.datagrams[0]; want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}

func TestSeveritySelectorOption(t *testing.T) {
	conn := &spyConn{}
	s := syslog.New(conn, syslog.WithoutTimestamp())
	defer s.Close()

	everythingIsCritical := func(keyvals ...interface{}) syslog.Severity {
		return syslog.SevCrit
	}
	logger := kitlog.NewSyslogLogger(s, log.NewLogfmtLogger,
		kitlog.SeveritySelectorOption(everythingIsCritical))

	if err := level.Debug(logger).Log("msg", "hello"); err != nil {
		t.Fatal(err)
	}
	if want, have := "<10>level=debug msg=hello", conn.datagrams[0]; want != have {
		t.Errorf("want %q, have %q", want, have)
	}
}
