package syslog

import (
	"net"
	"strings"
	"time"
	"unicode/utf8"
)

// Dialer dials a network and address. net.Dial is a good default Dialer.
type Dialer func(network, address string) (net.Conn, error)

// DefaultAddress is the conventional syslog endpoint on the local host,
// port 514. It is a placeholder, not a production default.
const DefaultAddress = "127.0.0.1:514"

// A Sender transmits formatted messages to a remote collector, one datagram
// per message, fire and forget. Delivery is never acknowledged and sends are
// never retried; every failure is the caller's to handle.
//
// A Sender holds no lock. Callers in concurrent hosts must serialize access
// to a given Sender, for example with one mutex per Sender or by confining
// each Sender to a single goroutine.
type Sender struct {
	conn      net.Conn
	formatter Formatter
}

// Option sets a parameter for a Sender at construction time.
type Option func(*Sender)

// WithFacility sets the facility encoded into every message. The default is
// FacUser.
func WithFacility(f Facility) Option {
	return func(s *Sender) { s.formatter.Facility = f }
}

// WithTag sets the default tag prefixed to every message body.
func WithTag(tag string) Option {
	return func(s *Sender) { s.formatter.Tag = tag }
}

// WithHostname sets the default hostname carried in the message header.
func WithHostname(hostname string) Option {
	return func(s *Sender) { s.formatter.Hostname = hostname }
}

// WithoutTimestamp disables the header timestamp, which is enabled by
// default.
func WithoutTimestamp() Option {
	return func(s *Sender) { s.formatter.Timestamp = false }
}

// WithClock sets the time source used for header timestamps. The default is
// time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Sender) { s.formatter.Now = now }
}

// New returns a Sender that writes each message to conn, which should be a
// datagram connection already resolved to the collector's address. The
// Sender takes ownership of conn: Close closes it.
func New(conn net.Conn, options ...Option) *Sender {
	s := &Sender{
		conn: conn,
		formatter: Formatter{
			Facility:  FacUser,
			Timestamp: true,
		},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Dial resolves address on network (typically "udp" and "host:514";
// DefaultAddress reaches a collector on the local host) and returns a
// Sender over the resulting connection. Resolution happens once,
// here; a bad host or port surfaces as a *TransportError.
func Dial(network, address string, options ...Option) (*Sender, error) {
	return DialWith(net.Dial, network, address, options...)
}

// DialWith is Dial with an explicit Dialer, for hosts that supply their own
// transport.
func DialWith(dial Dialer, network, address string, options ...Option) (*Sender, error) {
	conn, err := dial(network, address)
	if err != nil {
		return nil, &TransportError{Op: "dial", Err: err}
	}
	return New(conn, options...), nil
}

// Log formats a message at the given severity and transmits it as a single
// datagram. Fields of o, when non-nil, replace the Sender's defaults for
// this call only; the defaults themselves are never mutated.
//
// Log returns ErrClosed after Close, a *EncodingError if the formatted line
// is not encodable (nothing is sent), or a *TransportError if the send
// fails.
func (s *Sender) Log(severity Severity, message string, o Overrides) error {
	if s.conn == nil {
		return ErrClosed
	}
	line := s.formatter.Format(severity, message, o)
	if !encodable(line) {
		return &EncodingError{Line: line}
	}
	if _, err := s.conn.Write([]byte(line)); err != nil {
		return &TransportError{Op: "send", Err: err}
	}
	return nil
}

// Alert sends message at SevAlert with the Sender's defaults.
func (s *Sender) Alert(message string) error { return s.Log(SevAlert, message, Overrides{}) }

// Critical sends message at SevCrit with the Sender's defaults.
func (s *Sender) Critical(message string) error { return s.Log(SevCrit, message, Overrides{}) }

// Error sends message at SevErr with the Sender's defaults.
func (s *Sender) Error(message string) error { return s.Log(SevErr, message, Overrides{}) }

// Warning sends message at SevWarning with the Sender's defaults.
func (s *Sender) Warning(message string) error { return s.Log(SevWarning, message, Overrides{}) }

// Notice sends message at SevNotice with the Sender's defaults.
func (s *Sender) Notice(message string) error { return s.Log(SevNotice, message, Overrides{}) }

// Info sends message at SevInfo with the Sender's defaults.
func (s *Sender) Info(message string) error { return s.Log(SevInfo, message, Overrides{}) }

// Debug sends message at SevDebug with the Sender's defaults.
func (s *Sender) Debug(message string) error { return s.Log(SevDebug, message, Overrides{}) }

// Close releases the transport. It is idempotent: the second and later
// calls return nil without touching the transport again. Use defer to
// guarantee release on every exit path:
//
//	s, err := syslog.Dial("udp", "collector:514")
//	if err != nil {
//		return err
//	}
//	defer s.Close()
func (s *Sender) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	if err != nil {
		return &TransportError{Op: "close", Err: err}
	}
	return nil
}

// encodable reports whether line can travel as a datagram payload: valid
// UTF-8 with no NUL bytes, which many collectors treat as a terminator.
func encodable(line string) bool {
	return utf8.ValidString(line) && !strings.ContainsRune(line, 0)
}
