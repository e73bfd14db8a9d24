package syslog

import "github.com/pkg/errors"

// ErrClosed is returned by Log and the severity shortcuts after Close. No
// datagram is sent.
var ErrClosed = errors.New("syslog: sender is closed")

// ErrPriority is returned when looking up a facility or severity by a name
// that is not designated by RFC 3164.
var ErrPriority = errors.New("syslog: not a designated priority")

// TransportError reports a failure to resolve, dial, send on, or close the
// underlying transport. It is surfaced to the caller unchanged and never
// retried.
type TransportError struct {
	Op  string // "dial", "send", or "close"
	Err error
}

func (e *TransportError) Error() string {
	return "syslog: " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// EncodingError reports a message whose formatted wire line cannot be
// encoded as a datagram payload. It is surfaced before any send attempt.
type EncodingError struct {
	Line string // the offending formatted line
}

func (e *EncodingError) Error() string {
	return "syslog: message is not encodable"
}
