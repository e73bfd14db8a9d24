package syslog

import (
	"strconv"
	"strings"
	"time"
)

// Formatter assembles RFC 3164 wire lines. It performs no I/O and no
// sanitization: the message text passes through unmodified, newlines and
// all. The zero value formats kernel-facility lines with no timestamp, tag,
// or hostname.
type Formatter struct {
	// Facility is encoded into the <PRI> prefix of every line.
	Facility Facility

	// Tag, when non-empty, prefixes the message body as "Tag: ".
	Tag string

	// Hostname, when non-empty, appears in the header after the timestamp.
	Hostname string

	// Timestamp controls whether the header carries a "Mmm dd hh:mm:ss"
	// local timestamp.
	Timestamp bool

	// Now returns the current local time. If nil, time.Now is used.
	Now func() time.Time
}

// Overrides carries per-call replacements for a Formatter's tag, hostname,
// and timestamp settings. A nil field means "not passed": the Formatter's
// own value applies. A non-nil field wins, with one deliberate rule kept
// from classic BSD clients: an empty tag or hostname counts as absent, not
// as an explicit empty value, so overriding with "" suppresses the segment
// rather than emitting ": " or a blank header word.
type Overrides struct {
	Tag       *string
	Hostname  *string
	Timestamp *bool
}

// String returns a pointer to s, for building Overrides literals.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building Overrides literals.
func Bool(b bool) *bool { return &b }

// Format builds the complete wire line for one message:
//
//	<PRI>TIMESTAMP HOSTNAME TAG: MESSAGE
//
// PRI is the facility/severity encoding with no padding. The header block
// (timestamp, hostname, and the space separating it from the body) is
// omitted entirely when both parts are absent, and "TAG: " is omitted when
// no tag resolves.
func (f Formatter) Format(severity Severity, message string, o Overrides) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(strconv.Itoa(int(f.Facility.Priority(severity))))
	b.WriteByte('>')

	if header := f.header(o); header != "" {
		b.WriteString(header)
		b.WriteByte(' ')
	}
	if tag := resolve(f.Tag, o.Tag); tag != "" {
		b.WriteString(tag)
		b.WriteString(": ")
	}
	b.WriteString(message)
	return b.String()
}

func (f Formatter) header(o Overrides) string {
	parts := make([]string, 0, 2)

	stamp := f.Timestamp
	if o.Timestamp != nil {
		stamp = *o.Timestamp
	}
	if stamp {
		now := f.Now
		if now == nil {
			now = time.Now
		}
		// time.Stamp is the RFC 3164 layout: three-letter month and a
		// space-padded, never zero-padded, day of month.
		parts = append(parts, now().Format(time.Stamp))
	}

	if hostname := resolve(f.Hostname, o.Hostname); hostname != "" {
		parts = append(parts, hostname)
	}
	return strings.Join(parts, " ")
}

// resolve applies the override rule described on Overrides: a non-nil
// override wins, and emptiness means absence wherever it came from.
func resolve(fallback string, override *string) string {
	if override != nil {
		return *override
	}
	return fallback
}
