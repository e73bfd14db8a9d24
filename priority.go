package syslog

// Severity is the urgency of a single message, 0 (emergency, most severe)
// through 7 (debug), per RFC 3164 section 4.1.1.
type Severity int

const (
	SevEmerg Severity = iota
	SevAlert
	SevCrit
	SevErr
	SevWarning
	SevNotice
	SevInfo
	SevDebug
)

// Facility classifies the subsystem a message originates from, 0 (kernel)
// through 23 (local7). A Facility is fixed per Sender at construction.
type Facility int

const (
	FacKern Facility = iota
	FacUser
	FacMail
	FacDaemon
	FacAuth
	FacSyslog
	FacLPR
	FacNews
	FacUUCP
	FacCron
	FacAuthPriv
	FacFTP
	FacNTP
	FacAudit
	FacAlert
	FacClock
	FacLocal0
	FacLocal1
	FacLocal2
	FacLocal3
	FacLocal4
	FacLocal5
	FacLocal6
	FacLocal7
)

// Priority is the encoded facility/severity pair, 0 through 191, carried in
// the <N> prefix of every message. It is computed at format time and never
// stored.
type Priority int

// Priority combines the facility with a per-message severity.
func (f Facility) Priority(s Severity) Priority {
	return Priority(int(f)<<3 + int(s))
}

// Valid reports whether s is one of the eight designated severities.
func (s Severity) Valid() bool { return s >= SevEmerg && s <= SevDebug }

// Valid reports whether f is one of the 24 designated facilities.
func (f Facility) Valid() bool { return f >= FacKern && f <= FacLocal7 }

var severityNames = map[Severity]string{
	SevEmerg:   "emerg",
	SevAlert:   "alert",
	SevCrit:    "crit",
	SevErr:     "err",
	SevWarning: "warning",
	SevNotice:  "notice",
	SevInfo:    "info",
	SevDebug:   "debug",
}

var facilityNames = map[Facility]string{
	FacKern:     "kern",
	FacUser:     "user",
	FacMail:     "mail",
	FacDaemon:   "daemon",
	FacAuth:     "auth",
	FacSyslog:   "syslog",
	FacLPR:      "lpr",
	FacNews:     "news",
	FacUUCP:     "uucp",
	FacCron:     "cron",
	FacAuthPriv: "authpriv",
	FacFTP:      "ftp",
	FacNTP:      "ntp",
	FacAudit:    "audit",
	FacAlert:    "logalert",
	FacClock:    "clock",
	FacLocal0:   "local0",
	FacLocal1:   "local1",
	FacLocal2:   "local2",
	FacLocal3:   "local3",
	FacLocal4:   "local4",
	FacLocal5:   "local5",
	FacLocal6:   "local6",
	FacLocal7:   "local7",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

func (f Facility) String() string {
	if name, ok := facilityNames[f]; ok {
		return name
	}
	return "unknown"
}

// SeverityByName returns the severity with the given name, e.g. "warning".
// It returns ErrPriority if the name is not a designated severity.
func SeverityByName(name string) (Severity, error) {
	for s, n := range severityNames {
		if n == name {
			return s, nil
		}
	}
	return 0, ErrPriority
}

// FacilityByName returns the facility with the given name, e.g. "local0".
// It returns ErrPriority if the name is not a designated facility.
func FacilityByName(name string) (Facility, error) {
	for f, n := range facilityNames {
		if n == name {
			return f, nil
		}
	}
	return 0, ErrPriority
}
