// Package syslog is a minimal RFC 3164 client for sending BSD syslog
// messages to a remote collector over an unreliable datagram transport. It
// targets constrained hosts: one connection, no retries, no
// acknowledgments, and no RFC 5424 structured data.
//
// # Basic Usage
//
// Dial a collector once, then log at any severity. Each call transmits
// exactly one datagram.
//
//	s, err := syslog.Dial("udp", "collector:514",
//		syslog.WithFacility(syslog.FacDaemon),
//		syslog.WithTag("myapp"),
//	)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	s.Info("service started")
//	s.Log(syslog.SevErr, "disk full", syslog.Overrides{Tag: syslog.String("fsck")})
//
// The tag, hostname, and timestamp chosen at construction may be replaced
// per call through Overrides without mutating the Sender's defaults.
//
// # Concurrent Safety
//
// A Sender performs no internal locking. Hosts with multiple goroutines
// must serialize use of each Sender, either behind a mutex or by giving
// each goroutine its own Sender.
package syslog
