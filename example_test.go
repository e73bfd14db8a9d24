package syslog_test

import (
	"fmt"
	"net"
	"os"

	"github.com/embedlog/syslog"
)

// printConn stands in for a UDP connection and prints each datagram.
type printConn struct{ net.Conn }

func (printConn) Write(b []byte) (int, error) {
	fmt.Println(string(b))
	return len(b), nil
}

func (printConn) Close() error { return nil }

func Example() {
	s := syslog.New(printConn{},
		syslog.WithFacility(syslog.FacDaemon),
		syslog.WithTag("myapp"),
		syslog.WithoutTimestamp(),
	)
	defer s.Close()

	s.Info("service started")
	s.Error("disk full")
	s.Log(syslog.SevNotice, "fsck done", syslog.Overrides{Tag: syslog.String("fsck")})

	// Output:
	// <30>myapp: service started
	// <27>myapp: disk full
	// <29>fsck: fsck done
}

func ExampleDial() {
	s, err := syslog.Dial("udp", "127.0.0.1:514",
		syslog.WithFacility(syslog.FacLocal0),
		syslog.WithTag("example"),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer s.Close()

	s.Warning("cache miss rate above threshold")
}

func ExampleOverrides() {
	s := syslog.New(printConn{}, syslog.WithTag("myapp"), syslog.WithoutTimestamp())
	defer s.Close()

	// An empty override suppresses the default tag for one call.
	s.Log(syslog.SevInfo, "no tag on this one", syslog.Overrides{Tag: syslog.String("")})
	s.Info("tag is back")

	// Output:
	// <14>no tag on this one
	// <14>myapp: tag is back
}
