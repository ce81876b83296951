// Package ports picks listen ports for the document server.
package ports

import (
	"fmt"
	"net"
)

// FindFreePort binds port 0 on loopback and reports the port the
// kernel assigned. The listener is closed again before returning, so
// the caller can briefly lose the port to another process; acceptable
// for choosing a serve port on demand.
func FindFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("listen: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
