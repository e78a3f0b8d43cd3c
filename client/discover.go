package client

import (
	"bytes"
	"errors"
	"fmt"
	"net"
)

// ErrNoPrimary is returned when the router has no registered primary.
var ErrNoPrimary = errors.New("no primary available")

// Discover asks the router at routerAddr:port for the current primary's
// IPv4 address. The router answers with either a NUL-terminated ASCII
// address or the single byte '0' when the hierarchy is empty.
func Discover(routerAddr, port string) (string, error) {
	conn, err := net.Dial("tcp", net.JoinHostPort(routerAddr, port))
	if err != nil {
		return "", fmt.Errorf("dial router %s:%s: %w", routerAddr, port, err)
	}
	defer conn.Close()

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		return "", fmt.Errorf("read discovery reply: %w", err)
	}
	if n == 1 {
		return "", ErrNoPrimary
	}

	raw := buf[:n]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	addr := string(raw)
	if net.ParseIP(addr) == nil {
		return "", fmt.Errorf("router returned malformed address %q", addr)
	}
	return addr, nil
}
