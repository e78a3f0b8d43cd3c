package router

import (
	"fmt"
	"net"
)

// BackendConn is a long-lived connection from a primary or standby to the
// router's backend port. The router drops a primary from the hierarchy when
// its registering connection closes, so the owner must keep the connection
// open for as long as it wants to stay registered.
type BackendConn struct {
	conn net.Conn
}

// DialBackend connects to the router's backend port.
func DialBackend(addr string) (*BackendConn, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial router backend %s: %w", addr, err)
	}
	return &BackendConn{conn: conn}, nil
}

// Announce registers the caller as a primary.
func (b *BackendConn) Announce() error {
	if _, err := b.conn.Write([]byte(MsgMaster)); err != nil {
		return fmt.Errorf("register with router: %w", err)
	}
	return nil
}

// ReportDead tells the router the peer this process was monitoring is dead.
func (b *BackendConn) ReportDead() error {
	if _, err := b.conn.Write([]byte(MsgDead)); err != nil {
		return fmt.Errorf("report dead peer to router: %w", err)
	}
	return nil
}

func (b *BackendConn) Close() error {
	return b.conn.Close()
}
