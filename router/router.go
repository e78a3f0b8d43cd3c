// Package router is the discovery front door that decouples clients from
// the current primary's address.
//
// It listens on two TCP ports. Backend connections are long-lived and come
// from primaries and standbys: a message starting with 'M' registers the
// caller's address as a primary, one starting with 'D' reports the caller's
// monitored peer as dead. Client connections are one-shot: the router writes
// the first registered primary's IPv4 address (NUL-terminated ASCII) or the
// single byte '0' when none is registered, then closes.
//
// The hierarchy of registered primaries is owned by a single goroutine and
// mutated only through connection events.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
)

// NoPrimary is the one-byte discovery answer when the hierarchy is empty.
const NoPrimary = byte('0')

// Backend protocol messages. Only the first byte discriminates.
const (
	MsgMaster = "MASTER"
	MsgDead   = "DEAD"
)

// Router accepts backend registrations and answers client discovery
// requests. Zero ports are allowed and resolve to ephemeral ports; use
// BackendAddr and ClientAddr after Start.
type Router struct {
	BackendAddr string
	ClientAddr  string

	backendLn net.Listener
	clientLn  net.Listener
	events    chan event
	queries   chan chan string
	connSeq   atomic.Int64
}

type eventKind int

const (
	evRegister eventKind = iota
	evDead
	evClosed
)

type event struct {
	kind eventKind
	conn int64  // backend connection id
	addr string // caller's IPv4
}

// entry is one hierarchy slot: the registered address and the connection
// that registered it.
type entry struct {
	conn int64
	addr string
}

// New returns a router that will listen on the given backend and client
// addresses.
func New(backendAddr, clientAddr string) *Router {
	return &Router{
		BackendAddr: backendAddr,
		ClientAddr:  clientAddr,
		events:      make(chan event),
		queries:     make(chan chan string),
	}
}

// Start binds both listeners. It must be called before Run so callers can
// read the bound addresses.
func (r *Router) Start() error {
	var err error
	r.backendLn, err = net.Listen("tcp", r.BackendAddr)
	if err != nil {
		return fmt.Errorf("listen backend %s: %w", r.BackendAddr, err)
	}
	r.clientLn, err = net.Listen("tcp", r.ClientAddr)
	if err != nil {
		r.backendLn.Close()
		return fmt.Errorf("listen client %s: %w", r.ClientAddr, err)
	}
	r.BackendAddr = r.backendLn.Addr().String()
	r.ClientAddr = r.clientLn.Addr().String()
	return nil
}

// Run serves both listeners until ctx is cancelled. Start must have been
// called.
func (r *Router) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		r.backendLn.Close()
		r.clientLn.Close()
	}()

	go r.acceptBackend(ctx)
	go r.acceptClients(ctx)

	r.runHierarchy(ctx)
	return ctx.Err()
}

// runHierarchy owns the ordered list of registered primaries.
func (r *Router) runHierarchy(ctx context.Context) {
	var hierarchy []entry
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.events:
			hierarchy = applyEvent(hierarchy, ev)
		case reply := <-r.queries:
			if len(hierarchy) == 0 {
				reply <- ""
			} else {
				reply <- hierarchy[0].addr
			}
		}
	}
}

// applyEvent returns the hierarchy with one connection event applied.
// A DEAD report removes every entry carrying the reporter's peer address; a
// connection close removes only the entries that connection registered, so a
// co-located standby disconnecting cannot unregister the live primary that
// shares its IP.
func applyEvent(hierarchy []entry, ev event) []entry {
	switch ev.kind {
	case evRegister:
		slog.Info("registered primary", "addr", ev.addr)
		return append(hierarchy, entry{conn: ev.conn, addr: ev.addr})
	case evDead:
		out := hierarchy[:0]
		for _, e := range hierarchy {
			if e.addr == ev.addr {
				slog.Info("removed dead primary", "addr", e.addr)
				continue
			}
			out = append(out, e)
		}
		return out
	case evClosed:
		out := hierarchy[:0]
		for _, e := range hierarchy {
			if e.conn == ev.conn {
				slog.Info("removed disconnected primary", "addr", e.addr)
				continue
			}
			out = append(out, e)
		}
		return out
	}
	return hierarchy
}

func (r *Router) acceptBackend(ctx context.Context) {
	for {
		conn, err := r.backendLn.Accept()
		if err != nil {
			return
		}
		go r.serveBackend(ctx, conn)
	}
}

// serveBackend reads messages from one primary/standby connection and turns
// them into hierarchy events.
func (r *Router) serveBackend(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	id := r.connSeq.Add(1)
	addr := peerIP(conn)
	buf := make([]byte, 1024)
	for {
		n, err := conn.Read(buf)
		if err != nil || n == 0 {
			r.send(ctx, event{kind: evClosed, conn: id})
			return
		}
		switch buf[0] {
		case 'M':
			r.send(ctx, event{kind: evRegister, conn: id, addr: addr})
		case 'D':
			r.send(ctx, event{kind: evDead, conn: id, addr: addr})
		default:
			slog.Debug("unknown backend message", "addr", addr, "msg", string(buf[:n]))
		}
	}
}

func (r *Router) send(ctx context.Context, ev event) {
	select {
	case r.events <- ev:
	case <-ctx.Done():
	}
}

func (r *Router) acceptClients(ctx context.Context) {
	for {
		conn, err := r.clientLn.Accept()
		if err != nil {
			return
		}
		go r.serveClient(ctx, conn)
	}
}

// serveClient answers one discovery request and closes the connection.
func (r *Router) serveClient(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	reply := make(chan string, 1)
	select {
	case r.queries <- reply:
	case <-ctx.Done():
		return
	}

	var addr string
	select {
	case addr = <-reply:
	case <-ctx.Done():
		return
	}

	if addr == "" {
		_, _ = conn.Write([]byte{NoPrimary})
		return
	}
	// ASCII IPv4, NUL-terminated, as the original wrote INET_ADDRSTRLEN bytes.
	_, _ = conn.Write(append([]byte(addr), 0))
}

// peerIP extracts the bare IP of the connection's remote end.
func peerIP(conn net.Conn) string {
	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		return conn.RemoteAddr().String()
	}
	return host
}
