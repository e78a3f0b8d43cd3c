// Package heartbeat implements the mutual liveness protocol between the
// primary and its hot standby: a 1 Hz ALIVE exchange over one TCP
// connection, a 5 second receive timeout as the death threshold, and the
// recovery sequence that respawns the dead peer and re-establishes the
// channel.
package heartbeat

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"chirp/internal/check"

	"github.com/jonboulle/clockwork"
)

const alive = "ALIVE"

// Defaults for the protocol timings.
const (
	DefaultInterval     = 1 * time.Second // pause between ALIVE messages
	DefaultTimeout      = 5 * time.Second // receive deadline; exceeding it means the peer is dead
	DefaultRespawnDelay = 2 * time.Second // grace for a respawned peer to come up
)

// Role selects which side of the channel this process is.
type Role int

const (
	// RolePrimary listens on the heartbeat port and accepts the standby.
	RolePrimary Role = iota
	// RoleStandby dials the primary's heartbeat port.
	RoleStandby
)

// Respawner restarts the dead peer process. Implemented by Supervisor.
type Respawner interface {
	Respawn(ctx context.Context) error
}

// Monitor runs the keepalive loop for one side of a primary/standby pair.
// Both roles share the same state machine; only channel setup and the
// death hooks differ.
type Monitor struct {
	Role      Role
	Addr      string // primary's heartbeat endpoint
	Respawner Respawner

	// OnPeerDeath runs after the channel is torn down and before the peer
	// is respawned. The standby reports DEAD to the router here; the
	// primary disconnects its users.
	OnPeerDeath func()
	// OnPeerRestart runs after the channel is re-established. The primary
	// re-registers with the router here.
	OnPeerRestart func() error

	Clock        clockwork.Clock
	Interval     time.Duration
	Timeout      time.Duration
	RespawnDelay time.Duration

	ln net.Listener
}

func (m *Monitor) init() {
	check.Assert(m.Respawner != nil, "heartbeat.Monitor: Respawner must not be nil")
	if m.Clock == nil {
		m.Clock = clockwork.NewRealClock()
	}
	if m.Interval == 0 {
		m.Interval = DefaultInterval
	}
	if m.Timeout == 0 {
		m.Timeout = DefaultTimeout
	}
	if m.RespawnDelay == 0 {
		m.RespawnDelay = DefaultRespawnDelay
	}
}

// Run establishes the heartbeat channel and keeps it alive until ctx is
// cancelled. Channel setup failures are fatal: the sibling process detects
// the resulting death and respawns this side.
func (m *Monitor) Run(ctx context.Context) error {
	m.init()

	if m.Role == RolePrimary {
		ln, err := net.Listen("tcp", m.Addr)
		if err != nil {
			return fmt.Errorf("listen heartbeat %s: %w", m.Addr, err)
		}
		m.ln = ln
		defer ln.Close()
		go func() {
			<-ctx.Done()
			ln.Close()
		}()
	}

	conn, err := m.connect(ctx)
	if err != nil {
		return err
	}
	slog.Info("heartbeat channel established", "peer", conn.RemoteAddr())

	for {
		if err := m.keepalive(ctx, conn); err != nil {
			return err
		}
		// keepalive only returns cleanly when the peer died.
		conn, err = m.recover(ctx)
		if err != nil {
			return err
		}
	}
}

// connect establishes the heartbeat connection for this role.
func (m *Monitor) connect(ctx context.Context) (net.Conn, error) {
	if m.Role == RolePrimary {
		conn, err := m.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("accept standby: %w", err)
		}
		return conn, nil
	}
	conn, err := net.Dial("tcp", m.Addr)
	if err != nil {
		return nil, fmt.Errorf("dial primary heartbeat %s: %w", m.Addr, err)
	}
	return conn, nil
}

// keepalive exchanges ALIVE messages until ctx is cancelled (returned as an
// error) or the peer dies (returned as nil).
func (m *Monitor) keepalive(ctx context.Context, conn net.Conn) error {
	defer conn.Close()

	buf := make([]byte, 1024)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := conn.Write([]byte(alive)); err != nil {
			slog.Warn("heartbeat send failed, peer presumed dead", "err", err)
			return nil
		}
		if err := conn.SetReadDeadline(time.Now().Add(m.Timeout)); err != nil {
			return fmt.Errorf("set heartbeat deadline: %w", err)
		}
		n, err := conn.Read(buf)
		if err != nil || n == 0 {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("heartbeat receive failed, peer presumed dead", "err", err)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.Clock.After(m.Interval):
		}
	}
}

// recover runs the peer-death sequence: death hook, respawn, grace pause,
// channel re-establishment, restart hook.
func (m *Monitor) recover(ctx context.Context) (net.Conn, error) {
	if m.OnPeerDeath != nil {
		m.OnPeerDeath()
	}

	if err := m.Respawner.Respawn(ctx); err != nil {
		return nil, fmt.Errorf("respawn peer: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.Clock.After(m.RespawnDelay):
	}

	conn, err := m.connect(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("heartbeat channel re-established", "peer", conn.RemoteAddr())

	if m.OnPeerRestart != nil {
		if err := m.OnPeerRestart(); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return conn, nil
}
