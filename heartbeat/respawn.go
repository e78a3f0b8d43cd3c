package heartbeat

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
)

// Supervisor restarts the peer process of a failover pair. Unlike a shell
// pkill + fork, it owns the child handle: a stale child from a previous
// respawn is killed through the handle before a new one is started, and
// every child is reaped by a Wait goroutine so no zombies accumulate.
type Supervisor struct {
	// Args is the full argument vector of the peer, e.g.
	// ["chirpd", "standby", "--client-port", "3010", ...].
	Args []string

	mu    sync.Mutex
	child *exec.Cmd
}

// NewSupervisor returns a supervisor that respawns the peer with the given
// argument vector.
func NewSupervisor(args []string) *Supervisor {
	return &Supervisor{Args: args}
}

// Respawn kills any child this supervisor still owns and starts a fresh
// peer process. The new child's exit is reaped in the background; a peer
// that dies again is only restarted when the heartbeat monitor notices.
func (s *Supervisor) Respawn(ctx context.Context) error {
	if len(s.Args) == 0 {
		return fmt.Errorf("respawn: no peer command configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.child != nil && s.child.Process != nil {
		// Best effort: the peer is normally already dead when we get here.
		_ = s.child.Process.Kill()
		s.child = nil
	}

	cmd := exec.Command(s.Args[0], s.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start peer %q: %w", s.Args[0], err)
	}
	slog.Info("respawned peer", "cmd", s.Args[0], "pid", cmd.Process.Pid)
	s.child = cmd

	go func() {
		err := cmd.Wait()
		slog.Warn("respawned peer exited", "pid", cmd.Process.Pid, "err", err)
	}()
	return nil
}
