// Package daemon composes the chirpd roles out of the server, router, and
// heartbeat components.
//
// A primary serves the SNS gRPC API, registers with the router over a
// long-lived backend connection, and monitors the standby. When the router
// address is loopback the process is the router: it runs the discovery
// front door instead of the gRPC server, which shares the client port by
// wire contract. A standby only heartbeats, reports the primary's death,
// and respawns it.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"chirp/heartbeat"
	"chirp/internal/ntpcheck"
	"chirp/registry"
	"chirp/router"
	"chirp/server"
	"chirp/store"

	"golang.org/x/sync/errgroup"
)

// Defaults mirror the original deployment.
const (
	DefaultClientPort    = 3010
	DefaultBackendPort   = 3059
	DefaultHeartbeatPort = 3076
	DefaultRouterAddr    = "127.0.0.1"
	DefaultDataDir       = "data"
)

// Config carries the shared flag surface of every chirpd role.
type Config struct {
	ClientPort    int    // gRPC API / router discovery port
	BackendPort   int    // router backend (registration) port
	HeartbeatPort int    // primary's heartbeat port
	RouterAddr    string // router IPv4; loopback means "this primary is the router"
	DataDir       string // primary's persistence root

	// PeerArgs is the argument vector used to respawn the dead peer of the
	// failover pair.
	PeerArgs []string
}

// Validate rejects configurations whose ports collide.
func (c Config) Validate() error {
	if c.ClientPort == c.BackendPort || c.ClientPort == c.HeartbeatPort || c.BackendPort == c.HeartbeatPort {
		return fmt.Errorf("conflicting ports: client %d, backend %d, heartbeat %d",
			c.ClientPort, c.BackendPort, c.HeartbeatPort)
	}
	return nil
}

func (c Config) routerBackend() string {
	return net.JoinHostPort(c.RouterAddr, strconv.Itoa(c.BackendPort))
}

func (c Config) isRouter() bool {
	return c.RouterAddr == DefaultRouterAddr
}

// RunPrimary runs the primary role and blocks until ctx is cancelled or a
// fatal control-channel error occurs.
func RunPrimary(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.isRouter() {
		return runRouterPrimary(ctx, cfg)
	}
	return runServingPrimary(ctx, cfg)
}

// runServingPrimary is a primary behind a remote router: gRPC server,
// registration, standby monitoring.
func runServingPrimary(ctx context.Context, cfg Config) error {
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	reg, err := registry.Load(st)
	if err != nil {
		return err
	}
	svc := server.New(st, reg)

	backend, err := router.DialBackend(cfg.routerBackend())
	if err != nil {
		return err
	}
	defer backend.Close()
	if err := backend.Announce(); err != nil {
		return err
	}
	slog.Info("registered with router", "router", cfg.routerBackend())

	hb := &heartbeat.Monitor{
		Role:      heartbeat.RolePrimary,
		Addr:      fmt.Sprintf(":%d", cfg.HeartbeatPort),
		Respawner: heartbeat.NewSupervisor(cfg.PeerArgs),
		// Clients must re-login once failover handling starts.
		OnPeerDeath:   svc.DisconnectAll,
		OnPeerRestart: backend.Announce,
	}

	go ntpcheck.New().Run(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("serving SNS API", "port", cfg.ClientPort)
		return svc.ListenAndServe(ctx, fmt.Sprintf(":%d", cfg.ClientPort))
	})
	g.Go(func() error { return hb.Run(ctx) })
	return g.Wait()
}

// runRouterPrimary is the loopback special case: the primary is the router.
// It serves discovery instead of the gRPC API and does not register itself,
// since it has no API to offer.
func runRouterPrimary(ctx context.Context, cfg Config) error {
	r := router.New(
		fmt.Sprintf(":%d", cfg.BackendPort),
		fmt.Sprintf(":%d", cfg.ClientPort),
	)
	if err := r.Start(); err != nil {
		return err
	}
	slog.Info("routing", "backend", r.BackendAddr, "client", r.ClientAddr)

	hb := &heartbeat.Monitor{
		Role:      heartbeat.RolePrimary,
		Addr:      fmt.Sprintf(":%d", cfg.HeartbeatPort),
		Respawner: heartbeat.NewSupervisor(cfg.PeerArgs),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.Run(ctx) })
	g.Go(func() error { return hb.Run(ctx) })
	return g.Wait()
}

// RunStandby runs the standby role: monitor the co-located primary, report
// its death to the router, respawn it.
func RunStandby(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	backend, err := router.DialBackend(cfg.routerBackend())
	if err != nil {
		return err
	}
	defer backend.Close()

	hb := &heartbeat.Monitor{
		Role: heartbeat.RoleStandby,
		// The failover pair shares a host; the primary is always local.
		Addr:      fmt.Sprintf("127.0.0.1:%d", cfg.HeartbeatPort),
		Respawner: heartbeat.NewSupervisor(cfg.PeerArgs),
		OnPeerDeath: func() {
			if err := backend.ReportDead(); err != nil {
				slog.Error("report primary death", "err", err)
			}
		},
	}
	return hb.Run(ctx)
}

// RunRouter runs the discovery front door on its own.
func RunRouter(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r := router.New(
		fmt.Sprintf(":%d", cfg.BackendPort),
		fmt.Sprintf(":%d", cfg.ClientPort),
	)
	if err := r.Start(); err != nil {
		return err
	}
	slog.Info("routing", "backend", r.BackendAddr, "client", r.ClientAddr)
	return r.Run(ctx)
}
