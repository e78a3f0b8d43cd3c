package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"chirp/daemon"
	"chirp/internal/logging"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		slog.Error("chirpd exited", "err", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfg daemon.Config
	var debug bool

	cmd := &cobra.Command{
		Use:           "chirpd",
		Short:         "Chirp micro-blog daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelInfo
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")
	pf.IntVarP(&cfg.ClientPort, "client-port", "c", daemon.DefaultClientPort, "Client API / discovery port")
	pf.IntVarP(&cfg.BackendPort, "backend-port", "b", daemon.DefaultBackendPort, "Router backend port")
	// -h is the help shorthand; the heartbeat port is long-flag only.
	pf.IntVar(&cfg.HeartbeatPort, "heartbeat-port", daemon.DefaultHeartbeatPort, "Heartbeat port")
	pf.StringVarP(&cfg.RouterAddr, "router", "a", daemon.DefaultRouterAddr, "Router IPv4 address (loopback means this primary is the router)")
	pf.StringVar(&cfg.DataDir, "data-dir", daemon.DefaultDataDir, "Persistence directory (primary only)")

	cmd.AddCommand(roleCmd("primary", "Run the serving primary of a failover pair", daemon.RunPrimary, &cfg))
	cmd.AddCommand(roleCmd("standby", "Run the hot standby that monitors and respawns the primary", daemon.RunStandby, &cfg))
	cmd.AddCommand(roleCmd("router", "Run the discovery front door on its own", daemon.RunRouter, &cfg))
	return cmd
}

func roleCmd(role, short string, run func(context.Context, daemon.Config) error, cfg *daemon.Config) *cobra.Command {
	return &cobra.Command{
		Use:   role,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg.PeerArgs = peerArgs(role, *cfg)
			return run(ctx, *cfg)
		},
	}
}

// peerArgs builds the argument vector the supervisor uses to respawn the
// dead sibling of a failover pair, carrying this process's flags over.
func peerArgs(role string, cfg daemon.Config) []string {
	var peer string
	switch role {
	case "primary":
		peer = "standby"
	case "standby":
		peer = "primary"
	default:
		return nil // the router has no sibling to respawn
	}

	bin, err := os.Executable()
	if err != nil {
		bin = "chirpd"
	}
	return []string{
		bin, peer,
		"--client-port", strconv.Itoa(cfg.ClientPort),
		"--backend-port", strconv.Itoa(cfg.BackendPort),
		"--heartbeat-port", strconv.Itoa(cfg.HeartbeatPort),
		"--router", cfg.RouterAddr,
		"--data-dir", cfg.DataDir,
	}
}
