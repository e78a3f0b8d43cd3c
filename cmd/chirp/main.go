package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"chirp/client"
	"chirp/config"
	"chirp/daemon"
	"chirp/internal/logging"
	"chirp/internal/ui"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var router, username, port string
	var debug bool

	cmd := &cobra.Command{
		Use:           "chirp",
		Short:         "Interactive chirp client",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelWarn
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags win; the current context fills whatever was left unset.
			if cur, ok := cfg.Current(); ok {
				if router == "" {
					router = cur.Router
				}
				if port == "" {
					port = cur.Port
				}
				if username == "" {
					username = cur.Username
				}
			}
			if router == "" {
				router = daemon.DefaultRouterAddr
			}
			if port == "" {
				port = strconv.Itoa(daemon.DefaultClientPort)
			}
			if username == "" {
				return fmt.Errorf("no username: pass --user or set one in a context")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := client.New(router, username, port, os.Stdin, os.Stdout)
			defer s.Close()
			return s.Run(ctx)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")
	pf.StringVarP(&router, "router", "r", "", "Router IPv4 address")
	pf.StringVarP(&username, "user", "u", "", "Username to log in as")
	pf.StringVarP(&port, "port", "p", "", "Discovery / client port")

	cmd.AddCommand(contextCmd(&router, &username, &port))
	return cmd
}

// contextCmd manages saved connection contexts, so day-to-day use is just
// `chirp` with no flags.
func contextCmd(router, username, port *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Manage saved connection contexts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Create or update a context from the given flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.Set(args[0], config.Context{Router: *router, Port: *port, Username: *username})
			if cfg.CurrentContext == "" {
				cfg.CurrentContext = args[0]
			}
			return cfg.Save()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "use <name>",
		Short: "Select the current context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Use(args[0]); err != nil {
				return err
			}
			return cfg.Save()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved contexts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			for name, c := range cfg.Contexts {
				marker := "  "
				if name == cfg.CurrentContext {
					marker = "* "
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\trouter=%s port=%s user=%s\n", marker, name, c.Router, c.Port, c.Username)
			}
			return nil
		},
	})

	return cmd
}
