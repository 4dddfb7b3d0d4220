package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/rocket-arcade/internal/api"
	"github.com/vovakirdan/rocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session starting at the menu.
Scores are stored per-server (all users share the same high-score list).
With --http, the list and the run history are also served as JSON:

  GET /health
  GET /api/v1/scores
  GET /api/v1/runs?limit=N
  GET /api/v1/stats

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --http :8080              # Also serve the score API
  arcade serve --ssh "" --http :8080     # Score API only
  arcade serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port, empty to disable)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP score API address (host:port, empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return fmt.Errorf("nothing to serve: both --ssh and --http are empty")
	}

	params, err := loadParams()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("rocket", false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		if flagHTTPAddr != "" {
			return err
		}
		logger.Warn("could not open scores database, continuing without scores", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.Params = params
		cfg.TickRate = flagFPS

		server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("rocket-ssh"))
		if err != nil {
			return err
		}
		fmt.Printf("Starting Flappy Rocket SSH server on %s\n", cfg.Address)
		fmt.Println("Press Ctrl+C to stop")
		g.Go(func() error { return server.ListenAndServe(ctx) })
	}

	if flagHTTPAddr != "" {
		server := api.NewServer(store, logger.WithPrefix("rocket-http"))
		fmt.Printf("Serving score API on %s\n", flagHTTPAddr)
		g.Go(func() error { return server.ListenAndServe(ctx, flagHTTPAddr) })
	}

	return g.Wait()
}
