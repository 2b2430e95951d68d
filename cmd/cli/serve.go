// Package cli provides command-line interface commands for nmap-navigator.
// This file implements the serve command that runs the API server.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theawkwardchild/nmap-navigator/internal/api"
	"github.com/theawkwardchild/nmap-navigator/internal/logging"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

// Serve command flags.
var (
	serveHost string
	servePort int
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	Long: `Start the nmap-navigator API server in the foreground.

The server holds the engagement state in memory; importing a scan report
replaces the current host and service inventory.`,
	Example: `  nmap-navigator serve
  nmap-navigator serve --host 0.0.0.0 --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen address (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	server := api.New(cfg, store.New())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("nmap-navigator starting", "address", cfg.Address(), "version", version)

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
