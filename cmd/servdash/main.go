// Servdash is a terminal dashboard for Radarr, Sonarr and Lidarr servers.
//
// Running without arguments launches the interactive dashboard against
// every server in the configuration file. The subcommands run a single
// request and print the result, which makes them usable from scripts.
//
// Usage:
//
//	servdash [command] [flags]
//
// See 'servdash --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/servdash/internal/version"
)

// Global flags
var (
	configPath string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "servdash",
	Short: "Terminal dashboard for Radarr, Sonarr and Lidarr",
	Long: `A terminal dashboard for managing Radarr, Sonarr and Lidarr servers.

Browse libraries, downloads, history, indexers and system status, add and
delete items, and run server tasks from one keyboard-driven screen.

If no command is specified, the interactive dashboard will launch automatically.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the dashboard when no subcommand provided
		return runDashboard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file (default: OS config directory)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "servdash %s (commit: %s)\n", version.Version, version.Commit)
	},
}
