package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/logging"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/tui"
	"github.com/muurk/servdash/internal/version"
)

// runDashboard launches the interactive dashboard. The network worker and
// the Bubble Tea program run side by side; leaving the program stops the
// worker.
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.ServerCount() == 0 {
		return fmt.Errorf("no servers configured (add a radarr, sonarr or lidarr entry to the config file)")
	}

	// The terminal belongs to the dashboard, so logs always go to a file.
	logFile := cfg.Preferences.LogFile
	if logFile == "" {
		if logFile, err = config.GetLogPath(); err != nil {
			return err
		}
	}
	if err := logging.Initialize(cfg.Preferences.LogLevel, logFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	logging.Info("Starting dashboard",
		zap.String("version", version.Full()),
		zap.Int("servers", cfg.ServerCount()),
	)

	worker, err := network.New(cfg)
	if err != nil {
		return err
	}
	queue := make(chan network.Request, network.QueueSize)
	a, err := app.New(cfg, queue)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return worker.Run(ctx, queue, a)
	})

	program := tea.NewProgram(tui.NewModel(a, cfg.Preferences.TickRate()),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error("Dashboard exited with error", zap.Error(err))
		return err
	}
	logging.Info("Dashboard stopped")
	return nil
}
