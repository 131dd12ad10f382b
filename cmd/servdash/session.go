package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/logging"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/ui"
)

// session is one backend command's connection to a single server.
type session struct {
	backend models.Backend
	server  config.ServarrConfig
	network *network.Network
	printer *ui.Printer
}

func newSession(cmd *cobra.Command, backend models.Backend) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := logging.Initialize(cfg.Preferences.LogLevel, cfg.Preferences.LogFile); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	server, err := cfg.Server(backend, serverName)
	if err != nil {
		return nil, err
	}
	n, err := network.New(cfg)
	if err != nil {
		return nil, err
	}

	logging.Debug("CLI session",
		zap.String("backend", backend.String()),
		zap.String("server", server.Name),
		zap.String("command", cmd.CommandPath()),
	)

	return &session{
		backend: backend,
		server:  server,
		network: n,
		printer: ui.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

// do performs req against the session's server and returns the decoded
// response.
func (s *session) do(ctx context.Context, req network.Request) (any, error) {
	resp, err := s.network.HandleEvent(ctx, req.OnServer(s.server.Name))
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// header returns the banner printed above table output.
func (s *session) header(cmd *cobra.Command, title string, params ...ui.Param) *ui.Header {
	params = append([]ui.Param{
		{Key: "Server", Value: s.server.Name},
		{Key: "URL", Value: s.server.BaseURL(s.backend)},
	}, params...)
	return ui.NewHeader(s.backend.Title()+" "+title, cmd.CommandPath(), params...)
}

// mutate performs a request that changes server state and prints a result
// box for it.
func (s *session) mutate(cmd *cobra.Command, title string, req network.Request, details ...ui.Param) error {
	details = append([]ui.Param{{Key: "Server", Value: s.server.Name}}, details...)

	if _, err := s.do(cmd.Context(), req); err != nil {
		logging.Error("Command failed",
			zap.String("backend", s.backend.String()),
			zap.String("event", string(req.Event)),
			zap.Error(err),
		)
		s.printer.PrintFailure(title, err, troubleshootingTips(err))
		return fmt.Errorf("%s: %s", strings.ToLower(title), network.GetShortErrorMessage(err))
	}
	s.printer.PrintSuccess(title, details...)
	return nil
}

// printRows writes rows as a table under a header, or as JSON.
func printRows[T any](cmd *cobra.Command, s *session, title string, rows []T, cols []ui.Column[T]) error {
	if outputFormat != ui.FormatJSON {
		s.printer.PrintHeader(s.header(cmd, title, ui.Param{Key: "Records", Value: fmt.Sprint(len(rows))}))
	}
	return ui.Print(s.printer, outputFormat, rows, cols)
}

// asRows accepts either a list or a single document.
func asRows[T any](v any) ([]T, error) {
	switch v := v.(type) {
	case []T:
		return v, nil
	case T:
		return []T{v}, nil
	default:
		return nil, fmt.Errorf("unexpected response type %T", v)
	}
}

// confirmed asks the user to confirm a destructive command unless --yes
// was given.
func confirmed(cmd *cobra.Command, title string, warnings ...string) bool {
	if assumeYes {
		return true
	}
	return ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), title, warnings)
}

// troubleshootingTips extracts the bullet points of the hint for err. A
// hint without bullets is returned as a single tip.
func troubleshootingTips(err error) []string {
	hint := network.GetTroubleshootingHint(err)
	var tips []string
	for _, line := range strings.Split(hint, "\n") {
		line = strings.TrimSpace(line)
		if tip, ok := strings.CutPrefix(line, "•"); ok {
			tips = append(tips, strings.TrimSpace(tip))
		}
	}
	if len(tips) == 0 && hint != "" {
		tips = []string{hint}
	}
	return tips
}
