package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/ui"
)

func init() {
	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration file",
	Long: `Write an example configuration file with one server per backend.

Edit the file afterwards to set the host and api_token of each server and
delete the entries for backends you don't run. An existing file is never
overwritten.`,
	Example: `  # Default location
  servdash config init

  # Somewhere else
  servdash --config ./servdash.yaml config init`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath)
		if err != nil {
			return err
		}
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintSuccess("Configuration created",
			ui.Param{Key: "Path", Value: path},
			ui.Param{Key: "Next", Value: "set api_token for each server"},
		)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the configuration file is read from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after environment overrides and defaults
have been applied. API tokens are masked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		masked := redact(cfg)
		data, err := yaml.Marshal(masked)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

// redact returns a copy of cfg with API tokens masked.
func redact(cfg *config.Config) *config.Config {
	out := *cfg
	mask := func(servers []config.ServarrConfig) []config.ServarrConfig {
		masked := make([]config.ServarrConfig, len(servers))
		for i, s := range servers {
			if s.APIToken != "" {
				s.APIToken = maskToken(s.APIToken)
			}
			masked[i] = s
		}
		return masked
	}
	out.Radarr = mask(cfg.Radarr)
	out.Sonarr = mask(cfg.Sonarr)
	out.Lidarr = mask(cfg.Lidarr)
	return &out
}

// maskToken keeps the last four characters of a token.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
