package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/muurk/servdash/internal/models"
)

// Config represents the entire user configuration file: the servers to
// connect to, grouped by backend, and application preferences.
type Config struct {
	Radarr      []ServarrConfig `mapstructure:"radarr" yaml:"radarr,omitempty"`
	Sonarr      []ServarrConfig `mapstructure:"sonarr" yaml:"sonarr,omitempty"`
	Lidarr      []ServarrConfig `mapstructure:"lidarr" yaml:"lidarr,omitempty"`
	Preferences Preferences     `mapstructure:"preferences" yaml:"preferences"`
}

// ServarrConfig holds the connection parameters of one remote server.
// URI, when set, replaces Host and Port entirely (e.g. a reverse proxy path).
type ServarrConfig struct {
	Name          string            `mapstructure:"name" yaml:"name,omitempty"`
	Host          string            `mapstructure:"host" yaml:"host,omitempty"`
	Port          int               `mapstructure:"port" yaml:"port,omitempty"`
	URI           string            `mapstructure:"uri" yaml:"uri,omitempty"`
	APIToken      string            `mapstructure:"api_token" yaml:"api_token,omitempty"`
	APITokenFile  string            `mapstructure:"api_token_file" yaml:"api_token_file,omitempty"`
	SSLCertPath   string            `mapstructure:"ssl_cert_path" yaml:"ssl_cert_path,omitempty"`
	CustomHeaders map[string]string `mapstructure:"custom_headers" yaml:"custom_headers,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	TickRateMs            int     `mapstructure:"tick_rate_ms" yaml:"tick_rate_ms"`                       // Frame interval of the TUI
	TickUntilPoll         int     `mapstructure:"tick_until_poll" yaml:"tick_until_poll"`                 // Frames between metadata refreshes
	RequestTimeoutSeconds int     `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds"` // HTTP client timeout
	RequestsPerSecond     float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`         // Per-server rate limit
	LogLevel              string  `mapstructure:"log_level" yaml:"log_level,omitempty"`
	LogFile               string  `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

// Default preference values.
const (
	DefaultTickRateMs            = 50
	DefaultTickUntilPoll         = 400
	DefaultRequestTimeoutSeconds = 30
	DefaultRequestsPerSecond     = 20
)

// NewConfig creates a Config with no servers and default preferences.
func NewConfig() *Config {
	return &Config{
		Preferences: Preferences{
			TickRateMs:            DefaultTickRateMs,
			TickUntilPoll:         DefaultTickUntilPoll,
			RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
			RequestsPerSecond:     DefaultRequestsPerSecond,
		},
	}
}

// Servers returns the configured servers of a backend.
func (c *Config) Servers(backend models.Backend) []ServarrConfig {
	switch backend {
	case models.Radarr:
		return c.Radarr
	case models.Sonarr:
		return c.Sonarr
	case models.Lidarr:
		return c.Lidarr
	}
	return nil
}

// Server looks up a server by name. An empty name selects the first
// server of the backend.
func (c *Config) Server(backend models.Backend, name string) (ServarrConfig, error) {
	servers := c.Servers(backend)
	if len(servers) == 0 {
		return ServarrConfig{}, fmt.Errorf("no %s servers configured", backend)
	}
	if name == "" {
		return servers[0], nil
	}
	for _, s := range servers {
		if s.Name == name {
			return s, nil
		}
	}
	return ServarrConfig{}, fmt.Errorf("no %s server named %q", backend, name)
}

// ServerCount returns the number of servers across all backends.
func (c *Config) ServerCount() int {
	return len(c.Radarr) + len(c.Sonarr) + len(c.Lidarr)
}

// TickRate returns the TUI frame interval.
func (p Preferences) TickRate() time.Duration {
	return time.Duration(p.TickRateMs) * time.Millisecond
}

// RequestTimeout returns the HTTP client timeout.
func (p Preferences) RequestTimeout() time.Duration {
	return time.Duration(p.RequestTimeoutSeconds) * time.Second
}

// BaseURL returns the API root for the server, e.g.
// "http://localhost:7878/api/v3".
func (s ServarrConfig) BaseURL(backend models.Backend) string {
	root := s.URI
	if root == "" {
		scheme := "http"
		if s.SSLCertPath != "" {
			scheme = "https"
		}
		host := s.Host
		if host == "" {
			host = "localhost"
		}
		port := s.Port
		if port == 0 {
			port = backend.DefaultPort()
		}
		root = fmt.Sprintf("%s://%s:%d", scheme, host, port)
	}
	return strings.TrimRight(root, "/") + "/api/" + backend.APIVersion()
}

// Validate checks a single server entry.
func (s ServarrConfig) Validate() error {
	if s.APIToken == "" {
		return fmt.Errorf("server %q: api_token or api_token_file is required", s.Name)
	}
	if s.URI != "" {
		u, err := url.Parse(s.URI)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("server %q: invalid uri %q", s.Name, s.URI)
		}
	}
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("server %q: invalid port %d", s.Name, s.Port)
	}
	return nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.ServerCount() == 0 {
		return fmt.Errorf("no servers configured: add a radarr, sonarr or lidarr entry")
	}
	for _, backend := range models.Backends {
		seen := make(map[string]bool)
		for _, s := range c.Servers(backend) {
			if err := s.Validate(); err != nil {
				return fmt.Errorf("%s: %w", backend, err)
			}
			if seen[s.Name] {
				return fmt.Errorf("%s: duplicate server name %q", backend, s.Name)
			}
			seen[s.Name] = true
		}
	}
	if c.Preferences.TickUntilPoll <= 0 {
		return fmt.Errorf("preferences.tick_until_poll must be positive")
	}
	if c.Preferences.TickRateMs <= 0 {
		return fmt.Errorf("preferences.tick_rate_ms must be positive")
	}
	return nil
}
