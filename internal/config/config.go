package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/muurk/servdash/internal/models"
)

const (
	appName    = "servdash"
	configFile = "config.yaml"
	logFile    = "servdash.log"

	// EnvPrefix prefixes every environment override, e.g.
	// SERVDASH_PREFERENCES_TICK_UNTIL_POLL=200.
	EnvPrefix = "SERVDASH"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/servdash or $HOME/.config/servdash
//   - macOS: $HOME/.config/servdash (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\servdash
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// GetLogPath returns where the TUI writes its log when the configuration
// doesn't name a file.
func GetLogPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFile), nil
}

// Load reads the configuration from path (or the default location when
// path is empty), applies SERVDASH_* environment overrides, resolves
// token files, fills per-server defaults and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s not found (run 'servdash config init' to create one)", path)
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if err := cfg.normalize(filepath.Dir(path)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults make the preference keys known to viper so env overrides
	// are picked up by Unmarshal.
	v.SetDefault("preferences.tick_rate_ms", DefaultTickRateMs)
	v.SetDefault("preferences.tick_until_poll", DefaultTickUntilPoll)
	v.SetDefault("preferences.request_timeout_seconds", DefaultRequestTimeoutSeconds)
	v.SetDefault("preferences.requests_per_second", DefaultRequestsPerSecond)
	v.SetDefault("preferences.log_level", "")
	v.SetDefault("preferences.log_file", "")
	return v
}

// normalize fills server names and ports and reads api_token_file
// entries. Relative token paths are resolved against baseDir.
func (c *Config) normalize(baseDir string) error {
	for _, backend := range models.Backends {
		servers := c.Servers(backend)
		for i := range servers {
			s := &servers[i]
			if s.Name == "" {
				s.Name = backend.String()
				if i > 0 {
					s.Name = fmt.Sprintf("%s-%d", backend, i+1)
				}
			}
			if s.URI == "" && s.Port == 0 {
				s.Port = backend.DefaultPort()
			}
			if s.APIToken == "" && s.APITokenFile != "" {
				tokenPath := s.APITokenFile
				if !filepath.IsAbs(tokenPath) {
					tokenPath = filepath.Join(baseDir, tokenPath)
				}
				data, err := os.ReadFile(tokenPath)
				if err != nil {
					return fmt.Errorf("%s server %q: failed to read api_token_file: %w", backend, s.Name, err)
				}
				s.APIToken = strings.TrimSpace(string(data))
			}
		}
	}
	return nil
}

// Save writes the configuration to path (or the default location).
// Performs an atomic write to prevent corruption on crash.
func (c *Config) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# servdash configuration file
# Each backend takes a list of servers. api_token may be replaced by
# api_token_file to keep the key out of this file.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes an example configuration with one server per
// backend. It refuses to overwrite an existing file.
func CreateDefaultConfig(path string) (string, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file %s already exists", path)
	}

	cfg := NewConfig()
	cfg.Radarr = []ServarrConfig{{Name: "radarr", Host: "localhost", Port: models.Radarr.DefaultPort(), APIToken: "<radarr api key>"}}
	cfg.Sonarr = []ServarrConfig{{Name: "sonarr", Host: "localhost", Port: models.Sonarr.DefaultPort(), APIToken: "<sonarr api key>"}}
	cfg.Lidarr = []ServarrConfig{{Name: "lidarr", Host: "localhost", Port: models.Lidarr.DefaultPort(), APIToken: "<lidarr api key>"}}
	return path, cfg.Save(path)
}
