// Package config loads the servdash configuration file.
//
// The file lists the Radarr, Sonarr and Lidarr servers to connect to and a
// handful of preferences. It is read with viper so that any preference can
// be overridden from the environment, and written with yaml.v3.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/servdash/config.yaml or $HOME/.config/servdash/config.yaml
//   - macOS: $HOME/.config/servdash/config.yaml
//   - Windows: %LOCALAPPDATA%\servdash\config.yaml
//
// # Example
//
//	radarr:
//	  - name: home
//	    host: 192.168.0.10
//	    api_token: 0123456789abcdef
//	  - name: 4k
//	    uri: https://media.example.com/radarr4k
//	    api_token_file: radarr4k.key
//	    custom_headers:
//	      X-Forwarded-User: me
//	sonarr:
//	  - host: localhost
//	    api_token: fedcba9876543210
//	preferences:
//	  tick_until_poll: 400
//
// # Environment Overrides
//
// Preferences can be overridden with SERVDASH_-prefixed variables, the key
// path joined by underscores:
//
//	SERVDASH_PREFERENCES_TICK_UNTIL_POLL=200 servdash
//
// # Security
//
// API keys may live in a separate file referenced by api_token_file; the
// configuration file itself is written with 0600 permissions.
package config
