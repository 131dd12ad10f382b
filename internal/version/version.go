// Package version reports the servdash build version.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit can be set at build time:
//
//	go build -ldflags="-X github.com/muurk/servdash/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/servdash/internal/version.Commit=abc123"
//
// Otherwise they are read from the module build info, and fall back to a
// dev-<timestamp> version and "unknown" commit.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v, c := fromBuildInfo(info)
			if Version == "" {
				Version = v
			}
			if Commit == "" {
				Commit = c
			}
		}
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo derives a version and short commit hash from build info.
// A tagged module version (go install ...@v1.2.3) wins over the VCS date.
func fromBuildInfo(info *debug.BuildInfo) (version, commit string) {
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; rev != "" {
		commit = rev
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if settings["vcs.modified"] == "true" {
			commit += "-dirty"
		}
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v, commit
	}
	if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
		version = "dev-" + t.Format("20060102")
	}
	return version, commit
}

// Full returns the version with its commit, e.g. "v1.2.3 (commit: abc1234)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent is sent with every request to the remote servers.
func UserAgent() string {
	return "servdash/" + Version
}
