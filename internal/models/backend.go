package models

import (
	"fmt"
	"strings"
)

// Backend identifies which kind of remote server a route, request or
// server tab belongs to.
type Backend string

const (
	Radarr Backend = "radarr"
	Sonarr Backend = "sonarr"
	Lidarr Backend = "lidarr"
)

// Backends lists every supported backend in display order.
var Backends = []Backend{Radarr, Sonarr, Lidarr}

// String returns the backend name.
func (b Backend) String() string {
	return string(b)
}

// Title returns the capitalized display name (e.g. "Radarr").
func (b Backend) Title() string {
	if b == "" {
		return ""
	}
	return strings.ToUpper(string(b[:1])) + string(b[1:])
}

// DefaultPort returns the port the backend listens on out of the box.
func (b Backend) DefaultPort() int {
	switch b {
	case Radarr:
		return 7878
	case Sonarr:
		return 8989
	case Lidarr:
		return 8686
	default:
		return 0
	}
}

// APIVersion returns the REST API version prefix segment used by the backend.
func (b Backend) APIVersion() string {
	if b == Lidarr {
		return "v1"
	}
	return "v3"
}

// RootBlock is the library screen a backend opens on.
func (b Backend) RootBlock() Block {
	switch b {
	case Sonarr:
		return BlockSeries
	case Lidarr:
		return BlockArtists
	default:
		return BlockMovies
	}
}

// ParseBackend converts a user-supplied name into a Backend.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case Radarr:
		return Radarr, nil
	case Sonarr:
		return Sonarr, nil
	case Lidarr:
		return Lidarr, nil
	}
	return "", fmt.Errorf("unknown backend %q (expected radarr, sonarr or lidarr)", s)
}
