package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
)

// fakeRadarr records the requests it receives.
type fakeRadarr struct {
	mu       sync.Mutex
	requests []string
}

func (f *fakeRadarr) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path+"?"+r.URL.RawQuery)
	f.mu.Unlock()

	if r.Header.Get("X-Api-Key") != "secret-token" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v3/movie":
		_ = json.NewEncoder(w).Encode([]servarr.Movie{
			{ID: 1, Title: "Arrival", Year: 2016, Monitored: true},
			{ID: 2, Title: "Dune", Year: 2021},
		})
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/v3/"):
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeRadarr) seen(prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if strings.HasPrefix(r, prefix) {
			return true
		}
	}
	return false
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	configPath, serverName, outputFormat, assumeYes = "", "", "table", false
	deleteFiles, addListExclusion = false, false

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, uri string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "radarr:\n  - name: main\n    uri: " + uri + "\n    api_token: secret-token\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestListMoviesJSON(t *testing.T) {
	fake := &fakeRadarr{}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	cfg := writeConfig(t, srv.URL)

	out, err := runCLI(t, "", "--config", cfg, "radarr", "list", "movies", "--output", "json")
	if err != nil {
		t.Fatalf("list movies error = %v\n%s", err, out)
	}

	var movies []servarr.Movie
	if err := json.Unmarshal([]byte(out), &movies); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(movies) != 2 || movies[1].Title != "Dune" {
		t.Errorf("movies = %+v", movies)
	}
}

func TestListMoviesTable(t *testing.T) {
	fake := &fakeRadarr{}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	cfg := writeConfig(t, srv.URL)

	out, err := runCLI(t, "", "--config", cfg, "radarr", "list", "movies")
	if err != nil {
		t.Fatalf("list movies error = %v\n%s", err, out)
	}
	for _, want := range []string{"RADARR MOVIES", "TITLE", "Arrival", "Dune", "main"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownServer(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1")

	_, err := runCLI(t, "", "--config", cfg, "radarr", "list", "movies", "--server", "nope")
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("error = %v, want unknown server", err)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	fake := &fakeRadarr{}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	cfg := writeConfig(t, srv.URL)

	out, err := runCLI(t, "no\n", "--config", cfg, "radarr", "delete", "download", "7")
	if err != nil {
		t.Fatalf("delete error = %v\n%s", err, out)
	}
	if fake.seen("DELETE") {
		t.Error("nothing should be deleted without confirmation")
	}
	if !strings.Contains(out, "Cancelled") {
		t.Errorf("output should say the command was cancelled:\n%s", out)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	fake := &fakeRadarr{}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	cfg := writeConfig(t, srv.URL)

	out, err := runCLI(t, "yes\n", "--config", cfg, "radarr", "delete", "download", "7")
	if err != nil {
		t.Fatalf("delete error = %v\n%s", err, out)
	}
	if !fake.seen("DELETE /api/v3/queue/7") {
		t.Errorf("requests = %v, want DELETE /api/v3/queue/7", fake.requests)
	}
	if !strings.Contains(out, "SUCCESS") {
		t.Errorf("output missing success box:\n%s", out)
	}
}

func TestDeleteMovieFlags(t *testing.T) {
	fake := &fakeRadarr{}
	srv := httptest.NewServer(fake)
	defer srv.Close()
	cfg := writeConfig(t, srv.URL)

	out, err := runCLI(t, "", "--config", cfg, "radarr", "delete", "movie", "1", "--delete-files", "--yes")
	if err != nil {
		t.Fatalf("delete error = %v\n%s", err, out)
	}
	if !fake.seen("DELETE /api/v3/movie/1?addImportExclusion=false&deleteFiles=true") {
		t.Errorf("requests = %v", fake.requests)
	}
}

func TestDeleteInvalidID(t *testing.T) {
	_, err := runCLI(t, "", "radarr", "delete", "download", "abc", "--yes")
	if err == nil || !strings.Contains(err.Error(), "invalid id") {
		t.Errorf("error = %v, want invalid id", err)
	}
}

func TestMutationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	cfg := writeConfig(t, srv.URL)

	out, err := runCLI(t, "", "--config", cfg, "radarr", "refresh-downloads")
	if err == nil {
		t.Fatal("refresh-downloads should fail on HTTP 500")
	}
	if !strings.Contains(out, "FAILED") {
		t.Errorf("output missing failure box:\n%s", out)
	}
}

func TestTroubleshootingTips(t *testing.T) {
	tips := troubleshootingTips(network.NewHTTPError("main", http.StatusInternalServerError, ""))
	if len(tips) != 1 || !strings.Contains(tips[0], "500") {
		t.Errorf("tips = %v, want the single hint", tips)
	}

	if tips := troubleshootingTips(errors.New("boom")); len(tips) != 1 {
		t.Errorf("tips = %v, want the generic hint", tips)
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"abc", "****"},
		{"0123456789abcdef", "****cdef"},
	}
	for _, tt := range tests {
		if got := maskToken(tt.token); got != tt.want {
			t.Errorf("maskToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestConfigShowMasksTokens(t *testing.T) {
	cfg := writeConfig(t, "http://localhost:7878")

	out, err := runCLI(t, "", "--config", cfg, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if strings.Contains(out, "secret-token") {
		t.Errorf("config show leaked the token:\n%s", out)
	}
	if !strings.Contains(out, "****oken") {
		t.Errorf("config show missing masked token:\n%s", out)
	}
}
