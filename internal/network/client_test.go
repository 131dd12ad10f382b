package network

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/servarr"
)

func newTestClient(t *testing.T, backend models.Backend, srv *httptest.Server) *Client {
	t.Helper()
	server := config.ServarrConfig{
		Name:          "test",
		URI:           srv.URL,
		APIToken:      "secret",
		CustomHeaders: map[string]string{"X-Forwarded-User": "me"},
	}
	c, err := NewClient(backend, server, config.NewConfig().Preferences)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestNewClient(t *testing.T) {
	server := config.ServarrConfig{Name: "home", Host: "10.0.0.2", APIToken: "k"}
	c, err := NewClient(models.Lidarr, server, config.NewConfig().Preferences)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if c.BaseURL != "http://10.0.0.2:8686/api/v1" {
		t.Errorf("BaseURL = %s, want http://10.0.0.2:8686/api/v1", c.BaseURL)
	}
	if want := time.Duration(config.DefaultRequestTimeoutSeconds) * time.Second; c.HTTPClient.Timeout != want {
		t.Errorf("Timeout = %v, want %v", c.HTTPClient.Timeout, want)
	}
}

func TestNewClientBadCert(t *testing.T) {
	server := config.ServarrConfig{Name: "tls", APIToken: "k", SSLCertPath: "/nonexistent/cert.pem"}
	if _, err := NewClient(models.Radarr, server, config.NewConfig().Preferences); err == nil {
		t.Error("NewClient() with a missing certificate should fail")
	}
}

func TestClientDoHeadersAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/tag" {
			t.Errorf("path = %s, want /api/v3/tag", r.URL.Path)
		}
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("X-Api-Key = %q, want secret", got)
		}
		if got := r.Header.Get("X-Forwarded-User"); got != "me" {
			t.Errorf("X-Forwarded-User = %q, want me", got)
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "servdash/") {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(`[{"id":1,"label":"4k"},{"id":2,"label":"anime"}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, models.Radarr, srv)
	v, err := c.Do(context.Background(), GetTags(models.Radarr))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	tags, ok := v.([]servarr.Tag)
	if !ok {
		t.Fatalf("Do() value type = %T, want []servarr.Tag", v)
	}
	if len(tags) != 2 || tags[1].Label != "anime" {
		t.Errorf("tags = %+v", tags)
	}
}

func TestClientDoPagedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("pageSize"); got != "500" {
			t.Errorf("pageSize = %q, want 500", got)
		}
		_, _ = w.Write([]byte(`{"page":1,"pageSize":500,"totalRecords":1,"records":[{"id":3,"title":"Some.Movie","size":100,"sizeleft":25}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, models.Radarr, srv)
	v, err := c.Do(context.Background(), GetDownloads(models.Radarr, 500))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	records := v.([]servarr.QueueRecord)
	if len(records) != 1 || records[0].ID != 3 {
		t.Errorf("records = %+v", records)
	}
}

func TestClientDoSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v3/command" {
			t.Errorf("request = %s %s, want POST /api/v3/command", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body servarr.CommandBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Name != "SeriesSearch" || body.SeriesID != 8 {
			t.Errorf("body = %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(t, models.Sonarr, srv)
	if _, err := c.Do(context.Background(), TriggerAutomaticSearch(models.Sonarr, 8)); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestClientDoRawIndexerBody(t *testing.T) {
	raw := `{"id":5,"name":"nzb","fields":[{"name":"apiKey","value":"x"}]}`
	var indexer servarr.Indexer
	if err := json.Unmarshal([]byte(raw), &indexer); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ := io.ReadAll(r.Body)
		if string(got) != raw {
			t.Errorf("body = %s, want the raw indexer document", got)
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"propertyName":"ApiKey","errorMessage":"bad key","severity":"error"}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, models.Radarr, srv)
	v, err := c.Do(context.Background(), TestIndexer(models.Radarr, indexer))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	result := v.(servarr.IndexerTestResult)
	if result.IsValid || result.ID != 5 {
		t.Errorf("result = %+v, want invalid result for indexer 5", result)
	}
}

func TestClientDoHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("{\n  \"message\":   \"boom\"\n}"))
	}))
	defer srv.Close()

	c := newTestClient(t, models.Radarr, srv)
	_, err := c.Do(context.Background(), GetMovies())
	if !IsHTTPError(err) {
		t.Fatalf("Do() error = %v, want HTTP error", err)
	}
	want := `Request failed. Received 500 Internal Server Error response code with body: { "message": "boom" }`
	if got := UserMessage(err); got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

func TestClientDoAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, models.Lidarr, srv)
	_, err := c.Do(context.Background(), ListArtists())
	if !IsAuthError(err) {
		t.Errorf("Do() error = %v, want auth error", err)
	}
}

func TestClientDoParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	c := newTestClient(t, models.Sonarr, srv)
	_, err := c.Do(context.Background(), ListSeries())
	if !IsParseError(err) {
		t.Fatalf("Do() error = %v, want parse error", err)
	}
	if !strings.HasPrefix(UserMessage(err), "Failed to parse response! ") {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestClientDoNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(t, models.Radarr, srv)
	srv.Close()

	_, err := c.Do(context.Background(), GetMovies())
	if !IsNetworkError(err) {
		t.Fatalf("Do() error = %v, want network error", err)
	}
	if !strings.HasPrefix(UserMessage(err), "Failed to send request. ") {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestClientCachesLookups(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`[{"id":0,"title":"Alien","tmdbId":348}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, models.Radarr, srv)
	for i := 0; i < 3; i++ {
		if _, err := c.Do(context.Background(), SearchNewMovie("alien")); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}

	c.InvalidateCache()
	if _, err := c.Do(context.Background(), SearchNewMovie("alien")); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("server hits after InvalidateCache() = %d, want 2", got)
	}
}

func TestClientMutationInvalidatesCache(t *testing.T) {
	var lookups int32
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			atomic.AddInt32(&lookups, 1)
			_, _ = w.Write([]byte(`[{"id":0,"title":"Alien","tmdbId":348}]`))
			return
		}
		if fail.Load() {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"title":"Alien","tmdbId":348}`))
	}))
	defer srv.Close()

	c := newTestClient(t, models.Radarr, srv)
	search := func() {
		t.Helper()
		if _, err := c.Do(context.Background(), SearchNewMovie("alien")); err != nil {
			t.Fatalf("Do(SearchNewMovie) error = %v", err)
		}
	}
	add := AddMovie(servarr.AddMovieBody{TmdbID: 348, Title: "Alien"})

	search()
	fail.Store(true)
	if _, err := c.Do(context.Background(), add); err == nil {
		t.Fatal("Do(AddMovie) error = nil, want HTTP error")
	}
	search()
	if got := atomic.LoadInt32(&lookups); got != 1 {
		t.Errorf("lookups after failed add = %d, want 1", got)
	}

	fail.Store(false)
	if _, err := c.Do(context.Background(), add); err != nil {
		t.Fatalf("Do(AddMovie) error = %v", err)
	}
	search()
	if got := atomic.LoadInt32(&lookups); got != 2 {
		t.Errorf("lookups after successful add = %d, want 2", got)
	}
}
