package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/models"
)

type recordingStore struct {
	mu      sync.Mutex
	applied []Serdeable
	errs    []error
	done    chan Request
}

func newRecordingStore() *recordingStore {
	return &recordingStore{done: make(chan Request, QueueSize)}
}

func (s *recordingStore) Apply(v Serdeable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = append(s.applied, v)
}

func (s *recordingStore) HandleError(_ Request, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *recordingStore) RequestDone(req Request) {
	s.done <- req
}

func (s *recordingStore) waitDone(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for request %d of %d", i+1, n)
		}
	}
}

// pathRecorder serves empty JSON lists and records request paths in order.
type pathRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (p *pathRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.paths = append(p.paths, r.Method+" "+r.URL.Path)
	p.mu.Unlock()
	if r.URL.Path == "/api/v3/queue" {
		_, _ = w.Write([]byte(`{"records":[]}`))
		return
	}
	_, _ = w.Write([]byte(`[]`))
}

func (p *pathRecorder) Paths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.paths...)
}

func startWorker(t *testing.T, n *Network, queue chan Request, store Store) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = n.Run(ctx, queue, store)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestNew(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Radarr = []config.ServarrConfig{{Name: "a", APIToken: "x"}, {Name: "b", APIToken: "y"}}

	n, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c, err := n.Client(models.Radarr, "")
	if err != nil || c.Name != "a" {
		t.Errorf("Client(radarr, \"\") = %v, %v; want a", c, err)
	}
	if c, err := n.Client(models.Radarr, "b"); err != nil || c.Name != "b" {
		t.Errorf("Client(radarr, b) = %v, %v; want b", c, err)
	}
	if _, err := n.Client(models.Sonarr, ""); err == nil {
		t.Error("Client(sonarr) with none configured should fail")
	}
}

func TestRunFIFO(t *testing.T) {
	rec := &pathRecorder{}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	n := &Network{clients: map[models.Backend]map[string]*Client{}, first: map[models.Backend]string{}}
	n.AddClient(newTestClient(t, models.Radarr, srv))

	queue := make(chan Request, QueueSize)
	store := newRecordingStore()
	queue <- GetTags(models.Radarr)
	queue <- GetMovies()
	queue <- DeleteDownload(models.Radarr, 4)
	queue <- GetDownloads(models.Radarr, 500)
	startWorker(t, n, queue, store)
	store.waitDone(t, 4)

	want := []string{"GET /api/v3/tag", "GET /api/v3/movie", "DELETE /api/v3/queue/4", "GET /api/v3/queue"}
	got := rec.Paths()
	if len(got) != len(want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paths[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.applied) != 4 {
		t.Errorf("applied = %d, want 4", len(store.applied))
	}
	if len(store.errs) != 0 {
		t.Errorf("errs = %v, want none", store.errs)
	}
}

func TestRunDropsStaleFetchesButKeepsMutations(t *testing.T) {
	rec := &pathRecorder{}
	srv := httptest.NewServer(rec)
	defer srv.Close()

	n := &Network{clients: map[models.Backend]map[string]*Client{}, first: map[models.Backend]string{}}
	n.AddClient(newTestClient(t, models.Radarr, srv))

	stale := NewCancellationToken()
	fresh := NewCancellationToken()
	stamp := func(r Request, tok *CancellationToken) Request {
		r.Token = tok
		return r
	}

	queue := make(chan Request, QueueSize)
	queue <- stamp(GetTags(models.Radarr), stale)
	queue <- stamp(DeleteMovie(3, false, false), stale)
	queue <- stamp(GetMovies(), stale)
	queue <- stamp(GetIndexers(models.Radarr), fresh)
	stale.Cancel()

	store := newRecordingStore()
	startWorker(t, n, queue, store)
	store.waitDone(t, 4)

	want := []string{"DELETE /api/v3/movie/3", "GET /api/v3/indexer"}
	got := rec.Paths()
	if len(got) != len(want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paths[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRunReportsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	n := &Network{clients: map[models.Backend]map[string]*Client{}, first: map[models.Backend]string{}}
	n.AddClient(newTestClient(t, models.Sonarr, srv))

	queue := make(chan Request, QueueSize)
	queue <- GetSeriesDetails(1)
	queue <- GetMovies() // wrong backend, never reaches the server
	store := newRecordingStore()
	startWorker(t, n, queue, store)
	store.waitDone(t, 2)

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.errs) != 2 {
		t.Fatalf("errs = %v, want 2", store.errs)
	}
	if !IsHTTPError(store.errs[0]) {
		t.Errorf("errs[0] = %v, want HTTP error", store.errs[0])
	}
	if len(store.applied) != 0 {
		t.Errorf("applied = %v, want none", store.applied)
	}
}

func TestRunStopsWhenQueueCloses(t *testing.T) {
	n := &Network{clients: map[models.Backend]map[string]*Client{}, first: map[models.Backend]string{}}
	queue := make(chan Request)
	close(queue)

	errc := make(chan error, 1)
	go func() { errc <- n.Run(context.Background(), queue, newRecordingStore()) }()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after the queue closed")
	}
}

func TestCancellationToken(t *testing.T) {
	tok := NewCancellationToken()
	if tok.Cancelled() {
		t.Error("new token should not be cancelled")
	}
	tok.Cancel()
	tok.Cancel()
	if !tok.Cancelled() {
		t.Error("token should be cancelled")
	}
	select {
	case <-tok.Done():
	default:
		t.Error("Done() should be closed after Cancel()")
	}
}
