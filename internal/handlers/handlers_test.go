package handlers

import (
	"testing"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
)

func newTestApp(t *testing.T) (*app.App, chan network.Request) {
	t.Helper()
	cfg := &config.Config{
		Radarr:      []config.ServarrConfig{{Name: "main", Host: "localhost", APIToken: "r"}},
		Sonarr:      []config.ServarrConfig{{Name: "tv", Host: "localhost", APIToken: "s"}},
		Lidarr:      []config.ServarrConfig{{Name: "music", Host: "localhost", APIToken: "l"}},
		Preferences: config.Preferences{TickUntilPoll: 1000},
	}
	queue := make(chan network.Request, 128)
	a, err := app.New(cfg, queue)
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	a.FirstRender = false
	return a, queue
}

func drain(queue chan network.Request) []network.Request {
	var out []network.Request
	for {
		select {
		case req := <-queue:
			out = append(out, req)
		default:
			return out
		}
	}
}

func count(reqs []network.Request, event network.Event) int {
	n := 0
	for _, r := range reqs {
		if r.Event == event {
			n++
		}
	}
	return n
}

// complete marks reqs done the way the network worker would.
func complete(a *app.App, reqs []network.Request) {
	for _, r := range reqs {
		a.RequestDone(r)
	}
}

func press(a *app.App, keys ...models.Key) {
	for _, k := range keys {
		Handle(a, k)
	}
}

func typeText(a *app.App, s string) {
	for _, r := range s {
		Handle(a, models.RuneKey(r))
	}
}

var (
	up    = models.Key{Code: models.KeyUp}
	down  = models.Key{Code: models.KeyDown}
	left  = models.Key{Code: models.KeyLeft}
	right = models.Key{Code: models.KeyRight}
	enter = models.Key{Code: models.KeyEnter}
	esc   = models.Key{Code: models.KeyEsc}
	tab   = models.Key{Code: models.KeyTab}
	bksp  = models.Key{Code: models.KeyBackspace}
)

func withMovies(a *app.App) {
	a.Radarr.Movies.SetItems([]servarr.Movie{
		{ID: 1, Title: "Arrival"},
		{ID: 2, Title: "Dune"},
		{ID: 3, Title: "Sicario"},
	})
}

func TestDeleteMovieConfirmedThroughPrompt(t *testing.T) {
	a, queue := newTestApp(t)
	withMovies(a)
	press(a, down) // Dune

	press(a, models.RuneKey('d'))
	if got := a.CurrentRoute().Block; got != models.BlockDeletePrompt {
		t.Fatalf("route after d = %s, want delete prompt", got)
	}
	press(a, enter)      // toggle delete files
	press(a, down, down) // confirm step
	press(a, right)      // yes
	press(a, enter)      // submit

	if a.CurrentRoute().Block != models.BlockMovies {
		t.Errorf("route after submit = %v, want movies", a.CurrentRoute())
	}
	if !a.ShouldRefresh {
		t.Error("ShouldRefresh should be set after a confirmed submit")
	}

	a.OnTick()
	got := drain(queue)
	if n := count(got, network.DeleteMovieEvent); n != 1 {
		t.Fatalf("%d DeleteMovie requests, want 1", n)
	}
	if got[0].Event != network.DeleteMovieEvent || got[0].ID != 2 || !got[0].DeleteFiles {
		t.Errorf("first request = %+v, want DeleteMovie(2, deleteFiles)", got[0])
	}
	if !a.ShouldRefresh {
		t.Error("ShouldRefresh should be set after the action is dispatched")
	}

	a.OnTick()
	if n := count(drain(queue), network.DeleteMovieEvent); n != 0 {
		t.Errorf("staged action ran again: %d requests", n)
	}
}

func TestDeleteMovieDeclined(t *testing.T) {
	a, queue := newTestApp(t)
	withMovies(a)

	press(a, models.RuneKey('d'), down, down, enter)

	if a.CurrentRoute().Block != models.BlockMovies {
		t.Errorf("prompt should be closed, route = %v", a.CurrentRoute())
	}
	if a.Radarr.Delete != nil {
		t.Error("delete prompt state should be cleared")
	}
	a.OnTick()
	if got := drain(queue); len(got) != 0 {
		t.Errorf("declined prompt dispatched %d requests, want 0", len(got))
	}
}

func TestSinglePromptToggle(t *testing.T) {
	a, queue := newTestApp(t)
	a.PopAndPushRoute(models.NewRoute(models.Radarr, models.BlockDownloads))
	a.Radarr.Downloads.SetItems([]servarr.QueueRecord{{ID: 9, Title: "Dune.2021.1080p"}})

	press(a, models.RuneKey('d'))
	want := models.NewRoute(models.Radarr, models.BlockDeleteDownloadPrompt).WithParent(models.BlockDownloads)
	if a.CurrentRoute() != want {
		t.Fatalf("route = %v, want %v", a.CurrentRoute(), want)
	}
	press(a, left, right, left, enter)

	a.OnTick()
	got := drain(queue)
	if len(got) < 2 || got[0].Event != network.DeleteDownloadEvent || got[0].ID != 9 {
		t.Fatalf("dispatched %v, want DeleteDownload(9) first", got)
	}
	if got[1].Event != network.GetDownloadsEvent {
		t.Errorf("second request = %s, want GetDownloads", got[1].Event)
	}
}

func TestPromptNeedsSelection(t *testing.T) {
	a, _ := newTestApp(t)
	a.PopAndPushRoute(models.NewRoute(models.Radarr, models.BlockDownloads))

	press(a, models.RuneKey('d'))
	if a.CurrentRoute().Block != models.BlockDownloads {
		t.Errorf("prompt opened on an empty table: %v", a.CurrentRoute())
	}
}

func TestEscCancelsPrompt(t *testing.T) {
	a, queue := newTestApp(t)
	a.PopAndPushRoute(models.NewRoute(models.Radarr, models.BlockDownloads))

	press(a, models.RuneKey('u'), right, esc)

	if a.CurrentRoute().Block != models.BlockDownloads {
		t.Errorf("route = %v, want downloads", a.CurrentRoute())
	}
	if a.Radarr.Prompt.Confirm {
		t.Error("Esc should reset the prompt")
	}
	a.OnTick()
	if got := drain(queue); len(got) != 0 {
		t.Errorf("cancelled prompt dispatched %d requests", len(got))
	}
}

func TestFilterAndEsc(t *testing.T) {
	a, _ := newTestApp(t)
	withMovies(a)

	press(a, models.RuneKey('f'))
	if a.CurrentRoute().Block != models.BlockFilter {
		t.Fatalf("route = %v, want filter", a.CurrentRoute())
	}
	typeText(a, "dunx")
	press(a, bksp)
	typeText(a, "e")
	if a.Radarr.Input != "dune" {
		t.Errorf("Input = %q, want dune", a.Radarr.Input)
	}
	press(a, enter)

	if a.CurrentRoute().Block != models.BlockMovies {
		t.Errorf("route after submit = %v, want movies", a.CurrentRoute())
	}
	if a.Radarr.Movies.Len() != 1 || a.Radarr.Input != "" {
		t.Errorf("Len() = %d, Input = %q; want 1 row, empty input", a.Radarr.Movies.Len(), a.Radarr.Input)
	}

	press(a, esc)
	if a.Radarr.Movies.Filter() != "" || a.Radarr.Movies.Len() != 3 {
		t.Error("Esc should reset the filter first")
	}
	press(a, esc)
	if a.NavigationDepth() != 1 {
		t.Errorf("NavigationDepth() = %d, want 1", a.NavigationDepth())
	}
}

func TestFilterNoMatchKeepsInput(t *testing.T) {
	a, _ := newTestApp(t)
	withMovies(a)

	press(a, models.RuneKey('f'))
	typeText(a, "zzzz")
	press(a, enter)

	if a.CurrentRoute().Block != models.BlockFilter {
		t.Errorf("route = %v, want filter to stay open", a.CurrentRoute())
	}
	if a.Radarr.Movies.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Radarr.Movies.Len())
	}
}

func TestSearchMovesCursor(t *testing.T) {
	a, _ := newTestApp(t)
	withMovies(a)

	press(a, models.RuneKey('s'))
	typeText(a, "sicario")
	press(a, enter)

	m, _ := a.Radarr.Movies.Current()
	if m.ID != 3 || a.Radarr.Movies.Len() != 3 {
		t.Errorf("Current() = %v, Len() = %d; want Sicario with all rows", m, a.Radarr.Movies.Len())
	}
}

func TestEscClearsErrorFirst(t *testing.T) {
	a, _ := newTestApp(t)
	a.PushRoute(models.NewRoute(models.Radarr, models.BlockMovieDetails).WithParent(models.BlockMovies))
	a.Error = "Failed to send request."

	press(a, esc)
	if a.Error != "" || a.NavigationDepth() != 2 {
		t.Errorf("Error = %q, depth = %d; want cleared error and no pop", a.Error, a.NavigationDepth())
	}
}

func TestMainTabs(t *testing.T) {
	a, _ := newTestApp(t)

	press(a, right)
	if got := a.CurrentRoute(); got != models.NewRoute(models.Radarr, models.BlockCollections) {
		t.Errorf("route = %v, want collections", got)
	}
	if !a.ShouldRefresh || a.NavigationDepth() != 1 {
		t.Errorf("ShouldRefresh = %v, depth = %d", a.ShouldRefresh, a.NavigationDepth())
	}

	press(a, left, left)
	if got := a.CurrentRoute().Block; got != models.BlockSystem {
		t.Errorf("route = %s, want system (wrapped)", got)
	}
}

func TestMovieDetailTabs(t *testing.T) {
	a, queue := newTestApp(t)
	withMovies(a)

	press(a, enter)
	if a.CurrentRoute().Block != models.BlockMovieDetails || a.Radarr.DetailTabs == nil {
		t.Fatalf("route = %v, DetailTabs = %v", a.CurrentRoute(), a.Radarr.DetailTabs)
	}
	a.OnTick()
	got := drain(queue)
	if len(got) == 0 || got[0].Event != network.GetMovieDetailsEvent || got[0].ID != 1 {
		t.Errorf("dispatched %v, want GetMovieDetails(1) first", got)
	}

	press(a, right)
	if a.CurrentRoute().Block != models.BlockMovieHistory || a.NavigationDepth() != 2 {
		t.Errorf("route = %v depth %d, want movie history depth 2", a.CurrentRoute(), a.NavigationDepth())
	}

	press(a, esc)
	if a.CurrentRoute().Block != models.BlockMovies || a.Radarr.DetailTabs != nil {
		t.Errorf("route = %v, DetailTabs = %v; want movies, nil", a.CurrentRoute(), a.Radarr.DetailTabs)
	}
}

func TestSonarrSeasonNavigation(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, tab)
	if a.ActiveServer().Backend != models.Sonarr {
		t.Fatalf("ActiveServer() = %v, want sonarr", a.ActiveServer())
	}
	a.Sonarr.Series.SetItems([]servarr.Series{{ID: 11, Title: "Severance"}})

	press(a, enter)
	if a.CurrentRoute().Block != models.BlockSeriesDetails {
		t.Fatalf("route = %v, want series details", a.CurrentRoute())
	}
	a.Sonarr.Seasons.SetItems([]servarr.Season{{SeasonNumber: 1}, {SeasonNumber: 2}})
	press(a, down, enter)

	if a.CurrentRoute().Block != models.BlockSeasonDetails || a.Sonarr.SelectedSeason != 2 {
		t.Errorf("route = %v, SelectedSeason = %d", a.CurrentRoute(), a.Sonarr.SelectedSeason)
	}

	press(a, esc)
	if a.CurrentRoute().Block != models.BlockSeriesDetails || a.Sonarr.DetailTabs == nil {
		t.Errorf("back on %v with DetailTabs = %v; want series details with tabs", a.CurrentRoute(), a.Sonarr.DetailTabs)
	}
}

func TestAddMovieFlow(t *testing.T) {
	a, queue := newTestApp(t)
	a.Radarr.RootFolders.SetItems([]servarr.RootFolder{{ID: 1, Path: "/movies"}})
	a.Radarr.QualityProfiles = []servarr.QualityProfile{{ID: 4, Name: "HD-1080p"}}

	press(a, models.RuneKey('a'))
	typeText(a, "dune")
	press(a, enter)

	if a.CurrentRoute().Block != models.BlockAddSearchResults || a.Radarr.AddQuery != "dune" {
		t.Fatalf("route = %v, AddQuery = %q", a.CurrentRoute(), a.Radarr.AddQuery)
	}
	if a.NavigationDepth() != 2 {
		t.Errorf("NavigationDepth() = %d, want 2", a.NavigationDepth())
	}
	a.OnTick()
	got := drain(queue)
	if len(got) == 0 || got[0].Event != network.SearchNewMovieEvent || got[0].Query != "dune" {
		t.Fatalf("dispatched %v, want SearchNewMovie(dune)", got)
	}
	complete(a, got)

	a.Radarr.AddSearchResults.SetItems([]servarr.Movie{{TmdbID: 438631, Title: "Dune"}})
	press(a, enter)
	if a.CurrentRoute().Block != models.BlockAddPrompt || a.Radarr.Add == nil {
		t.Fatalf("route = %v, want add prompt", a.CurrentRoute())
	}
	press(a, enter, enter, enter) // root folder, profile, monitor
	press(a, right, enter)

	if a.CurrentRoute().Block != models.BlockAddSearchResults {
		t.Errorf("route = %v, want add search results", a.CurrentRoute())
	}
	a.OnTick()
	got = drain(queue)
	if count(got, network.AddMovieEvent) != 1 {
		t.Fatalf("dispatched %v, want one AddMovie", got)
	}
	body := got[0].Body.(servarr.AddMovieBody)
	if body.TmdbID != 438631 || body.RootFolderPath != "/movies" || body.QualityProfileID != 4 {
		t.Errorf("AddMovie body = %+v", body)
	}

	press(a, esc)
	if a.CurrentRoute().Block != models.BlockMovies || !a.ShouldRefresh {
		t.Errorf("route = %v, ShouldRefresh = %v", a.CurrentRoute(), a.ShouldRefresh)
	}
	if a.Radarr.AddQuery != "" || !a.Radarr.AddSearchResults.IsEmpty() {
		t.Error("leaving the results should clear the add search")
	}
}

func TestAddPromptCyclesOptions(t *testing.T) {
	a, _ := newTestApp(t)
	a.Radarr.RootFolders.SetItems([]servarr.RootFolder{{ID: 1, Path: "/movies"}, {ID: 2, Path: "/kids"}})
	a.PushRoute(models.NewRoute(models.Radarr, models.BlockAddSearchResults).WithParent(models.BlockMovies))
	a.Radarr.AddSearchResults.SetItems([]servarr.Movie{{TmdbID: 1, Title: "Up"}})

	press(a, enter, right)
	if got := a.Radarr.Add.RootFolderPath(); got != "/kids" {
		t.Errorf("RootFolderPath() = %q, want /kids", got)
	}
	press(a, down, down, down, up)
	if got := a.Radarr.Add.Selection.CurrentBlock(); got != models.BlockAddSelectMonitor {
		t.Errorf("focused = %s, want monitor", got)
	}
}

func TestIndexerCommands(t *testing.T) {
	a, queue := newTestApp(t)
	a.PopAndPushRoute(models.NewRoute(models.Radarr, models.BlockIndexers))
	a.Radarr.Indexers.SetItems([]servarr.Indexer{{ID: 5, Name: "nzbgeek"}})

	press(a, models.RuneKey('t'))
	if a.CurrentRoute().Block != models.BlockTestIndexer {
		t.Fatalf("route = %v, want test indexer", a.CurrentRoute())
	}
	a.OnTick()
	got := drain(queue)
	if len(got) == 0 || got[0].Event != network.TestIndexerEvent || got[0].ID != 5 {
		t.Errorf("dispatched %v, want TestIndexer(5)", got)
	}
	complete(a, got)

	press(a, esc, models.RuneKey('T'))
	if a.CurrentRoute().Block != models.BlockTestAllIndexers {
		t.Errorf("route = %v, want test all indexers", a.CurrentRoute())
	}
}

func TestTabSwitchesServer(t *testing.T) {
	a, _ := newTestApp(t)
	old := a.CancellationToken()

	press(a, tab, tab)
	if a.ActiveServer().Backend != models.Lidarr {
		t.Errorf("ActiveServer() = %v, want lidarr", a.ActiveServer())
	}
	if !old.Cancelled() {
		t.Error("switching server should cancel queued fetches")
	}
	press(a, models.Key{Code: models.KeyBackTab})
	if a.ActiveServer().Backend != models.Sonarr {
		t.Errorf("ActiveServer() = %v, want sonarr", a.ActiveServer())
	}
}

func TestInputGatedWhileLoading(t *testing.T) {
	a, queue := newTestApp(t)
	withMovies(a)
	a.ShouldRefresh = true
	a.OnTick()
	reqs := drain(queue)
	if !a.IsLoading {
		t.Fatal("IsLoading should be set while the library fetches are queued")
	}

	press(a, down, enter, models.RuneKey('d'))
	if got, _ := a.Radarr.Movies.Current(); got.ID != 1 {
		t.Errorf("cursor moved to %d while loading", got.ID)
	}
	if a.NavigationDepth() != 1 {
		t.Errorf("route = %v, want nothing opened while loading", a.CurrentRoute())
	}

	press(a, right)
	if a.CurrentRoute().Block != models.BlockCollections {
		t.Errorf("route = %v, tab switching should work while loading", a.CurrentRoute())
	}
	press(a, left)

	complete(a, reqs)
	a.OnTick()
	complete(a, drain(queue))
	if a.IsLoading {
		t.Fatal("IsLoading should clear once every fetch is done")
	}
	press(a, down)
	if got, _ := a.Radarr.Movies.Current(); got.ID != 2 {
		t.Errorf("cursor = %d after loading, want 2", got.ID)
	}
}

func TestEscAndTypingWorkWhileLoading(t *testing.T) {
	a, queue := newTestApp(t)
	withMovies(a)
	press(a, models.RuneKey('f'))
	a.Dispatch(network.GetMovies())
	if len(drain(queue)) != 1 || !a.IsLoading {
		t.Fatal("the dispatched fetch should set IsLoading")
	}

	typeText(a, "du")
	press(a, bksp)
	if a.Radarr.Input != "d" {
		t.Errorf("Input = %q, want %q", a.Radarr.Input, "d")
	}
	press(a, esc)
	if a.CurrentRoute().Block != models.BlockMovies {
		t.Errorf("route = %v, Esc should close the filter while loading", a.CurrentRoute())
	}
}

// The periodic metadata refresh runs in the background and never locks
// the table.
func TestMetadataPollDoesNotGateInput(t *testing.T) {
	a, queue := newTestApp(t)
	withMovies(a)
	a.TickUntilPoll = 1

	a.OnTick()
	if len(drain(queue)) == 0 {
		t.Fatal("poll tick dispatched nothing")
	}
	press(a, down)
	if got, _ := a.Radarr.Movies.Current(); got.ID != 2 {
		t.Errorf("cursor = %d, want 2", got.ID)
	}
}
