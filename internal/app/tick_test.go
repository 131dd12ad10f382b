package app

import (
	"reflect"
	"testing"

	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
)

func metadataEvents(b models.Backend) []network.Event {
	return events(MetadataRequests(b))
}

func TestOnTickFirstRender(t *testing.T) {
	a, queue := newTestApp(t, 64)

	a.OnTick()

	want := append(metadataEvents(models.Radarr),
		network.GetQualityProfilesEvent,
		network.GetTagsEvent,
		network.GetMoviesEvent,
		network.GetDownloadsEvent,
	)
	if got := events(drain(queue)); !reflect.DeepEqual(got, want) {
		t.Errorf("first tick dispatched %v, want %v", got, want)
	}
	if a.FirstRender {
		t.Error("FirstRender should be cleared after the first tick")
	}
	if a.TickCount != 0 {
		t.Errorf("TickCount = %d, want 0", a.TickCount)
	}
}

// On the downloads screen with tick_until_poll=2 the queue (part of the
// metadata set) is refetched every second idle frame.
func TestOnTickPollsDownloads(t *testing.T) {
	a, queue := newTestApp(t, 64)
	a.FirstRender = false
	a.PopAndPushRoute(models.NewRoute(models.Radarr, models.BlockDownloads))
	a.ShouldRefresh = true

	a.OnTick()
	got := events(drain(queue))
	if len(got) == 0 || got[0] != network.GetDownloadsEvent {
		t.Fatalf("refresh tick dispatched %v, want GetDownloads first", got)
	}
	if a.IsRouting || a.ShouldRefresh {
		t.Error("OnTick() should clear IsRouting and ShouldRefresh")
	}

	a.OnTick()
	if got := drain(queue); len(got) != 0 {
		t.Errorf("tick 1 dispatched %v, want nothing", events(got))
	}
	if a.TickCount != 1 {
		t.Errorf("TickCount = %d, want 1", a.TickCount)
	}

	a.OnTick()
	if got := events(drain(queue)); !reflect.DeepEqual(got, metadataEvents(models.Radarr)) {
		t.Errorf("tick 2 dispatched %v, want metadata set", got)
	}

	a.OnTick()
	a.OnTick()
	if got := events(drain(queue)); !reflect.DeepEqual(got, metadataEvents(models.Radarr)) {
		t.Errorf("ticks 3-4 dispatched %v, want one metadata set", got)
	}
}

func TestOnTickRefreshResetsTickCount(t *testing.T) {
	a, queue := newTestApp(t, 64)
	a.FirstRender = false
	a.TickUntilPoll = 10
	for i := 0; i < 5; i++ {
		a.OnTick()
	}
	if a.TickCount != 5 {
		t.Fatalf("TickCount = %d, want 5", a.TickCount)
	}

	a.ShouldRefresh = true
	a.OnTick()
	if a.TickCount != 0 {
		t.Errorf("TickCount after refresh = %d, want 0", a.TickCount)
	}
	if got := drain(queue); len(got) == 0 {
		t.Error("refresh tick should dispatch the screen's fetch set")
	}
}

func isCancelled(req network.Request) bool {
	return req.Token != nil && req.Token.Cancelled()
}

func TestOnTickRoutingCancelsClosedScreens(t *testing.T) {
	a, queue := newTestApp(t, 64)
	a.FirstRender = false
	a.TickUntilPoll = 100
	a.Dispatch(network.GetMovies())
	library := drain(queue)[0]

	a.PushRoute(models.NewRoute(models.Radarr, models.BlockMovieDetails).WithParent(models.BlockMovies))
	a.Dispatch(network.GetMovieDetails(1))
	details := drain(queue)[0]

	a.PopRoute()
	a.OnTick()

	if !isCancelled(details) {
		t.Error("fetches of the closed screen should be cancelled")
	}
	if isCancelled(library) {
		t.Error("fetches of the screen returned to should survive")
	}
	if a.CancellationToken() != library.Token {
		t.Error("the library screen should keep its token")
	}
	if got := drain(queue); len(got) != 0 {
		t.Errorf("routing tick dispatched %v, want nothing", events(got))
	}
}

func TestOnTickRoutingWithRefreshKeepsParentToken(t *testing.T) {
	a, queue := newTestApp(t, 64)
	a.FirstRender = false
	token := a.CancellationToken()

	a.PushRoute(models.NewRoute(models.Radarr, models.BlockMovieDetails).WithParent(models.BlockMovies))
	a.ShouldRefresh = true
	a.OnTick()

	if token.Cancelled() {
		t.Error("opening a sub-screen should not cancel the parent's fetches")
	}
	got := drain(queue)
	if len(got) == 0 || got[0].Event != network.GetMovieDetailsEvent {
		t.Fatalf("dispatched %v, want GetMovieDetails first", events(got))
	}
	if got[0].Token == token || got[0].Token != a.CancellationToken() {
		t.Error("details fetches should carry the details screen's token")
	}
}

// Opening an input box over the library and closing it again must not lose
// the library fetches queued by the first frame.
func TestSubRouteRoundTripKeepsBootstrapFetches(t *testing.T) {
	a, queue := newTestApp(t, 64)
	a.TickUntilPoll = 100

	a.OnTick()
	a.PushRoute(models.NewRoute(models.Radarr, models.BlockAddSearchInput).WithParent(models.BlockMovies))
	a.OnTick()
	a.PopRoute()
	a.OnTick()
	a.OnTick()

	got := drain(queue)
	if len(got) == 0 {
		t.Fatal("first tick dispatched nothing")
	}
	sawMovies := false
	for _, req := range got {
		if isCancelled(req) {
			t.Errorf("%s was cancelled by the round trip", req.Event)
		}
		if req.Event == network.GetMoviesEvent {
			sawMovies = true
		}
	}
	if !sawMovies {
		t.Error("GetMovies was never dispatched")
	}
}

func TestSwitchServerCancelsEveryScreen(t *testing.T) {
	a, queue := newTestApp(t, 64)
	a.FirstRender = false
	a.Dispatch(network.GetMovies())
	a.PushRoute(models.NewRoute(models.Radarr, models.BlockMovieDetails).WithParent(models.BlockMovies))
	a.Dispatch(network.GetMovieDetails(1))
	reqs := drain(queue)

	a.NextServer()
	for _, req := range reqs {
		if !isCancelled(req) {
			t.Errorf("%s should be cancelled by a server switch", req.Event)
		}
	}
}

func TestDispatchByBlockRunsStagedActionFirst(t *testing.T) {
	a, queue := newTestApp(t, 64)
	a.FirstRender = false
	route := models.NewRoute(models.Radarr, models.BlockDownloads)

	d := a.ServarrData(models.Radarr)
	d.Prompt.Toggle()
	if !d.Prompt.Arm(network.DeleteDownload(models.Radarr, 7)) {
		t.Fatal("Arm() with Confirm = true should stage the request")
	}

	a.DispatchByBlock(route)

	got := drain(queue)
	want := []network.Event{network.DeleteDownloadEvent, network.GetDownloadsEvent}
	if !reflect.DeepEqual(events(got), want) {
		t.Errorf("dispatched %v, want %v", events(got), want)
	}
	if got[0].ID != 7 {
		t.Errorf("DeleteDownload ID = %d, want 7", got[0].ID)
	}
	if d.Prompt.Armed() {
		t.Error("staged action should run once")
	}
	if !a.ShouldRefresh {
		t.Error("executing a staged action should request a refresh")
	}

	a.ShouldRefresh = false
	a.DispatchByBlock(route)
	if got := events(drain(queue)); !reflect.DeepEqual(got, []network.Event{network.GetDownloadsEvent}) {
		t.Errorf("second dispatch = %v, want only GetDownloads", got)
	}
	if a.ShouldRefresh {
		t.Error("ShouldRefresh set without a staged action")
	}
}

func TestDeleteMovieConfirmed(t *testing.T) {
	for _, confirm := range []bool{true, false} {
		a, queue := newTestApp(t, 64)
		a.FirstRender = false
		a.Radarr.Movies.SetItems([]servarr.Movie{{ID: 3, Title: "Arrival"}})

		p := NewDeletePrompt(3, "Arrival")
		p.ToggleFocused() // delete files
		d := a.ServarrData(models.Radarr)
		d.Prompt.Confirm = confirm
		armed := d.Prompt.Arm(p.Request(models.Radarr))
		if armed != confirm {
			t.Errorf("confirm=%v: Arm() = %v", confirm, armed)
		}
		if armed {
			a.ShouldRefresh = true
		}

		a.OnTick()
		got := drain(queue)
		deletes := 0
		for _, r := range got {
			if r.Event == network.DeleteMovieEvent {
				deletes++
				if r.ID != 3 || !r.DeleteFiles || r.AddListExclusion {
					t.Errorf("DeleteMovie = %+v", r)
				}
			}
		}
		want := 0
		if confirm {
			want = 1
		}
		if deletes != want {
			t.Errorf("confirm=%v: %d DeleteMovie requests, want %d", confirm, deletes, want)
		}
	}
}
