package app

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/logging"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
)

// Server is one entry of the server tab bar.
type Server struct {
	Backend models.Backend
	Name    string
}

// App is the state shared by the render loop and the network worker.
//
// The render loop holds the lock (Lock/Unlock) around OnTick, the key
// handlers and drawing. The worker only touches App through Apply,
// HandleError and RequestDone, which lock for themselves. The lock is never
// held across network I/O.
type App struct {
	mu sync.Mutex

	// IsLoading is set while fetches or actions of a screen are in
	// flight. The periodic metadata refresh does not count.
	IsLoading     bool
	IsRouting     bool
	ShouldRefresh bool
	FirstRender   bool

	TickCount     int
	TickUntilPoll int

	// Error is the dismissible banner text. The first error wins until
	// it is cleared.
	Error string

	Radarr *RadarrData
	Sonarr *SonarrData
	Lidarr *LidarrData

	Servers    []Server
	ServerTabs *models.TabState

	nav     *models.NavigationStack
	tokens  map[models.Route]*network.CancellationToken
	queue   chan<- network.Request
	pending int
	loading int
}

// New creates the application state for the servers in cfg. Requests are
// sent on queue, which the network worker drains.
func New(cfg *config.Config, queue chan<- network.Request) (*App, error) {
	a := &App{
		FirstRender:   true,
		TickUntilPoll: cfg.Preferences.TickUntilPoll,
		Radarr:        NewRadarrData(),
		Sonarr:        NewSonarrData(),
		Lidarr:        NewLidarrData(),
		tokens:        make(map[models.Route]*network.CancellationToken),
		queue:         queue,
	}
	if a.TickUntilPoll <= 0 {
		a.TickUntilPoll = config.DefaultTickUntilPoll
	}

	var tabs []models.Tab
	for _, backend := range models.Backends {
		for _, s := range cfg.Servers(backend) {
			a.Servers = append(a.Servers, Server{Backend: backend, Name: s.Name})
			tabs = append(tabs, models.Tab{
				Title: fmt.Sprintf("%s: %s", backend.Title(), s.Name),
				Route: models.NewRoute(backend, backend.RootBlock()),
			})
		}
	}
	if len(a.Servers) == 0 {
		return nil, fmt.Errorf("no servers configured")
	}
	a.ServerTabs = models.NewTabState(tabs...)
	a.nav = models.NewNavigationStack(tabs[0].Route)
	return a, nil
}

// Lock acquires the state lock.
func (a *App) Lock() { a.mu.Lock() }

// Unlock releases the state lock.
func (a *App) Unlock() { a.mu.Unlock() }

// CurrentRoute returns the screen being shown.
func (a *App) CurrentRoute() models.Route {
	return a.nav.Current()
}

// PreviousRoute returns the screen under the current one.
func (a *App) PreviousRoute() models.Route {
	return a.nav.Previous()
}

// NavigationDepth returns the number of routes on the stack.
func (a *App) NavigationDepth() int {
	return a.nav.Len()
}

// PushRoute opens route on top of the current screen.
func (a *App) PushRoute(route models.Route) {
	a.nav.Push(route)
	a.IsRouting = true
}

// PopRoute returns to the previous screen. The root screen is never popped.
func (a *App) PopRoute() {
	if a.nav.Pop() {
		a.IsRouting = true
	}
}

// PopAndPushRoute replaces the current screen with route.
func (a *App) PopAndPushRoute(route models.Route) {
	a.nav.PopAndPush(route)
	a.IsRouting = true
}

// ActiveServer returns the selected server tab.
func (a *App) ActiveServer() Server {
	return a.Servers[a.ServerTabs.Index()]
}

// ServarrData returns the shared state of backend.
func (a *App) ServarrData(backend models.Backend) *ServarrData {
	return a.servarrData(backend)
}

func (a *App) servarrData(backend models.Backend) *ServarrData {
	switch backend {
	case models.Sonarr:
		return &a.Sonarr.ServarrData
	case models.Lidarr:
		return &a.Lidarr.ServarrData
	default:
		return &a.Radarr.ServarrData
	}
}

// SwitchServer makes server tab i active. The backend's state is reset and
// the bootstrap fetches run again on the next tick.
func (a *App) SwitchServer(i int) {
	if i < 0 || i >= len(a.Servers) || i == a.ServerTabs.Index() {
		return
	}
	a.ServerTabs.SetIndex(i)
	server := a.Servers[i]
	switch server.Backend {
	case models.Radarr:
		a.Radarr = NewRadarrData()
	case models.Sonarr:
		a.Sonarr = NewSonarrData()
	case models.Lidarr:
		a.Lidarr = NewLidarrData()
	}
	a.nav.Reset(a.ServerTabs.Current().Route)
	a.cancelAll()
	a.Error = ""
	a.FirstRender = true
	a.IsRouting = true
	logging.Info("Switched server",
		zap.String("backend", string(server.Backend)),
		zap.String("server", server.Name),
	)
}

// NextServer selects the following server tab.
func (a *App) NextServer() {
	a.SwitchServer((a.ServerTabs.Index() + 1) % len(a.Servers))
}

// PreviousServer selects the preceding server tab.
func (a *App) PreviousServer() {
	n := len(a.Servers)
	a.SwitchServer((a.ServerTabs.Index() - 1 + n) % n)
}

// Dispatch queues req for the network worker on behalf of the current
// screen. The request is addressed to the active server and stamped with
// the screen's cancellation token. It never blocks; when the queue is full
// the request is dropped and an error is shown.
func (a *App) Dispatch(req network.Request) {
	a.dispatch(req, a.CancellationToken())
}

// dispatch queues req stamped with token. A nil token marks a background
// request: it is never cancelled and does not set IsLoading.
func (a *App) dispatch(req network.Request, token *network.CancellationToken) {
	if req.Server == "" {
		if s := a.ActiveServer(); s.Backend == req.Backend {
			req.Server = s.Name
		}
	}
	req.Token = token

	select {
	case a.queue <- req:
		a.pending++
		if token != nil {
			a.loading++
			a.IsLoading = true
		}
		logging.LogDispatch(string(req.Backend), string(req.Event), len(a.queue))
	default:
		logging.Warn("Dispatch queue full, dropping request",
			zap.String("backend", string(req.Backend)),
			zap.String("event", string(req.Event)),
		)
		a.setError(fmt.Sprintf("Too many pending requests; dropped %s", req.Event))
	}
}

// Pending returns the number of dispatched requests not yet completed.
func (a *App) Pending() int {
	return a.pending
}

// cancelStale abandons the queued fetches of every screen that is no
// longer on the navigation stack and returns how many tokens it cancelled.
// Screens still on the stack keep their fetches.
func (a *App) cancelStale() int {
	n := 0
	for route, token := range a.tokens {
		if a.nav.Contains(route) {
			continue
		}
		token.Cancel()
		delete(a.tokens, route)
		n++
	}
	return n
}

func (a *App) cancelAll() {
	for route, token := range a.tokens {
		token.Cancel()
		delete(a.tokens, route)
	}
}

// CancellationToken returns the token requests for the current screen are
// stamped with.
func (a *App) CancellationToken() *network.CancellationToken {
	return a.TokenFor(a.CurrentRoute())
}

// TokenFor returns the cancellation token of route, creating it on first
// use. It stays valid until route leaves the navigation stack.
func (a *App) TokenFor(route models.Route) *network.CancellationToken {
	token, ok := a.tokens[route]
	if !ok {
		token = network.NewCancellationToken()
		a.tokens[route] = token
	}
	return token
}

// ClearError dismisses the error banner.
func (a *App) ClearError() {
	a.Error = ""
}

func (a *App) setError(msg string) {
	if a.Error == "" {
		a.Error = msg
	}
}

// HandleError records a failed request. It implements network.Store.
func (a *App) HandleError(req network.Request, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setError(network.UserMessage(err))
}

// RequestDone marks a dispatched request complete. It implements
// network.Store.
func (a *App) RequestDone(req network.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending > 0 {
		a.pending--
	}
	if req.Token != nil && a.loading > 0 {
		a.loading--
	}
	a.IsLoading = a.loading > 0
}
