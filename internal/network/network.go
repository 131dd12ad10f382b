package network

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/logging"
	"github.com/muurk/servdash/internal/models"
)

// QueueSize is the capacity of the dispatch queue between the UI and the
// network worker.
const QueueSize = 500

// Serdeable is a decoded response paired with the request that produced it.
type Serdeable struct {
	Request Request
	Value   any
}

// CancellationToken aborts in-flight fetches when the user navigates away.
// A cancelled token stays cancelled; the owner swaps in a fresh one.
type CancellationToken struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewCancellationToken returns a live token.
func NewCancellationToken() *CancellationToken {
	ctx, cancel := context.WithCancel(context.Background())
	return &CancellationToken{ctx: ctx, cancel: cancel}
}

// Cancel marks the token cancelled. It is safe to call more than once.
func (t *CancellationToken) Cancel() {
	t.cancel()
}

// Cancelled reports whether Cancel has been called.
func (t *CancellationToken) Cancelled() bool {
	return t.ctx.Err() != nil
}

// Done is closed once the token is cancelled.
func (t *CancellationToken) Done() <-chan struct{} {
	return t.ctx.Done()
}

// Store receives the results of the worker. The application state
// implements it and does its own locking.
type Store interface {
	Apply(Serdeable)
	HandleError(req Request, err error)
	RequestDone(req Request)
}

// Network owns one Client per configured server.
type Network struct {
	mu      sync.RWMutex
	clients map[models.Backend]map[string]*Client
	first   map[models.Backend]string
}

// New creates a client for every server in cfg.
func New(cfg *config.Config) (*Network, error) {
	n := &Network{
		clients: make(map[models.Backend]map[string]*Client),
		first:   make(map[models.Backend]string),
	}
	for _, backend := range models.Backends {
		for _, server := range cfg.Servers(backend) {
			c, err := NewClient(backend, server, cfg.Preferences)
			if err != nil {
				return nil, err
			}
			n.AddClient(c)
		}
	}
	return n, nil
}

// AddClient registers a client. The first client of a backend answers
// requests that name no server.
func (n *Network) AddClient(c *Client) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.clients[c.Backend] == nil {
		n.clients[c.Backend] = make(map[string]*Client)
		n.first[c.Backend] = c.Name
	}
	n.clients[c.Backend][c.Name] = c
}

// Client returns the client addressed by backend and server name.
func (n *Network) Client(backend models.Backend, server string) (*Client, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if server == "" {
		server = n.first[backend]
	}
	c, ok := n.clients[backend][server]
	if !ok {
		if server == "" {
			return nil, NewValidationError(fmt.Sprintf("no %s server configured", backend))
		}
		return nil, NewValidationError(fmt.Sprintf("no %s server named %q", backend, server))
	}
	return c, nil
}

// HandleEvent performs one request synchronously. It is shared by the
// worker and the CLI commands.
func (n *Network) HandleEvent(ctx context.Context, req Request) (Serdeable, error) {
	c, err := n.Client(req.Backend, req.Server)
	if err != nil {
		return Serdeable{}, err
	}
	value, err := c.Do(ctx, req)
	if err != nil {
		return Serdeable{}, err
	}
	return Serdeable{Request: req, Value: value}, nil
}

// Run consumes the dispatch queue until ctx is done or the queue is
// closed. Requests are handled one at a time in arrival order.
//
// A fetch whose token was cancelled before it started is dropped. A call
// already in flight runs to completion and its result is still applied.
// Mutations are never dropped.
func (n *Network) Run(ctx context.Context, queue <-chan Request, store Store) error {
	var backlog []Request
	for {
		var req Request
		if len(backlog) > 0 {
			req, backlog = backlog[0], backlog[1:]
		} else {
			select {
			case <-ctx.Done():
				return nil
			case r, ok := <-queue:
				if !ok {
					return nil
				}
				req = r
			}
		}

		if isStale(req) {
			backlog = n.dropStale(queue, backlog, req, store)
			continue
		}
		n.handle(ctx, req, store)
	}
}

func isStale(req Request) bool {
	return req.Token != nil && req.Token.Cancelled() && !req.IsMutation()
}

// dropStale discards first and every stale fetch already waiting in the
// queue. Everything else keeps its order in the returned backlog.
func (n *Network) dropStale(queue <-chan Request, backlog []Request, first Request, store Store) []Request {
	store.RequestDone(first)
	dropped := 1

	pending := backlog
drain:
	for {
		select {
		case r, ok := <-queue:
			if !ok {
				break drain
			}
			pending = append(pending, r)
		default:
			break drain
		}
	}

	kept := pending[:0:0]
	for _, r := range pending {
		if isStale(r) {
			store.RequestDone(r)
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	logging.LogCancellation(dropped, len(kept))
	return kept
}

func (n *Network) handle(ctx context.Context, req Request, store Store) {
	defer store.RequestDone(req)

	resp, err := n.HandleEvent(ctx, req)
	if err != nil {
		logging.Error("Network request failed",
			zap.String("backend", string(req.Backend)),
			zap.String("server", req.Server),
			zap.String("event", string(req.Event)),
			zap.Error(err),
		)
		store.HandleError(req, err)
		return
	}
	store.Apply(resp)
}
