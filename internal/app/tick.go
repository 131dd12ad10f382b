package app

import (
	"go.uber.org/zap"

	"github.com/muurk/servdash/internal/logging"
	"github.com/muurk/servdash/internal/models"
)

// OnTick runs once per frame with the lock held. It decides whether the
// frame bootstraps the backend, refreshes the current screen, abandons
// stale fetches after a navigation, or runs the periodic metadata refresh.
//
// IsRouting and ShouldRefresh only live for one frame. After a navigation
// the fetches of screens that left the stack are cancelled; screens still
// on the stack, and the metadata set, keep theirs. TickCount is reset by
// every screen dispatch and otherwise counts frames.
func (a *App) OnTick() {
	refresh := a.ShouldRefresh
	routing := a.IsRouting
	a.ShouldRefresh = false
	a.IsRouting = false

	route := a.CurrentRoute()

	if a.FirstRender {
		a.refreshMetadata(route.Backend)
		a.DispatchByBlock(route)
		a.FirstRender = false
		return
	}

	if routing {
		if n := a.cancelStale(); n > 0 {
			logging.Debug("Cancelled fetches of closed screens",
				zap.String("route", route.String()),
				zap.Int("screens", n),
			)
		}
	}

	if refresh {
		a.DispatchByBlock(route)
		a.refreshMetadata(route.Backend)
		return
	}

	a.TickCount++
	if a.TickCount%a.TickUntilPoll == 0 {
		a.refreshMetadata(route.Backend)
	}
}

// DispatchByBlock queues the staged action of the backend, if any, then the
// fetch set of route, and resets the tick counter.
func (a *App) DispatchByBlock(route models.Route) {
	d := a.servarrData(route.Backend)
	if req, ok := d.Prompt.Take(); ok {
		logging.Info("Executing confirmed action",
			zap.String("backend", string(req.Backend)),
			zap.String("event", string(req.Event)),
		)
		a.dispatch(req, a.TokenFor(route))
		a.ShouldRefresh = true
	}

	for _, req := range FetchSet(route, a.fetchContext(route)) {
		a.dispatch(req, a.TokenFor(route))
	}
	a.TickCount = 0
}

func (a *App) refreshMetadata(backend models.Backend) {
	for _, req := range MetadataRequests(backend) {
		a.dispatch(req, nil)
	}
}
