// Package app is the dashboard's state machine: the navigation stack, the
// per-backend data tables, the confirm-gated staged action and the tick
// logic that decides what to fetch.
//
// The render loop owns App and holds its lock for each frame:
//
//	a.Lock()
//	handlers.Handle(a, key)
//	a.OnTick()
//	draw(a)
//	a.Unlock()
//
// OnTick turns the frame's flags into dispatches. A navigation without a
// refresh cancels the fetches still queued for the screen being left; a
// refresh (or the first frame after a server switch) dispatches the staged
// action, if any, followed by the fetch set of the current screen. Every
// TickUntilPoll idle frames the metadata set of the backend is refetched.
//
// Requests go out through Dispatch, which never blocks. App implements
// network.Store, so the worker hands responses back through Apply,
// HandleError and RequestDone.
//
// Fetch sets are a static table keyed by backend and block (see
// RegisterFetchSet). They only see a FetchContext, so the same screen and
// selection always yield the same requests.
package app
