// Package models holds the plain value types the dashboard's state machine
// is built from.
//
// # Routes and navigation
//
// A Route names the screen being shown: the backend (radarr, sonarr or
// lidarr), the active Block and, for sub-screens, the Block it was opened
// from. Routes live on a NavigationStack whose root is never popped:
//
//	stack := models.NewNavigationStack(models.NewRoute(models.Radarr, models.BlockMovies))
//	stack.Push(models.NewRoute(models.Radarr, models.BlockMovieDetails).WithParent(models.BlockMovies))
//	stack.Pop()  // back to movies
//	stack.Pop()  // no-op, root stays
//
// # Selections and tables
//
// BlockSelection steps through the fields of a multi-step prompt and
// wraps at both ends. Table is a generic row container with a cursor and
// fuzzy filter/search backed by lithammer/fuzzysearch.
//
// None of the types in this package are safe for concurrent use; they are
// owned by the application state and guarded by its lock.
package models
