// Package logging provides structured logging for servdash.
//
// This package wraps a global zap logger with convenience functions for the
// logging patterns used by the dashboard: dispatching requests, talking to
// the remote servers and dropping stale work after navigation changes.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Request dispatch, HTTP round trips, tick decisions
//   - Info: Startup, server selection, configuration
//   - Warn: Cancelled requests, full dispatch queue
//   - Error: Failed requests and unparseable responses
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Loaded configuration",
//	    zap.String("path", path),
//	    zap.Int("servers", n),
//	)
//
// # Specialized Logging
//
//	logging.LogDispatch("radarr", "GetMovies", 3)
//	logging.LogHTTPRequest(requestID, "home", "GET", url)
//	logging.LogHTTPResponse(requestID, 200, elapsed)
//	logging.LogCancellation(dropped, kept)
//
// # Configuration
//
// The terminal belongs to the TUI, so the dashboard logs to a file:
//
//	if err := logging.Initialize("debug", "/home/me/.config/servdash/servdash.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// With no level given, SERVDASH_LOG_LEVEL is consulted; if that is empty too
// logging is silent. SERVDASH_LOG_FILE overrides the output file.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
