// Package network performs the REST calls against Radarr, Sonarr and Lidarr.
//
// Every remote operation is a Request built by one of the constructor
// functions (GetDownloads, DeleteMovie, ...). Resolve maps a Request to the
// HTTP method, path, query and body it needs, and Client performs it against
// one configured server with the X-Api-Key header.
//
// # Worker
//
// The dashboard never blocks on HTTP. It pushes Requests onto a buffered
// queue and a single worker goroutine drains it in order:
//
//	queue := make(chan network.Request, network.QueueSize)
//	n, err := network.New(cfg)
//	if err != nil {
//	    return err
//	}
//	go n.Run(ctx, queue, app)
//
// Results are handed to a Store (the application state). Each Request can
// carry the CancellationToken that was current when it was dispatched; once
// that token is cancelled, fetches still waiting in the queue are dropped.
// A call already in flight completes and its result is applied. Mutations
// always run.
//
// # Errors
//
// Failures are returned as *RequestError, classified as network, auth, HTTP,
// parse or validation errors. UserMessage renders the text shown in the
// dashboard's error banner. Nothing is retried here; the next poll is the retry.
//
// # Caching and Rate Limiting
//
// Lookup and credit responses are cached for DefaultCacheDuration. Each
// client is rate limited to preferences.requests_per_second.
package network
