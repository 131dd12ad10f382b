package app

import (
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
)

// FetchContext carries the selection state a fetch set depends on. The
// App computes it from its tables; fetch sets never read App directly.
type FetchContext struct {
	SelectedID int64
	ParentID   int64
	Query      string
	Indexer    servarr.Indexer
	// CacheEmpty is true when the block's data has not been fetched yet.
	CacheEmpty bool
}

// FetchFunc returns the requests a screen needs, in dispatch order.
type FetchFunc func(FetchContext) []network.Request

// DownloadsPageSize is how many queue, history and log records are fetched.
const DownloadsPageSize = 500

var fetchSets = map[models.Backend]map[models.Block]FetchFunc{}

// RegisterFetchSet sets the fetch set of block on backend, replacing any
// existing entry.
func RegisterFetchSet(backend models.Backend, block models.Block, fn FetchFunc) {
	if fetchSets[backend] == nil {
		fetchSets[backend] = make(map[models.Block]FetchFunc)
	}
	fetchSets[backend][block] = fn
}

// FetchSet returns the requests the screen at route needs. It is a pure
// table lookup: the same route and context always give the same list.
func FetchSet(route models.Route, ctx FetchContext) []network.Request {
	fn, ok := fetchSets[route.Backend][route.Block]
	if !ok {
		return nil
	}
	return fn(ctx)
}

func always(reqs ...func() network.Request) FetchFunc {
	return func(FetchContext) []network.Request {
		out := make([]network.Request, 0, len(reqs))
		for _, r := range reqs {
			out = append(out, r())
		}
		return out
	}
}

func ifEmpty(fn FetchFunc) FetchFunc {
	return func(ctx FetchContext) []network.Request {
		if !ctx.CacheEmpty {
			return nil
		}
		return fn(ctx)
	}
}

func one(fn func(FetchContext) network.Request) FetchFunc {
	return func(ctx FetchContext) []network.Request {
		return []network.Request{fn(ctx)}
	}
}

func libraryRequest(backend models.Backend) func() network.Request {
	switch backend {
	case models.Sonarr:
		return network.ListSeries
	case models.Lidarr:
		return network.ListArtists
	default:
		return network.GetMovies
	}
}

func registerShared(b models.Backend) {
	downloads := func() network.Request { return network.GetDownloads(b, DownloadsPageSize) }

	RegisterFetchSet(b, models.BlockDownloads, always(downloads))
	RegisterFetchSet(b, models.BlockBlocklist, always(libraryRequest(b), func() network.Request { return network.GetBlocklist(b) }))
	RegisterFetchSet(b, models.BlockHistory, always(func() network.Request { return network.GetHistory(b, DownloadsPageSize) }))
	RegisterFetchSet(b, models.BlockRootFolders, always(func() network.Request { return network.GetRootFolders(b) }))
	RegisterFetchSet(b, models.BlockIndexers, always(
		func() network.Request { return network.GetTags(b) },
		func() network.Request { return network.GetIndexers(b) },
	))
	RegisterFetchSet(b, models.BlockAllIndexerSettingsPrompt, always(func() network.Request { return network.GetAllIndexerSettings(b) }))
	RegisterFetchSet(b, models.BlockTestIndexer, one(func(ctx FetchContext) network.Request {
		return network.TestIndexer(b, ctx.Indexer)
	}))
	RegisterFetchSet(b, models.BlockTestAllIndexers, always(func() network.Request { return network.TestAllIndexers(b) }))
	RegisterFetchSet(b, models.BlockSystem, always(
		func() network.Request { return network.GetTasks(b) },
		func() network.Request { return network.GetQueuedEvents(b) },
		func() network.Request { return network.GetLogs(b, DownloadsPageSize) },
		func() network.Request { return network.HealthCheck(b) },
	))
	RegisterFetchSet(b, models.BlockSystemTasks, always(func() network.Request { return network.GetTasks(b) }))
	RegisterFetchSet(b, models.BlockSystemUpdates, always(func() network.Request { return network.GetUpdates(b) }))
}

func registerRadarr() {
	b := models.Radarr
	details := one(func(ctx FetchContext) network.Request { return network.GetMovieDetails(ctx.SelectedID) })
	credits := ifEmpty(one(func(ctx FetchContext) network.Request { return network.GetMovieCredits(ctx.SelectedID) }))

	RegisterFetchSet(b, models.BlockMovies, always(
		func() network.Request { return network.GetQualityProfiles(b) },
		func() network.Request { return network.GetTags(b) },
		network.GetMovies,
		func() network.Request { return network.GetDownloads(b, DownloadsPageSize) },
	))
	RegisterFetchSet(b, models.BlockCollections, always(
		func() network.Request { return network.GetQualityProfiles(b) },
		network.GetCollections,
		network.GetMovies,
	))
	RegisterFetchSet(b, models.BlockMovieDetails, details)
	RegisterFetchSet(b, models.BlockFileInfo, details)
	RegisterFetchSet(b, models.BlockMovieHistory, one(func(ctx FetchContext) network.Request {
		return network.GetMovieHistory(ctx.SelectedID)
	}))
	RegisterFetchSet(b, models.BlockCast, credits)
	RegisterFetchSet(b, models.BlockCrew, credits)
	RegisterFetchSet(b, models.BlockManualSearch, ifEmpty(one(func(ctx FetchContext) network.Request {
		return network.GetReleases(ctx.SelectedID)
	})))
	RegisterFetchSet(b, models.BlockAddSearchResults, ifEmpty(one(func(ctx FetchContext) network.Request {
		return network.SearchNewMovie(ctx.Query)
	})))
}

func registerSonarr() {
	b := models.Sonarr
	RegisterFetchSet(b, models.BlockSeries, always(
		func() network.Request { return network.GetQualityProfiles(b) },
		network.GetLanguageProfiles,
		func() network.Request { return network.GetTags(b) },
		network.ListSeries,
	))
	RegisterFetchSet(b, models.BlockSeriesDetails, one(func(ctx FetchContext) network.Request {
		return network.GetSeriesDetails(ctx.SelectedID)
	}))
	RegisterFetchSet(b, models.BlockSeriesHistory, one(func(ctx FetchContext) network.Request {
		return network.GetSeriesHistory(ctx.SelectedID)
	}))
	RegisterFetchSet(b, models.BlockSeasonDetails, func(ctx FetchContext) []network.Request {
		return []network.Request{
			network.GetEpisodes(ctx.ParentID),
			network.GetEpisodeFiles(ctx.ParentID),
			network.GetDownloads(b, DownloadsPageSize),
		}
	})
	RegisterFetchSet(b, models.BlockEpisodeDetails, one(func(ctx FetchContext) network.Request {
		return network.GetEpisodeDetails(ctx.SelectedID)
	}))
	RegisterFetchSet(b, models.BlockManualSearch, ifEmpty(one(func(ctx FetchContext) network.Request {
		return network.GetEpisodeReleases(ctx.SelectedID)
	})))
	RegisterFetchSet(b, models.BlockAddSearchResults, ifEmpty(one(func(ctx FetchContext) network.Request {
		return network.SearchNewSeries(ctx.Query)
	})))
}

func registerLidarr() {
	b := models.Lidarr
	RegisterFetchSet(b, models.BlockArtists, always(
		func() network.Request { return network.GetQualityProfiles(b) },
		network.GetMetadataProfiles,
		func() network.Request { return network.GetTags(b) },
		network.ListArtists,
	))
	RegisterFetchSet(b, models.BlockArtistDetails, one(func(ctx FetchContext) network.Request {
		return network.GetAlbums(ctx.ParentID)
	}))
	RegisterFetchSet(b, models.BlockAlbumDetails, func(ctx FetchContext) []network.Request {
		return []network.Request{
			network.GetTracks(ctx.ParentID, ctx.SelectedID),
			network.GetTrackFiles(ctx.SelectedID),
			network.GetDownloads(b, DownloadsPageSize),
		}
	})
	RegisterFetchSet(b, models.BlockAddSearchResults, ifEmpty(one(func(ctx FetchContext) network.Request {
		return network.SearchNewArtist(ctx.Query)
	})))
}

func init() {
	for _, b := range models.Backends {
		registerShared(b)
	}
	registerRadarr()
	registerSonarr()
	registerLidarr()
}

// MetadataRequests is the periodic refresh set of backend.
func MetadataRequests(backend models.Backend) []network.Request {
	reqs := []network.Request{network.GetQualityProfiles(backend)}
	switch backend {
	case models.Sonarr:
		reqs = append(reqs, network.GetLanguageProfiles())
	case models.Lidarr:
		reqs = append(reqs, network.GetMetadataProfiles())
	}
	return append(reqs,
		network.GetTags(backend),
		network.GetRootFolders(backend),
		network.GetDownloads(backend, DownloadsPageSize),
		network.GetDiskSpace(backend),
		network.GetStatus(backend),
	)
}

// fetchContext derives the FetchContext of route from the current tables.
func (a *App) fetchContext(route models.Route) FetchContext {
	var ctx FetchContext
	d := a.servarrData(route.Backend)

	switch route.Block {
	case models.BlockTestIndexer:
		if ix, ok := d.Indexers.Current(); ok {
			ctx.Indexer = ix
			ctx.SelectedID = ix.ID
		}
		return ctx
	case models.BlockManualSearch:
		ctx.CacheEmpty = d.Releases.IsEmpty()
	case models.BlockAddSearchResults:
		ctx.Query = d.AddQuery
	}

	switch route.Backend {
	case models.Radarr:
		r := a.Radarr
		if m, ok := r.Movies.Current(); ok {
			ctx.SelectedID = m.ID
		}
		switch route.Block {
		case models.BlockCast, models.BlockCrew:
			ctx.CacheEmpty = r.Cast.IsEmpty() && r.Crew.IsEmpty()
		case models.BlockAddSearchResults:
			ctx.CacheEmpty = r.AddSearchResults.IsEmpty()
		}
	case models.Sonarr:
		s := a.Sonarr
		if series, ok := s.Series.Current(); ok {
			ctx.SelectedID = series.ID
			ctx.ParentID = series.ID
		}
		switch route.Block {
		case models.BlockEpisodeDetails, models.BlockManualSearch:
			if ep, ok := s.Episodes.Current(); ok {
				ctx.SelectedID = ep.ID
			}
		case models.BlockAddSearchResults:
			ctx.CacheEmpty = s.AddSearchResults.IsEmpty()
		}
	case models.Lidarr:
		l := a.Lidarr
		if artist, ok := l.Artists.Current(); ok {
			ctx.SelectedID = artist.ID
			ctx.ParentID = artist.ID
		}
		switch route.Block {
		case models.BlockAlbumDetails:
			if album, ok := l.Albums.Current(); ok {
				ctx.SelectedID = album.ID
			}
		case models.BlockAddSearchResults:
			ctx.CacheEmpty = l.AddSearchResults.IsEmpty()
		}
	}
	return ctx
}
