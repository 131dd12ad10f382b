package network

import (
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/servarr"
)

// Event names one remote operation.
type Event string

// Operations every backend supports.
const (
	GetQualityProfilesEvent    Event = "GetQualityProfiles"
	GetTagsEvent               Event = "GetTags"
	GetRootFoldersEvent        Event = "GetRootFolders"
	DeleteRootFolderEvent      Event = "DeleteRootFolder"
	GetDownloadsEvent          Event = "GetDownloads"
	DeleteDownloadEvent        Event = "DeleteDownload"
	UpdateDownloadsEvent       Event = "UpdateDownloads"
	GetDiskSpaceEvent          Event = "GetDiskSpace"
	GetStatusEvent             Event = "GetStatus"
	HealthCheckEvent           Event = "HealthCheck"
	GetBlocklistEvent          Event = "GetBlocklist"
	DeleteBlocklistItemEvent   Event = "DeleteBlocklistItem"
	ClearBlocklistEvent        Event = "ClearBlocklist"
	GetHistoryEvent            Event = "GetHistory"
	GetIndexersEvent           Event = "GetIndexers"
	DeleteIndexerEvent         Event = "DeleteIndexer"
	GetAllIndexerSettingsEvent Event = "GetAllIndexerSettings"
	TestIndexerEvent           Event = "TestIndexer"
	TestAllIndexersEvent       Event = "TestAllIndexers"
	GetTasksEvent              Event = "GetTasks"
	StartTaskEvent             Event = "StartTask"
	GetQueuedEventsEvent       Event = "GetQueuedEvents"
	GetLogsEvent               Event = "GetLogs"
	GetUpdatesEvent            Event = "GetUpdates"
	DownloadReleaseEvent       Event = "DownloadRelease"
)

// Radarr operations.
const (
	GetMoviesEvent              Event = "GetMovies"
	GetMovieDetailsEvent        Event = "GetMovieDetails"
	GetMovieHistoryEvent        Event = "GetMovieHistory"
	GetMovieCreditsEvent        Event = "GetMovieCredits"
	GetReleasesEvent            Event = "GetReleases"
	SearchNewMovieEvent         Event = "SearchNewMovie"
	AddMovieEvent               Event = "AddMovie"
	DeleteMovieEvent            Event = "DeleteMovie"
	TriggerAutomaticSearchEvent Event = "TriggerAutomaticSearch"
	UpdateAndScanEvent          Event = "UpdateAndScan"
	UpdateAllMoviesEvent        Event = "UpdateAllMovies"
	GetCollectionsEvent         Event = "GetCollections"
	UpdateCollectionsEvent      Event = "UpdateCollections"
)

// Sonarr operations.
const (
	ListSeriesEvent          Event = "ListSeries"
	GetSeriesDetailsEvent    Event = "GetSeriesDetails"
	GetSeriesHistoryEvent    Event = "GetSeriesHistory"
	GetEpisodesEvent         Event = "GetEpisodes"
	GetEpisodeFilesEvent     Event = "GetEpisodeFiles"
	GetEpisodeDetailsEvent   Event = "GetEpisodeDetails"
	GetEpisodeReleasesEvent  Event = "GetEpisodeReleases"
	GetLanguageProfilesEvent Event = "GetLanguageProfiles"
	SearchNewSeriesEvent     Event = "SearchNewSeries"
	AddSeriesEvent           Event = "AddSeries"
	DeleteSeriesEvent        Event = "DeleteSeries"
	UpdateAllSeriesEvent     Event = "UpdateAllSeries"
)

// Lidarr operations.
const (
	ListArtistsEvent         Event = "ListArtists"
	GetAlbumsEvent           Event = "GetAlbums"
	GetTracksEvent           Event = "GetTracks"
	GetTrackFilesEvent       Event = "GetTrackFiles"
	GetMetadataProfilesEvent Event = "GetMetadataProfiles"
	SearchNewArtistEvent     Event = "SearchNewArtist"
	AddArtistEvent           Event = "AddArtist"
	DeleteArtistEvent        Event = "DeleteArtist"
	UpdateAllArtistsEvent    Event = "UpdateAllArtists"
)

// Request describes one remote operation to perform. It carries only
// what is needed to build the HTTP call; Resolve turns it into one.
// Requests are built with the constructor functions below.
type Request struct {
	Backend models.Backend
	Server  string // empty selects the backend's first server
	Event   Event

	ID       int64  // primary id (movie, series, artist, download, ...)
	ParentID int64  // owning id (series of an episode list, artist of an album)
	Count    int    // page size for paged lists
	Query    string // search term or task name

	DeleteFiles      bool
	AddListExclusion bool

	Body any // JSON payload for POST/PUT

	// Token is the navigation token current when the request was
	// dispatched. Fetches are dropped once it is cancelled.
	Token *CancellationToken
}

// IsMutation reports whether the request changes server state. Mutations
// survive cancellation; fetches don't.
func (r Request) IsMutation() bool {
	res, err := Resolve(r)
	if err != nil {
		return false
	}
	return res.Method != "GET"
}

// OnServer returns a copy of r addressed to a named server.
func (r Request) OnServer(server string) Request {
	r.Server = server
	return r
}

func newRequest(backend models.Backend, event Event) Request {
	return Request{Backend: backend, Event: event}
}

// GetQualityProfiles fetches the quality profile list.
func GetQualityProfiles(b models.Backend) Request { return newRequest(b, GetQualityProfilesEvent) }

// GetTags fetches the tag list.
func GetTags(b models.Backend) Request { return newRequest(b, GetTagsEvent) }

// GetRootFolders fetches the root folder list.
func GetRootFolders(b models.Backend) Request { return newRequest(b, GetRootFoldersEvent) }

// GetDiskSpace fetches disk usage.
func GetDiskSpace(b models.Backend) Request { return newRequest(b, GetDiskSpaceEvent) }

// GetStatus fetches the system status document.
func GetStatus(b models.Backend) Request { return newRequest(b, GetStatusEvent) }

// HealthCheck fetches the health warnings.
func HealthCheck(b models.Backend) Request { return newRequest(b, HealthCheckEvent) }

// GetBlocklist fetches the whole blocklist.
func GetBlocklist(b models.Backend) Request { return newRequest(b, GetBlocklistEvent) }

// GetIndexers fetches the configured indexers.
func GetIndexers(b models.Backend) Request { return newRequest(b, GetIndexersEvent) }

// GetAllIndexerSettings fetches the global indexer settings.
func GetAllIndexerSettings(b models.Backend) Request {
	return newRequest(b, GetAllIndexerSettingsEvent)
}

// TestAllIndexers tests every indexer.
func TestAllIndexers(b models.Backend) Request { return newRequest(b, TestAllIndexersEvent) }

// GetTasks fetches the scheduled tasks.
func GetTasks(b models.Backend) Request { return newRequest(b, GetTasksEvent) }

// GetQueuedEvents fetches recent commands.
func GetQueuedEvents(b models.Backend) Request { return newRequest(b, GetQueuedEventsEvent) }

// GetUpdates fetches available updates.
func GetUpdates(b models.Backend) Request { return newRequest(b, GetUpdatesEvent) }

// UpdateDownloads asks the server to refresh monitored downloads.
func UpdateDownloads(b models.Backend) Request { return newRequest(b, UpdateDownloadsEvent) }

// GetDownloads fetches up to count queue entries.
func GetDownloads(b models.Backend, count int) Request {
	r := newRequest(b, GetDownloadsEvent)
	r.Count = count
	return r
}

// GetHistory fetches the count most recent history events.
func GetHistory(b models.Backend, count int) Request {
	r := newRequest(b, GetHistoryEvent)
	r.Count = count
	return r
}

// GetLogs fetches the count most recent log records.
func GetLogs(b models.Backend, count int) Request {
	r := newRequest(b, GetLogsEvent)
	r.Count = count
	return r
}

func withID(b models.Backend, event Event, id int64) Request {
	r := newRequest(b, event)
	r.ID = id
	return r
}

// DeleteDownload removes a queue entry.
func DeleteDownload(b models.Backend, id int64) Request { return withID(b, DeleteDownloadEvent, id) }

// DeleteRootFolder removes a root folder.
func DeleteRootFolder(b models.Backend, id int64) Request {
	return withID(b, DeleteRootFolderEvent, id)
}

// DeleteBlocklistItem removes one blocklist entry.
func DeleteBlocklistItem(b models.Backend, id int64) Request {
	return withID(b, DeleteBlocklistItemEvent, id)
}

// DeleteIndexer removes an indexer.
func DeleteIndexer(b models.Backend, id int64) Request { return withID(b, DeleteIndexerEvent, id) }

// ClearBlocklist removes every listed blocklist entry.
func ClearBlocklist(b models.Backend, ids []int64) Request {
	r := newRequest(b, ClearBlocklistEvent)
	r.Body = servarr.BulkDeleteBody{IDs: ids}
	return r
}

// TestIndexer posts the indexer document back to the server for testing.
func TestIndexer(b models.Backend, indexer servarr.Indexer) Request {
	r := withID(b, TestIndexerEvent, indexer.ID)
	r.Body = indexer.Raw
	return r
}

// StartTask runs a scheduled task immediately.
func StartTask(b models.Backend, taskName string) Request {
	r := newRequest(b, StartTaskEvent)
	r.Query = taskName
	r.Body = servarr.CommandBody{Name: taskName}
	return r
}

// DownloadRelease grabs a release found by an interactive search.
func DownloadRelease(b models.Backend, body servarr.ReleaseDownloadBody) Request {
	r := newRequest(b, DownloadReleaseEvent)
	r.Body = body
	return r
}

func deleteItem(b models.Backend, event Event, id int64, deleteFiles, addListExclusion bool) Request {
	r := withID(b, event, id)
	r.DeleteFiles = deleteFiles
	r.AddListExclusion = addListExclusion
	return r
}

func search(b models.Backend, event Event, query string) Request {
	r := newRequest(b, event)
	r.Query = query
	return r
}

// GetMovies fetches the Radarr library.
func GetMovies() Request { return newRequest(models.Radarr, GetMoviesEvent) }

// GetMovieDetails fetches one movie.
func GetMovieDetails(id int64) Request { return withID(models.Radarr, GetMovieDetailsEvent, id) }

// GetMovieHistory fetches the history of one movie.
func GetMovieHistory(id int64) Request { return withID(models.Radarr, GetMovieHistoryEvent, id) }

// GetMovieCredits fetches cast and crew of one movie.
func GetMovieCredits(id int64) Request { return withID(models.Radarr, GetMovieCreditsEvent, id) }

// GetReleases runs an interactive search for one movie.
func GetReleases(id int64) Request { return withID(models.Radarr, GetReleasesEvent, id) }

// SearchNewMovie looks up movies not yet in the library.
func SearchNewMovie(query string) Request { return search(models.Radarr, SearchNewMovieEvent, query) }

// AddMovie adds a movie to the library.
func AddMovie(body servarr.AddMovieBody) Request {
	r := newRequest(models.Radarr, AddMovieEvent)
	r.Body = body
	return r
}

// DeleteMovie removes a movie from the library.
func DeleteMovie(id int64, deleteFiles, addListExclusion bool) Request {
	return deleteItem(models.Radarr, DeleteMovieEvent, id, deleteFiles, addListExclusion)
}

// UpdateAllMovies refreshes and rescans the whole Radarr library.
func UpdateAllMovies() Request {
	r := newRequest(models.Radarr, UpdateAllMoviesEvent)
	r.Body = servarr.CommandBody{Name: "RefreshMovie"}
	return r
}

// GetCollections fetches the Radarr collections.
func GetCollections() Request { return newRequest(models.Radarr, GetCollectionsEvent) }

// UpdateCollections refreshes every collection.
func UpdateCollections() Request {
	r := newRequest(models.Radarr, UpdateCollectionsEvent)
	r.Body = servarr.CommandBody{Name: "RefreshCollections"}
	return r
}

// TriggerAutomaticSearch searches indexers for one library item (movie,
// series or artist depending on the backend).
func TriggerAutomaticSearch(b models.Backend, id int64) Request {
	r := withID(b, TriggerAutomaticSearchEvent, id)
	switch b {
	case models.Radarr:
		r.Body = servarr.CommandBody{Name: "MoviesSearch", MovieIDs: []int64{id}}
	case models.Sonarr:
		r.Body = servarr.CommandBody{Name: "SeriesSearch", SeriesID: id}
	case models.Lidarr:
		r.Body = servarr.CommandBody{Name: "ArtistSearch", ArtistID: id}
	}
	return r
}

// UpdateAndScan refreshes metadata and rescans files of one library item.
func UpdateAndScan(b models.Backend, id int64) Request {
	r := withID(b, UpdateAndScanEvent, id)
	switch b {
	case models.Radarr:
		r.Body = servarr.CommandBody{Name: "RefreshMovie", MovieIDs: []int64{id}}
	case models.Sonarr:
		r.Body = servarr.CommandBody{Name: "RefreshSeries", SeriesID: id}
	case models.Lidarr:
		r.Body = servarr.CommandBody{Name: "RefreshArtist", ArtistID: id}
	}
	return r
}

// ListSeries fetches the Sonarr library.
func ListSeries() Request { return newRequest(models.Sonarr, ListSeriesEvent) }

// GetSeriesDetails fetches one series.
func GetSeriesDetails(id int64) Request { return withID(models.Sonarr, GetSeriesDetailsEvent, id) }

// GetSeriesHistory fetches the history of one series.
func GetSeriesHistory(id int64) Request { return withID(models.Sonarr, GetSeriesHistoryEvent, id) }

// GetEpisodes fetches the episodes of a series.
func GetEpisodes(seriesID int64) Request {
	r := newRequest(models.Sonarr, GetEpisodesEvent)
	r.ParentID = seriesID
	return r
}

// GetEpisodeFiles fetches the episode files of a series.
func GetEpisodeFiles(seriesID int64) Request {
	r := newRequest(models.Sonarr, GetEpisodeFilesEvent)
	r.ParentID = seriesID
	return r
}

// GetEpisodeDetails fetches one episode.
func GetEpisodeDetails(id int64) Request {
	return withID(models.Sonarr, GetEpisodeDetailsEvent, id)
}

// GetEpisodeReleases runs an interactive search for one episode.
func GetEpisodeReleases(id int64) Request {
	return withID(models.Sonarr, GetEpisodeReleasesEvent, id)
}

// GetLanguageProfiles fetches Sonarr's language profiles.
func GetLanguageProfiles() Request { return newRequest(models.Sonarr, GetLanguageProfilesEvent) }

// SearchNewSeries looks up series not yet in the library.
func SearchNewSeries(query string) Request {
	return search(models.Sonarr, SearchNewSeriesEvent, query)
}

// AddSeries adds a series to the library.
func AddSeries(body servarr.AddSeriesBody) Request {
	r := newRequest(models.Sonarr, AddSeriesEvent)
	r.Body = body
	return r
}

// DeleteSeries removes a series from the library.
func DeleteSeries(id int64, deleteFiles, addListExclusion bool) Request {
	return deleteItem(models.Sonarr, DeleteSeriesEvent, id, deleteFiles, addListExclusion)
}

// UpdateAllSeries refreshes and rescans the whole Sonarr library.
func UpdateAllSeries() Request {
	r := newRequest(models.Sonarr, UpdateAllSeriesEvent)
	r.Body = servarr.CommandBody{Name: "RefreshSeries"}
	return r
}

// ListArtists fetches the Lidarr library.
func ListArtists() Request { return newRequest(models.Lidarr, ListArtistsEvent) }

// GetAlbums fetches the albums of an artist.
func GetAlbums(artistID int64) Request {
	r := newRequest(models.Lidarr, GetAlbumsEvent)
	r.ParentID = artistID
	return r
}

// GetTracks fetches the tracks of one album.
func GetTracks(artistID, albumID int64) Request {
	r := withID(models.Lidarr, GetTracksEvent, albumID)
	r.ParentID = artistID
	return r
}

// GetTrackFiles fetches the track files of one album.
func GetTrackFiles(albumID int64) Request {
	return withID(models.Lidarr, GetTrackFilesEvent, albumID)
}

// GetMetadataProfiles fetches Lidarr's metadata profiles.
func GetMetadataProfiles() Request { return newRequest(models.Lidarr, GetMetadataProfilesEvent) }

// SearchNewArtist looks up artists not yet in the library.
func SearchNewArtist(query string) Request {
	return search(models.Lidarr, SearchNewArtistEvent, query)
}

// AddArtist adds an artist to the library.
func AddArtist(body servarr.AddArtistBody) Request {
	r := newRequest(models.Lidarr, AddArtistEvent)
	r.Body = body
	return r
}

// DeleteArtist removes an artist from the library.
func DeleteArtist(id int64, deleteFiles, addListExclusion bool) Request {
	return deleteItem(models.Lidarr, DeleteArtistEvent, id, deleteFiles, addListExclusion)
}

// UpdateAllArtists refreshes and rescans the whole Lidarr library.
func UpdateAllArtists() Request {
	r := newRequest(models.Lidarr, UpdateAllArtistsEvent)
	r.Body = servarr.CommandBody{Name: "RefreshArtist"}
	return r
}
