package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/servarr"
)

// Resource is the HTTP call a Request maps to.
type Resource struct {
	Method string
	Path   string     // relative to the server's API root, e.g. "/movie/12"
	Query  url.Values // nil when there is no query string
	Body   any        // encoded as JSON when non-nil

	// Decode turns a response body into the value stored in Serdeable.
	// Nil means the response body is ignored.
	Decode func([]byte) (any, error)

	// IgnoreStatus passes non-2xx responses to Decode instead of failing.
	IgnoreStatus bool

	// Cacheable GETs are answered from the client's TTL cache.
	Cacheable bool
}

type resourceSpec struct {
	backends []models.Backend // nil means every backend
	build    func(Request) Resource
}

func decodeAs[T any]() func([]byte) (any, error) {
	return func(data []byte) (any, error) {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func decodePage[T any]() func([]byte) (any, error) {
	return func(data []byte) (any, error) {
		var p servarr.Page[T]
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p.Records, nil
	}
}

func get(path string, decode func([]byte) (any, error)) func(Request) Resource {
	return func(Request) Resource {
		return Resource{Method: http.MethodGet, Path: path, Decode: decode}
	}
}

func getByID(path string, decode func([]byte) (any, error)) func(Request) Resource {
	return func(r Request) Resource {
		return Resource{Method: http.MethodGet, Path: fmt.Sprintf("%s/%d", path, r.ID), Decode: decode}
	}
}

func getWithParam(path, param string, id func(Request) int64, decode func([]byte) (any, error)) func(Request) Resource {
	return func(r Request) Resource {
		return Resource{
			Method: http.MethodGet,
			Path:   path,
			Query:  url.Values{param: {strconv.FormatInt(id(r), 10)}},
			Decode: decode,
		}
	}
}

func byID(r Request) int64       { return r.ID }
func byParentID(r Request) int64 { return r.ParentID }

func deleteByID(path string) func(Request) Resource {
	return func(r Request) Resource {
		return Resource{Method: http.MethodDelete, Path: fmt.Sprintf("%s/%d", path, r.ID)}
	}
}

func post(path string) func(Request) Resource {
	return func(r Request) Resource {
		return Resource{Method: http.MethodPost, Path: path, Body: r.Body}
	}
}

func paged(path string, sortKey string, decode func([]byte) (any, error)) func(Request) Resource {
	return func(r Request) Resource {
		q := url.Values{"pageSize": {strconv.Itoa(r.Count)}}
		if sortKey != "" {
			q.Set("sortDirection", "descending")
			q.Set("sortKey", sortKey)
		}
		return Resource{Method: http.MethodGet, Path: path, Query: q, Decode: decode}
	}
}

func lookup(path string, decode func([]byte) (any, error)) func(Request) Resource {
	return func(r Request) Resource {
		return Resource{
			Method:    http.MethodGet,
			Path:      path,
			Query:     url.Values{"term": {r.Query}},
			Decode:    decode,
			Cacheable: true,
		}
	}
}

func deleteLibraryItem(path string) func(Request) Resource {
	return func(r Request) Resource {
		exclusion := "addImportListExclusion"
		if r.Backend == models.Radarr {
			exclusion = "addImportExclusion"
		}
		return Resource{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("%s/%d", path, r.ID),
			Query: url.Values{
				"deleteFiles": {strconv.FormatBool(r.DeleteFiles)},
				exclusion:     {strconv.FormatBool(r.AddListExclusion)},
			},
		}
	}
}

func command(name string) func(Request) Resource {
	return func(r Request) Resource {
		body := r.Body
		if body == nil {
			body = servarr.CommandBody{Name: name}
		}
		return Resource{Method: http.MethodPost, Path: "/command", Body: body}
	}
}

// decodeIndexerTest interprets /indexer/test: an empty body means the
// indexer passed, a list of validation failures means it didn't.
func decodeIndexerTest(id int64) func([]byte) (any, error) {
	return func(data []byte) (any, error) {
		result := servarr.IndexerTestResult{ID: id, IsValid: true}
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return result, nil
		}
		if err := json.Unmarshal(trimmed, &result.ValidationFailures); err != nil {
			return nil, err
		}
		result.IsValid = len(result.ValidationFailures) == 0
		return result, nil
	}
}

var (
	radarrOnly = []models.Backend{models.Radarr}
	sonarrOnly = []models.Backend{models.Sonarr}
	lidarrOnly = []models.Backend{models.Lidarr}
)

var libraryPaths = map[models.Backend]string{
	models.Radarr: "/movie",
	models.Sonarr: "/series",
	models.Lidarr: "/artist",
}

var resources = map[Event]resourceSpec{
	GetQualityProfilesEvent: {build: get("/qualityprofile", decodeAs[[]servarr.QualityProfile]())},
	GetTagsEvent:            {build: get("/tag", decodeAs[[]servarr.Tag]())},
	GetRootFoldersEvent:     {build: get("/rootfolder", decodeAs[[]servarr.RootFolder]())},
	DeleteRootFolderEvent:   {build: deleteByID("/rootfolder")},
	GetDownloadsEvent:       {build: paged("/queue", "", decodePage[servarr.QueueRecord]())},
	DeleteDownloadEvent:     {build: deleteByID("/queue")},
	UpdateDownloadsEvent:    {build: command("RefreshMonitoredDownloads")},
	GetDiskSpaceEvent:       {build: get("/diskspace", decodeAs[[]servarr.DiskSpace]())},
	GetStatusEvent:          {build: get("/system/status", decodeAs[servarr.SystemStatus]())},
	HealthCheckEvent:        {build: get("/health", decodeAs[[]servarr.HealthCheck]())},
	GetBlocklistEvent: {build: func(Request) Resource {
		return Resource{
			Method: http.MethodGet,
			Path:   "/blocklist",
			Query:  url.Values{"page": {"1"}, "pageSize": {"10000"}},
			Decode: decodePage[servarr.BlocklistItem](),
		}
	}},
	DeleteBlocklistItemEvent: {build: deleteByID("/blocklist")},
	ClearBlocklistEvent: {build: func(r Request) Resource {
		return Resource{Method: http.MethodDelete, Path: "/blocklist/bulk", Body: r.Body}
	}},
	GetHistoryEvent:            {build: paged("/history", "date", decodePage[servarr.HistoryItem]())},
	GetIndexersEvent:           {build: get("/indexer", decodeAs[[]servarr.Indexer]())},
	DeleteIndexerEvent:         {build: deleteByID("/indexer")},
	GetAllIndexerSettingsEvent: {build: get("/config/indexer", decodeAs[servarr.IndexerSettings]())},
	TestIndexerEvent: {build: func(r Request) Resource {
		return Resource{
			Method:       http.MethodPost,
			Path:         "/indexer/test",
			Body:         r.Body,
			Decode:       decodeIndexerTest(r.ID),
			IgnoreStatus: true,
		}
	}},
	TestAllIndexersEvent: {build: func(Request) Resource {
		return Resource{
			Method:       http.MethodPost,
			Path:         "/indexer/testall",
			Decode:       decodeAs[[]servarr.IndexerTestResult](),
			IgnoreStatus: true,
		}
	}},
	GetTasksEvent:          {build: get("/system/task", decodeAs[[]servarr.Task]())},
	StartTaskEvent:         {build: post("/command")},
	GetQueuedEventsEvent:   {build: get("/command", decodeAs[[]servarr.QueueEvent]())},
	GetLogsEvent:           {build: paged("/log", "time", decodePage[servarr.LogRecord]())},
	GetUpdatesEvent:        {build: get("/update", decodeAs[[]servarr.Update]())},
	DownloadReleaseEvent:   {build: post("/release")},
	TriggerAutomaticSearchEvent: {build: post("/command")},
	UpdateAndScanEvent:          {build: post("/command")},

	GetMoviesEvent:         {backends: radarrOnly, build: get("/movie", decodeAs[[]servarr.Movie]())},
	GetMovieDetailsEvent:   {backends: radarrOnly, build: getByID("/movie", decodeAs[servarr.Movie]())},
	GetMovieHistoryEvent:   {backends: radarrOnly, build: getWithParam("/history/movie", "movieId", byID, decodeAs[[]servarr.HistoryItem]())},
	GetReleasesEvent:       {backends: radarrOnly, build: getWithParam("/release", "movieId", byID, decodeAs[[]servarr.Release]())},
	SearchNewMovieEvent:    {backends: radarrOnly, build: lookup("/movie/lookup", decodeAs[[]servarr.Movie]())},
	AddMovieEvent:          {backends: radarrOnly, build: post("/movie")},
	DeleteMovieEvent:       {backends: radarrOnly, build: deleteLibraryItem("/movie")},
	UpdateAllMoviesEvent:   {backends: radarrOnly, build: command("RefreshMovie")},
	GetCollectionsEvent:    {backends: radarrOnly, build: get("/collection", decodeAs[[]servarr.Collection]())},
	UpdateCollectionsEvent: {backends: radarrOnly, build: command("RefreshCollections")},
	GetMovieCreditsEvent: {backends: radarrOnly, build: func(r Request) Resource {
		res := getWithParam("/credit", "movieId", byID, decodeAs[[]servarr.Credit]())(r)
		res.Cacheable = true
		return res
	}},

	ListSeriesEvent:          {backends: sonarrOnly, build: get("/series", decodeAs[[]servarr.Series]())},
	GetSeriesDetailsEvent:    {backends: sonarrOnly, build: getByID("/series", decodeAs[servarr.Series]())},
	GetSeriesHistoryEvent:    {backends: sonarrOnly, build: getWithParam("/history/series", "seriesId", byID, decodeAs[[]servarr.HistoryItem]())},
	GetEpisodesEvent:         {backends: sonarrOnly, build: getWithParam("/episode", "seriesId", byParentID, decodeAs[[]servarr.Episode]())},
	GetEpisodeFilesEvent:     {backends: sonarrOnly, build: getWithParam("/episodefile", "seriesId", byParentID, decodeAs[[]servarr.EpisodeFile]())},
	GetEpisodeDetailsEvent:   {backends: sonarrOnly, build: getByID("/episode", decodeAs[servarr.Episode]())},
	GetEpisodeReleasesEvent:  {backends: sonarrOnly, build: getWithParam("/release", "episodeId", byID, decodeAs[[]servarr.Release]())},
	GetLanguageProfilesEvent: {backends: sonarrOnly, build: get("/language", decodeAs[[]servarr.LanguageProfile]())},
	SearchNewSeriesEvent:     {backends: sonarrOnly, build: lookup("/series/lookup", decodeAs[[]servarr.Series]())},
	AddSeriesEvent:           {backends: sonarrOnly, build: post("/series")},
	DeleteSeriesEvent:        {backends: sonarrOnly, build: deleteLibraryItem("/series")},
	UpdateAllSeriesEvent:     {backends: sonarrOnly, build: command("RefreshSeries")},

	ListArtistsEvent:         {backends: lidarrOnly, build: get("/artist", decodeAs[[]servarr.Artist]())},
	GetAlbumsEvent:           {backends: lidarrOnly, build: getWithParam("/album", "artistId", byParentID, decodeAs[[]servarr.Album]())},
	GetTrackFilesEvent:       {backends: lidarrOnly, build: getWithParam("/trackfile", "albumId", byID, decodeAs[[]servarr.TrackFile]())},
	GetMetadataProfilesEvent: {backends: lidarrOnly, build: get("/metadataprofile", decodeAs[[]servarr.MetadataProfile]())},
	SearchNewArtistEvent:     {backends: lidarrOnly, build: lookup("/artist/lookup", decodeAs[[]servarr.Artist]())},
	AddArtistEvent:           {backends: lidarrOnly, build: post("/artist")},
	DeleteArtistEvent:        {backends: lidarrOnly, build: deleteLibraryItem("/artist")},
	UpdateAllArtistsEvent:    {backends: lidarrOnly, build: command("RefreshArtist")},
	GetTracksEvent: {backends: lidarrOnly, build: func(r Request) Resource {
		return Resource{
			Method: http.MethodGet,
			Path:   "/track",
			Query: url.Values{
				"artistId": {strconv.FormatInt(r.ParentID, 10)},
				"albumId":  {strconv.FormatInt(r.ID, 10)},
			},
			Decode: decodeAs[[]servarr.Track](),
		}
	}},
}

// Resolve maps a Request to the HTTP call that performs it. It has no
// side effects; the same Request always yields the same Resource.
func Resolve(r Request) (Resource, error) {
	spec, ok := resources[r.Event]
	if !ok {
		return Resource{}, NewValidationError(fmt.Sprintf("unknown event %q", r.Event))
	}
	if _, ok := libraryPaths[r.Backend]; !ok {
		return Resource{}, NewValidationError(fmt.Sprintf("unknown backend %q", r.Backend))
	}
	if spec.backends != nil && !containsBackend(spec.backends, r.Backend) {
		return Resource{}, NewValidationError(fmt.Sprintf("%s is not supported by %s", r.Event, r.Backend))
	}
	return spec.build(r), nil
}

// Events lists every event Resolve knows about.
func Events() []Event {
	out := make([]Event, 0, len(resources))
	for e := range resources {
		out = append(out, e)
	}
	return out
}

// SupportedBy reports whether backend can perform event.
func SupportedBy(event Event, backend models.Backend) bool {
	spec, ok := resources[event]
	if !ok {
		return false
	}
	return spec.backends == nil || containsBackend(spec.backends, backend)
}

func containsBackend(list []models.Backend, b models.Backend) bool {
	for _, x := range list {
		if x == b {
			return true
		}
	}
	return false
}
