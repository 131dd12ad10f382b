package app

import (
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/servarr"
)

// ServarrData is the state every backend shares: lookups, the queue, the
// system screens and the prompt state.
type ServarrData struct {
	QualityProfiles []servarr.QualityProfile
	Tags            []servarr.Tag
	DiskSpace       []servarr.DiskSpace
	Status          servarr.SystemStatus
	Health          []servarr.HealthCheck

	RootFolders  models.Table[servarr.RootFolder]
	Downloads    models.Table[servarr.QueueRecord]
	Blocklist    models.Table[servarr.BlocklistItem]
	History      models.Table[servarr.HistoryItem]
	Indexers     models.Table[servarr.Indexer]
	Tasks        models.Table[servarr.Task]
	QueuedEvents models.Table[servarr.QueueEvent]
	Logs         models.Table[servarr.LogRecord]
	Updates      models.Table[servarr.Update]
	Releases     models.Table[servarr.Release]

	IndexerSettings    *servarr.IndexerSettings
	IndexerTestResults []servarr.IndexerTestResult

	// Prompt gates the pending destructive action of this backend.
	Prompt StagedAction
	// Delete and Add hold the multi-step prompt state while one is open.
	Delete *DeletePrompt
	Add    *AddPrompt

	// Input is the text typed into the open filter, search or add box.
	Input string
	// AddQuery is the last submitted add-search term.
	AddQuery string

	// MainTabs are the top-level screens of the backend.
	MainTabs *models.TabState
	// DetailTabs are the tabs of the open details screen, nil otherwise.
	DetailTabs *models.TabState
}

// QualityProfileName returns the name of profile id, or "" if unknown.
func (d *ServarrData) QualityProfileName(id int64) string {
	for _, p := range d.QualityProfiles {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// TagLabels maps tag ids to their labels, skipping unknown ids.
func (d *ServarrData) TagLabels(ids []int64) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, t := range d.Tags {
			if t.ID == id {
				labels = append(labels, t.Label)
				break
			}
		}
	}
	return labels
}

// RadarrData is the state of the active Radarr server.
type RadarrData struct {
	ServarrData

	Movies           models.Table[servarr.Movie]
	Collections      models.Table[servarr.Collection]
	MovieDetails     *servarr.Movie
	MovieHistory     models.Table[servarr.HistoryItem]
	Cast             models.Table[servarr.Credit]
	Crew             models.Table[servarr.Credit]
	AddSearchResults models.Table[servarr.Movie]
}

// SonarrData is the state of the active Sonarr server.
type SonarrData struct {
	ServarrData

	Series           models.Table[servarr.Series]
	SeriesDetails    *servarr.Series
	SeriesHistory    models.Table[servarr.HistoryItem]
	Seasons          models.Table[servarr.Season]
	Episodes         models.Table[servarr.Episode]
	EpisodeFiles     []servarr.EpisodeFile
	EpisodeDetails   *servarr.Episode
	SelectedSeason   int
	LanguageProfiles []servarr.LanguageProfile
	AddSearchResults models.Table[servarr.Series]

	// allEpisodes holds every episode of the open series; Episodes shows
	// those of the selected season.
	allEpisodes []servarr.Episode
}

// LidarrData is the state of the active Lidarr server.
type LidarrData struct {
	ServarrData

	Artists          models.Table[servarr.Artist]
	Albums           models.Table[servarr.Album]
	Tracks           models.Table[servarr.Track]
	TrackFiles       []servarr.TrackFile
	MetadataProfiles []servarr.MetadataProfile
	AddSearchResults models.Table[servarr.Artist]
}

func sharedTabs(backend models.Backend) []models.Tab {
	tab := func(title string, block models.Block, help string) models.Tab {
		return models.Tab{Title: title, Route: models.NewRoute(backend, block), Help: help}
	}
	return []models.Tab{
		tab("Downloads", models.BlockDownloads, "d delete  u refresh downloads"),
		tab("Blocklist", models.BlockBlocklist, "d delete  c clear"),
		tab("History", models.BlockHistory, "f filter  s search"),
		tab("Root Folders", models.BlockRootFolders, "d delete"),
		tab("Indexers", models.BlockIndexers, "t test  T test all  S settings  d delete"),
		tab("System", models.BlockSystem, "t tasks  u updates"),
	}
}

func newServarrData(backend models.Backend, library []models.Tab) ServarrData {
	return ServarrData{MainTabs: models.NewTabState(append(library, sharedTabs(backend)...)...)}
}

const libraryHelp = "a add  d delete  u update all  f filter  s search  enter details"

// NewRadarrData creates empty Radarr state.
func NewRadarrData() *RadarrData {
	return &RadarrData{ServarrData: newServarrData(models.Radarr, []models.Tab{
		{Title: "Library", Route: models.NewRoute(models.Radarr, models.BlockMovies), Help: libraryHelp},
		{Title: "Collections", Route: models.NewRoute(models.Radarr, models.BlockCollections), Help: "u update all  f filter"},
	})}
}

// NewSonarrData creates empty Sonarr state.
func NewSonarrData() *SonarrData {
	return &SonarrData{ServarrData: newServarrData(models.Sonarr, []models.Tab{
		{Title: "Library", Route: models.NewRoute(models.Sonarr, models.BlockSeries), Help: libraryHelp},
	})}
}

// NewLidarrData creates empty Lidarr state.
func NewLidarrData() *LidarrData {
	return &LidarrData{ServarrData: newServarrData(models.Lidarr, []models.Tab{
		{Title: "Library", Route: models.NewRoute(models.Lidarr, models.BlockArtists), Help: libraryHelp},
	})}
}

// MovieDetailTabs are the tabs of the movie details screen.
func MovieDetailTabs() *models.TabState {
	tab := func(title string, block models.Block) models.Tab {
		return models.Tab{Title: title, Route: models.NewRoute(models.Radarr, block).WithParent(models.BlockMovies)}
	}
	return models.NewTabState(
		tab("Details", models.BlockMovieDetails),
		tab("History", models.BlockMovieHistory),
		tab("File", models.BlockFileInfo),
		tab("Cast", models.BlockCast),
		tab("Crew", models.BlockCrew),
		tab("Manual Search", models.BlockManualSearch),
	)
}

// SeriesDetailTabs are the tabs of the series details screen.
func SeriesDetailTabs() *models.TabState {
	tab := func(title string, block models.Block) models.Tab {
		return models.Tab{Title: title, Route: models.NewRoute(models.Sonarr, block).WithParent(models.BlockSeries)}
	}
	return models.NewTabState(
		tab("Seasons", models.BlockSeriesDetails),
		tab("History", models.BlockSeriesHistory),
	)
}

// EpisodeDetailTabs are the tabs of the episode details screen.
func EpisodeDetailTabs() *models.TabState {
	tab := func(title string, block models.Block) models.Tab {
		return models.Tab{Title: title, Route: models.NewRoute(models.Sonarr, block).WithParent(models.BlockSeasonDetails)}
	}
	return models.NewTabState(
		tab("Details", models.BlockEpisodeDetails),
		tab("Manual Search", models.BlockManualSearch),
	)
}

// showSeason narrows Episodes to the selected season of the open series.
func (d *SonarrData) showSeason() {
	var eps []servarr.Episode
	for _, e := range d.allEpisodes {
		if e.SeasonNumber == d.SelectedSeason {
			eps = append(eps, e)
		}
	}
	setRows(&d.Episodes, eps, episodeText)
}

// SelectSeason shows the episodes of season n from the episodes already
// fetched for the open series.
func (d *SonarrData) SelectSeason(n int) {
	d.SelectedSeason = n
	d.showSeason()
}

// ClearDetails drops the cached data of the details screens so that
// their fetch sets run again.
func (d *RadarrData) ClearDetails() {
	d.MovieDetails = nil
	d.MovieHistory.SetItems(nil)
	d.Cast.SetItems(nil)
	d.Crew.SetItems(nil)
	d.Releases.SetItems(nil)
}

// ClearDetails drops the cached data of the details screens.
func (d *SonarrData) ClearDetails() {
	d.SeriesDetails = nil
	d.SeriesHistory.SetItems(nil)
	d.Seasons.SetItems(nil)
	d.Episodes.SetItems(nil)
	d.EpisodeFiles = nil
	d.EpisodeDetails = nil
	d.Releases.SetItems(nil)
	d.allEpisodes = nil
}

// ClearDetails drops the cached data of the details screens.
func (d *LidarrData) ClearDetails() {
	d.Albums.SetItems(nil)
	d.Tracks.SetItems(nil)
	d.TrackFiles = nil
}
