package handlers

import (
	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/models"
)

// libraryBlocks are the root screens that list library items.
var libraryBlocks = map[models.Block]bool{
	models.BlockMovies:  true,
	models.BlockSeries:  true,
	models.BlockArtists: true,
}

// detailBlocks are the screens about one library item, where s and u act
// on that item instead of the table.
var detailBlocks = map[models.Block]bool{
	models.BlockMovieDetails:  true,
	models.BlockMovieHistory:  true,
	models.BlockFileInfo:      true,
	models.BlockCast:          true,
	models.BlockCrew:          true,
	models.BlockSeriesDetails: true,
	models.BlockSeriesHistory: true,
	models.BlockArtistDetails: true,
}

// openDetails opens the screen for the selected row of the current table.
func openDetails(a *app.App) {
	route := a.CurrentRoute()

	switch route.Backend {
	case models.Radarr:
		if route.Block != models.BlockMovies || a.Radarr.Movies.IsEmpty() {
			return
		}
		a.Radarr.ClearDetails()
		a.Radarr.DetailTabs = app.MovieDetailTabs()
		pushData(a, a.Radarr.DetailTabs.Current().Route)

	case models.Sonarr:
		s := a.Sonarr
		switch route.Block {
		case models.BlockSeries:
			if s.Series.IsEmpty() {
				return
			}
			s.ClearDetails()
			s.DetailTabs = app.SeriesDetailTabs()
			pushData(a, s.DetailTabs.Current().Route)
		case models.BlockSeriesDetails:
			season, ok := s.Seasons.Current()
			if !ok {
				return
			}
			s.SelectSeason(season.SeasonNumber)
			s.DetailTabs = nil
			pushData(a, models.NewRoute(models.Sonarr, models.BlockSeasonDetails).WithParent(models.BlockSeriesDetails))
		case models.BlockSeasonDetails:
			if s.Episodes.IsEmpty() {
				return
			}
			s.EpisodeDetails = nil
			s.Releases.SetItems(nil)
			s.DetailTabs = app.EpisodeDetailTabs()
			pushData(a, s.DetailTabs.Current().Route)
		}

	case models.Lidarr:
		l := a.Lidarr
		switch route.Block {
		case models.BlockArtists:
			if l.Artists.IsEmpty() {
				return
			}
			l.ClearDetails()
			pushData(a, models.NewRoute(models.Lidarr, models.BlockArtistDetails).WithParent(models.BlockArtists))
		case models.BlockArtistDetails:
			if l.Albums.IsEmpty() {
				return
			}
			l.Tracks.SetItems(nil)
			l.TrackFiles = nil
			pushData(a, models.NewRoute(models.Lidarr, models.BlockAlbumDetails).WithParent(models.BlockArtistDetails))
		}
	}
}

// pushData opens a screen that needs its fetch set dispatched.
func pushData(a *app.App, route models.Route) {
	a.PushRoute(route)
	a.ShouldRefresh = true
}

// detailTabsFor returns the tab bar of the details screen route belongs
// to, positioned on it, or nil.
func detailTabsFor(route models.Route) *models.TabState {
	var candidates []*models.TabState
	switch route.Backend {
	case models.Radarr:
		candidates = append(candidates, app.MovieDetailTabs())
	case models.Sonarr:
		candidates = append(candidates, app.SeriesDetailTabs(), app.EpisodeDetailTabs())
	}
	for _, tabs := range candidates {
		if i := tabs.Find(route.Block); i >= 0 && tabs.Current().Route.Parent == route.Parent {
			tabs.SetIndex(i)
			return tabs
		}
	}
	return nil
}

// runCommand runs the single-key command r on the current screen.
func runCommand(a *app.App, r rune) {
	route := a.CurrentRoute()
	d := a.ServarrData(route.Backend)
	block := route.Block

	switch r {
	case 'r':
		a.ShouldRefresh = true

	case 'f', 's':
		if r == 's' && detailBlocks[block] {
			openPrompt(a, models.BlockAutomaticSearchPrompt)
			return
		}
		if a.ListFor(route.Backend, block) == nil {
			return
		}
		input := models.BlockFilter
		if r == 's' {
			input = models.BlockSearch
		}
		d.Input = ""
		a.PushRoute(models.NewRoute(route.Backend, input).WithParent(block))

	case 'a':
		if libraryBlocks[block] {
			d.Input = ""
			a.PushRoute(models.NewRoute(route.Backend, models.BlockAddSearchInput).WithParent(block))
		}

	case 'd':
		switch block {
		case models.BlockMovies, models.BlockSeries, models.BlockArtists:
			openDeletePrompt(a)
		case models.BlockDownloads:
			openPrompt(a, models.BlockDeleteDownloadPrompt)
		case models.BlockBlocklist:
			openPrompt(a, models.BlockDeleteBlocklistItemPrompt)
		case models.BlockRootFolders:
			openPrompt(a, models.BlockDeleteRootFolderPrompt)
		case models.BlockIndexers:
			openPrompt(a, models.BlockDeleteIndexerPrompt)
		}

	case 'c':
		if block == models.BlockBlocklist {
			openPrompt(a, models.BlockClearBlocklistPrompt)
		}

	case 'u':
		switch {
		case block == models.BlockDownloads:
			openPrompt(a, models.BlockUpdateDownloadsPrompt)
		case libraryBlocks[block]:
			openPrompt(a, models.BlockUpdateAllPrompt)
		case block == models.BlockCollections:
			openPrompt(a, models.BlockUpdateAllCollectionsPrompt)
		case block == models.BlockSystem:
			pushData(a, models.NewRoute(route.Backend, models.BlockSystemUpdates).WithParent(block))
		case detailBlocks[block]:
			openPrompt(a, models.BlockUpdateAndScanPrompt)
		}

	case 't':
		switch block {
		case models.BlockIndexers:
			if d.Indexers.IsEmpty() {
				return
			}
			d.IndexerTestResults = nil
			pushData(a, models.NewRoute(route.Backend, models.BlockTestIndexer).WithParent(block))
		case models.BlockSystem:
			pushData(a, models.NewRoute(route.Backend, models.BlockSystemTasks).WithParent(block))
		}

	case 'T':
		if block == models.BlockIndexers {
			d.IndexerTestResults = nil
			pushData(a, models.NewRoute(route.Backend, models.BlockTestAllIndexers).WithParent(block))
		}

	case 'S':
		if block == models.BlockIndexers {
			d.IndexerSettings = nil
			pushData(a, models.NewRoute(route.Backend, models.BlockAllIndexerSettingsPrompt).WithParent(block))
		}
	}
}
