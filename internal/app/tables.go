package app

import (
	"fmt"

	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/servarr"
)

// ListView is the type-erased view of a Table the key handlers work on.
type ListView interface {
	ScrollUp()
	ScrollDown()
	ScrollToTop()
	ScrollToBottom()
	Len() int
	Cursor() int
	Filter() string
	ApplyFilter(query string) bool
	Search(query string) bool
	ResetFilter()
}

type listView[T any] struct {
	*models.Table[T]
	text func(T) string
}

func (l listView[T]) ApplyFilter(query string) bool { return l.Table.ApplyFilter(query, l.text) }
func (l listView[T]) Search(query string) bool      { return l.Table.Search(query, l.text) }

func view[T any](t *models.Table[T], text func(T) string) ListView {
	return listView[T]{Table: t, text: text}
}

// setRows replaces the rows of t and re-applies an active filter.
func setRows[T any](t *models.Table[T], items []T, text func(T) string) {
	filter := t.Filter()
	t.SetItems(items)
	if filter != "" {
		t.ApplyFilter(filter, text)
	}
}

func movieText(m servarr.Movie) string             { return m.Title }
func seriesText(s servarr.Series) string           { return s.Title }
func artistText(a servarr.Artist) string           { return a.ArtistName }
func albumText(a servarr.Album) string             { return a.Title }
func trackText(t servarr.Track) string             { return t.Title }
func collectionText(c servarr.Collection) string   { return c.Title }
func episodeText(e servarr.Episode) string         { return e.Title }
func seasonText(s servarr.Season) string           { return fmt.Sprintf("Season %d", s.SeasonNumber) }
func creditText(c servarr.Credit) string           { return c.PersonName }
func queueText(q servarr.QueueRecord) string       { return q.Title }
func blocklistText(b servarr.BlocklistItem) string { return b.SourceTitle }
func historyText(h servarr.HistoryItem) string     { return h.SourceTitle }
func rootFolderText(r servarr.RootFolder) string   { return r.Path }
func indexerText(i servarr.Indexer) string         { return i.Name }
func taskText(t servarr.Task) string               { return t.Name }
func queueEventText(e servarr.QueueEvent) string   { return e.Name }
func logText(l servarr.LogRecord) string           { return l.Message }
func updateText(u servarr.Update) string           { return u.Version }
func releaseText(r servarr.Release) string         { return r.Title }

// ListFor returns the table shown by block on backend, or nil if the
// block does not show one.
func (a *App) ListFor(backend models.Backend, block models.Block) ListView {
	if v := a.sharedList(a.servarrData(backend), block); v != nil {
		return v
	}
	switch backend {
	case models.Radarr:
		d := a.Radarr
		switch block {
		case models.BlockMovies:
			return view(&d.Movies, movieText)
		case models.BlockCollections:
			return view(&d.Collections, collectionText)
		case models.BlockMovieHistory:
			return view(&d.MovieHistory, historyText)
		case models.BlockCast:
			return view(&d.Cast, creditText)
		case models.BlockCrew:
			return view(&d.Crew, creditText)
		case models.BlockAddSearchResults:
			return view(&d.AddSearchResults, movieText)
		}
	case models.Sonarr:
		d := a.Sonarr
		switch block {
		case models.BlockSeries:
			return view(&d.Series, seriesText)
		case models.BlockSeriesDetails:
			return view(&d.Seasons, seasonText)
		case models.BlockSeriesHistory:
			return view(&d.SeriesHistory, historyText)
		case models.BlockSeasonDetails:
			return view(&d.Episodes, episodeText)
		case models.BlockAddSearchResults:
			return view(&d.AddSearchResults, seriesText)
		}
	case models.Lidarr:
		d := a.Lidarr
		switch block {
		case models.BlockArtists:
			return view(&d.Artists, artistText)
		case models.BlockArtistDetails:
			return view(&d.Albums, albumText)
		case models.BlockAlbumDetails:
			return view(&d.Tracks, trackText)
		case models.BlockAddSearchResults:
			return view(&d.AddSearchResults, artistText)
		}
	}
	return nil
}

func (a *App) sharedList(d *ServarrData, block models.Block) ListView {
	switch block {
	case models.BlockDownloads:
		return view(&d.Downloads, queueText)
	case models.BlockBlocklist:
		return view(&d.Blocklist, blocklistText)
	case models.BlockHistory:
		return view(&d.History, historyText)
	case models.BlockRootFolders:
		return view(&d.RootFolders, rootFolderText)
	case models.BlockIndexers:
		return view(&d.Indexers, indexerText)
	case models.BlockSystem:
		return view(&d.Logs, logText)
	case models.BlockSystemTasks:
		return view(&d.Tasks, taskText)
	case models.BlockSystemUpdates:
		return view(&d.Updates, updateText)
	case models.BlockManualSearch:
		return view(&d.Releases, releaseText)
	}
	return nil
}
