package app

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/muurk/servdash/internal/logging"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
)

// Apply stores a decoded response. It implements network.Store. Responses
// addressed to a server other than the active one are dropped; a response
// for the active server is applied even if the user has since navigated
// away from the screen that requested it.
func (a *App) Apply(resp network.Serdeable) {
	a.mu.Lock()
	defer a.mu.Unlock()

	req := resp.Request
	if s := a.ActiveServer(); req.Backend != s.Backend || (req.Server != "" && req.Server != s.Name) {
		logging.Debug("Dropping response for inactive server",
			zap.String("backend", string(req.Backend)),
			zap.String("server", req.Server),
			zap.String("event", string(req.Event)),
		)
		return
	}
	if resp.Value == nil {
		return
	}

	if a.applyShared(a.servarrData(req.Backend), req, resp.Value) {
		return
	}
	var ok bool
	switch req.Backend {
	case models.Radarr:
		ok = a.applyRadarr(req, resp.Value)
	case models.Sonarr:
		ok = a.applySonarr(req, resp.Value)
	case models.Lidarr:
		ok = a.applyLidarr(req, resp.Value)
	}
	if !ok {
		logging.Warn("Unhandled response",
			zap.String("event", string(req.Event)),
			zap.String("type", fmt.Sprintf("%T", resp.Value)),
		)
	}
}

func (a *App) applyShared(d *ServarrData, req network.Request, v any) bool {
	switch val := v.(type) {
	case []servarr.QualityProfile:
		d.QualityProfiles = val
	case []servarr.Tag:
		d.Tags = val
	case []servarr.DiskSpace:
		d.DiskSpace = val
	case servarr.SystemStatus:
		d.Status = val
	case []servarr.HealthCheck:
		d.Health = val
	case []servarr.RootFolder:
		setRows(&d.RootFolders, val, rootFolderText)
	case []servarr.QueueRecord:
		setRows(&d.Downloads, val, queueText)
	case []servarr.BlocklistItem:
		setRows(&d.Blocklist, val, blocklistText)
	case []servarr.Indexer:
		setRows(&d.Indexers, val, indexerText)
	case servarr.IndexerSettings:
		d.IndexerSettings = &val
	case servarr.IndexerTestResult:
		d.IndexerTestResults = []servarr.IndexerTestResult{val}
	case []servarr.IndexerTestResult:
		d.IndexerTestResults = val
	case []servarr.Task:
		setRows(&d.Tasks, val, taskText)
	case []servarr.QueueEvent:
		setRows(&d.QueuedEvents, val, queueEventText)
	case []servarr.LogRecord:
		setRows(&d.Logs, val, logText)
	case []servarr.Update:
		setRows(&d.Updates, val, updateText)
	case []servarr.Release:
		sort.SliceStable(val, func(i, j int) bool { return !val[i].Rejected && val[j].Rejected })
		setRows(&d.Releases, val, releaseText)
	case []servarr.HistoryItem:
		if req.Event != network.GetHistoryEvent {
			return false
		}
		setRows(&d.History, val, historyText)
	default:
		return false
	}
	return true
}

func (a *App) applyRadarr(req network.Request, v any) bool {
	d := a.Radarr
	switch val := v.(type) {
	case []servarr.Movie:
		if req.Event == network.SearchNewMovieEvent {
			setRows(&d.AddSearchResults, val, movieText)
			break
		}
		sort.SliceStable(val, func(i, j int) bool { return val[i].Title < val[j].Title })
		setRows(&d.Movies, val, movieText)
	case servarr.Movie:
		d.MovieDetails = &val
	case []servarr.HistoryItem:
		setRows(&d.MovieHistory, val, historyText)
	case []servarr.Credit:
		var cast, crew []servarr.Credit
		for _, c := range val {
			if c.Type == "cast" {
				cast = append(cast, c)
			} else {
				crew = append(crew, c)
			}
		}
		setRows(&d.Cast, cast, creditText)
		setRows(&d.Crew, crew, creditText)
	case []servarr.Collection:
		setRows(&d.Collections, val, collectionText)
	default:
		return false
	}
	return true
}

func (a *App) applySonarr(req network.Request, v any) bool {
	d := a.Sonarr
	switch val := v.(type) {
	case []servarr.Series:
		if req.Event == network.SearchNewSeriesEvent {
			setRows(&d.AddSearchResults, val, seriesText)
			break
		}
		sort.SliceStable(val, func(i, j int) bool { return val[i].Title < val[j].Title })
		setRows(&d.Series, val, seriesText)
	case servarr.Series:
		d.SeriesDetails = &val
		seasons := append([]servarr.Season(nil), val.Seasons...)
		sort.SliceStable(seasons, func(i, j int) bool { return seasons[i].SeasonNumber < seasons[j].SeasonNumber })
		setRows(&d.Seasons, seasons, seasonText)
	case []servarr.HistoryItem:
		setRows(&d.SeriesHistory, val, historyText)
	case []servarr.Episode:
		sort.SliceStable(val, func(i, j int) bool { return val[i].EpisodeNumber < val[j].EpisodeNumber })
		d.allEpisodes = val
		d.showSeason()
	case []servarr.EpisodeFile:
		d.EpisodeFiles = val
	case servarr.Episode:
		d.EpisodeDetails = &val
	case []servarr.LanguageProfile:
		d.LanguageProfiles = val
	default:
		return false
	}
	return true
}

func (a *App) applyLidarr(req network.Request, v any) bool {
	d := a.Lidarr
	switch val := v.(type) {
	case []servarr.Artist:
		if req.Event == network.SearchNewArtistEvent {
			setRows(&d.AddSearchResults, val, artistText)
			break
		}
		sort.SliceStable(val, func(i, j int) bool { return val[i].ArtistName < val[j].ArtistName })
		setRows(&d.Artists, val, artistText)
	case []servarr.Album:
		setRows(&d.Albums, val, albumText)
	case []servarr.Track:
		setRows(&d.Tracks, val, trackText)
	case []servarr.TrackFile:
		d.TrackFiles = val
	case []servarr.MetadataProfile:
		d.MetadataProfiles = val
	default:
		return false
	}
	return true
}
