package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/muurk/servdash/internal/servarr"
	"github.com/muurk/servdash/internal/ui"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func size(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}

var movieColumns = []ui.Column[servarr.Movie]{
	{Title: "ID", Value: func(m servarr.Movie) string { return id(m.ID) }},
	{Title: "Title", Value: func(m servarr.Movie) string { return m.Title }},
	{Title: "Year", Value: func(m servarr.Movie) string { return strconv.Itoa(m.Year) }},
	{Title: "Status", Value: func(m servarr.Movie) string { return m.Status }},
	{Title: "Monitored", Value: func(m servarr.Movie) string { return yesNo(m.Monitored) }},
	{Title: "Downloaded", Value: func(m servarr.Movie) string { return yesNo(m.HasFile) }},
	{Title: "Size", Value: func(m servarr.Movie) string { return size(m.SizeOnDisk) }},
}

var collectionColumns = []ui.Column[servarr.Collection]{
	{Title: "ID", Value: func(c servarr.Collection) string { return id(c.ID) }},
	{Title: "Title", Value: func(c servarr.Collection) string { return c.Title }},
	{Title: "Movies", Value: func(c servarr.Collection) string { return strconv.Itoa(len(c.Movies)) }},
	{Title: "Monitored", Value: func(c servarr.Collection) string { return yesNo(c.Monitored) }},
	{Title: "Root Folder", Value: func(c servarr.Collection) string { return c.RootFolderPath }},
}

var seriesColumns = []ui.Column[servarr.Series]{
	{Title: "ID", Value: func(s servarr.Series) string { return id(s.ID) }},
	{Title: "Title", Value: func(s servarr.Series) string { return s.Title }},
	{Title: "Year", Value: func(s servarr.Series) string { return strconv.Itoa(s.Year) }},
	{Title: "Network", Value: func(s servarr.Series) string { return s.Network }},
	{Title: "Status", Value: func(s servarr.Series) string { return s.Status }},
	{Title: "Monitored", Value: func(s servarr.Series) string { return yesNo(s.Monitored) }},
	{Title: "Episodes", Value: func(s servarr.Series) string {
		if s.Statistics == nil {
			return "-"
		}
		return fmt.Sprintf("%d/%d", s.Statistics.EpisodeFileCount, s.Statistics.EpisodeCount)
	}},
}

var artistColumns = []ui.Column[servarr.Artist]{
	{Title: "ID", Value: func(a servarr.Artist) string { return id(a.ID) }},
	{Title: "Name", Value: func(a servarr.Artist) string { return a.ArtistName }},
	{Title: "Status", Value: func(a servarr.Artist) string { return a.Status }},
	{Title: "Monitored", Value: func(a servarr.Artist) string { return yesNo(a.Monitored) }},
	{Title: "Tracks", Value: func(a servarr.Artist) string {
		if a.Statistics == nil {
			return "-"
		}
		return fmt.Sprintf("%d/%d", a.Statistics.TrackFileCount, a.Statistics.TrackCount)
	}},
}

var downloadColumns = []ui.Column[servarr.QueueRecord]{
	{Title: "ID", Value: func(q servarr.QueueRecord) string { return id(q.ID) }},
	{Title: "Title", Value: func(q servarr.QueueRecord) string { return q.Title }},
	{Title: "Status", Value: func(q servarr.QueueRecord) string { return q.Status }},
	{Title: "Progress", Value: func(q servarr.QueueRecord) string { return fmt.Sprintf("%.0f%%", q.Progress()*100) }},
	{Title: "Size", Value: func(q servarr.QueueRecord) string { return size(int64(q.Size)) }},
	{Title: "Time Left", Value: func(q servarr.QueueRecord) string { return q.Timeleft }},
	{Title: "Client", Value: func(q servarr.QueueRecord) string { return q.DownloadClient }},
}

var historyColumns = []ui.Column[servarr.HistoryItem]{
	{Title: "Date", Value: func(h servarr.HistoryItem) string { return when(h.Date) }},
	{Title: "Event", Value: func(h servarr.HistoryItem) string { return h.EventType }},
	{Title: "Source Title", Value: func(h servarr.HistoryItem) string { return h.SourceTitle }},
	{Title: "Quality", Value: func(h servarr.HistoryItem) string { return h.Quality.Name() }},
}

var blocklistColumns = []ui.Column[servarr.BlocklistItem]{
	{Title: "ID", Value: func(b servarr.BlocklistItem) string { return id(b.ID) }},
	{Title: "Source Title", Value: func(b servarr.BlocklistItem) string { return b.SourceTitle }},
	{Title: "Indexer", Value: func(b servarr.BlocklistItem) string { return b.Indexer }},
	{Title: "Date", Value: func(b servarr.BlocklistItem) string { return when(b.Date) }},
	{Title: "Message", Value: func(b servarr.BlocklistItem) string { return b.Message }},
}

var rootFolderColumns = []ui.Column[servarr.RootFolder]{
	{Title: "ID", Value: func(r servarr.RootFolder) string { return id(r.ID) }},
	{Title: "Path", Value: func(r servarr.RootFolder) string { return r.Path }},
	{Title: "Free Space", Value: func(r servarr.RootFolder) string { return size(r.FreeSpace) }},
	{Title: "Accessible", Value: func(r servarr.RootFolder) string { return yesNo(r.Accessible) }},
	{Title: "Unmapped", Value: func(r servarr.RootFolder) string { return strconv.Itoa(len(r.UnmappedFolders)) }},
}

var diskSpaceColumns = []ui.Column[servarr.DiskSpace]{
	{Title: "Path", Value: func(d servarr.DiskSpace) string { return d.Path }},
	{Title: "Label", Value: func(d servarr.DiskSpace) string { return d.Label }},
	{Title: "Free", Value: func(d servarr.DiskSpace) string { return size(d.FreeSpace) }},
	{Title: "Total", Value: func(d servarr.DiskSpace) string { return size(d.TotalSpace) }},
}

var healthColumns = []ui.Column[servarr.HealthCheck]{
	{Title: "Type", Value: func(h servarr.HealthCheck) string { return h.Type }},
	{Title: "Source", Value: func(h servarr.HealthCheck) string { return h.Source }},
	{Title: "Message", Value: func(h servarr.HealthCheck) string { return h.Message }},
}

var statusColumns = []ui.Column[servarr.SystemStatus]{
	{Title: "App", Value: func(s servarr.SystemStatus) string { return s.AppName }},
	{Title: "Instance", Value: func(s servarr.SystemStatus) string { return s.InstanceName }},
	{Title: "Version", Value: func(s servarr.SystemStatus) string { return s.Version }},
	{Title: "Branch", Value: func(s servarr.SystemStatus) string { return s.Branch }},
	{Title: "OS", Value: func(s servarr.SystemStatus) string { return s.OsName }},
	{Title: "Docker", Value: func(s servarr.SystemStatus) string { return yesNo(s.IsDocker) }},
	{Title: "Started", Value: func(s servarr.SystemStatus) string { return when(s.StartTime) }},
}

var indexerColumns = []ui.Column[servarr.Indexer]{
	{Title: "ID", Value: func(i servarr.Indexer) string { return id(i.ID) }},
	{Title: "Name", Value: func(i servarr.Indexer) string { return i.Name }},
	{Title: "Protocol", Value: func(i servarr.Indexer) string { return i.Protocol }},
	{Title: "RSS", Value: func(i servarr.Indexer) string { return yesNo(i.EnableRss) }},
	{Title: "Auto Search", Value: func(i servarr.Indexer) string { return yesNo(i.EnableAutomaticSearch) }},
	{Title: "Interactive", Value: func(i servarr.Indexer) string { return yesNo(i.EnableInteractiveSearch) }},
	{Title: "Priority", Value: func(i servarr.Indexer) string { return strconv.Itoa(i.Priority) }},
}

var indexerTestColumns = []ui.Column[servarr.IndexerTestResult]{
	{Title: "ID", Value: func(r servarr.IndexerTestResult) string { return id(r.ID) }},
	{Title: "Valid", Value: func(r servarr.IndexerTestResult) string { return yesNo(r.IsValid) }},
	{Title: "Failures", Value: func(r servarr.IndexerTestResult) string {
		msgs := make([]string, 0, len(r.ValidationFailures))
		for _, f := range r.ValidationFailures {
			msgs = append(msgs, f.ErrorMessage)
		}
		return strings.Join(msgs, "; ")
	}},
}

var taskColumns = []ui.Column[servarr.Task]{
	{Title: "Name", Value: func(t servarr.Task) string { return t.Name }},
	{Title: "Task Name", Value: func(t servarr.Task) string { return t.TaskName }},
	{Title: "Interval", Value: func(t servarr.Task) string { return (time.Duration(t.Interval) * time.Minute).String() }},
	{Title: "Last Run", Value: func(t servarr.Task) string { return when(t.LastExecution) }},
	{Title: "Next Run", Value: func(t servarr.Task) string { return when(t.NextExecution) }},
}

var queuedEventColumns = []ui.Column[servarr.QueueEvent]{
	{Title: "ID", Value: func(e servarr.QueueEvent) string { return id(e.ID) }},
	{Title: "Name", Value: func(e servarr.QueueEvent) string { return e.CommandName }},
	{Title: "Status", Value: func(e servarr.QueueEvent) string { return e.Status }},
	{Title: "Trigger", Value: func(e servarr.QueueEvent) string { return e.Trigger }},
	{Title: "Queued", Value: func(e servarr.QueueEvent) string { return when(e.Queued) }},
	{Title: "Duration", Value: func(e servarr.QueueEvent) string { return e.Duration }},
}

var logColumns = []ui.Column[servarr.LogRecord]{
	{Title: "Time", Value: func(l servarr.LogRecord) string { return l.Time.Local().Format(time.DateTime) }},
	{Title: "Level", Value: func(l servarr.LogRecord) string { return strings.ToUpper(l.Level) }},
	{Title: "Logger", Value: func(l servarr.LogRecord) string { return l.Logger }},
	{Title: "Message", Value: func(l servarr.LogRecord) string { return l.Message }},
}

var updateColumns = []ui.Column[servarr.Update]{
	{Title: "Version", Value: func(u servarr.Update) string { return u.Version }},
	{Title: "Released", Value: func(u servarr.Update) string { return when(u.ReleaseDate) }},
	{Title: "Installed", Value: func(u servarr.Update) string { return yesNo(u.Installed) }},
	{Title: "Latest", Value: func(u servarr.Update) string { return yesNo(u.Latest) }},
	{Title: "Changes", Value: func(u servarr.Update) string {
		return fmt.Sprintf("%d new, %d fixed", len(u.Changes.New), len(u.Changes.Fixed))
	}},
}

var qualityProfileColumns = []ui.Column[servarr.QualityProfile]{
	{Title: "ID", Value: func(p servarr.QualityProfile) string { return id(p.ID) }},
	{Title: "Name", Value: func(p servarr.QualityProfile) string { return p.Name }},
}

var tagColumns = []ui.Column[servarr.Tag]{
	{Title: "ID", Value: func(t servarr.Tag) string { return id(t.ID) }},
	{Title: "Label", Value: func(t servarr.Tag) string { return t.Label }},
}
