package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/servarr"
)

// frame is the area a screen may draw into.
type frame struct {
	width   int
	height  int
	loading bool
}

// shrink returns the frame left after drawing rendered above it.
func (f frame) shrink(rendered string) frame {
	f.height -= lipgloss.Height(rendered)
	return f
}

type column[T any] struct {
	title string
	value func(T) string
}

func col[T any](title string, value func(T) string) column[T] {
	return column[T]{title: title, value: value}
}

// renderTable draws the rows of t that fit in f, scrolled so the cursor
// row is visible, with the cursor row highlighted.
func renderTable[T any](title string, t *models.Table[T], cols []column[T], f frame) string {
	heading := RenderTitle(title)
	if filter := t.Filter(); filter != "" {
		heading += SubtitleStyle.Render("  filter: " + filter)
	}

	rows := t.Rows()
	if len(rows) == 0 {
		msg := "Nothing to show"
		if f.loading {
			msg = "Loading..."
		}
		return lipgloss.JoinVertical(lipgloss.Left, heading, SubtitleStyle.Render(msg))
	}
	heading += SubtitleStyle.Render(fmt.Sprintf("  %d/%d", t.Cursor()+1, len(rows)))

	// Title line, two borders and the header with its separator.
	visible := f.height - 5
	if visible < 1 {
		visible = 1
	}
	start := 0
	if t.Cursor() >= visible {
		start = t.Cursor() - visible + 1
	}
	end := min(start+visible, len(rows))
	selected := t.Cursor() - start

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.title
	}
	cells := make([][]string, 0, end-start)
	for _, row := range rows[start:end] {
		line := make([]string, len(cols))
		for i, c := range cols {
			line[i] = c.value(row)
		}
		cells = append(cells, line)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(BorderColor)).
		Width(f.width).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return HeaderCellStyle
			case selected:
				return SelectedCellStyle
			}
			return CellStyle
		})

	return lipgloss.JoinVertical(lipgloss.Left, heading, tbl.Render())
}

func check(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func bytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(n))
}

func ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

func agoPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return ago(*t)
}

func date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02")
}

// runtime formats minutes as "2h 5m".
func runtime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// trackLength formats milliseconds as "m:ss".
func trackLength(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func ratio(have, total int) string {
	return fmt.Sprintf("%d/%d", have, total)
}

func colorStatus(status string) string {
	switch strings.ToLower(status) {
	case "completed", "downloaded", "ok", "continuing", "released":
		return SuccessTextStyle.Render(status)
	case "warn", "warning", "queued", "paused", "delay", "upcoming":
		return WarningTextStyle.Render(status)
	case "failed", "error", "ended", "deleted":
		return ErrorTextStyle.Render(status)
	}
	return status
}

func movieColumns(d *app.ServarrData) []column[servarr.Movie] {
	return []column[servarr.Movie]{
		col("Title", func(m servarr.Movie) string { return m.Title }),
		col("Year", func(m servarr.Movie) string { return fmt.Sprint(m.Year) }),
		col("Studio", func(m servarr.Movie) string { return m.Studio }),
		col("Runtime", func(m servarr.Movie) string { return runtime(m.Runtime) }),
		col("Rating", func(m servarr.Movie) string { return m.Certification }),
		col("Size", func(m servarr.Movie) string { return bytes(m.SizeOnDisk) }),
		col("Quality Profile", func(m servarr.Movie) string { return d.QualityProfileName(m.QualityProfileID) }),
		col("Monitored", func(m servarr.Movie) string { return check(m.Monitored) }),
		col("Tags", func(m servarr.Movie) string { return strings.Join(d.TagLabels(m.Tags), ", ") }),
	}
}

func collectionColumns(d *app.ServarrData) []column[servarr.Collection] {
	return []column[servarr.Collection]{
		col("Collection", func(c servarr.Collection) string { return c.Title }),
		col("Movies", func(c servarr.Collection) string { return fmt.Sprint(len(c.Movies)) }),
		col("Root Folder", func(c servarr.Collection) string { return c.RootFolderPath }),
		col("Quality Profile", func(c servarr.Collection) string { return d.QualityProfileName(c.QualityProfileID) }),
		col("Search on Add", func(c servarr.Collection) string { return check(c.SearchOnAdd) }),
		col("Monitored", func(c servarr.Collection) string { return check(c.Monitored) }),
	}
}

func movieLookupColumns() []column[servarr.Movie] {
	return []column[servarr.Movie]{
		col("Title", func(m servarr.Movie) string { return m.Title }),
		col("Year", func(m servarr.Movie) string { return fmt.Sprint(m.Year) }),
		col("Runtime", func(m servarr.Movie) string { return runtime(m.Runtime) }),
		col("Genres", func(m servarr.Movie) string { return strings.Join(m.Genres, ", ") }),
	}
}

func creditColumns(cast bool) []column[servarr.Credit] {
	if cast {
		return []column[servarr.Credit]{
			col("Name", func(c servarr.Credit) string { return c.PersonName }),
			col("Character", func(c servarr.Credit) string { return c.Character }),
		}
	}
	return []column[servarr.Credit]{
		col("Name", func(c servarr.Credit) string { return c.PersonName }),
		col("Department", func(c servarr.Credit) string { return c.Department }),
		col("Job", func(c servarr.Credit) string { return c.Job }),
	}
}

func seriesColumns(d *app.ServarrData) []column[servarr.Series] {
	return []column[servarr.Series]{
		col("Title", func(s servarr.Series) string { return s.Title }),
		col("Year", func(s servarr.Series) string { return fmt.Sprint(s.Year) }),
		col("Network", func(s servarr.Series) string { return s.Network }),
		col("Status", func(s servarr.Series) string { return colorStatus(s.Status) }),
		col("Episodes", func(s servarr.Series) string {
			if s.Statistics == nil {
				return ""
			}
			return ratio(s.Statistics.EpisodeFileCount, s.Statistics.EpisodeCount)
		}),
		col("Size", func(s servarr.Series) string {
			if s.Statistics == nil {
				return ""
			}
			return bytes(s.Statistics.SizeOnDisk)
		}),
		col("Quality Profile", func(s servarr.Series) string { return d.QualityProfileName(s.QualityProfileID) }),
		col("Monitored", func(s servarr.Series) string { return check(s.Monitored) }),
	}
}

func seriesLookupColumns() []column[servarr.Series] {
	return []column[servarr.Series]{
		col("Title", func(s servarr.Series) string { return s.Title }),
		col("Year", func(s servarr.Series) string { return fmt.Sprint(s.Year) }),
		col("Network", func(s servarr.Series) string { return s.Network }),
		col("Seasons", func(s servarr.Series) string { return fmt.Sprint(len(s.Seasons)) }),
		col("Genres", func(s servarr.Series) string { return strings.Join(s.Genres, ", ") }),
	}
}

func seasonColumns() []column[servarr.Season] {
	return []column[servarr.Season]{
		col("Season", func(s servarr.Season) string {
			if s.SeasonNumber == 0 {
				return "Specials"
			}
			return fmt.Sprintf("Season %d", s.SeasonNumber)
		}),
		col("Episodes", func(s servarr.Season) string {
			if s.Statistics == nil {
				return ""
			}
			return ratio(s.Statistics.EpisodeFileCount, s.Statistics.EpisodeCount)
		}),
		col("Size", func(s servarr.Season) string {
			if s.Statistics == nil {
				return ""
			}
			return bytes(s.Statistics.SizeOnDisk)
		}),
		col("Monitored", func(s servarr.Season) string { return check(s.Monitored) }),
	}
}

func episodeColumns() []column[servarr.Episode] {
	return []column[servarr.Episode]{
		col("#", func(e servarr.Episode) string { return fmt.Sprint(e.EpisodeNumber) }),
		col("Title", func(e servarr.Episode) string { return e.Title }),
		col("Air Date", func(e servarr.Episode) string { return date(e.AirDateUtc) }),
		col("Downloaded", func(e servarr.Episode) string { return check(e.HasFile) }),
		col("Monitored", func(e servarr.Episode) string { return check(e.Monitored) }),
	}
}

func artistColumns(d *app.ServarrData) []column[servarr.Artist] {
	return []column[servarr.Artist]{
		col("Name", func(a servarr.Artist) string { return a.ArtistName }),
		col("Status", func(a servarr.Artist) string { return colorStatus(a.Status) }),
		col("Albums", func(a servarr.Artist) string {
			if a.Statistics == nil {
				return ""
			}
			return fmt.Sprint(a.Statistics.AlbumCount)
		}),
		col("Tracks", func(a servarr.Artist) string {
			if a.Statistics == nil {
				return ""
			}
			return ratio(a.Statistics.TrackFileCount, a.Statistics.TrackCount)
		}),
		col("Size", func(a servarr.Artist) string {
			if a.Statistics == nil {
				return ""
			}
			return bytes(a.Statistics.SizeOnDisk)
		}),
		col("Quality Profile", func(a servarr.Artist) string { return d.QualityProfileName(a.QualityProfileID) }),
		col("Monitored", func(a servarr.Artist) string { return check(a.Monitored) }),
	}
}

func artistLookupColumns() []column[servarr.Artist] {
	return []column[servarr.Artist]{
		col("Name", func(a servarr.Artist) string { return a.ArtistName }),
		col("Status", func(a servarr.Artist) string { return a.Status }),
		col("Genres", func(a servarr.Artist) string { return strings.Join(a.Genres, ", ") }),
	}
}

func albumColumns() []column[servarr.Album] {
	return []column[servarr.Album]{
		col("Title", func(a servarr.Album) string { return a.Title }),
		col("Type", func(a servarr.Album) string { return a.AlbumType }),
		col("Released", func(a servarr.Album) string { return date(a.ReleaseDate) }),
		col("Tracks", func(a servarr.Album) string {
			if a.Statistics == nil {
				return ""
			}
			return ratio(a.Statistics.TrackFileCount, a.Statistics.TrackCount)
		}),
		col("Size", func(a servarr.Album) string {
			if a.Statistics == nil {
				return ""
			}
			return bytes(a.Statistics.SizeOnDisk)
		}),
		col("Monitored", func(a servarr.Album) string { return check(a.Monitored) }),
	}
}

func trackColumns() []column[servarr.Track] {
	return []column[servarr.Track]{
		col("#", func(t servarr.Track) string { return t.TrackNumber }),
		col("Title", func(t servarr.Track) string { return t.Title }),
		col("Length", func(t servarr.Track) string { return trackLength(t.Duration) }),
		col("Downloaded", func(t servarr.Track) string { return check(t.HasFile) }),
	}
}

func queueColumns() []column[servarr.QueueRecord] {
	return []column[servarr.QueueRecord]{
		col("Title", func(q servarr.QueueRecord) string { return q.Title }),
		col("Progress", func(q servarr.QueueRecord) string { return fmt.Sprintf("%.0f%%", q.Progress()*100) }),
		col("Time Left", func(q servarr.QueueRecord) string { return q.Timeleft }),
		col("Size", func(q servarr.QueueRecord) string { return bytes(int64(q.Size)) }),
		col("Status", func(q servarr.QueueRecord) string { return colorStatus(q.Status) }),
		col("Quality", func(q servarr.QueueRecord) string { return q.Quality.Name() }),
		col("Client", func(q servarr.QueueRecord) string { return q.DownloadClient }),
		col("Indexer", func(q servarr.QueueRecord) string { return q.Indexer }),
	}
}

func blocklistColumns() []column[servarr.BlocklistItem] {
	return []column[servarr.BlocklistItem]{
		col("Source Title", func(b servarr.BlocklistItem) string { return b.SourceTitle }),
		col("Quality", func(b servarr.BlocklistItem) string { return b.Quality.Name() }),
		col("Protocol", func(b servarr.BlocklistItem) string { return b.Protocol }),
		col("Indexer", func(b servarr.BlocklistItem) string { return b.Indexer }),
		col("Date", func(b servarr.BlocklistItem) string { return ago(b.Date) }),
	}
}

func historyColumns() []column[servarr.HistoryItem] {
	return []column[servarr.HistoryItem]{
		col("Source Title", func(h servarr.HistoryItem) string { return h.SourceTitle }),
		col("Event", func(h servarr.HistoryItem) string { return h.EventType }),
		col("Quality", func(h servarr.HistoryItem) string { return h.Quality.Name() }),
		col("Date", func(h servarr.HistoryItem) string { return ago(h.Date) }),
	}
}

func rootFolderColumns() []column[servarr.RootFolder] {
	return []column[servarr.RootFolder]{
		col("Path", func(r servarr.RootFolder) string { return r.Path }),
		col("Free Space", func(r servarr.RootFolder) string { return bytes(r.FreeSpace) }),
		col("Unmapped Folders", func(r servarr.RootFolder) string { return fmt.Sprint(len(r.UnmappedFolders)) }),
		col("Accessible", func(r servarr.RootFolder) string { return check(r.Accessible) }),
	}
}

func indexerColumns(d *app.ServarrData) []column[servarr.Indexer] {
	return []column[servarr.Indexer]{
		col("Indexer", func(i servarr.Indexer) string { return i.Name }),
		col("Protocol", func(i servarr.Indexer) string { return i.Protocol }),
		col("RSS", func(i servarr.Indexer) string { return check(i.EnableRss) }),
		col("Automatic Search", func(i servarr.Indexer) string { return check(i.EnableAutomaticSearch) }),
		col("Interactive Search", func(i servarr.Indexer) string { return check(i.EnableInteractiveSearch) }),
		col("Priority", func(i servarr.Indexer) string { return fmt.Sprint(i.Priority) }),
		col("Tags", func(i servarr.Indexer) string { return strings.Join(d.TagLabels(i.Tags), ", ") }),
	}
}

func releaseColumns() []column[servarr.Release] {
	return []column[servarr.Release]{
		col("", func(r servarr.Release) string {
			if r.Rejected {
				return ErrorTextStyle.Render("✗")
			}
			return ""
		}),
		col("Title", func(r servarr.Release) string { return r.Title }),
		col("Indexer", func(r servarr.Release) string { return r.Indexer }),
		col("Size", func(r servarr.Release) string { return bytes(r.Size) }),
		col("Age", func(r servarr.Release) string { return fmt.Sprintf("%d days", r.Age) }),
		col("Peers", func(r servarr.Release) string {
			if r.Seeders == nil || r.Leechers == nil {
				return ""
			}
			return fmt.Sprintf("%d / %d", *r.Seeders, *r.Leechers)
		}),
		col("Quality", func(r servarr.Release) string { return r.Quality.Name() }),
	}
}

func taskColumns() []column[servarr.Task] {
	return []column[servarr.Task]{
		col("Name", func(t servarr.Task) string { return t.Name }),
		col("Interval", func(t servarr.Task) string {
			return (time.Duration(t.Interval) * time.Minute).String()
		}),
		col("Last Execution", func(t servarr.Task) string { return ago(t.LastExecution) }),
		col("Last Duration", func(t servarr.Task) string { return t.LastDuration }),
		col("Next Execution", func(t servarr.Task) string { return ago(t.NextExecution) }),
	}
}

func queueEventColumns() []column[servarr.QueueEvent] {
	return []column[servarr.QueueEvent]{
		col("Name", func(e servarr.QueueEvent) string { return e.Name }),
		col("Status", func(e servarr.QueueEvent) string { return colorStatus(e.Status) }),
		col("Queued", func(e servarr.QueueEvent) string { return ago(e.Queued) }),
		col("Started", func(e servarr.QueueEvent) string { return agoPtr(e.Started) }),
		col("Duration", func(e servarr.QueueEvent) string { return e.Duration }),
	}
}

func logColumns() []column[servarr.LogRecord] {
	return []column[servarr.LogRecord]{
		col("Time", func(l servarr.LogRecord) string { return l.Time.Local().Format("15:04:05") }),
		col("Level", func(l servarr.LogRecord) string { return colorStatus(l.Level) }),
		col("Logger", func(l servarr.LogRecord) string { return l.Logger }),
		col("Message", func(l servarr.LogRecord) string { return l.Message }),
	}
}

func updateColumns() []column[servarr.Update] {
	return []column[servarr.Update]{
		col("Version", func(u servarr.Update) string { return u.Version }),
		col("Released", func(u servarr.Update) string { return ago(u.ReleaseDate) }),
		col("Installed", func(u servarr.Update) string { return check(u.Installed) }),
		col("Latest", func(u servarr.Update) string { return check(u.Latest) }),
		col("Changes", func(u servarr.Update) string {
			return fmt.Sprintf("%d new, %d fixed", len(u.Changes.New), len(u.Changes.Fixed))
		}),
	}
}
