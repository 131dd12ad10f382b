package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/handlers"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/servarr"
)

// View renders the current frame
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	m.App.Lock()
	defer m.App.Unlock()

	spin := ""
	if m.App.IsLoading {
		spin = m.Spinner.View()
	}
	header := BuildHeaderContent(RenderTabs(m.App.ServerTabs), spin)

	// Outer border plus the rules under the header and over the footer.
	f := frame{
		width:   m.Width - 4,
		height:  m.Height - 4 - lipgloss.Height(header) - m.footerHeight(),
		loading: m.App.IsLoading,
	}
	return RenderApplicationContainer(header, m.buildContent(f), m.helpText(), m.Width, m.Height)
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.helpText())
}

// helpText combines the commands of the current screen with the global
// key bindings.
func (m Model) helpText() string {
	route := m.App.CurrentRoute()
	d := m.App.ServarrData(route.Backend)

	var context string
	switch {
	case handlers.IsTextInput(route.Block):
		context = "enter submit  esc cancel"
	case handlers.IsPrompt(route.Block):
		context = "←/→ choose  ↑/↓ field  enter confirm  esc cancel"
	case !route.HasParent():
		context = d.MainTabs.Current().Help
	default:
		context = detailHelp(route.Block)
	}
	if context == "" {
		return m.Help.View(m.Keys)
	}
	return context + "\n" + m.Help.View(m.Keys)
}

func detailHelp(block models.Block) string {
	switch block {
	case models.BlockMovieDetails, models.BlockSeriesDetails, models.BlockArtistDetails:
		return "s auto search  u update and scan"
	case models.BlockManualSearch:
		return "enter download"
	case models.BlockSystemTasks:
		return "enter start task"
	case models.BlockAddSearchResults:
		return "enter add"
	}
	return ""
}

// buildContent renders the tab bars, the error banner and the current
// screen. Prompts and input boxes are drawn over the screen they were
// opened from.
func (m Model) buildContent(f frame) string {
	a := m.App
	route := a.CurrentRoute()
	d := a.ServarrData(route.Backend)

	var sections []string
	sections = append(sections, RenderTabs(d.MainTabs))
	if d.DetailTabs != nil && route.HasParent() {
		sections = append(sections, RenderTabs(d.DetailTabs))
	}
	if a.Error != "" {
		sections = append(sections, RenderError(a.Error, f.width))
	}
	top := lipgloss.JoinVertical(lipgloss.Left, sections...)
	f = f.shrink(top)

	var body string
	switch {
	case handlers.IsPrompt(route.Block):
		body = RenderModal(m.renderPrompt(route, f), f.width, f.height)
	case handlers.IsTextInput(route.Block):
		box := m.renderInput(route, f)
		body = lipgloss.JoinVertical(lipgloss.Left, box, m.renderScreen(a.PreviousRoute(), f.shrink(box)))
	default:
		body = m.renderScreen(route, f)
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

// renderScreen draws the table or panel of route.
func (m Model) renderScreen(route models.Route, f frame) string {
	a := m.App
	d := a.ServarrData(route.Backend)

	switch route.Block {
	case models.BlockMovies:
		return renderTable("Movies", &a.Radarr.Movies, movieColumns(d), f)
	case models.BlockCollections:
		return renderTable("Collections", &a.Radarr.Collections, collectionColumns(d), f)
	case models.BlockSeries:
		return renderTable("Series", &a.Sonarr.Series, seriesColumns(d), f)
	case models.BlockArtists:
		return renderTable("Artists", &a.Lidarr.Artists, artistColumns(d), f)

	case models.BlockDownloads:
		return renderTable("Downloads", &d.Downloads, queueColumns(), f)
	case models.BlockBlocklist:
		return renderTable("Blocklist", &d.Blocklist, blocklistColumns(), f)
	case models.BlockHistory:
		return renderTable("History", &d.History, historyColumns(), f)
	case models.BlockRootFolders:
		return renderTable("Root Folders", &d.RootFolders, rootFolderColumns(), f)
	case models.BlockIndexers:
		return renderTable("Indexers", &d.Indexers, indexerColumns(d), f)
	case models.BlockSystem:
		return m.renderSystem(d, f)
	case models.BlockSystemTasks:
		return renderTable("Tasks", &d.Tasks, taskColumns(), f)
	case models.BlockSystemUpdates:
		return renderTable("Updates", &d.Updates, updateColumns(), f)
	case models.BlockTestIndexer, models.BlockTestAllIndexers:
		return renderIndexerTests(d, f)
	case models.BlockAllIndexerSettingsPrompt:
		return renderIndexerSettings(d)
	case models.BlockManualSearch:
		return renderTable("Releases", &d.Releases, releaseColumns(), f)

	case models.BlockMovieDetails:
		return renderMovieDetails(a, f)
	case models.BlockMovieHistory:
		return renderTable("History", &a.Radarr.MovieHistory, historyColumns(), f)
	case models.BlockFileInfo:
		return renderMovieFile(a.Radarr.MovieDetails, f)
	case models.BlockCast:
		return renderTable("Cast", &a.Radarr.Cast, creditColumns(true), f)
	case models.BlockCrew:
		return renderTable("Crew", &a.Radarr.Crew, creditColumns(false), f)

	case models.BlockSeriesDetails:
		panel := renderSeriesPanel(a.Sonarr.SeriesDetails, d, f)
		return lipgloss.JoinVertical(lipgloss.Left, panel,
			renderTable("Seasons", &a.Sonarr.Seasons, seasonColumns(), f.shrink(panel)))
	case models.BlockSeriesHistory:
		return renderTable("History", &a.Sonarr.SeriesHistory, historyColumns(), f)
	case models.BlockSeasonDetails:
		return renderTable(seasonTitle(a.Sonarr), &a.Sonarr.Episodes, episodeColumns(), f)
	case models.BlockEpisodeDetails:
		return renderEpisodeDetails(a.Sonarr, f)

	case models.BlockArtistDetails:
		artist, _ := a.Lidarr.Artists.Current()
		panel := renderArtistPanel(artist, d, f)
		return lipgloss.JoinVertical(lipgloss.Left, panel,
			renderTable("Albums", &a.Lidarr.Albums, albumColumns(), f.shrink(panel)))
	case models.BlockAlbumDetails:
		album, _ := a.Lidarr.Albums.Current()
		title := fmt.Sprintf("%s  (%d files)", album.Title, len(a.Lidarr.TrackFiles))
		return renderTable(title, &a.Lidarr.Tracks, trackColumns(), f)

	case models.BlockAddSearchResults:
		title := fmt.Sprintf("Results for %q", d.AddQuery)
		switch route.Backend {
		case models.Sonarr:
			return renderTable(title, &a.Sonarr.AddSearchResults, seriesLookupColumns(), f)
		case models.Lidarr:
			return renderTable(title, &a.Lidarr.AddSearchResults, artistLookupColumns(), f)
		}
		return renderTable(title, &a.Radarr.AddSearchResults, movieLookupColumns(), f)
	}
	return SubtitleStyle.Render(fmt.Sprintf("Nothing to show for %s", route))
}

func seasonTitle(s *app.SonarrData) string {
	if s.SeriesDetails == nil {
		return fmt.Sprintf("Season %d", s.SelectedSeason)
	}
	return fmt.Sprintf("%s: Season %d", s.SeriesDetails.Title, s.SelectedSeason)
}

func loadingPanel(f frame) string {
	if f.loading {
		return SubtitleStyle.Render("Loading...")
	}
	return SubtitleStyle.Render("Nothing to show")
}

func fields(title string, rows ...[2]string) string {
	lines := []string{RenderTitle(title)}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		lines = append(lines, RenderField(r[0], r[1]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func overview(text string, f frame) string {
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().Width(f.width - 4).Render(text)
}

func renderMovieDetails(a *app.App, f frame) string {
	mv := a.Radarr.MovieDetails
	if mv == nil {
		return loadingPanel(f)
	}
	d := &a.Radarr.ServarrData
	info := fields(fmt.Sprintf("%s (%d)", mv.Title, mv.Year),
		[2]string{"Status", colorStatus(mv.Status)},
		[2]string{"Studio", mv.Studio},
		[2]string{"Runtime", runtime(mv.Runtime)},
		[2]string{"Rating", mv.Certification},
		[2]string{"Genres", strings.Join(mv.Genres, ", ")},
		[2]string{"Quality Profile", d.QualityProfileName(mv.QualityProfileID)},
		[2]string{"Availability", mv.MinimumAvailability},
		[2]string{"Monitored", check(mv.Monitored)},
		[2]string{"Downloaded", check(mv.HasFile)},
		[2]string{"Size", bytes(mv.SizeOnDisk)},
		[2]string{"Path", mv.Path},
		[2]string{"Tags", strings.Join(d.TagLabels(mv.Tags), ", ")},
	)
	return InfoBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, info, "", overview(mv.Overview, f)))
}

func renderMovieFile(mv *servarr.Movie, f frame) string {
	if mv == nil {
		return loadingPanel(f)
	}
	if mv.MovieFile == nil {
		return SubtitleStyle.Render("No file on disk")
	}
	file := mv.MovieFile
	return InfoBoxStyle.Render(fields("File",
		[2]string{"Relative Path", file.RelativePath},
		[2]string{"Absolute Path", file.Path},
		[2]string{"Size", bytes(file.Size)},
		[2]string{"Quality", file.Quality.Name()},
		[2]string{"Date Added", ago(file.DateAdded)},
	))
}

func renderSeriesPanel(s *servarr.Series, d *app.ServarrData, f frame) string {
	if s == nil {
		return loadingPanel(f)
	}
	var size string
	if s.Statistics != nil {
		size = bytes(s.Statistics.SizeOnDisk)
	}
	return InfoBoxStyle.Render(fields(fmt.Sprintf("%s (%d)", s.Title, s.Year),
		[2]string{"Status", colorStatus(s.Status)},
		[2]string{"Network", s.Network},
		[2]string{"Type", s.SeriesType},
		[2]string{"Quality Profile", d.QualityProfileName(s.QualityProfileID)},
		[2]string{"Size", size},
		[2]string{"Path", s.Path},
	))
}

func renderEpisodeDetails(s *app.SonarrData, f frame) string {
	ep := s.EpisodeDetails
	if ep == nil {
		return loadingPanel(f)
	}
	info := fields(fmt.Sprintf("S%02dE%02d %s", ep.SeasonNumber, ep.EpisodeNumber, ep.Title),
		[2]string{"Air Date", date(ep.AirDateUtc)},
		[2]string{"Monitored", check(ep.Monitored)},
		[2]string{"Downloaded", check(ep.HasFile)},
	)
	sections := []string{info}
	for _, file := range s.EpisodeFiles {
		if file.ID != ep.EpisodeFileID {
			continue
		}
		sections = append(sections, "", fields("File",
			[2]string{"Path", file.Path},
			[2]string{"Size", bytes(file.Size)},
			[2]string{"Quality", file.Quality.Name()},
			[2]string{"Date Added", ago(file.DateAdded)},
		))
	}
	sections = append(sections, "", overview(ep.Overview, f))
	return InfoBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderArtistPanel(ar servarr.Artist, d *app.ServarrData, f frame) string {
	if ar.ArtistName == "" {
		return loadingPanel(f)
	}
	var size string
	if ar.Statistics != nil {
		size = bytes(ar.Statistics.SizeOnDisk)
	}
	return InfoBoxStyle.Render(fields(ar.ArtistName,
		[2]string{"Status", colorStatus(ar.Status)},
		[2]string{"Genres", strings.Join(ar.Genres, ", ")},
		[2]string{"Quality Profile", d.QualityProfileName(ar.QualityProfileID)},
		[2]string{"Size", size},
		[2]string{"Path", ar.Path},
	))
}

// renderSystem draws the status, disk and health panels above the
// queued commands and the log table.
func (m Model) renderSystem(d *app.ServarrData, f frame) string {
	st := d.Status
	status := fields(strings.TrimSpace(st.AppName+" "+st.InstanceName),
		[2]string{"Version", st.Version},
		[2]string{"Branch", st.Branch},
		[2]string{"OS", st.OsName},
		[2]string{"Started", ago(st.StartTime)},
	)

	disks := []string{RenderTitle("Disk Space")}
	for _, ds := range d.DiskSpace {
		used := 0.0
		if ds.TotalSpace > 0 {
			used = float64(ds.TotalSpace-ds.FreeSpace) / float64(ds.TotalSpace) * 100
		}
		disks = append(disks, fmt.Sprintf("%-20s %s free of %s (%.0f%% used)",
			ds.Path, bytes(ds.FreeSpace), bytes(ds.TotalSpace), used))
	}

	health := []string{RenderTitle("Health")}
	if len(d.Health) == 0 {
		health = append(health, SuccessTextStyle.Render("No issues"))
	}
	for _, h := range d.Health {
		health = append(health, colorStatus(h.Type)+" "+h.Message)
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		InfoBoxStyle.Render(status),
		InfoBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, disks...)),
		InfoBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, health...)),
	)

	rest := f.shrink(panels)
	queued := rest
	queued.height = min(rest.height/2, d.QueuedEvents.Len()+6)
	events := renderTable("Queued Events", &d.QueuedEvents, queueEventColumns(), queued)
	logs := renderTable("Logs", &d.Logs, logColumns(), rest.shrink(events))
	return lipgloss.JoinVertical(lipgloss.Left, panels, events, logs)
}

func renderIndexerTests(d *app.ServarrData, f frame) string {
	if len(d.IndexerTestResults) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, RenderTitle("Indexer Test"), loadingPanel(f))
	}
	names := make(map[int64]string, len(d.Indexers.Items))
	for _, ix := range d.Indexers.Items {
		names[ix.ID] = ix.Name
	}
	lines := []string{RenderTitle("Indexer Test")}
	for _, r := range d.IndexerTestResults {
		name := names[r.ID]
		if name == "" {
			name = fmt.Sprintf("indexer %d", r.ID)
		}
		if r.IsValid {
			lines = append(lines, SuccessTextStyle.Render("✓ "+name))
			continue
		}
		lines = append(lines, ErrorTextStyle.Render("✗ "+name))
		for _, v := range r.ValidationFailures {
			lines = append(lines, "    "+v.ErrorMessage)
		}
	}
	return InfoBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderIndexerSettings(d *app.ServarrData) string {
	s := d.IndexerSettings
	if s == nil {
		return SubtitleStyle.Render("Loading...")
	}
	return InfoBoxStyle.Render(fields("Indexer Settings",
		[2]string{"Minimum Age", fmt.Sprintf("%d minutes", s.MinimumAge)},
		[2]string{"Retention", fmt.Sprintf("%d days", s.Retention)},
		[2]string{"Maximum Size", fmt.Sprintf("%d MB", s.MaximumSize)},
		[2]string{"RSS Sync", fmt.Sprintf("%d minutes", s.RssSyncInterval)},
		[2]string{"Availability Delay", fmt.Sprintf("%d days", s.AvailabilityDelay)},
		[2]string{"Prefer Flags", check(s.PreferIndexerFlags)},
	))
}
