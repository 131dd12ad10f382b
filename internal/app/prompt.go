package app

import (
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
)

// StagedAction is a confirm-gated request. A prompt stores the request
// with Arm; the next dispatch pass executes it with Take. The request
// only runs if Confirm was true when the user submitted, and it runs once.
type StagedAction struct {
	Confirm bool
	Action  *network.Request
}

// Toggle flips the yes/no choice of the open prompt.
func (s *StagedAction) Toggle() {
	s.Confirm = !s.Confirm
}

// Arm stores req if the user chose yes. It reports whether it did; when
// it didn't the prompt state is reset.
func (s *StagedAction) Arm(req network.Request) bool {
	if !s.Confirm {
		s.Reset()
		return false
	}
	s.Action = &req
	return true
}

// Take returns the stored request and resets to idle.
func (s *StagedAction) Take() (network.Request, bool) {
	if s.Action == nil {
		s.Confirm = false
		return network.Request{}, false
	}
	req := *s.Action
	s.Reset()
	return req, true
}

// Armed reports whether a request is waiting for the next dispatch pass.
func (s *StagedAction) Armed() bool {
	return s.Action != nil
}

// Reset discards any stored request.
func (s *StagedAction) Reset() {
	s.Confirm = false
	s.Action = nil
}

// DeletePrompt is the three-step delete dialog of a library item.
type DeletePrompt struct {
	Selection        *models.BlockSelection
	ID               int64
	Title            string
	DeleteFiles      bool
	AddListExclusion bool
}

// NewDeletePrompt opens the delete dialog for one library item.
func NewDeletePrompt(id int64, title string) *DeletePrompt {
	return &DeletePrompt{
		Selection: models.NewBlockSelection(
			models.BlockDeleteToggleDeleteFiles,
			models.BlockDeleteToggleListExclusion,
			models.BlockDeleteConfirmPrompt,
		),
		ID:    id,
		Title: title,
	}
}

// ToggleFocused flips the option under the cursor. It is a no-op on the
// confirm step.
func (p *DeletePrompt) ToggleFocused() {
	switch p.Selection.CurrentBlock() {
	case models.BlockDeleteToggleDeleteFiles:
		p.DeleteFiles = !p.DeleteFiles
	case models.BlockDeleteToggleListExclusion:
		p.AddListExclusion = !p.AddListExclusion
	}
}

// Request builds the delete request for backend.
func (p *DeletePrompt) Request(backend models.Backend) network.Request {
	switch backend {
	case models.Sonarr:
		return network.DeleteSeries(p.ID, p.DeleteFiles, p.AddListExclusion)
	case models.Lidarr:
		return network.DeleteArtist(p.ID, p.DeleteFiles, p.AddListExclusion)
	default:
		return network.DeleteMovie(p.ID, p.DeleteFiles, p.AddListExclusion)
	}
}

// AddPrompt is the dialog that adds a search result to the library.
type AddPrompt struct {
	Selection *models.BlockSelection

	RootFolders     []string
	QualityProfiles []servarr.QualityProfile
	MonitorOptions  []string

	RootFolder     int
	QualityProfile int
	Monitor        int

	// Item is the search result being added (servarr.Movie, Series or Artist).
	Item any
}

// NewAddPrompt opens the add dialog with the option lists of d.
func NewAddPrompt(d *ServarrData, monitorOptions []string, item any) *AddPrompt {
	folders := make([]string, 0, d.RootFolders.Len())
	for _, f := range d.RootFolders.Items {
		folders = append(folders, f.Path)
	}
	return &AddPrompt{
		Selection: models.NewBlockSelection(
			models.BlockAddSelectRootFolder,
			models.BlockAddSelectQualityProfile,
			models.BlockAddSelectMonitor,
			models.BlockAddConfirmPrompt,
		),
		RootFolders:     folders,
		QualityProfiles: d.QualityProfiles,
		MonitorOptions:  monitorOptions,
		Item:            item,
	}
}

func cycle(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// CycleFocused moves the option of the focused field by delta, wrapping.
func (p *AddPrompt) CycleFocused(delta int) {
	switch p.Selection.CurrentBlock() {
	case models.BlockAddSelectRootFolder:
		p.RootFolder = cycle(p.RootFolder, delta, len(p.RootFolders))
	case models.BlockAddSelectQualityProfile:
		p.QualityProfile = cycle(p.QualityProfile, delta, len(p.QualityProfiles))
	case models.BlockAddSelectMonitor:
		p.Monitor = cycle(p.Monitor, delta, len(p.MonitorOptions))
	}
}

// RootFolderPath returns the chosen root folder.
func (p *AddPrompt) RootFolderPath() string {
	if len(p.RootFolders) == 0 {
		return ""
	}
	return p.RootFolders[p.RootFolder]
}

// QualityProfileID returns the chosen profile id.
func (p *AddPrompt) QualityProfileID() int64 {
	if len(p.QualityProfiles) == 0 {
		return 0
	}
	return p.QualityProfiles[p.QualityProfile].ID
}

// MonitorOption returns the chosen monitor mode.
func (p *AddPrompt) MonitorOption() string {
	if len(p.MonitorOptions) == 0 {
		return ""
	}
	return p.MonitorOptions[p.Monitor]
}

// Request builds the add request. metadataProfileID is only used by Lidarr.
// ok is false when Item is not a search result.
func (p *AddPrompt) Request(metadataProfileID int64) (network.Request, bool) {
	opts := servarr.AddOptions{Monitor: p.MonitorOption()}
	monitored := opts.Monitor != "none"

	switch item := p.Item.(type) {
	case servarr.Movie:
		opts.SearchForMovie = true
		return network.AddMovie(servarr.AddMovieBody{
			TmdbID:              item.TmdbID,
			Title:               item.Title,
			RootFolderPath:      p.RootFolderPath(),
			QualityProfileID:    p.QualityProfileID(),
			MinimumAvailability: "announced",
			Monitored:           monitored,
			Tags:                []int64{},
			AddOptions:          opts,
		}), true
	case servarr.Series:
		opts.SearchForMissingEpisodes = true
		return network.AddSeries(servarr.AddSeriesBody{
			TvdbID:           item.TvdbID,
			Title:            item.Title,
			RootFolderPath:   p.RootFolderPath(),
			QualityProfileID: p.QualityProfileID(),
			SeriesType:       "standard",
			SeasonFolder:     true,
			Monitored:        monitored,
			Tags:             []int64{},
			AddOptions:       opts,
		}), true
	case servarr.Artist:
		opts.SearchForMissingAlbums = true
		return network.AddArtist(servarr.AddArtistBody{
			ForeignArtistID:   item.ForeignArtistID,
			ArtistName:        item.ArtistName,
			RootFolderPath:    p.RootFolderPath(),
			QualityProfileID:  p.QualityProfileID(),
			MetadataProfileID: metadataProfileID,
			Monitored:         monitored,
			Tags:              []int64{},
			AddOptions:        opts,
		}), true
	}
	return network.Request{}, false
}
