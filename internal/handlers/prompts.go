package handlers

import (
	"fmt"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
)

// PromptSpec describes a single-step yes/no prompt.
type PromptSpec struct {
	Title string
	// Message returns the question shown in the prompt body.
	Message func(a *app.App, backend models.Backend) string
	// Request builds the action from the row selected on the screen the
	// prompt was opened from. ok is false when there is nothing to act on,
	// in which case the prompt does not open.
	Request func(a *app.App, backend models.Backend) (network.Request, bool)
}

// Prompts lists the single-step prompts by block. The delete and add
// prompts step through a BlockSelection and are handled separately.
var Prompts = map[models.Block]PromptSpec{
	models.BlockDeleteDownloadPrompt: {
		Title: "Delete Download",
		Message: func(a *app.App, b models.Backend) string {
			q, _ := a.ServarrData(b).Downloads.Current()
			return fmt.Sprintf("Do you really want to delete this download:\n%s?", q.Title)
		},
		Request: func(a *app.App, b models.Backend) (network.Request, bool) {
			q, ok := a.ServarrData(b).Downloads.Current()
			return network.DeleteDownload(b, q.ID), ok
		},
	},
	models.BlockUpdateDownloadsPrompt: {
		Title:   "Update Downloads",
		Message: fixed("Do you want to update your downloads?"),
		Request: func(_ *app.App, b models.Backend) (network.Request, bool) {
			return network.UpdateDownloads(b), true
		},
	},
	models.BlockDeleteBlocklistItemPrompt: {
		Title: "Remove From Blocklist",
		Message: func(a *app.App, b models.Backend) string {
			item, _ := a.ServarrData(b).Blocklist.Current()
			return fmt.Sprintf("Do you want to remove this item from your blocklist:\n%s?", item.SourceTitle)
		},
		Request: func(a *app.App, b models.Backend) (network.Request, bool) {
			item, ok := a.ServarrData(b).Blocklist.Current()
			return network.DeleteBlocklistItem(b, item.ID), ok
		},
	},
	models.BlockClearBlocklistPrompt: {
		Title:   "Clear Blocklist",
		Message: fixed("Do you want to clear your blocklist?"),
		Request: func(a *app.App, b models.Backend) (network.Request, bool) {
			items := a.ServarrData(b).Blocklist.Items
			ids := make([]int64, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			return network.ClearBlocklist(b, ids), len(ids) > 0
		},
	},
	models.BlockDeleteRootFolderPrompt: {
		Title: "Delete Root Folder",
		Message: func(a *app.App, b models.Backend) string {
			f, _ := a.ServarrData(b).RootFolders.Current()
			return fmt.Sprintf("Do you really want to delete this root folder:\n%s?", f.Path)
		},
		Request: func(a *app.App, b models.Backend) (network.Request, bool) {
			f, ok := a.ServarrData(b).RootFolders.Current()
			return network.DeleteRootFolder(b, f.ID), ok
		},
	},
	models.BlockDeleteIndexerPrompt: {
		Title: "Delete Indexer",
		Message: func(a *app.App, b models.Backend) string {
			ix, _ := a.ServarrData(b).Indexers.Current()
			return fmt.Sprintf("Do you really want to delete this indexer:\n%s?", ix.Name)
		},
		Request: func(a *app.App, b models.Backend) (network.Request, bool) {
			ix, ok := a.ServarrData(b).Indexers.Current()
			return network.DeleteIndexer(b, ix.ID), ok
		},
	},
	models.BlockStartTaskPrompt: {
		Title: "Start Task",
		Message: func(a *app.App, b models.Backend) string {
			task, _ := a.ServarrData(b).Tasks.Current()
			return fmt.Sprintf("Do you want to manually start this task: %s?", task.Name)
		},
		Request: func(a *app.App, b models.Backend) (network.Request, bool) {
			task, ok := a.ServarrData(b).Tasks.Current()
			return network.StartTask(b, task.TaskName), ok
		},
	},
	models.BlockDownloadReleasePrompt: {
		Title: "Download Release",
		Message: func(a *app.App, b models.Backend) string {
			r, _ := a.ServarrData(b).Releases.Current()
			return fmt.Sprintf("Do you want to download the following release:\n%s?", r.Title)
		},
		Request: downloadRelease,
	},
	models.BlockAutomaticSearchPrompt: {
		Title: "Automatic Search",
		Message: func(a *app.App, b models.Backend) string {
			return fmt.Sprintf("Do you want to trigger an automatic search of your indexers for:\n%s?", libraryTitle(a, b))
		},
		Request: func(a *app.App, b models.Backend) (network.Request, bool) {
			id, ok := libraryID(a, b)
			return network.TriggerAutomaticSearch(b, id), ok
		},
	},
	models.BlockUpdateAndScanPrompt: {
		Title: "Update and Scan",
		Message: func(a *app.App, b models.Backend) string {
			return fmt.Sprintf("Do you want to trigger an update and disk scan for:\n%s?", libraryTitle(a, b))
		},
		Request: func(a *app.App, b models.Backend) (network.Request, bool) {
			id, ok := libraryID(a, b)
			return network.UpdateAndScan(b, id), ok
		},
	},
	models.BlockUpdateAllPrompt: {
		Title:   "Update All",
		Message: fixed("Do you want to update info and scan your disks for your whole library?"),
		Request: func(_ *app.App, b models.Backend) (network.Request, bool) {
			switch b {
			case models.Sonarr:
				return network.UpdateAllSeries(), true
			case models.Lidarr:
				return network.UpdateAllArtists(), true
			}
			return network.UpdateAllMovies(), true
		},
	},
	models.BlockUpdateAllCollectionsPrompt: {
		Title:   "Update All Collections",
		Message: fixed("Do you want to update all of your collections?"),
		Request: func(_ *app.App, b models.Backend) (network.Request, bool) {
			return network.UpdateCollections(), b == models.Radarr
		},
	},
}

func fixed(msg string) func(*app.App, models.Backend) string {
	return func(*app.App, models.Backend) string { return msg }
}

// libraryID returns the id of the selected movie, series or artist.
func libraryID(a *app.App, b models.Backend) (int64, bool) {
	switch b {
	case models.Sonarr:
		s, ok := a.Sonarr.Series.Current()
		return s.ID, ok
	case models.Lidarr:
		ar, ok := a.Lidarr.Artists.Current()
		return ar.ID, ok
	}
	m, ok := a.Radarr.Movies.Current()
	return m.ID, ok
}

func libraryTitle(a *app.App, b models.Backend) string {
	switch b {
	case models.Sonarr:
		s, _ := a.Sonarr.Series.Current()
		return s.Title
	case models.Lidarr:
		ar, _ := a.Lidarr.Artists.Current()
		return ar.ArtistName
	}
	m, _ := a.Radarr.Movies.Current()
	return m.Title
}

func downloadRelease(a *app.App, b models.Backend) (network.Request, bool) {
	r, ok := a.ServarrData(b).Releases.Current()
	if !ok {
		return network.Request{}, false
	}
	body := servarr.ReleaseDownloadBody{GUID: r.GUID, IndexerID: r.IndexerID}
	switch b {
	case models.Radarr:
		body.MovieID, _ = libraryID(a, b)
	case models.Sonarr:
		ep, ok := a.Sonarr.Episodes.Current()
		if !ok {
			return network.Request{}, false
		}
		body.SeriesID = ep.SeriesID
		body.EpisodeID = ep.ID
	}
	return network.DownloadRelease(b, body), true
}

// IsPrompt reports whether block is a confirmation prompt of any kind.
func IsPrompt(block models.Block) bool {
	if _, ok := Prompts[block]; ok {
		return true
	}
	return block == models.BlockDeletePrompt || block == models.BlockAddPrompt
}

// openPrompt pushes the single-step prompt block over the current screen
// if there is something for it to act on.
func openPrompt(a *app.App, block models.Block) {
	route := a.CurrentRoute()
	spec, ok := Prompts[block]
	if !ok {
		return
	}
	if _, ok := spec.Request(a, route.Backend); !ok {
		return
	}
	a.ServarrData(route.Backend).Prompt.Reset()
	a.PushRoute(models.NewRoute(route.Backend, block).WithParent(route.Block))
}

// submitPrompt stages the action of a single-step prompt when the user
// confirmed it, then closes the prompt.
func submitPrompt(a *app.App, spec PromptSpec) {
	b := a.CurrentRoute().Backend
	d := a.ServarrData(b)
	if req, ok := spec.Request(a, b); ok && d.Prompt.Arm(req) {
		a.ShouldRefresh = true
	} else {
		d.Prompt.Reset()
	}
	a.PopRoute()
}

func openDeletePrompt(a *app.App) {
	route := a.CurrentRoute()
	id, ok := libraryID(a, route.Backend)
	if !ok {
		return
	}
	d := a.ServarrData(route.Backend)
	d.Prompt.Reset()
	d.Delete = app.NewDeletePrompt(id, libraryTitle(a, route.Backend))
	a.PushRoute(models.NewRoute(route.Backend, models.BlockDeletePrompt).WithParent(route.Block))
}

func submitDeletePrompt(a *app.App) {
	b := a.CurrentRoute().Backend
	d := a.ServarrData(b)
	if d.Delete == nil {
		a.PopRoute()
		return
	}
	if !d.Delete.Selection.IsLast() {
		d.Delete.ToggleFocused()
		return
	}
	if d.Prompt.Arm(d.Delete.Request(b)) {
		a.ShouldRefresh = true
	}
	d.Delete = nil
	a.PopRoute()
}

func monitorOptions(b models.Backend) []string {
	switch b {
	case models.Sonarr:
		return servarr.SeriesMonitorOptions
	case models.Lidarr:
		return servarr.ArtistMonitorOptions
	}
	return servarr.MovieMonitorOptions
}

func selectedSearchResult(a *app.App, b models.Backend) (any, bool) {
	switch b {
	case models.Sonarr:
		return a.Sonarr.AddSearchResults.Current()
	case models.Lidarr:
		return a.Lidarr.AddSearchResults.Current()
	}
	return a.Radarr.AddSearchResults.Current()
}

func openAddPrompt(a *app.App) {
	route := a.CurrentRoute()
	item, ok := selectedSearchResult(a, route.Backend)
	if !ok {
		return
	}
	d := a.ServarrData(route.Backend)
	d.Prompt.Reset()
	d.Add = app.NewAddPrompt(d, monitorOptions(route.Backend), item)
	a.PushRoute(models.NewRoute(route.Backend, models.BlockAddPrompt).WithParent(route.Block))
}

func submitAddPrompt(a *app.App) {
	b := a.CurrentRoute().Backend
	d := a.ServarrData(b)
	if d.Add == nil {
		a.PopRoute()
		return
	}
	if !d.Add.Selection.IsLast() {
		d.Add.Selection.Next()
		return
	}
	var metadataProfile int64
	if b == models.Lidarr && len(a.Lidarr.MetadataProfiles) > 0 {
		metadataProfile = a.Lidarr.MetadataProfiles[0].ID
	}
	if req, ok := d.Add.Request(metadataProfile); ok && d.Prompt.Arm(req) {
		a.ShouldRefresh = true
	} else {
		d.Prompt.Reset()
	}
	d.Add = nil
	a.PopRoute()
}
