package models

import "fmt"

// Block is the smallest addressable screen or sub-screen within one
// backend's UI. Blocks shared by every backend (downloads, system, ...)
// use one constant; the Route's backend tells them apart.
type Block string

// Library screens.
const (
	BlockMovies      Block = "movies"
	BlockSeries      Block = "series"
	BlockArtists     Block = "artists"
	BlockCollections Block = "collections"
)

// Shared screens.
const (
	BlockDownloads       Block = "downloads"
	BlockBlocklist       Block = "blocklist"
	BlockHistory         Block = "history"
	BlockRootFolders     Block = "root_folders"
	BlockIndexers        Block = "indexers"
	BlockSystem          Block = "system"
	BlockSystemUpdates   Block = "system_updates"
	BlockSystemTasks     Block = "system_tasks"
	BlockTestIndexer     Block = "test_indexer"
	BlockTestAllIndexers Block = "test_all_indexers"

	BlockAllIndexerSettingsPrompt Block = "all_indexer_settings_prompt"
)

// Detail screens.
const (
	BlockMovieDetails   Block = "movie_details"
	BlockMovieHistory   Block = "movie_history"
	BlockFileInfo       Block = "file_info"
	BlockCast           Block = "cast"
	BlockCrew           Block = "crew"
	BlockManualSearch   Block = "manual_search"
	BlockSeriesDetails  Block = "series_details"
	BlockSeriesHistory  Block = "series_history"
	BlockSeasonDetails  Block = "season_details"
	BlockEpisodeDetails Block = "episode_details"
	BlockArtistDetails  Block = "artist_details"
	BlockAlbumDetails   Block = "album_details"
)

// Text input screens. Their Route parent is the table being filtered,
// searched or added to.
const (
	BlockFilter           Block = "filter"
	BlockSearch           Block = "search"
	BlockAddSearchInput   Block = "add_search_input"
	BlockAddSearchResults Block = "add_search_results"
)

// Confirmation prompts.
const (
	BlockDeleteDownloadPrompt       Block = "delete_download_prompt"
	BlockUpdateDownloadsPrompt      Block = "update_downloads_prompt"
	BlockDeleteBlocklistItemPrompt  Block = "delete_blocklist_item_prompt"
	BlockClearBlocklistPrompt       Block = "clear_blocklist_prompt"
	BlockDeleteRootFolderPrompt     Block = "delete_root_folder_prompt"
	BlockDeleteIndexerPrompt        Block = "delete_indexer_prompt"
	BlockStartTaskPrompt            Block = "start_task_prompt"
	BlockDownloadReleasePrompt      Block = "download_release_prompt"
	BlockAutomaticSearchPrompt      Block = "automatic_search_prompt"
	BlockUpdateAndScanPrompt        Block = "update_and_scan_prompt"
	BlockUpdateAllPrompt            Block = "update_all_prompt"
	BlockUpdateAllCollectionsPrompt Block = "update_all_collections_prompt"
	BlockDeletePrompt               Block = "delete_prompt"
	BlockDeleteToggleDeleteFiles    Block = "delete_toggle_delete_files"
	BlockDeleteToggleListExclusion  Block = "delete_toggle_list_exclusion"
	BlockDeleteConfirmPrompt        Block = "delete_confirm_prompt"
	BlockAddPrompt                  Block = "add_prompt"
	BlockAddSelectRootFolder        Block = "add_select_root_folder"
	BlockAddSelectQualityProfile    Block = "add_select_quality_profile"
	BlockAddSelectMonitor           Block = "add_select_monitor"
	BlockAddConfirmPrompt           Block = "add_confirm_prompt"
)

// Route identifies the active screen: which backend, which block and,
// for sub-screens, which block it was opened from. Routes are plain
// values and compare structurally.
type Route struct {
	Backend Backend
	Block   Block
	Parent  Block // empty when the route has no parent
}

// NewRoute returns a route without a parent block.
func NewRoute(backend Backend, block Block) Route {
	return Route{Backend: backend, Block: block}
}

// WithParent returns a copy of r with its parent block set.
func (r Route) WithParent(parent Block) Route {
	r.Parent = parent
	return r
}

// HasParent reports whether the route was opened from another block.
func (r Route) HasParent() bool {
	return r.Parent != ""
}

func (r Route) String() string {
	if r.Parent != "" {
		return fmt.Sprintf("%s/%s<-%s", r.Backend, r.Block, r.Parent)
	}
	return fmt.Sprintf("%s/%s", r.Backend, r.Block)
}
