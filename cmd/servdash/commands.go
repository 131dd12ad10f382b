package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/servdash/internal/app"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/network"
	"github.com/muurk/servdash/internal/servarr"
	"github.com/muurk/servdash/internal/ui"
)

// Backend command flags
var (
	serverName       string
	outputFormat     string
	assumeYes        bool
	deleteFiles      bool
	addListExclusion bool
	recordCount      int
)

func init() {
	for _, b := range models.Backends {
		rootCmd.AddCommand(newBackendCmd(b))
	}
}

// listing is one resource the list command can print.
type listing struct {
	name     string
	short    string
	backends []models.Backend // nil means every backend
	run      func(cmd *cobra.Command, s *session) error
}

// list builds a listing runner that fetches build(backend) and prints the
// rows with cols.
func list[T any](title string, build func(models.Backend) network.Request, cols []ui.Column[T]) func(*cobra.Command, *session) error {
	return func(cmd *cobra.Command, s *session) error {
		v, err := s.do(cmd.Context(), build(s.backend))
		if err != nil {
			return err
		}
		rows, err := asRows[T](v)
		if err != nil {
			return err
		}
		return printRows(cmd, s, title, rows, cols)
	}
}

func fixed(req func() network.Request) func(models.Backend) network.Request {
	return func(models.Backend) network.Request { return req() }
}

func counted(req func(models.Backend, int) network.Request) func(models.Backend) network.Request {
	return func(b models.Backend) network.Request { return req(b, recordCount) }
}

var listings = []listing{
	{name: "movies", short: "Movies in the library", backends: []models.Backend{models.Radarr},
		run: list("movies", fixed(network.GetMovies), movieColumns)},
	{name: "collections", short: "Movie collections", backends: []models.Backend{models.Radarr},
		run: list("collections", fixed(network.GetCollections), collectionColumns)},
	{name: "series", short: "Series in the library", backends: []models.Backend{models.Sonarr},
		run: list("series", fixed(network.ListSeries), seriesColumns)},
	{name: "artists", short: "Artists in the library", backends: []models.Backend{models.Lidarr},
		run: list("artists", fixed(network.ListArtists), artistColumns)},
	{name: "downloads", short: "Active downloads",
		run: list("downloads", counted(network.GetDownloads), downloadColumns)},
	{name: "history", short: "Recent history events",
		run: list("history", counted(network.GetHistory), historyColumns)},
	{name: "blocklist", short: "Blocklisted releases",
		run: list("blocklist", network.GetBlocklist, blocklistColumns)},
	{name: "root-folders", short: "Root folders",
		run: list("root folders", network.GetRootFolders, rootFolderColumns)},
	{name: "disk-space", short: "Disk space per mount",
		run: list("disk space", network.GetDiskSpace, diskSpaceColumns)},
	{name: "health", short: "Health check warnings",
		run: list("health", network.HealthCheck, healthColumns)},
	{name: "status", short: "Server version and uptime",
		run: list("status", network.GetStatus, statusColumns)},
	{name: "indexers", short: "Configured indexers",
		run: list("indexers", network.GetIndexers, indexerColumns)},
	{name: "tasks", short: "Scheduled tasks",
		run: list("tasks", network.GetTasks, taskColumns)},
	{name: "queued-events", short: "Queued, running and recent commands",
		run: list("queued events", network.GetQueuedEvents, queuedEventColumns)},
	{name: "logs", short: "Recent server log records",
		run: list("logs", counted(network.GetLogs), logColumns)},
	{name: "updates", short: "Available updates",
		run: list("updates", network.GetUpdates, updateColumns)},
	{name: "quality-profiles", short: "Quality profiles",
		run: list("quality profiles", network.GetQualityProfiles, qualityProfileColumns)},
	{name: "tags", short: "Tags",
		run: list("tags", network.GetTags, tagColumns)},
}

func supports(backends []models.Backend, b models.Backend) bool {
	if backends == nil {
		return true
	}
	for _, x := range backends {
		if x == b {
			return true
		}
	}
	return false
}

// libraryNoun is what one library item of a backend is called.
func libraryNoun(b models.Backend) string {
	switch b {
	case models.Sonarr:
		return "series"
	case models.Lidarr:
		return "artist"
	default:
		return "movie"
	}
}

func deleteLibraryItem(b models.Backend, id int64, deleteFiles, addListExclusion bool) network.Request {
	switch b {
	case models.Sonarr:
		return network.DeleteSeries(id, deleteFiles, addListExclusion)
	case models.Lidarr:
		return network.DeleteArtist(id, deleteFiles, addListExclusion)
	default:
		return network.DeleteMovie(id, deleteFiles, addListExclusion)
	}
}

func refreshLibrary(b models.Backend) network.Request {
	switch b {
	case models.Sonarr:
		return network.UpdateAllSeries()
	case models.Lidarr:
		return network.UpdateAllArtists()
	default:
		return network.UpdateAllMovies()
	}
}

func newBackendCmd(b models.Backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   b.String(),
		Short: fmt.Sprintf("Run a single %s request", b.Title()),
		Long: fmt.Sprintf(`Run a single request against a %s server and print the result.

The first %s server in the configuration is used unless --server names
another one.`, b.Title(), b),
	}
	cmd.PersistentFlags().StringVar(&serverName, "server", "", "Name of the server to use (default: first configured)")

	cmd.AddCommand(
		newListCmd(b),
		newSearchCmd(b),
		newDeleteCmd(b),
		newClearBlocklistCmd(b),
		newActionCmd(b, "refresh-downloads", "Refresh monitored downloads", "Downloads refresh queued", network.UpdateDownloads),
		newActionCmd(b, "refresh-library", "Refresh and rescan the whole library", "Library refresh queued", refreshLibrary),
		newStartTaskCmd(b),
		newTestIndexersCmd(b),
	)
	return cmd
}

func newListCmd(b models.Backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s resources", b.Title()),
		Example: fmt.Sprintf(`  # Library as a table
  servdash %[1]s list %[2]s

  # Downloads on a named server, as JSON
  servdash %[1]s list downloads --server home --output json`, b, listingName(b)),
	}
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", ui.FormatTable, "Output format (table, json)")

	for _, l := range listings {
		l := l
		if !supports(l.backends, b) {
			continue
		}
		sub := &cobra.Command{
			Use:   l.name,
			Short: l.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := newSession(cmd, b)
				if err != nil {
					return err
				}
				return l.run(cmd, s)
			},
		}
		if l.name == "downloads" || l.name == "history" || l.name == "logs" {
			sub.Flags().IntVar(&recordCount, "count", app.DownloadsPageSize, "Number of records to fetch")
		}
		cmd.AddCommand(sub)
	}
	return cmd
}

// listingName is the library listing of a backend.
func listingName(b models.Backend) string {
	switch b {
	case models.Sonarr:
		return "series"
	case models.Lidarr:
		return "artists"
	default:
		return "movies"
	}
}

func newSearchCmd(b models.Backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <query>",
		Short:   fmt.Sprintf("Look up new %s items to add", b.Title()),
		Example: fmt.Sprintf("  servdash %s search \"the expanse\"", b),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, b)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			switch b {
			case models.Sonarr:
				return list("search results", func(models.Backend) network.Request { return network.SearchNewSeries(query) }, seriesColumns)(cmd, s)
			case models.Lidarr:
				return list("search results", func(models.Backend) network.Request { return network.SearchNewArtist(query) }, artistColumns)(cmd, s)
			default:
				return list("search results", func(models.Backend) network.Request { return network.SearchNewMovie(query) }, movieColumns)(cmd, s)
			}
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "output", "o", ui.FormatTable, "Output format (table, json)")
	return cmd
}

// deletable is one kind of item the delete command removes by id.
type deletable struct {
	name    string
	short   string
	request func(b models.Backend, id int64) network.Request
}

func newDeleteCmd(b models.Backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: fmt.Sprintf("Delete %s items by id", b.Title()),
		Example: fmt.Sprintf(`  # Delete a download, asking for confirmation
  servdash %[1]s delete download 42

  # Delete a %[2]s and its files without asking
  servdash %[1]s delete %[2]s 7 --delete-files --yes`, b, libraryNoun(b)),
	}
	cmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	kinds := []deletable{
		{name: libraryNoun(b), short: fmt.Sprintf("Delete a %s from the library", libraryNoun(b)),
			request: func(b models.Backend, id int64) network.Request {
				return deleteLibraryItem(b, id, deleteFiles, addListExclusion)
			}},
		{name: "download", short: "Remove a download from the queue", request: network.DeleteDownload},
		{name: "blocklist-item", short: "Remove a release from the blocklist", request: network.DeleteBlocklistItem},
		{name: "root-folder", short: "Remove a root folder", request: network.DeleteRootFolder},
		{name: "indexer", short: "Remove an indexer", request: network.DeleteIndexer},
	}

	for _, k := range kinds {
		k := k
		sub := &cobra.Command{
			Use:   k.name + " <id>",
			Short: k.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				itemID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || itemID <= 0 {
					return fmt.Errorf("invalid id %q", args[0])
				}
				s, err := newSession(cmd, b)
				if err != nil {
					return err
				}

				title := fmt.Sprintf("Delete %s %d", k.name, itemID)
				warnings := []string{fmt.Sprintf("%s on %s", title, s.server.Name)}
				if k.name == libraryNoun(b) && deleteFiles {
					warnings = append(warnings, "Files on disk will be deleted too")
				}
				if !confirmed(cmd, title, warnings...) {
					return nil
				}

				return s.mutate(cmd, title, k.request(b, itemID),
					ui.Param{Key: "ID", Value: args[0]},
				)
			},
		}
		if k.name == libraryNoun(b) {
			sub.Flags().BoolVar(&deleteFiles, "delete-files", false, "Also delete the files on disk")
			sub.Flags().BoolVar(&addListExclusion, "add-list-exclusion", false, "Prevent import lists from adding it again")
		}
		cmd.AddCommand(sub)
	}
	return cmd
}

func newClearBlocklistCmd(b models.Backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-blocklist",
		Short: "Remove every release from the blocklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, b)
			if err != nil {
				return err
			}
			v, err := s.do(cmd.Context(), network.GetBlocklist(b))
			if err != nil {
				return err
			}
			items, err := asRows[servarr.BlocklistItem](v)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				s.printer.PrintResult(ui.NewWarningResult("Blocklist is already empty"))
				return nil
			}

			ids := make([]int64, len(items))
			for i, item := range items {
				ids[i] = item.ID
			}
			title := "Clear blocklist"
			if !confirmed(cmd, title, fmt.Sprintf("%d blocklisted releases will be removed from %s", len(ids), s.server.Name)) {
				return nil
			}
			return s.mutate(cmd, title, network.ClearBlocklist(b, ids),
				ui.Param{Key: "Removed", Value: strconv.Itoa(len(ids))},
			)
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newActionCmd(b models.Backend, use, short, done string, build func(models.Backend) network.Request) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, b)
			if err != nil {
				return err
			}
			return s.mutate(cmd, done, build(b))
		},
	}
}

func newStartTaskCmd(b models.Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "start-task <task-name>",
		Short: "Run a scheduled task now",
		Long: `Run a scheduled task now.

The task name is the "Task Name" column of 'list tasks', e.g.
RefreshMonitoredDownloads or Backup.`,
		Example: fmt.Sprintf("  servdash %s start-task Backup", b),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, b)
			if err != nil {
				return err
			}
			return s.mutate(cmd, "Task started", network.StartTask(b, args[0]),
				ui.Param{Key: "Task", Value: args[0]},
			)
		},
	}
}

func newTestIndexersCmd(b models.Backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-indexers",
		Short: "Test every indexer and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, b)
			if err != nil {
				return err
			}
			return list("indexer tests", network.TestAllIndexers, indexerTestColumns)(cmd, s)
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "output", "o", ui.FormatTable, "Output format (table, json)")
	return cmd
}
