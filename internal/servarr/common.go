package servarr

import (
	"encoding/json"
	"time"
)

// QualityProfile is an entry of /qualityprofile.
type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tag is an entry of /tag.
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// RootFolder is an entry of /rootfolder.
type RootFolder struct {
	ID              int64            `json:"id"`
	Path            string           `json:"path"`
	Accessible      bool             `json:"accessible"`
	FreeSpace       int64            `json:"freeSpace"`
	UnmappedFolders []UnmappedFolder `json:"unmappedFolders,omitempty"`
}

// UnmappedFolder is a directory under a root folder that no library item owns.
type UnmappedFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// DiskSpace is an entry of /diskspace.
type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// SystemStatus is the /system/status document.
type SystemStatus struct {
	AppName      string    `json:"appName"`
	InstanceName string    `json:"instanceName"`
	Version      string    `json:"version"`
	StartTime    time.Time `json:"startTime"`
	OsName       string    `json:"osName"`
	Branch       string    `json:"branch"`
	IsDocker     bool      `json:"isDocker"`
}

// HealthCheck is an entry of /health.
type HealthCheck struct {
	Source  string `json:"source"`
	Type    string `json:"type"`
	Message string `json:"message"`
	WikiURL string `json:"wikiUrl"`
}

// Quality wraps the quality descriptor the servers nest in several payloads.
type Quality struct {
	Quality struct {
		Name string `json:"name"`
	} `json:"quality"`
}

// Name returns the quality name, e.g. "Bluray-1080p".
func (q Quality) Name() string {
	return q.Quality.Name
}

// QueueRecord is one in-progress download from /queue.
type QueueRecord struct {
	ID                    int64   `json:"id"`
	Title                 string  `json:"title"`
	Status                string  `json:"status"`
	TrackedDownloadStatus string  `json:"trackedDownloadStatus"`
	Size                  float64 `json:"size"`
	Sizeleft              float64 `json:"sizeleft"`
	Timeleft              string  `json:"timeleft,omitempty"`
	Protocol              string  `json:"protocol"`
	DownloadClient        string  `json:"downloadClient"`
	Indexer               string  `json:"indexer"`
	OutputPath            string  `json:"outputPath,omitempty"`
	ErrorMessage          string  `json:"errorMessage,omitempty"`
	MovieID               int64   `json:"movieId,omitempty"`
	SeriesID              int64   `json:"seriesId,omitempty"`
	EpisodeID             int64   `json:"episodeId,omitempty"`
	ArtistID              int64   `json:"artistId,omitempty"`
	AlbumID               int64   `json:"albumId,omitempty"`
	Quality               Quality `json:"quality"`
}

// Progress returns the completed fraction in [0, 1].
func (q QueueRecord) Progress() float64 {
	if q.Size <= 0 {
		return 0
	}
	p := (q.Size - q.Sizeleft) / q.Size
	if p < 0 {
		return 0
	}
	return p
}

// Page is the paging envelope wrapped around /queue, /history,
// /blocklist and /log responses.
type Page[T any] struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	Records      []T `json:"records"`
}

// BlocklistItem is an entry of /blocklist.
type BlocklistItem struct {
	ID          int64     `json:"id"`
	SourceTitle string    `json:"sourceTitle"`
	Date        time.Time `json:"date"`
	Protocol    string    `json:"protocol"`
	Indexer     string    `json:"indexer"`
	Message     string    `json:"message"`
	MovieID     int64     `json:"movieId,omitempty"`
	SeriesID    int64     `json:"seriesId,omitempty"`
	ArtistID    int64     `json:"artistId,omitempty"`
	Quality     Quality   `json:"quality"`
}

// HistoryItem is an entry of /history.
type HistoryItem struct {
	ID          int64             `json:"id"`
	SourceTitle string            `json:"sourceTitle"`
	EventType   string            `json:"eventType"`
	Date        time.Time         `json:"date"`
	Quality     Quality           `json:"quality"`
	Data        map[string]string `json:"data,omitempty"`
}

// Indexer is an entry of /indexer. The full server document is kept in
// Raw because /indexer/test requires it to be posted back unchanged.
type Indexer struct {
	ID                      int64   `json:"id"`
	Name                    string  `json:"name"`
	Implementation          string  `json:"implementation"`
	Protocol                string  `json:"protocol"`
	EnableRss               bool    `json:"enableRss"`
	EnableAutomaticSearch   bool    `json:"enableAutomaticSearch"`
	EnableInteractiveSearch bool    `json:"enableInteractiveSearch"`
	Priority                int     `json:"priority"`
	Tags                    []int64 `json:"tags"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the indexer and keeps a copy of the raw document.
func (i *Indexer) UnmarshalJSON(data []byte) error {
	type plain Indexer
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = Indexer(p)
	i.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// IndexerSettings is the /config/indexer document.
type IndexerSettings struct {
	ID                 int64 `json:"id"`
	MinimumAge         int   `json:"minimumAge"`
	Retention          int   `json:"retention"`
	MaximumSize        int   `json:"maximumSize"`
	RssSyncInterval    int   `json:"rssSyncInterval"`
	AvailabilityDelay  int   `json:"availabilityDelay,omitempty"`
	PreferIndexerFlags bool  `json:"preferIndexerFlags,omitempty"`
	AllowHardcodedSubs bool  `json:"allowHardcodedSubs,omitempty"`
}

// IndexerTestResult is returned by /indexer/test and /indexer/testall.
type IndexerTestResult struct {
	ID                 int64               `json:"id"`
	IsValid            bool                `json:"isValid"`
	ValidationFailures []ValidationFailure `json:"validationFailures"`
}

// ValidationFailure explains why an indexer test failed.
type ValidationFailure struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
	Severity     string `json:"severity"`
}

// Task is a scheduled job from /system/task.
type Task struct {
	Name          string    `json:"name"`
	TaskName      string    `json:"taskName"`
	Interval      int64     `json:"interval"`
	LastExecution time.Time `json:"lastExecution"`
	NextExecution time.Time `json:"nextExecution"`
	LastDuration  string    `json:"lastDuration"`
}

// QueueEvent is a command from /command: something the server has
// queued, is running or has recently finished.
type QueueEvent struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	CommandName string     `json:"commandName"`
	Status      string     `json:"status"`
	Trigger     string     `json:"trigger"`
	Queued      time.Time  `json:"queued"`
	Started     *time.Time `json:"started,omitempty"`
	Ended       *time.Time `json:"ended,omitempty"`
	Duration    string     `json:"duration,omitempty"`
}

// LogRecord is an entry of /log.
type LogRecord struct {
	Time      time.Time `json:"time"`
	Level     string    `json:"level"`
	Logger    string    `json:"logger"`
	Message   string    `json:"message"`
	Exception string    `json:"exception,omitempty"`
}

// Update is an entry of /update.
type Update struct {
	Version     string    `json:"version"`
	ReleaseDate time.Time `json:"releaseDate"`
	FileName    string    `json:"fileName"`
	Installed   bool      `json:"installed"`
	Installable bool      `json:"installable"`
	Latest      bool      `json:"latest"`
	Changes     struct {
		New   []string `json:"new"`
		Fixed []string `json:"fixed"`
	} `json:"changes"`
}

// Release is a candidate download returned by /release.
type Release struct {
	GUID       string   `json:"guid"`
	Title      string   `json:"title"`
	Protocol   string   `json:"protocol"`
	Age        int      `json:"age"`
	Size       int64    `json:"size"`
	IndexerID  int64    `json:"indexerId"`
	Indexer    string   `json:"indexer"`
	Rejected   bool     `json:"rejected"`
	Rejections []string `json:"rejections,omitempty"`
	Seeders    *int     `json:"seeders,omitempty"`
	Leechers   *int     `json:"leechers,omitempty"`
	Quality    Quality  `json:"quality"`
}

// ReleaseDownloadBody asks the server to grab a release.
type ReleaseDownloadBody struct {
	GUID      string `json:"guid"`
	IndexerID int64  `json:"indexerId"`
	MovieID   int64  `json:"movieId,omitempty"`
	SeriesID  int64  `json:"seriesId,omitempty"`
	EpisodeID int64  `json:"episodeId,omitempty"`
}

// CommandBody is posted to /command. Only the fields relevant to the
// named command are set.
type CommandBody struct {
	Name     string  `json:"name"`
	MovieIDs []int64 `json:"movieIds,omitempty"`
	SeriesID int64   `json:"seriesId,omitempty"`
	ArtistID int64   `json:"artistId,omitempty"`
}

// BulkDeleteBody deletes several items at once (e.g. /blocklist/bulk).
type BulkDeleteBody struct {
	IDs []int64 `json:"ids"`
}

// AddOptions are the flags sent when adding a new library item.
type AddOptions struct {
	Monitor                  string `json:"monitor,omitempty"`
	SearchForMovie           bool   `json:"searchForMovie,omitempty"`
	SearchForMissingEpisodes bool   `json:"searchForMissingEpisodes,omitempty"`
	SearchForMissingAlbums   bool   `json:"searchForMissingAlbums,omitempty"`
}
