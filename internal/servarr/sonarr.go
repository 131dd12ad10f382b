package servarr

import "time"

// Series is an entry of Sonarr's /series and /series/lookup.
type Series struct {
	ID                int64             `json:"id,omitempty"`
	Title             string            `json:"title"`
	Year              int               `json:"year"`
	TvdbID            int64             `json:"tvdbId"`
	Monitored         bool              `json:"monitored"`
	Status            string            `json:"status"`
	Network           string            `json:"network,omitempty"`
	Path              string            `json:"path,omitempty"`
	Overview          string            `json:"overview,omitempty"`
	Genres            []string          `json:"genres,omitempty"`
	QualityProfileID  int64             `json:"qualityProfileId"`
	LanguageProfileID int64             `json:"languageProfileId,omitempty"`
	SeriesType        string            `json:"seriesType"`
	SeasonFolder      bool              `json:"seasonFolder"`
	Seasons           []Season          `json:"seasons,omitempty"`
	Statistics        *SeriesStatistics `json:"statistics,omitempty"`
	Tags              []int64           `json:"tags"`
}

// SeriesStatistics summarizes a series' files.
type SeriesStatistics struct {
	SeasonCount      int   `json:"seasonCount"`
	EpisodeFileCount int   `json:"episodeFileCount"`
	EpisodeCount     int   `json:"episodeCount"`
	SizeOnDisk       int64 `json:"sizeOnDisk"`
}

// Season is one season of a series.
type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeriesStatistics `json:"statistics,omitempty"`
}

// Episode is an entry of /episode.
type Episode struct {
	ID            int64      `json:"id"`
	SeriesID      int64      `json:"seriesId"`
	EpisodeFileID int64      `json:"episodeFileId"`
	SeasonNumber  int        `json:"seasonNumber"`
	EpisodeNumber int        `json:"episodeNumber"`
	Title         string     `json:"title"`
	AirDateUtc    *time.Time `json:"airDateUtc,omitempty"`
	Monitored     bool       `json:"monitored"`
	HasFile       bool       `json:"hasFile"`
	Overview      string     `json:"overview,omitempty"`
}

// EpisodeFile is an entry of /episodefile.
type EpisodeFile struct {
	ID           int64     `json:"id"`
	SeasonNumber int       `json:"seasonNumber"`
	RelativePath string    `json:"relativePath"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	DateAdded    time.Time `json:"dateAdded"`
	Quality      Quality   `json:"quality"`
}

// LanguageProfile is an entry of /language.
type LanguageProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AddSeriesBody is posted to /series.
type AddSeriesBody struct {
	TvdbID           int64      `json:"tvdbId"`
	Title            string     `json:"title"`
	RootFolderPath   string     `json:"rootFolderPath"`
	QualityProfileID int64      `json:"qualityProfileId"`
	SeriesType       string     `json:"seriesType"`
	SeasonFolder     bool       `json:"seasonFolder"`
	Monitored        bool       `json:"monitored"`
	Tags             []int64    `json:"tags"`
	AddOptions       AddOptions `json:"addOptions"`
}

// SeriesMonitorOptions are the values Sonarr accepts for addOptions.monitor.
var SeriesMonitorOptions = []string{"all", "future", "missing", "existing", "firstSeason", "latestSeason", "none"}
