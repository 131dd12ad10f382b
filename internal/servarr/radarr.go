package servarr

import "time"

// Movie is an entry of Radarr's /movie and /movie/lookup.
type Movie struct {
	ID                  int64      `json:"id,omitempty"`
	Title               string     `json:"title"`
	OriginalLanguage    *Language  `json:"originalLanguage,omitempty"`
	Year                int        `json:"year"`
	TmdbID              int64      `json:"tmdbId"`
	Monitored           bool       `json:"monitored"`
	HasFile             bool       `json:"hasFile"`
	Path                string     `json:"path,omitempty"`
	Studio              string     `json:"studio,omitempty"`
	Genres              []string   `json:"genres,omitempty"`
	Runtime             int        `json:"runtime"`
	Certification       string     `json:"certification,omitempty"`
	SizeOnDisk          int64      `json:"sizeOnDisk"`
	Status              string     `json:"status"`
	Overview            string     `json:"overview,omitempty"`
	QualityProfileID    int64      `json:"qualityProfileId"`
	MinimumAvailability string     `json:"minimumAvailability,omitempty"`
	Tags                []int64    `json:"tags"`
	Added               *time.Time `json:"added,omitempty"`
	MovieFile           *MovieFile `json:"movieFile,omitempty"`
}

// Language is a language descriptor.
type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieFile describes the file backing a movie.
type MovieFile struct {
	ID           int64     `json:"id"`
	RelativePath string    `json:"relativePath"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	DateAdded    time.Time `json:"dateAdded"`
	Quality      Quality   `json:"quality"`
}

// Credit is an entry of /credit.
type Credit struct {
	PersonName string `json:"personName"`
	Character  string `json:"character,omitempty"`
	Department string `json:"department,omitempty"`
	Job        string `json:"job,omitempty"`
	Type       string `json:"type"` // "cast" or "crew"
}

// Collection is an entry of /collection.
type Collection struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	Monitored        bool              `json:"monitored"`
	QualityProfileID int64             `json:"qualityProfileId"`
	RootFolderPath   string            `json:"rootFolderPath"`
	SearchOnAdd      bool              `json:"searchOnAdd"`
	Overview         string            `json:"overview,omitempty"`
	Movies           []CollectionMovie `json:"movies"`
}

// CollectionMovie is a member of a collection.
type CollectionMovie struct {
	Title  string `json:"title"`
	Year   int    `json:"year"`
	TmdbID int64  `json:"tmdbId"`
}

// AddMovieBody is posted to /movie.
type AddMovieBody struct {
	TmdbID              int64      `json:"tmdbId"`
	Title               string     `json:"title"`
	RootFolderPath      string     `json:"rootFolderPath"`
	QualityProfileID    int64      `json:"qualityProfileId"`
	MinimumAvailability string     `json:"minimumAvailability"`
	Monitored           bool       `json:"monitored"`
	Tags                []int64    `json:"tags"`
	AddOptions          AddOptions `json:"addOptions"`
}

// MovieMonitorOptions are the values Radarr accepts for addOptions.monitor.
var MovieMonitorOptions = []string{"movieOnly", "movieAndCollection", "none"}
