package servarr

import "time"

// Artist is an entry of Lidarr's /artist and /artist/lookup.
type Artist struct {
	ID                int64             `json:"id,omitempty"`
	ArtistName        string            `json:"artistName"`
	ForeignArtistID   string            `json:"foreignArtistId"`
	Monitored         bool              `json:"monitored"`
	Status            string            `json:"status"`
	Path              string            `json:"path,omitempty"`
	Overview          string            `json:"overview,omitempty"`
	Genres            []string          `json:"genres,omitempty"`
	QualityProfileID  int64             `json:"qualityProfileId"`
	MetadataProfileID int64             `json:"metadataProfileId"`
	Statistics        *ArtistStatistics `json:"statistics,omitempty"`
	Tags              []int64           `json:"tags"`
}

// ArtistStatistics summarizes an artist's or album's files.
type ArtistStatistics struct {
	AlbumCount     int   `json:"albumCount,omitempty"`
	TrackFileCount int   `json:"trackFileCount"`
	TrackCount     int   `json:"trackCount"`
	SizeOnDisk     int64 `json:"sizeOnDisk"`
}

// Album is an entry of /album.
type Album struct {
	ID             int64             `json:"id"`
	ArtistID       int64             `json:"artistId"`
	Title          string            `json:"title"`
	ForeignAlbumID string            `json:"foreignAlbumId"`
	AlbumType      string            `json:"albumType"`
	ReleaseDate    *time.Time        `json:"releaseDate,omitempty"`
	Monitored      bool              `json:"monitored"`
	Statistics     *ArtistStatistics `json:"statistics,omitempty"`
}

// Track is an entry of /track.
type Track struct {
	ID          int64  `json:"id"`
	ArtistID    int64  `json:"artistId"`
	AlbumID     int64  `json:"albumId"`
	TrackFileID int64  `json:"trackFileId"`
	TrackNumber string `json:"trackNumber"`
	Title       string `json:"title"`
	Duration    int64  `json:"duration"` // milliseconds
	HasFile     bool   `json:"hasFile"`
}

// TrackFile is an entry of /trackfile.
type TrackFile struct {
	ID        int64     `json:"id"`
	AlbumID   int64     `json:"albumId"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	DateAdded time.Time `json:"dateAdded"`
	Quality   Quality   `json:"quality"`
}

// MetadataProfile is an entry of /metadataprofile.
type MetadataProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AddArtistBody is posted to /artist.
type AddArtistBody struct {
	ForeignArtistID   string     `json:"foreignArtistId"`
	ArtistName        string     `json:"artistName"`
	RootFolderPath    string     `json:"rootFolderPath"`
	QualityProfileID  int64      `json:"qualityProfileId"`
	MetadataProfileID int64      `json:"metadataProfileId"`
	Monitored         bool       `json:"monitored"`
	Tags              []int64    `json:"tags"`
	AddOptions        AddOptions `json:"addOptions"`
}

// ArtistMonitorOptions are the values Lidarr accepts for addOptions.monitor.
var ArtistMonitorOptions = []string{"all", "future", "missing", "existing", "first", "latest", "none"}
