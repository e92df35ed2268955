package arr

// QualityProfile is a configured quality profile in Radarr or Sonarr.
type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RootFolder is a configured import root in Radarr or Sonarr.
type RootFolder struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
}

// Movie is a Radarr movie entry.
type Movie struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	TMDBID    int64  `json:"tmdbId"`
	HasFile   bool   `json:"hasFile"`
	Monitored bool   `json:"monitored"`
}

// Series is a Sonarr series entry. Statistics are only populated on the
// detail endpoint, not on lookup results.
type Series struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	Year       int              `json:"year"`
	TVDBID     int64            `json:"tvdbId"`
	Seasons    []Season         `json:"seasons"`
	Statistics SeriesStatistics `json:"statistics"`
}

// Season is one season of a series.
type Season struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

// SeriesStatistics aggregates episode availability for a series.
type SeriesStatistics struct {
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Episode is a Sonarr episode entry.
type Episode struct {
	ID            int64  `json:"id"`
	SeriesID      int64  `json:"seriesId"`
	SeasonNumber  int    `json:"seasonNumber"`
	EpisodeNumber int    `json:"episodeNumber"`
	Title         string `json:"title"`
	HasFile       bool   `json:"hasFile"`
	Monitored     bool   `json:"monitored"`
}
