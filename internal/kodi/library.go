package kodi

import "context"

// MovieEntry is a movie in Kodi's video library.
type MovieEntry struct {
	MovieID   int64             `json:"movieid"`
	Label     string            `json:"label"`
	PlayCount int               `json:"playcount"`
	UniqueID  map[string]string `json:"uniqueid"`
}

// TVShowEntry is a TV show in Kodi's video library.
type TVShowEntry struct {
	TVShowID int64             `json:"tvshowid"`
	Label    string            `json:"label"`
	UniqueID map[string]string `json:"uniqueid"`
}

// EpisodeEntry is an episode in Kodi's video library.
type EpisodeEntry struct {
	EpisodeID int64  `json:"episodeid"`
	Label     string `json:"label"`
	Season    int    `json:"season"`
	Episode   int    `json:"episode"`
}

// watchedReset is the playcount/resume payload shared by all reset commands.
func watchedReset() map[string]any {
	return map[string]any{
		"playcount": 0,
		"resume":    map[string]any{"position": 0, "total": 0},
	}
}

// MoviesByUniqueID queries library movies whose unique id matches the given
// value.
func (c *Client) MoviesByUniqueID(ctx context.Context, id string) ([]MovieEntry, error) {
	params := map[string]any{
		"properties": []string{"playcount", "uniqueid"},
		"filter": map[string]any{
			"field":    "uniqueid",
			"operator": "is",
			"value":    id,
		},
	}
	var result struct {
		Movies []MovieEntry `json:"movies"`
	}
	if err := c.call(ctx, "VideoLibrary.GetMovies", params, &result); err != nil {
		return nil, err
	}
	return result.Movies, nil
}

// TVShows returns all library shows with their unique id sets. Kodi's
// JSON-RPC filter is unreliable for uniqueid on shows, so matching happens
// caller-side.
func (c *Client) TVShows(ctx context.Context) ([]TVShowEntry, error) {
	params := map[string]any{
		"properties": []string{"uniqueid"},
	}
	var result struct {
		TVShows []TVShowEntry `json:"tvshows"`
	}
	if err := c.call(ctx, "VideoLibrary.GetTVShows", params, &result); err != nil {
		return nil, err
	}
	return result.TVShows, nil
}

// Episodes returns the episodes of one season of a show.
func (c *Client) Episodes(ctx context.Context, tvshowID int64, season int) ([]EpisodeEntry, error) {
	params := map[string]any{
		"tvshowid":   tvshowID,
		"season":     season,
		"properties": []string{"episode", "season"},
	}
	var result struct {
		Episodes []EpisodeEntry `json:"episodes"`
	}
	if err := c.call(ctx, "VideoLibrary.GetEpisodes", params, &result); err != nil {
		return nil, err
	}
	return result.Episodes, nil
}

// ResetMovieWatched clears the watch count and resume point of a movie.
func (c *Client) ResetMovieWatched(ctx context.Context, movieID int64) error {
	params := watchedReset()
	params["movieid"] = movieID
	return c.call(ctx, "VideoLibrary.SetMovieDetails", params, nil)
}

// ResetEpisodeWatched clears the watch count and resume point of an episode.
func (c *Client) ResetEpisodeWatched(ctx context.Context, episodeID int64) error {
	params := watchedReset()
	params["episodeid"] = episodeID
	return c.call(ctx, "VideoLibrary.SetEpisodeDetails", params, nil)
}

// ResetFileWatched clears the watch state recorded for a file or plugin
// locator that has no structured library entry.
func (c *Client) ResetFileWatched(ctx context.Context, file string) error {
	params := watchedReset()
	params["file"] = file
	params["media"] = "video"
	return c.call(ctx, "Files.SetFileDetails", params, nil)
}
