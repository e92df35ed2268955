package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Radarr is a client for the Radarr movie manager.
type Radarr struct {
	client
}

// NewRadarr creates a Radarr client.
func NewRadarr(baseURL, apiKey string, opts ...Option) *Radarr {
	return &Radarr{client: newClient(baseURL, apiKey, "radarr", opts...)}
}

// QualityProfileID resolves the quality profile for new movies.
func (r *Radarr) QualityProfileID(ctx context.Context) int64 {
	return r.qualityProfileID(ctx)
}

// RootFolderPath returns the first configured root folder, or "".
func (r *Radarr) RootFolderPath(ctx context.Context) string {
	return r.rootFolderPath(ctx)
}

// GetMovie checks whether a movie exists in Radarr. It returns nil when the
// movie is absent or the query fails; failures are logged, not returned.
func (r *Radarr) GetMovie(ctx context.Context, tmdbID int64) *Movie {
	query := url.Values{}
	query.Set("tmdbId", strconv.FormatInt(tmdbID, 10))

	var movies []Movie
	if err := r.get(ctx, "/movie", query, &movies); err != nil {
		r.logger.Error("checking for movie failed", "tmdb_id", tmdbID, "error", err)
		return nil
	}
	if len(movies) == 0 {
		return nil
	}
	return &movies[0]
}

// AddMovie adds a movie to Radarr, monitored and with an immediate search.
// The lookup response is carried through as-is so fields this client does
// not model survive the round trip.
func (r *Radarr) AddMovie(ctx context.Context, tmdbID int64) (*Movie, error) {
	query := url.Values{}
	query.Set("tmdbId", strconv.FormatInt(tmdbID, 10))

	var payload map[string]any
	if err := r.get(ctx, "/movie/lookup/tmdb", query, &payload); err != nil {
		return nil, fmt.Errorf("movie lookup: %w", err)
	}

	rootFolder := r.rootFolderPath(ctx)
	if rootFolder == "" {
		return nil, fmt.Errorf("radarr: %w", ErrNoRootFolder)
	}

	payload["qualityProfileId"] = r.qualityProfileID(ctx)
	payload["rootFolderPath"] = rootFolder
	payload["monitored"] = true
	payload["addOptions"] = map[string]any{"searchForMovie": true}

	var added Movie
	if err := r.post(ctx, "/movie", payload, &added); err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}
	return &added, nil
}
