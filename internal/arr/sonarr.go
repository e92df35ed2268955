package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Sonarr is a client for the Sonarr series manager.
type Sonarr struct {
	client
}

// NewSonarr creates a Sonarr client.
func NewSonarr(baseURL, apiKey string, opts ...Option) *Sonarr {
	return &Sonarr{client: newClient(baseURL, apiKey, "sonarr", opts...)}
}

// QualityProfileID resolves the quality profile for new series.
func (s *Sonarr) QualityProfileID(ctx context.Context) int64 {
	return s.qualityProfileID(ctx)
}

// RootFolderPath returns the first configured root folder, or "".
func (s *Sonarr) RootFolderPath(ctx context.Context) string {
	return s.rootFolderPath(ctx)
}

func tmdbTerm(tmdbID int64) url.Values {
	query := url.Values{}
	query.Set("term", "tmdb:"+strconv.FormatInt(tmdbID, 10))
	return query
}

// GetSeries checks whether a series exists in Sonarr. The lookup result
// lacks statistics and season state, so a second detail fetch runs when the
// candidate carries a positive internal id. Returns nil when the series is
// absent or either call fails; failures are logged, not returned.
func (s *Sonarr) GetSeries(ctx context.Context, tmdbID int64) *Series {
	var candidates []Series
	if err := s.get(ctx, "/series/lookup", tmdbTerm(tmdbID), &candidates); err != nil {
		s.logger.Error("series lookup failed", "tmdb_id", tmdbID, "error", err)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	candidate := candidates[0]
	if candidate.ID <= 0 {
		// Known to Sonarr's metadata but not added to the library.
		return nil
	}

	var detail Series
	if err := s.get(ctx, "/series/"+strconv.FormatInt(candidate.ID, 10), nil, &detail); err != nil {
		s.logger.Error("series detail fetch failed", "series_id", candidate.ID, "error", err)
		return nil
	}
	return &detail
}

// GetEpisode fetches a specific episode of a season. Returns nil when the
// episode is absent or the query fails.
func (s *Sonarr) GetEpisode(ctx context.Context, seriesID int64, season, episode int) *Episode {
	query := url.Values{}
	query.Set("seriesId", strconv.FormatInt(seriesID, 10))
	query.Set("seasonNumber", strconv.Itoa(season))

	var episodes []Episode
	if err := s.get(ctx, "/episode", query, &episodes); err != nil {
		s.logger.Error("fetching episodes failed", "series_id", seriesID, "season", season, "error", err)
		return nil
	}
	for i := range episodes {
		if episodes[i].EpisodeNumber == episode {
			return &episodes[i]
		}
	}
	return nil
}

// AddSeries adds a series to Sonarr with every season monitored and a search
// for missing episodes queued. It fails when the series is already added,
// when the lookup returns nothing, or when no root folder is configured.
func (s *Sonarr) AddSeries(ctx context.Context, tmdbID int64) (*Series, error) {
	var candidates []map[string]any
	if err := s.get(ctx, "/series/lookup", tmdbTerm(tmdbID), &candidates); err != nil {
		return nil, fmt.Errorf("series lookup: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no series found for TMDB ID %d", tmdbID)
	}

	payload := candidates[0]
	if id, ok := payload["id"].(float64); ok && id > 0 {
		title, _ := payload["title"].(string)
		return nil, fmt.Errorf("series %q: %w", title, ErrAlreadyAdded)
	}

	rootFolder := s.rootFolderPath(ctx)
	if rootFolder == "" {
		return nil, fmt.Errorf("sonarr: %w", ErrNoRootFolder)
	}

	payload["qualityProfileId"] = s.qualityProfileID(ctx)
	payload["rootFolderPath"] = rootFolder
	payload["monitored"] = true

	addOptions, _ := payload["addOptions"].(map[string]any)
	if addOptions == nil {
		addOptions = map[string]any{}
	}
	addOptions["searchForMissingEpisodes"] = true
	payload["addOptions"] = addOptions

	if seasons, ok := payload["seasons"].([]any); ok {
		for _, raw := range seasons {
			if season, ok := raw.(map[string]any); ok {
				season["monitored"] = true
			}
		}
	}

	var added Series
	if err := s.post(ctx, "/series", payload, &added); err != nil {
		return nil, fmt.Errorf("add series: %w", err)
	}
	return &added, nil
}
