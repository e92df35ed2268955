package arr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSonarr_GetSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/series/lookup":
			assert.Equal(t, "tmdb:1396", r.URL.Query().Get("term"))
			_ = json.NewEncoder(w).Encode([]Series{{ID: 42, Title: "Breaking Bad"}})
		case "/api/v3/series/42":
			_ = json.NewEncoder(w).Encode(Series{
				ID:    42,
				Title: "Breaking Bad",
				Statistics: SeriesStatistics{
					EpisodeFileCount:  62,
					EpisodeCount:      62,
					PercentOfEpisodes: 100,
				},
			})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	sonarr := NewSonarr(server.URL, "test-key")

	series := sonarr.GetSeries(context.Background(), 1396)
	require.NotNil(t, series)
	assert.Equal(t, "Breaking Bad", series.Title)
	assert.Equal(t, 62, series.Statistics.EpisodeFileCount)
}

func TestSonarr_GetSeries_NotAdded(t *testing.T) {
	// Lookup knows the series but it carries no internal id.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/series/lookup", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Series{{ID: 0, Title: "Breaking Bad"}})
	}))
	defer server.Close()

	sonarr := NewSonarr(server.URL, "test-key")
	assert.Nil(t, sonarr.GetSeries(context.Background(), 1396))
}

func TestSonarr_GetSeries_NilOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sonarr := NewSonarr(server.URL, "test-key")
	assert.Nil(t, sonarr.GetSeries(context.Background(), 1396))
}

func TestSonarr_GetEpisode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/episode", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("seriesId"))
		assert.Equal(t, "2", r.URL.Query().Get("seasonNumber"))

		episodes := []Episode{
			{ID: 100, SeriesID: 42, SeasonNumber: 2, EpisodeNumber: 1, Title: "Seven Thirty-Seven"},
			{ID: 101, SeriesID: 42, SeasonNumber: 2, EpisodeNumber: 2, Title: "Grilled", HasFile: true},
		}
		_ = json.NewEncoder(w).Encode(episodes)
	}))
	defer server.Close()

	sonarr := NewSonarr(server.URL, "test-key")

	episode := sonarr.GetEpisode(context.Background(), 42, 2, 2)
	require.NotNil(t, episode)
	assert.Equal(t, "Grilled", episode.Title)
	assert.True(t, episode.HasFile)

	assert.Nil(t, sonarr.GetEpisode(context.Background(), 42, 2, 9))
}

func TestSonarr_AddSeries(t *testing.T) {
	var addPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/series/lookup":
			_ = json.NewEncoder(w).Encode([]map[string]any{{
				"title":  "Breaking Bad",
				"tvdbId": 81189,
				"seasons": []map[string]any{
					{"seasonNumber": 0, "monitored": false},
					{"seasonNumber": 1, "monitored": false},
				},
			}})
		case "/api/v3/qualityprofile":
			_ = json.NewEncoder(w).Encode([]QualityProfile{{ID: 3, Name: "HD-1080p"}})
		case "/api/v3/rootfolder":
			_ = json.NewEncoder(w).Encode([]RootFolder{{ID: 1, Path: "/tv"}})
		case "/api/v3/series":
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&addPayload))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Series{ID: 42, Title: "Breaking Bad"})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	sonarr := NewSonarr(server.URL, "test-key")

	added, err := sonarr.AddSeries(context.Background(), 1396)
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", added.Title)

	assert.Equal(t, float64(3), addPayload["qualityProfileId"])
	assert.Equal(t, "/tv", addPayload["rootFolderPath"])
	assert.Equal(t, true, addPayload["monitored"])
	addOptions, ok := addPayload["addOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, addOptions["searchForMissingEpisodes"])

	seasons, ok := addPayload["seasons"].([]any)
	require.True(t, ok)
	for _, raw := range seasons {
		season := raw.(map[string]any)
		assert.Equal(t, true, season["monitored"])
	}
}

func TestSonarr_AddSeries_AlreadyAdded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/series/lookup", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"id":    42,
			"title": "Breaking Bad",
		}})
	}))
	defer server.Close()

	sonarr := NewSonarr(server.URL, "test-key")

	added, err := sonarr.AddSeries(context.Background(), 1396)
	assert.Nil(t, added)
	assert.ErrorIs(t, err, ErrAlreadyAdded)
	assert.Contains(t, err.Error(), "Breaking Bad")
}

func TestSonarr_AddSeries_LookupEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	sonarr := NewSonarr(server.URL, "test-key")

	added, err := sonarr.AddSeries(context.Background(), 1396)
	assert.Nil(t, added)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no series found")
}

func TestSonarr_AddSeries_NoRootFolder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/series/lookup":
			_ = json.NewEncoder(w).Encode([]map[string]any{{"title": "Breaking Bad"}})
		case "/api/v3/rootfolder":
			_ = json.NewEncoder(w).Encode([]RootFolder{})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	sonarr := NewSonarr(server.URL, "test-key")

	added, err := sonarr.AddSeries(context.Background(), 1396)
	assert.Nil(t, added)
	assert.ErrorIs(t, err, ErrNoRootFolder)
}
