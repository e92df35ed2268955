package arr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityProfileID_PrefersAny(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/qualityprofile", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		profiles := []QualityProfile{
			{ID: 4, Name: "HD-1080p"},
			{ID: 7, Name: "Any"},
		}
		_ = json.NewEncoder(w).Encode(profiles)
	}))
	defer server.Close()

	radarr := NewRadarr(server.URL, "test-key")
	assert.Equal(t, int64(7), radarr.QualityProfileID(context.Background()))
}

func TestQualityProfileID_FirstWhenNoAny(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profiles := []QualityProfile{
			{ID: 4, Name: "HD-1080p"},
			{ID: 5, Name: "Ultra-HD"},
		}
		_ = json.NewEncoder(w).Encode(profiles)
	}))
	defer server.Close()

	radarr := NewRadarr(server.URL, "test-key")
	assert.Equal(t, int64(4), radarr.QualityProfileID(context.Background()))
}

func TestQualityProfileID_FallbackOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	radarr := NewRadarr(server.URL, "test-key")
	assert.Equal(t, fallbackProfileID, radarr.QualityProfileID(context.Background()))
}

func TestQualityProfileID_FallbackOnEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]QualityProfile{})
	}))
	defer server.Close()

	radarr := NewRadarr(server.URL, "test-key")
	assert.Equal(t, fallbackProfileID, radarr.QualityProfileID(context.Background()))
}

func TestRootFolderPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/rootfolder", r.URL.Path)
		folders := []RootFolder{
			{ID: 1, Path: "/movies"},
			{ID: 2, Path: "/movies-4k"},
		}
		_ = json.NewEncoder(w).Encode(folders)
	}))
	defer server.Close()

	radarr := NewRadarr(server.URL, "test-key")
	assert.Equal(t, "/movies", radarr.RootFolderPath(context.Background()))
}

func TestRootFolderPath_EmptyOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	radarr := NewRadarr(server.URL, "test-key")
	assert.Equal(t, "", radarr.RootFolderPath(context.Background()))
}
