package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/helparr/helparr/internal/history"
	"github.com/helparr/helparr/internal/resolver"
	"github.com/helparr/helparr/internal/session"
)

// PlayRequest is the body of a play request. GET requests carry the same
// fields as query parameters.
type PlayRequest struct {
	TMDBID  int64  `json:"tmdb_id"`
	Type    string `json:"type"`
	Season  *int   `json:"season,omitempty"`
	Episode *int   `json:"episode,omitempty"`
}

// PlayResponse reports the resolution outcome and whether a placeholder
// stream was started.
type PlayResponse struct {
	Status    resolver.Status `json:"status"`
	Message   string          `json:"message"`
	Available bool            `json:"available"`
	Title     string          `json:"title,omitempty"`
	Played    bool            `json:"played"`
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	req, err := parsePlayRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.TMDBID == 0 {
		s.notify(r.Context(), "Missing TMDB ID", 5000)
		writeError(w, http.StatusBadRequest, "tmdb_id is required")
		return
	}
	if req.Type == "" {
		req.Type = "movie"
	}

	ctx := r.Context()
	s.notify(ctx, "Checking...", 2000)

	var outcome resolver.Outcome
	kind := session.KindMovie
	switch req.Type {
	case "tv", "episode":
		kind = session.Kind(req.Type)
		var sel *resolver.EpisodeSelector
		if req.Season != nil && req.Episode != nil {
			sel = &resolver.EpisodeSelector{Season: *req.Season, Episode: *req.Episode}
		}
		outcome = s.resolver.ResolveSeries(ctx, req.TMDBID, sel)
	default:
		outcome = s.resolver.ResolveMovie(ctx, req.TMDBID)
	}

	s.recordRequest(req, outcome)

	resp := PlayResponse{
		Status:    outcome.Status,
		Message:   outcome.Message,
		Available: outcome.Available,
		Title:     outcome.Title(),
	}

	switch outcome.Status {
	case resolver.StatusAvailable:
		// The helper plays available items through its normal path; the
		// placeholder is only for pending ones.
		s.notifyTitled(ctx, resp.Title, "Already Available", 5000)
		writeJSON(w, http.StatusOK, resp)

	case resolver.StatusRequested, resolver.StatusMonitored:
		s.notifyTitled(ctx, resp.Title, "Downloading", 5000)
		if err := s.startPlaceholder(ctx, req, kind); err != nil {
			s.logger.Error("starting placeholder failed", "tmdb_id", req.TMDBID, "error", err)
			s.notify(ctx, "Error: "+err.Error(), 5000)
			resp.Message = err.Error()
			writeJSON(w, http.StatusInternalServerError, resp)
			return
		}
		resp.Played = true
		writeJSON(w, http.StatusOK, resp)

	default:
		s.logger.Error("play request failed", "tmdb_id", req.TMDBID, "message", outcome.Message)
		s.notify(ctx, "Error: "+outcome.Message, 5000)
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) handleTestPlay(w http.ResponseWriter, r *http.Request) {
	clip, err := s.picker.Pick()
	if err != nil {
		s.notify(r.Context(), "No downloading video found!", 5000)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.player.Open(r.Context(), clip); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"played": true, "file": clip})
}

// startPlaceholder activates the session slot and starts the stand-in clip.
// The slot is set before playback begins so the watcher cannot observe a
// playing placeholder without a session; it is rolled back when the host
// refuses to play.
func (s *Server) startPlaceholder(ctx context.Context, req PlayRequest, kind session.Kind) error {
	clip, err := s.picker.Pick()
	if err != nil {
		return err
	}

	s.state.Set(session.Session{
		TMDBID:  req.TMDBID,
		Kind:    kind,
		Season:  req.Season,
		Episode: req.Episode,
	})

	if err := s.player.Open(ctx, clip); err != nil {
		s.state.Clear()
		return err
	}

	s.logger.Info("placeholder playback started",
		"tmdb_id", req.TMDBID,
		"kind", kind,
		"file", clip,
	)
	return nil
}

func parsePlayRequest(r *http.Request) (PlayRequest, error) {
	var req PlayRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}

	id, _, err := queryInt64(r, "tmdb_id")
	if err != nil {
		return req, err
	}
	req.TMDBID = id
	req.Type = r.URL.Query().Get("type")
	if req.Season, err = queryIntPtr(r, "season"); err != nil {
		return req, err
	}
	if req.Episode, err = queryIntPtr(r, "episode"); err != nil {
		return req, err
	}
	return req, nil
}

func (s *Server) recordRequest(req PlayRequest, outcome resolver.Outcome) {
	if s.history == nil {
		return
	}
	rec := &history.RequestRecord{
		TMDBID:    req.TMDBID,
		MediaType: req.Type,
		Season:    req.Season,
		Episode:   req.Episode,
		Status:    string(outcome.Status),
		Message:   outcome.Message,
	}
	if err := s.history.AddRequest(rec); err != nil {
		s.logger.Error("recording request failed", "tmdb_id", req.TMDBID, "error", err)
	}
}

// notify shows a toast on the host; failures are logged only.
func (s *Server) notify(ctx context.Context, message string, displayMs int) {
	s.notifyTitled(ctx, notifyHeader, message, displayMs)
}

func (s *Server) notifyTitled(ctx context.Context, title, message string, displayMs int) {
	if title == "" {
		title = notifyHeader
	}
	if err := s.player.Notify(ctx, title, message, displayMs); err != nil {
		s.logger.Warn("notification failed", "error", err)
	}
}
