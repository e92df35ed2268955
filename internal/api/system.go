package api

import (
	"net/http"

	"github.com/helparr/helparr/internal/history"
)

// StatusResponse reports daemon health.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// SessionResponse is a snapshot of the session slot.
type SessionResponse struct {
	Active  bool   `json:"active"`
	TMDBID  int64  `json:"tmdb_id,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Season  *int   `json:"season,omitempty"`
	Episode *int   `json:"episode,omitempty"`
}

// RequestHistoryItem is one request record on the wire.
type RequestHistoryItem struct {
	ID        int64  `json:"id"`
	TMDBID    int64  `json:"tmdb_id"`
	MediaType string `json:"media_type"`
	Season    *int   `json:"season,omitempty"`
	Episode   *int   `json:"episode,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ReconciliationHistoryItem is one reconciliation record on the wire.
type ReconciliationHistoryItem struct {
	ID             int64  `json:"id"`
	TMDBID         int64  `json:"tmdb_id"`
	MediaType      string `json:"media_type"`
	Season         *int   `json:"season,omitempty"`
	Episode        *int   `json:"episode,omitempty"`
	CapturedFile   string `json:"captured_file,omitempty"`
	MatchedLibrary bool   `json:"matched_library"`
	CreatedAt      string `json:"created_at"`
}

// HistoryResponse carries both history streams.
type HistoryResponse struct {
	Requests        []RequestHistoryItem        `json:"requests"`
	Reconciliations []ReconciliationHistoryItem `json:"reconciliations"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok", Version: s.version})
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	sess, active := s.state.Snapshot()
	resp := SessionResponse{Active: active}
	if active {
		resp.TMDBID = sess.TMDBID
		resp.Kind = string(sess.Kind)
		resp.Season = sess.Season
		resp.Episode = sess.Episode
	}
	writeJSON(w, http.StatusOK, resp)
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	limit := 50
	if parsed, ok, err := queryInt64(r, "limit"); err == nil && ok && parsed > 0 {
		limit = int(parsed)
	}

	filter := history.RequestFilter{Limit: limit}
	if id, ok, err := queryInt64(r, "tmdb_id"); err == nil && ok {
		filter.TMDBID = &id
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	requests, err := s.history.ListRequests(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	reconciliations, err := s.history.ListReconciliations(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := HistoryResponse{
		Requests:        make([]RequestHistoryItem, 0, len(requests)),
		Reconciliations: make([]ReconciliationHistoryItem, 0, len(reconciliations)),
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, RequestHistoryItem{
			ID:        r.ID,
			TMDBID:    r.TMDBID,
			MediaType: r.MediaType,
			Season:    r.Season,
			Episode:   r.Episode,
			Status:    r.Status,
			Message:   r.Message,
			CreatedAt: r.CreatedAt.Format(timeFormat),
		})
	}
	for _, r := range reconciliations {
		resp.Reconciliations = append(resp.Reconciliations, ReconciliationHistoryItem{
			ID:             r.ID,
			TMDBID:         r.TMDBID,
			MediaType:      r.MediaType,
			Season:         r.Season,
			Episode:        r.Episode,
			CapturedFile:   r.CapturedFile,
			MatchedLibrary: r.MatchedLibrary,
			CreatedAt:      r.CreatedAt.Format(timeFormat),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
