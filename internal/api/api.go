// Package api implements the daemon's REST surface. The play endpoint is the
// request-handling path: it resolves the request against the management
// services and starts placeholder playback when the item is pending.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/helparr/helparr/internal/history"
	"github.com/helparr/helparr/internal/resolver"
	"github.com/helparr/helparr/internal/session"
)

// notifyHeader is the toast header used for all daemon notifications.
const notifyHeader = "Helparr"

// RequestResolver resolves play requests into terminal outcomes.
type RequestResolver interface {
	ResolveMovie(ctx context.Context, tmdbID int64) resolver.Outcome
	ResolveSeries(ctx context.Context, tmdbID int64, sel *resolver.EpisodeSelector) resolver.Outcome
}

// PlayerControl is the host player surface the play path needs.
type PlayerControl interface {
	Open(ctx context.Context, file string) error
	Notify(ctx context.Context, title, message string, displayMs int) error
}

// PlaceholderPicker selects the stand-in clip to play.
type PlaceholderPicker interface {
	Pick() (string, error)
}

// Server is the daemon API server.
type Server struct {
	resolver RequestResolver
	player   PlayerControl
	picker   PlaceholderPicker
	state    *session.State
	history  *history.Store
	version  string
	logger   *slog.Logger
}

// New creates an API server. The history store may be nil.
func New(res RequestResolver, player PlayerControl, picker PlaceholderPicker, state *session.State, hist *history.Store, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		resolver: res,
		player:   player,
		picker:   picker,
		state:    state,
		history:  hist,
		version:  version,
		logger:   logger.With("component", "api"),
	}
}

// RegisterRoutes registers API routes on the given mux. The play endpoint
// accepts GET as well because TMDb Helper's player definition drives it with
// a plain URL.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/play", s.handlePlay)
	mux.HandleFunc("GET /api/v1/play", s.handlePlay)
	mux.HandleFunc("POST /api/v1/testplay", s.handleTestPlay)
	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("GET /api/v1/session", s.handleSession)
	mux.HandleFunc("GET /api/v1/history", s.handleHistory)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// queryInt64 extracts an optional int64 from the query string.
func queryInt64(r *http.Request, name string) (int64, bool, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return 0, false, nil
	}
	i, err := strconv.ParseInt(val, 10, 64)
	return i, true, err
}

// queryIntPtr extracts an optional int from the query string.
func queryIntPtr(r *http.Request, name string) (*int, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
