// Package session holds the single-slot handoff between the play request
// path and the playback watcher. The request path sets the slot when a
// placeholder stream starts; the watcher reads it every poll and clears it
// when playback stops. One slot per process: setting while a session is
// active replaces it, and the replaced session is never reconciled.
package session

import "sync"

// Kind discriminates what a tracked placeholder stands in for.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindTV      Kind = "tv"
	KindEpisode Kind = "episode"
)

// Session describes one tracked placeholder playback.
type Session struct {
	TMDBID  int64 `json:"tmdb_id"`
	Kind    Kind  `json:"kind"`
	Season  *int  `json:"season,omitempty"`
	Episode *int  `json:"episode,omitempty"`
}

// State is the process-wide session slot. Safe for concurrent use.
type State struct {
	mu      sync.Mutex
	active  bool
	current Session
}

// NewState creates an inactive session slot.
func NewState() *State {
	return &State{}
}

// Set activates the slot with the given session, replacing any active one.
func (s *State) Set(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.current = sess
}

// Snapshot returns the active session, or false when the slot is inactive.
func (s *State) Snapshot() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.active
}

// Clear deactivates the slot and drops its fields.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.current = Session{}
}
