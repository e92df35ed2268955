// Package history persists request outcomes and reconciliation attempts.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"
)

//go:embed schema.sql
var Schema string

// RequestRecord is one resolved play request.
type RequestRecord struct {
	ID        int64
	TMDBID    int64
	MediaType string
	Season    *int
	Episode   *int
	Status    string
	Message   string
	CreatedAt time.Time
}

// ReconciliationRecord is one reconciliation attempt after placeholder
// playback stopped.
type ReconciliationRecord struct {
	ID             int64
	TMDBID         int64
	MediaType      string
	Season         *int
	Episode        *int
	CapturedFile   string
	MatchedLibrary bool
	CreatedAt      time.Time
}

// RequestFilter specifies criteria for listing requests.
type RequestFilter struct {
	TMDBID *int64
	Status *string
	Limit  int
}

// Store persists history records.
type Store struct {
	db *sql.DB
}

// NewStore creates a history store. The schema must already be applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate applies the embedded schema.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("apply history schema: %w", err)
	}
	return nil
}

// AddRequest inserts a request record.
func (s *Store) AddRequest(r *RequestRecord) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO requests (tmdb_id, media_type, season, episode, status, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.TMDBID, r.MediaType, r.Season, r.Episode, r.Status, r.Message, now,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	r.ID = id
	r.CreatedAt = now
	return nil
}

// AddReconciliation inserts a reconciliation record.
func (s *Store) AddReconciliation(r *ReconciliationRecord) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO reconciliations (tmdb_id, media_type, season, episode, captured_file, matched_library, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.TMDBID, r.MediaType, r.Season, r.Episode, r.CapturedFile, r.MatchedLibrary, now,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	r.ID = id
	r.CreatedAt = now
	return nil
}

// ListRequests returns request records matching the filter, most recent
// first.
func (s *Store) ListRequests(f RequestFilter) ([]*RequestRecord, error) {
	var conditions []string
	var args []any

	if f.TMDBID != nil {
		conditions = append(conditions, "tmdb_id = ?")
		args = append(args, *f.TMDBID)
	}
	if f.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *f.Status)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, tmdb_id, media_type, season, episode, status, message, created_at
		FROM requests ` + whereClause + ` ORDER BY created_at DESC, id DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*RequestRecord
	for rows.Next() {
		r := &RequestRecord{}
		if err := rows.Scan(&r.ID, &r.TMDBID, &r.MediaType, &r.Season, &r.Episode, &r.Status, &r.Message, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}

	return results, nil
}

// ListReconciliations returns reconciliation records, most recent first.
func (s *Store) ListReconciliations(limit int) ([]*ReconciliationRecord, error) {
	query := `SELECT id, tmdb_id, media_type, season, episode, captured_file, matched_library, created_at
		FROM reconciliations ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list reconciliations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*ReconciliationRecord
	for rows.Next() {
		r := &ReconciliationRecord{}
		if err := rows.Scan(&r.ID, &r.TMDBID, &r.MediaType, &r.Season, &r.Episode, &r.CapturedFile, &r.MatchedLibrary, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reconciliation: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reconciliations: %w", err)
	}

	return results, nil
}
