// Package watcher runs the background loop that tracks placeholder playback
// and triggers library reconciliation when it stops.
package watcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/helparr/helparr/internal/reconcile"
	"github.com/helparr/helparr/internal/session"
)

// PlayerStatus reports the host player's state.
type PlayerStatus interface {
	ActivePlayerID(ctx context.Context) (int, bool, error)
	PlayingFile(ctx context.Context, playerID int) (string, error)
}

// SessionReconciler resets library watched state for a finished placeholder
// session. Implementations are best-effort and must not panic.
type SessionReconciler interface {
	Reset(ctx context.Context, target reconcile.Target)
}

// Watcher polls the session slot and the host player. While a session is
// active and playing it captures the current stream locator; when playback
// stops it clears the slot and reconciles exactly once.
type Watcher struct {
	state      *session.State
	player     PlayerStatus
	reconciler SessionReconciler
	interval   time.Duration
	logger     *slog.Logger
}

// New creates a watcher polling at the given interval.
func New(state *session.State, player PlayerStatus, reconciler SessionReconciler, interval time.Duration, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		state:      state,
		player:     player,
		reconciler: reconciler,
		interval:   interval,
		logger:     logger.With("component", "watcher"),
	}
}

// Run polls until the context is canceled. A session still playing at
// shutdown is abandoned without reconciliation: it may genuinely still be
// playing, and a placeholder must never be reconciled mid-flight.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("watcher started", "interval", w.interval)

	var capturedFile string
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			capturedFile = w.poll(ctx, capturedFile)
		}
	}
}

// poll advances one tick and returns the updated captured locator.
func (w *Watcher) poll(ctx context.Context, capturedFile string) string {
	sess, active := w.state.Snapshot()
	if !active {
		return capturedFile
	}

	playerID, playing, err := w.player.ActivePlayerID(ctx)
	if err != nil {
		// A transient status failure must not be mistaken for a stop.
		w.logger.Warn("player status check failed", "error", err)
		return capturedFile
	}

	if playing {
		// The player may swap from a transitional locator to the final
		// resolved stream; always keep the latest.
		file, err := w.player.PlayingFile(ctx, playerID)
		if err != nil {
			w.logger.Warn("reading playing file failed", "error", err)
			return capturedFile
		}
		if file != "" && file != capturedFile {
			capturedFile = file
			w.logger.Debug("captured playing file", "file", file)
		}
		return capturedFile
	}

	w.logger.Info("placeholder playback finished",
		"tmdb_id", sess.TMDBID,
		"kind", sess.Kind,
	)

	// Clear before reconciling: a crash mid-reconcile must not replay the
	// session on the next poll.
	w.state.Clear()

	w.reconciler.Reset(ctx, reconcile.Target{
		TMDBID:       sess.TMDBID,
		Kind:         sess.Kind,
		Season:       sess.Season,
		Episode:      sess.Episode,
		CapturedFile: capturedFile,
	})

	return ""
}
