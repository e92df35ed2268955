// Package reconcile resets watched/resume state left on real library entries
// by placeholder playback. Every step is best-effort: failures are logged and
// swallowed so the watcher loop is never disrupted.
package reconcile

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/helparr/helparr/internal/kodi"
	"github.com/helparr/helparr/internal/session"
)

// LibraryGateway is the host library surface the reconciler needs.
type LibraryGateway interface {
	MoviesByUniqueID(ctx context.Context, id string) ([]kodi.MovieEntry, error)
	TVShows(ctx context.Context) ([]kodi.TVShowEntry, error)
	Episodes(ctx context.Context, tvshowID int64, season int) ([]kodi.EpisodeEntry, error)
	ResetMovieWatched(ctx context.Context, movieID int64) error
	ResetEpisodeWatched(ctx context.Context, episodeID int64) error
	ResetFileWatched(ctx context.Context, file string) error
}

// Recorder receives a record of each reconciliation attempt.
type Recorder interface {
	ReconciliationDone(target Target, matchedLibrary bool)
}

// Target identifies what a finished placeholder session stood in for.
type Target struct {
	TMDBID       int64
	Kind         session.Kind
	Season       *int
	Episode      *int
	CapturedFile string
}

// Reconciler resets library watched state after placeholder playback.
type Reconciler struct {
	library  LibraryGateway
	recorder Recorder
	settle   time.Duration
	logger   *slog.Logger
}

// New creates a reconciler. The settle delay gives the host time to finish
// writing watched state for the stopped item before it is reset; recorder
// may be nil.
func New(library LibraryGateway, recorder Recorder, settle time.Duration, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		library:  library,
		recorder: recorder,
		settle:   settle,
		logger:   logger.With("component", "reconcile"),
	}
}

// Reset locates the library entry for the target and clears its watch
// count and resume position. It never returns an error: reconciliation is
// advisory.
func (r *Reconciler) Reset(ctx context.Context, t Target) {
	r.logger.Info("reconciling placeholder playback",
		"tmdb_id", t.TMDBID,
		"kind", t.Kind,
		"captured_file", t.CapturedFile,
	)

	if r.settle > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.settle):
		}
	}

	var matched bool
	if t.Kind == session.KindMovie {
		matched = r.resetMovie(ctx, t)
	} else {
		matched = r.resetShow(ctx, t)
	}

	if r.recorder != nil {
		r.recorder.ReconciliationDone(t, matched)
	}
}

// resetMovie reports whether a structured library entry was matched.
func (r *Reconciler) resetMovie(ctx context.Context, t Target) bool {
	id := strconv.FormatInt(t.TMDBID, 10)
	movies, err := r.library.MoviesByUniqueID(ctx, id)
	if err != nil {
		r.logger.Error("movie lookup failed", "tmdb_id", t.TMDBID, "error", err)
		r.resetByLocators(ctx, t)
		return false
	}

	if len(movies) == 0 {
		r.logger.Info("movie not in library, falling back to file locators", "tmdb_id", t.TMDBID)
		r.resetByLocators(ctx, t)
		return false
	}

	movie := movies[0]
	if err := r.library.ResetMovieWatched(ctx, movie.MovieID); err != nil {
		r.logger.Error("movie watched reset failed", "movie_id", movie.MovieID, "error", err)
		return false
	}
	r.logger.Info("movie watch state reset", "movie_id", movie.MovieID)
	return true
}

func (r *Reconciler) resetShow(ctx context.Context, t Target) bool {
	shows, err := r.library.TVShows(ctx)
	if err != nil {
		r.logger.Error("show listing failed", "tmdb_id", t.TMDBID, "error", err)
		r.resetByLocators(ctx, t)
		return false
	}

	show, found := matchShow(shows, t.TMDBID)
	if !found {
		r.logger.Info("show not in library, falling back to file locators", "tmdb_id", t.TMDBID)
		r.resetByLocators(ctx, t)
		return false
	}

	if t.Season == nil || t.Episode == nil {
		// Whole-series placeholders have no single episode to reset.
		r.logger.Info("season/episode not provided, skipping reset", "tvshow_id", show.TVShowID)
		return false
	}

	episodes, err := r.library.Episodes(ctx, show.TVShowID, *t.Season)
	if err != nil {
		r.logger.Error("episode listing failed", "tvshow_id", show.TVShowID, "season", *t.Season, "error", err)
		r.resetByLocators(ctx, t)
		return false
	}

	for _, ep := range episodes {
		if ep.Episode == *t.Episode {
			if err := r.library.ResetEpisodeWatched(ctx, ep.EpisodeID); err != nil {
				r.logger.Error("episode watched reset failed", "episode_id", ep.EpisodeID, "error", err)
				return false
			}
			r.logger.Info("episode watch state reset", "episode_id", ep.EpisodeID)
			return true
		}
	}

	r.logger.Info("episode not in library, falling back to file locators",
		"tvshow_id", show.TVShowID, "season", *t.Season, "episode", *t.Episode)
	r.resetByLocators(ctx, t)
	return false
}

// matchShow returns the first show whose uniqueid set contains the TMDB id.
// First match wins: duplicate external ids across shows are resolved by host
// ordering, not verified for uniqueness.
func matchShow(shows []kodi.TVShowEntry, tmdbID int64) (kodi.TVShowEntry, bool) {
	id := strconv.FormatInt(tmdbID, 10)
	for _, show := range shows {
		if show.UniqueID["tmdb"] == id {
			return show, true
		}
		for _, v := range show.UniqueID {
			if v == id {
				return show, true
			}
		}
	}
	return kodi.TVShowEntry{}, false
}

// resetByLocators issues a watched-state reset for every plausible locator
// the host's play-resolution layer might have recorded for this target.
// Individual failures are ignored: try all, fail silently.
func (r *Reconciler) resetByLocators(ctx context.Context, t Target) {
	for _, locator := range CandidateLocators(t) {
		if err := r.library.ResetFileWatched(ctx, locator); err != nil {
			r.logger.Debug("file watched reset failed", "file", locator, "error", err)
		}
	}
}

const pluginBase = "plugin://plugin.video.themoviedb.helper/"

// CandidateLocators builds the plausible placeholder locator strings for a
// target: the captured stream file first, then the known parameter-order and
// type-naming permutations the play-resolution layer uses. Episodic targets
// without a full season/episode selector produce nothing.
func CandidateLocators(t Target) []string {
	id := strconv.FormatInt(t.TMDBID, 10)

	var locators []string
	if t.CapturedFile != "" {
		locators = append(locators, t.CapturedFile)
	}

	if t.Kind == session.KindMovie {
		return append(locators,
			pluginBase+"?info=play&tmdb_id="+id+"&tmdb_type=movie",
			pluginBase+"?info=play&tmdb_type=movie&tmdb_id="+id,
		)
	}

	if t.Season == nil || t.Episode == nil {
		return nil
	}
	season := strconv.Itoa(*t.Season)
	episode := strconv.Itoa(*t.Episode)
	suffix := "&season=" + season + "&episode=" + episode

	return append(locators,
		pluginBase+"?info=play&tmdb_type=tv&tmdb_id="+id+suffix,
		pluginBase+"?info=play&tmdb_id="+id+"&tmdb_type=tv"+suffix,
		pluginBase+"?info=play&tmdb_type=episode&tmdb_id="+id+suffix,
		pluginBase+"?info=play&tmdb_id="+id+"&tmdb_type=episode"+suffix,
	)
}
