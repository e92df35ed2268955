// Package resolver turns a play request for a title into a terminal outcome:
// the item is available, already monitored, newly requested, or the request
// failed. It drives at most one create per call and never returns a partial
// result.
package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helparr/helparr/internal/arr"
)

//go:generate mockgen -source=resolver.go -destination=mocks/resolver_mocks.go -package=mocks

// MovieService is the Radarr surface the resolver needs.
type MovieService interface {
	GetMovie(ctx context.Context, tmdbID int64) *arr.Movie
	AddMovie(ctx context.Context, tmdbID int64) (*arr.Movie, error)
}

// SeriesService is the Sonarr surface the resolver needs.
type SeriesService interface {
	GetSeries(ctx context.Context, tmdbID int64) *arr.Series
	GetEpisode(ctx context.Context, seriesID int64, season, episode int) *arr.Episode
	AddSeries(ctx context.Context, tmdbID int64) (*arr.Series, error)
}

// Status is the terminal state of a request resolution.
type Status string

const (
	StatusAvailable Status = "available"
	StatusMonitored Status = "monitored"
	StatusRequested Status = "requested"
	StatusError     Status = "error"
)

// EpisodeSelector addresses one episode of a series. A request without a
// selector carries whole-series semantics.
type EpisodeSelector struct {
	Season  int
	Episode int
}

// Outcome is the result of one request resolution. Exactly one of Movie,
// Series or Episode is set on success; all are nil on error.
type Outcome struct {
	Status    Status       `json:"status"`
	Message   string       `json:"message"`
	Available bool         `json:"available"`
	Movie     *arr.Movie   `json:"movie,omitempty"`
	Series    *arr.Series  `json:"series,omitempty"`
	Episode   *arr.Episode `json:"episode,omitempty"`
}

// Title returns the title of whichever item the outcome carries, or "".
func (o Outcome) Title() string {
	switch {
	case o.Movie != nil:
		return o.Movie.Title
	case o.Series != nil:
		return o.Series.Title
	case o.Episode != nil:
		return o.Episode.Title
	}
	return ""
}

// Resolver resolves play requests against the management services.
type Resolver struct {
	movies MovieService
	series SeriesService
	logger *slog.Logger
}

// New creates a resolver. Either service may be nil when the corresponding
// manager is not configured; resolving that kind then yields an error outcome.
func New(movies MovieService, series SeriesService, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		movies: movies,
		series: series,
		logger: logger.With("component", "resolver"),
	}
}

func errorOutcome(format string, args ...any) Outcome {
	return Outcome{
		Status:  StatusError,
		Message: fmt.Sprintf(format, args...),
	}
}

// ResolveMovie checks a movie's state in Radarr and requests it when absent.
func (r *Resolver) ResolveMovie(ctx context.Context, tmdbID int64) Outcome {
	if r.movies == nil {
		return errorOutcome("Radarr is not configured.")
	}

	if movie := r.movies.GetMovie(ctx, tmdbID); movie != nil {
		if movie.HasFile {
			return Outcome{
				Status:    StatusAvailable,
				Message:   fmt.Sprintf("Movie '%s' is already downloaded and available.", movie.Title),
				Available: true,
				Movie:     movie,
			}
		}
		return Outcome{
			Status:  StatusMonitored,
			Message: fmt.Sprintf("Movie '%s' is already monitored but not yet downloaded.", movie.Title),
			Movie:   movie,
		}
	}

	added, err := r.movies.AddMovie(ctx, tmdbID)
	if err != nil {
		r.logger.Error("adding movie failed", "tmdb_id", tmdbID, "error", err)
		return errorOutcome("Error adding movie: %v", err)
	}
	return Outcome{
		Status:  StatusRequested,
		Message: fmt.Sprintf("Successfully requested movie: %s", added.Title),
		Movie:   added,
	}
}

// ResolveSeries checks a series' state in Sonarr and requests it when absent.
// With a selector, availability is judged for that single episode; the
// episode verdict always wins over the series aggregate.
func (r *Resolver) ResolveSeries(ctx context.Context, tmdbID int64, sel *EpisodeSelector) Outcome {
	if r.series == nil {
		return errorOutcome("Sonarr is not configured.")
	}

	series := r.series.GetSeries(ctx, tmdbID)
	if series == nil {
		added, err := r.series.AddSeries(ctx, tmdbID)
		if err != nil {
			r.logger.Error("adding series failed", "tmdb_id", tmdbID, "error", err)
			return errorOutcome("Error adding series: %v", err)
		}
		return Outcome{
			Status:  StatusRequested,
			Message: fmt.Sprintf("Successfully requested series: %s", added.Title),
			Series:  added,
		}
	}

	if sel != nil {
		return r.resolveEpisode(ctx, series, *sel)
	}
	return resolveSeriesAggregate(series)
}

func (r *Resolver) resolveEpisode(ctx context.Context, series *arr.Series, sel EpisodeSelector) Outcome {
	episode := r.series.GetEpisode(ctx, series.ID, sel.Season, sel.Episode)
	if episode == nil {
		return errorOutcome("Episode S%02dE%02d not found.", sel.Season, sel.Episode)
	}

	if episode.HasFile {
		return Outcome{
			Status:    StatusAvailable,
			Message:   fmt.Sprintf("Episode S%02dE%02d of '%s' is downloaded and available.", sel.Season, sel.Episode, series.Title),
			Available: true,
			Episode:   episode,
		}
	}
	return Outcome{
		Status:  StatusMonitored,
		Message: fmt.Sprintf("Episode S%02dE%02d of '%s' is monitored but not yet downloaded.", sel.Season, sel.Episode, series.Title),
		Episode: episode,
	}
}

func resolveSeriesAggregate(series *arr.Series) Outcome {
	stats := series.Statistics
	available := stats.PercentOfEpisodes == 100 ||
		(stats.EpisodeFileCount > 0 && stats.EpisodeFileCount == stats.EpisodeCount)

	switch {
	case available:
		return Outcome{
			Status:    StatusAvailable,
			Message:   fmt.Sprintf("Series '%s' is already downloaded and available.", series.Title),
			Available: true,
			Series:    series,
		}
	case stats.EpisodeFileCount > 0:
		remaining := stats.EpisodeCount - stats.EpisodeFileCount
		return Outcome{
			Status: StatusMonitored,
			Message: fmt.Sprintf("Series '%s' is monitored. %d/%d episodes downloaded (%d remaining).",
				series.Title, stats.EpisodeFileCount, stats.EpisodeCount, remaining),
			Series: series,
		}
	default:
		return Outcome{
			Status:  StatusMonitored,
			Message: fmt.Sprintf("Series '%s' is already monitored but not yet downloaded.", series.Title),
			Series:  series,
		}
	}
}
