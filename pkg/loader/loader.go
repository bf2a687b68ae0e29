package loader

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kasuboski/flixboard/pkg/analysis"
	"github.com/kasuboski/flixboard/pkg/cache"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/metrics"
	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

const (
	queryMovies    = "movies"
	queryTVShows   = "tvshows"
	queryLabels    = "labels"
	queryGenreLink = "genre_ids"
)

// StorageError is returned when the backing store cannot answer a query
type StorageError struct {
	Query string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage query %q failed: %v", e.Query, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Options configures the loader. With Memoize set, each distinct query is
// sent to the store once for the lifetime of the Loader; there is no
// eviction and no invalidation.
type Options struct {
	Memoize bool
}

// Loader reads source tables from the catalog store
type Loader struct {
	store  storage.CatalogStorage
	titles *cache.Cache[string, []analysis.RawTitle]
	labels *cache.Cache[string, []storage.LabelCount]
	ids    *cache.Cache[string, []int64]
}

func New(store storage.CatalogStorage, opts Options) *Loader {
	l := &Loader{store: store}
	if opts.Memoize {
		l.titles = cache.New[string, []analysis.RawTitle]()
		l.labels = cache.New[string, []storage.LabelCount]()
		l.ids = cache.New[string, []int64]()
	}
	return l
}

// Movies returns the raw movies table
func (l *Loader) Movies(ctx context.Context) ([]analysis.RawTitle, error) {
	return load(ctx, l.titles, queryMovies, queryMovies, func() ([]analysis.RawTitle, error) {
		rows, err := l.store.ListMovies(ctx)
		if err != nil {
			return nil, err
		}

		out := make([]analysis.RawTitle, 0, len(rows))
		for _, m := range rows {
			out = append(out, fromMovie(m))
		}
		return out, nil
	})
}

// TVShows returns the raw tvshows table
func (l *Loader) TVShows(ctx context.Context) ([]analysis.RawTitle, error) {
	return load(ctx, l.titles, queryTVShows, queryTVShows, func() ([]analysis.RawTitle, error) {
		rows, err := l.store.ListTVShows(ctx)
		if err != nil {
			return nil, err
		}

		out := make([]analysis.RawTitle, 0, len(rows))
		for _, s := range rows {
			out = append(out, fromTVShow(s))
		}
		return out, nil
	})
}

// LabelCounts returns the popularity of every label of an association table,
// most popular first
func (l *Loader) LabelCounts(ctx context.Context, link storage.Link) ([]storage.LabelCount, error) {
	key := queryLabels + ":" + string(link)
	return load(ctx, l.labels, queryLabels, key, func() ([]storage.LabelCount, error) {
		return l.store.CountLabels(ctx, link)
	})
}

// GenreTitleIDs returns the ids of titles of the given kind linked to any of the genres
func (l *Loader) GenreTitleIDs(ctx context.Context, kind storage.Kind, genres []string) (analysis.IDSet, error) {
	if len(genres) == 0 {
		return analysis.NewIDSet(), nil
	}

	// the same selection in a different order is the same query
	sorted := slices.Clone(genres)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	key := fmt.Sprintf("%s:%s:%s", queryGenreLink, kind, strings.Join(sorted, "\x1f"))

	ids, err := load(ctx, l.ids, queryGenreLink, key, func() ([]int64, error) {
		return l.store.ListGenreTitleIDs(ctx, kind, sorted)
	})
	if err != nil {
		return nil, err
	}

	return analysis.NewIDSet(ids...), nil
}

// load reads through c. A nil cache disables memoization.
func load[V any](ctx context.Context, c *cache.Cache[string, V], query, key string, fetch func() (V, error)) (V, error) {
	log := logger.FromCtx(ctx)

	timed := func() (V, error) {
		start := time.Now()
		v, err := fetch()
		metrics.StorageQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.StorageQueryErrors.WithLabelValues(query).Inc()
			log.Error("failed to load source table", zap.String("key", key), zap.Error(err))
			var zero V
			return zero, &StorageError{Query: key, Err: err}
		}
		return v, nil
	}

	if c == nil {
		metrics.LoaderCacheMisses.WithLabelValues(query).Inc()
		return timed()
	}

	v, hit, err := c.GetOrLoad(key, timed)
	if err != nil {
		return v, err
	}

	if hit {
		metrics.LoaderCacheHits.WithLabelValues(query).Inc()
	} else {
		metrics.LoaderCacheMisses.WithLabelValues(query).Inc()
		log.Debug("loaded source table", zap.String("key", key))
	}

	return v, nil
}

func fromMovie(m *model.Movies) analysis.RawTitle {
	return analysis.RawTitle{
		ID:              int64(m.ID),
		ShowID:          deref(m.ShowID),
		Name:            deref(m.Title),
		ReleaseYear:     deref(m.ReleaseYear),
		Rating:          m.Rating,
		DurationMinutes: toInt(m.DurationMinutes),
	}
}

func fromTVShow(s *model.Tvshows) analysis.RawTitle {
	return analysis.RawTitle{
		ID:          int64(s.ID),
		ShowID:      deref(s.ShowID),
		Name:        deref(s.Title),
		ReleaseYear: deref(s.ReleaseYear),
		Rating:      s.Rating,
		Seasons:     toInt(s.Seasons),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toInt(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
