package dashboard

import (
	"context"

	"github.com/kasuboski/flixboard/pkg/analysis"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	DefaultTopN    = 10
	DefaultLowYear = 2010
)

// Source provides the source tables of a render
type Source interface {
	Movies(ctx context.Context) ([]analysis.RawTitle, error)
	TVShows(ctx context.Context) ([]analysis.RawTitle, error)
	LabelCounts(ctx context.Context, link storage.Link) ([]storage.LabelCount, error)
	GenreTitleIDs(ctx context.Context, kind storage.Kind, genres []string) (analysis.IDSet, error)
}

type Options struct {
	TopN           int
	DurationBins   int
	DefaultLowYear int
}

// Dashboard runs the load, clean, filter and aggregate pass for a render
type Dashboard struct {
	source Source
	opts   Options
}

func New(source Source, opts Options) Dashboard {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.DurationBins <= 0 {
		opts.DurationBins = analysis.DefaultDurationBins
	}
	if opts.DefaultLowYear <= 0 {
		opts.DefaultLowYear = DefaultLowYear
	}

	return Dashboard{
		source: source,
		opts:   opts,
	}
}

// FilterOptions lists the values the filter controls can offer
type FilterOptions struct {
	MinYear      int                    `json:"minYear"`
	MaxYear      int                    `json:"maxYear"`
	DefaultYears analysis.YearRange     `json:"defaultYears"`
	ContentTypes []analysis.ContentType `json:"contentTypes"`
	Genres       []string               `json:"genres"`
	Countries    []string               `json:"countries"`
	Ratings      []string               `json:"ratings"`
}

// View is everything the page renders for one filter selection
type View struct {
	Filter            analysis.FilterSpec         `json:"filter"`
	KPIs              analysis.Summary            `json:"kpis"`
	ContentMix        []analysis.MixSlice         `json:"contentMix"`
	YearlyTrend       []analysis.TrendPoint       `json:"yearlyTrend"`
	MovieRatings      []analysis.KeyCount[string] `json:"movieRatings"`
	TVRatings         []analysis.KeyCount[string] `json:"tvRatings"`
	MovieDurations    []analysis.HistogramBin     `json:"movieDurations"`
	TVSeasons         []analysis.KeyCount[int]    `json:"tvSeasons"`
	TopMovieGenres    []storage.LabelCount        `json:"topMovieGenres"`
	TopTVGenres       []storage.LabelCount        `json:"topTvGenres"`
	TopMovieCountries []storage.LabelCount        `json:"topMovieCountries"`
	TopTVCountries    []storage.LabelCount        `json:"topTvCountries"`
}

// Options returns the filter control values derived from the cleaned catalog
func (d Dashboard) Options(ctx context.Context) (FilterOptions, error) {
	movies, tv, err := d.tables(ctx)
	if err != nil {
		return FilterOptions{}, err
	}

	opts := FilterOptions{
		ContentTypes: []analysis.ContentType{analysis.ContentBoth, analysis.ContentMovies, analysis.ContentTVShows},
	}
	opts.MinYear, opts.MaxYear, _ = analysis.YearBounds(movies, tv)
	opts.DefaultYears = d.defaultYears(opts.MinYear, opts.MaxYear)

	opts.Genres, err = d.labels(ctx, storage.LinkMovieGenres, storage.LinkTVShowGenres)
	if err != nil {
		return FilterOptions{}, err
	}

	opts.Countries, err = d.labels(ctx, storage.LinkMovieCountries, storage.LinkTVShowCountries)
	if err != nil {
		return FilterOptions{}, err
	}

	ratings := make(map[string]struct{})
	for _, t := range []analysis.Table{movies, tv} {
		for _, r := range t.Rows {
			if r.Rating != nil {
				ratings[*r.Rating] = struct{}{}
			}
		}
	}
	opts.Ratings = sortedLabels(ratings)

	return opts, nil
}

// Build renders the full dashboard for spec. A nil year range selects the default range.
func (d Dashboard) Build(ctx context.Context, spec analysis.FilterSpec) (View, error) {
	log := logger.FromCtx(ctx)

	spec, movies, tv, err := d.filter(ctx, spec)
	if err != nil {
		return View{}, err
	}

	kpis := analysis.Summarize(movies, tv)
	view := View{
		Filter:         spec,
		KPIs:           kpis,
		ContentMix:     analysis.ContentMix(kpis),
		YearlyTrend:    analysis.YearlyTrend(analysis.CountByYear(movies), analysis.CountByYear(tv)),
		MovieRatings:   analysis.CountByRating(movies),
		TVRatings:      analysis.CountByRating(tv),
		MovieDurations: analysis.DurationHistogram(movies, d.opts.DurationBins),
		TVSeasons:      analysis.CountBySeasons(tv),
	}

	popularity := []struct {
		link storage.Link
		dest *[]storage.LabelCount
	}{
		{storage.LinkMovieGenres, &view.TopMovieGenres},
		{storage.LinkTVShowGenres, &view.TopTVGenres},
		{storage.LinkMovieCountries, &view.TopMovieCountries},
		{storage.LinkTVShowCountries, &view.TopTVCountries},
	}
	for _, p := range popularity {
		counts, err := d.source.LabelCounts(ctx, p.link)
		if err != nil {
			return View{}, err
		}
		*p.dest = analysis.TopN(counts, d.opts.TopN)
	}

	log.Debug("built dashboard", zap.Int("movies", kpis.Movies), zap.Int("tv_shows", kpis.TVShows))
	return view, nil
}

// KPIs returns only the counters for spec
func (d Dashboard) KPIs(ctx context.Context, spec analysis.FilterSpec) (analysis.Summary, error) {
	_, movies, tv, err := d.filter(ctx, spec)
	if err != nil {
		return analysis.Summary{}, err
	}

	return analysis.Summarize(movies, tv), nil
}

// filter resolves defaults, validates spec and applies it to both cleaned tables
func (d Dashboard) filter(ctx context.Context, spec analysis.FilterSpec) (analysis.FilterSpec, analysis.Table, analysis.Table, error) {
	log := logger.FromCtx(ctx)

	movies, tv, err := d.tables(ctx)
	if err != nil {
		return spec, analysis.Table{}, analysis.Table{}, err
	}

	if spec.ContentType == "" {
		spec.ContentType = analysis.ContentBoth
	}
	if spec.Years == nil {
		low, high, _ := analysis.YearBounds(movies, tv)
		years := d.defaultYears(low, high)
		spec.Years = &years
	}
	if err := spec.Validate(); err != nil {
		return spec, analysis.Table{}, analysis.Table{}, err
	}

	if len(spec.Countries) > 0 {
		log.Debug("country selection does not narrow results", zap.Strings("countries", spec.Countries))
	}

	var movieIDs, tvIDs analysis.IDSet
	if len(spec.Genres) > 0 {
		movieIDs, err = d.source.GenreTitleIDs(ctx, storage.KindMovie, spec.Genres)
		if err != nil {
			return spec, analysis.Table{}, analysis.Table{}, err
		}
		tvIDs, err = d.source.GenreTitleIDs(ctx, storage.KindTVShow, spec.Genres)
		if err != nil {
			return spec, analysis.Table{}, analysis.Table{}, err
		}
	}

	return spec, analysis.Filter(movies, spec, movieIDs), analysis.Filter(tv, spec, tvIDs), nil
}

// tables loads and cleans both fact tables
func (d Dashboard) tables(ctx context.Context) (analysis.Table, analysis.Table, error) {
	log := logger.FromCtx(ctx)

	rawMovies, err := d.source.Movies(ctx)
	if err != nil {
		return analysis.Table{}, analysis.Table{}, err
	}

	rawTV, err := d.source.TVShows(ctx)
	if err != nil {
		return analysis.Table{}, analysis.Table{}, err
	}

	movies := analysis.NormalizeYears(storage.KindMovie, rawMovies)
	tv := analysis.NormalizeYears(storage.KindTVShow, rawTV)
	if dropped := len(rawMovies) - movies.Len() + len(rawTV) - tv.Len(); dropped > 0 {
		log.Debug("dropped titles without a numeric release year", zap.Int("dropped", dropped))
	}

	return movies, tv, nil
}

// defaultYears starts at the configured year clamped into the observed bounds and runs to the latest year
func (d Dashboard) defaultYears(low, high int) analysis.YearRange {
	start := min(max(d.opts.DefaultLowYear, low), high)
	return analysis.YearRange{Low: start, High: high}
}

func (d Dashboard) labels(ctx context.Context, links ...storage.Link) ([]string, error) {
	seen := make(map[string]struct{})
	for _, link := range links {
		counts, err := d.source.LabelCounts(ctx, link)
		if err != nil {
			return nil, err
		}
		for _, c := range counts {
			seen[c.Label] = struct{}{}
		}
	}

	return sortedLabels(seen), nil
}

func sortedLabels(set map[string]struct{}) []string {
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}

	collate.New(language.English).SortStrings(labels)
	return labels
}
