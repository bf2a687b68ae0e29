package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/kasuboski/flixboard/pkg/analysis"
	"github.com/kasuboski/flixboard/pkg/dashboard/mocks"
	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T {
	return &v
}

func catalogMovies() []analysis.RawTitle {
	return []analysis.RawTitle{
		{ID: 1, Name: "Old Movie", ReleaseYear: "2004", Rating: ptr("PG"), DurationMinutes: ptr(95)},
		{ID: 2, Name: "Drama", ReleaseYear: "2015", Rating: ptr("R"), DurationMinutes: ptr(120)},
		{ID: 3, Name: "Comedy", ReleaseYear: "2018", Rating: ptr("PG-13"), DurationMinutes: ptr(90)},
		{ID: 4, Name: "Broken", ReleaseYear: "TV-MA"},
		{ID: 5, Name: "Recent", ReleaseYear: "2021", Rating: nil, DurationMinutes: ptr(100)},
	}
}

func catalogTVShows() []analysis.RawTitle {
	return []analysis.RawTitle{
		{ID: 1, Name: "Series A", ReleaseYear: "2016", Rating: ptr("TV-MA"), Seasons: ptr(3)},
		{ID: 2, Name: "Series B", ReleaseYear: "2021", Rating: ptr("TV-14"), Seasons: ptr(1)},
	}
}

// catalogSource serves the fixture catalog for any number of renders.
// Genre lookups are left to each test.
func catalogSource(t *testing.T) *mocks.MockSource {
	t.Helper()
	src := mocks.NewMockSource(gomock.NewController(t))

	src.EXPECT().Movies(gomock.Any()).Return(catalogMovies(), nil).AnyTimes()
	src.EXPECT().TVShows(gomock.Any()).Return(catalogTVShows(), nil).AnyTimes()
	src.EXPECT().LabelCounts(gomock.Any(), storage.LinkMovieGenres).Return([]storage.LabelCount{{Label: "Dramas", Count: 2}, {Label: "Comedies", Count: 1}}, nil).AnyTimes()
	src.EXPECT().LabelCounts(gomock.Any(), storage.LinkTVShowGenres).Return([]storage.LabelCount{{Label: "TV Dramas", Count: 2}, {Label: "Anime Series", Count: 1}, {Label: "Dramas", Count: 1}}, nil).AnyTimes()
	src.EXPECT().LabelCounts(gomock.Any(), storage.LinkMovieCountries).Return([]storage.LabelCount{{Label: "United States", Count: 3}}, nil).AnyTimes()
	src.EXPECT().LabelCounts(gomock.Any(), storage.LinkTVShowCountries).Return([]storage.LabelCount{{Label: "Japan", Count: 1}}, nil).AnyTimes()

	return src
}

func TestDashboard_Options(t *testing.T) {
	ctx := context.Background()
	d := New(catalogSource(t), Options{})

	opts, err := d.Options(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2004, opts.MinYear)
	assert.Equal(t, 2021, opts.MaxYear)
	assert.Equal(t, analysis.YearRange{Low: 2010, High: 2021}, opts.DefaultYears)
	assert.Equal(t, []analysis.ContentType{analysis.ContentBoth, analysis.ContentMovies, analysis.ContentTVShows}, opts.ContentTypes)
	assert.Equal(t, []string{"Anime Series", "Comedies", "Dramas", "TV Dramas"}, opts.Genres)
	assert.Equal(t, []string{"Japan", "United States"}, opts.Countries)
	assert.Equal(t, []string{"PG", "PG-13", "R", "TV-14", "TV-MA"}, opts.Ratings)
}

func TestDashboard_DefaultYears(t *testing.T) {
	tests := []struct {
		name      string
		lowYear   int
		low, high int
		want      analysis.YearRange
	}{
		{name: "inside bounds", lowYear: 2010, low: 1942, high: 2021, want: analysis.YearRange{Low: 2010, High: 2021}},
		{name: "below bounds", lowYear: 2010, low: 2012, high: 2021, want: analysis.YearRange{Low: 2012, High: 2021}},
		{name: "above bounds", lowYear: 2030, low: 2012, high: 2021, want: analysis.YearRange{Low: 2021, High: 2021}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(catalogSource(t), Options{DefaultLowYear: tt.lowYear})
			assert.Equal(t, tt.want, d.defaultYears(tt.low, tt.high))
		})
	}
}

func TestDashboard_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("default selection", func(t *testing.T) {
		d := New(catalogSource(t), Options{TopN: 1})

		view, err := d.Build(ctx, analysis.FilterSpec{})
		require.NoError(t, err)

		assert.Equal(t, analysis.FilterSpec{Years: &analysis.YearRange{Low: 2010, High: 2021}, ContentType: analysis.ContentBoth}, view.Filter)
		assert.Equal(t, analysis.Summary{Movies: 3, TVShows: 2, Total: 5}, view.KPIs)
		assert.Equal(t, []analysis.MixSlice{{Type: "Movies", Count: 3}, {Type: "TV Shows", Count: 2}}, view.ContentMix)
		assert.Equal(t, []analysis.TrendPoint{
			{Year: 2015, Movies: 1},
			{Year: 2016, TVShows: 1},
			{Year: 2018, Movies: 1},
			{Year: 2021, Movies: 1, TVShows: 1},
		}, view.YearlyTrend)
		assert.Equal(t, []analysis.KeyCount[string]{{Key: "PG-13", Count: 1}, {Key: "R", Count: 1}}, view.MovieRatings)
		assert.Equal(t, []analysis.KeyCount[int]{{Key: 1, Count: 1}, {Key: 3, Count: 1}}, view.TVSeasons)
		assert.Len(t, view.MovieDurations, analysis.DefaultDurationBins)
		assert.Equal(t, []storage.LabelCount{{Label: "Dramas", Count: 2}}, view.TopMovieGenres)
		assert.Equal(t, []storage.LabelCount{{Label: "TV Dramas", Count: 2}}, view.TopTVGenres)
		assert.Equal(t, []storage.LabelCount{{Label: "United States", Count: 3}}, view.TopMovieCountries)
		assert.Equal(t, []storage.LabelCount{{Label: "Japan", Count: 1}}, view.TopTVCountries)
	})

	t.Run("movies only", func(t *testing.T) {
		d := New(catalogSource(t), Options{})

		view, err := d.Build(ctx, analysis.FilterSpec{
			Years:       &analysis.YearRange{Low: 2000, High: 2021},
			ContentType: analysis.ContentMovies,
		})
		require.NoError(t, err)

		assert.Equal(t, analysis.Summary{Movies: 4, TVShows: 0, Total: 4}, view.KPIs)
		assert.Empty(t, view.TVRatings)
		assert.NotNil(t, view.TVRatings)
		assert.Empty(t, view.TVSeasons)
		for _, p := range view.YearlyTrend {
			assert.Zero(t, p.TVShows)
		}
	})

	t.Run("genre selection", func(t *testing.T) {
		src := catalogSource(t)
		src.EXPECT().GenreTitleIDs(gomock.Any(), storage.KindMovie, []string{"Dramas"}).Return(analysis.NewIDSet(2), nil)
		src.EXPECT().GenreTitleIDs(gomock.Any(), storage.KindTVShow, []string{"Dramas"}).Return(analysis.NewIDSet(2), nil)
		d := New(src, Options{})

		view, err := d.Build(ctx, analysis.FilterSpec{
			Years:       &analysis.YearRange{Low: 2000, High: 2021},
			ContentType: analysis.ContentBoth,
			Genres:      []string{"Dramas"},
		})
		require.NoError(t, err)

		assert.Equal(t, analysis.Summary{Movies: 1, TVShows: 1, Total: 2}, view.KPIs)
	})

	t.Run("genre with no links empties the tables", func(t *testing.T) {
		src := catalogSource(t)
		src.EXPECT().GenreTitleIDs(gomock.Any(), gomock.Any(), []string{"Stand-Up Comedy"}).Return(analysis.NewIDSet(), nil).Times(2)
		d := New(src, Options{})

		view, err := d.Build(ctx, analysis.FilterSpec{
			Years:       &analysis.YearRange{Low: 2000, High: 2021},
			ContentType: analysis.ContentBoth,
			Genres:      []string{"Stand-Up Comedy"},
		})
		require.NoError(t, err)
		assert.Equal(t, analysis.Summary{}, view.KPIs)
		assert.Empty(t, view.YearlyTrend)
		assert.Empty(t, view.MovieDurations)
	})

	t.Run("popularity ignores the filter", func(t *testing.T) {
		d := New(catalogSource(t), Options{})

		all, err := d.Build(ctx, analysis.FilterSpec{})
		require.NoError(t, err)

		narrow, err := d.Build(ctx, analysis.FilterSpec{
			Years:       &analysis.YearRange{Low: 2021, High: 2021},
			ContentType: analysis.ContentTVShows,
			Ratings:     []string{"TV-14"},
		})
		require.NoError(t, err)

		assert.Equal(t, all.TopMovieGenres, narrow.TopMovieGenres)
		assert.Equal(t, all.TopTVGenres, narrow.TopTVGenres)
		assert.Equal(t, all.TopMovieCountries, narrow.TopMovieCountries)
		assert.Equal(t, all.TopTVCountries, narrow.TopTVCountries)
		assert.Equal(t, 1, narrow.KPIs.Total)
	})

	t.Run("countries do not narrow", func(t *testing.T) {
		d := New(catalogSource(t), Options{})

		withCountry, err := d.Build(ctx, analysis.FilterSpec{Countries: []string{"Japan"}})
		require.NoError(t, err)
		without, err := d.Build(ctx, analysis.FilterSpec{})
		require.NoError(t, err)

		assert.Equal(t, without.KPIs, withCountry.KPIs)
		assert.Equal(t, []string{"Japan"}, withCountry.Filter.Countries)
	})

	t.Run("invalid filter", func(t *testing.T) {
		d := New(catalogSource(t), Options{})

		_, err := d.Build(ctx, analysis.FilterSpec{Years: &analysis.YearRange{Low: 2020, High: 2010}})
		assert.ErrorIs(t, err, analysis.ErrInvalidFilter)
	})

	t.Run("explicit zero year range is kept", func(t *testing.T) {
		d := New(catalogSource(t), Options{})

		view, err := d.Build(ctx, analysis.FilterSpec{Years: &analysis.YearRange{}, ContentType: analysis.ContentBoth})
		require.NoError(t, err)
		assert.Equal(t, &analysis.YearRange{}, view.Filter.Years)
		assert.Equal(t, analysis.Summary{}, view.KPIs)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		cause := errors.New("unreachable")
		src := mocks.NewMockSource(gomock.NewController(t))
		src.EXPECT().Movies(gomock.Any()).Return(nil, cause)
		d := New(src, Options{})

		_, err := d.Build(ctx, analysis.FilterSpec{})
		assert.ErrorIs(t, err, cause)
	})

	t.Run("empty catalog", func(t *testing.T) {
		src := mocks.NewMockSource(gomock.NewController(t))
		src.EXPECT().Movies(gomock.Any()).Return(nil, nil)
		src.EXPECT().TVShows(gomock.Any()).Return(nil, nil)
		src.EXPECT().LabelCounts(gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)
		d := New(src, Options{})

		view, err := d.Build(ctx, analysis.FilterSpec{})
		require.NoError(t, err)
		assert.Equal(t, analysis.Summary{}, view.KPIs)
		assert.Empty(t, view.YearlyTrend)
		assert.Empty(t, view.TopMovieGenres)
	})
}

func TestDashboard_KPIs(t *testing.T) {
	ctx := context.Background()
	d := New(catalogSource(t), Options{})

	kpis, err := d.KPIs(ctx, analysis.FilterSpec{
		Years:       &analysis.YearRange{Low: 2015, High: 2018},
		ContentType: analysis.ContentBoth,
	})
	require.NoError(t, err)
	assert.Equal(t, analysis.Summary{Movies: 2, TVShows: 1, Total: 3}, kpis)
}
