package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func initSqlite(t *testing.T, ctx context.Context) storage.Storage {
	store, err := New(filepath.Join(t.TempDir(), "flixboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	err = store.RunMigrations(ctx)
	require.NoError(t, err)
	return store
}

func testCatalog() storage.Catalog {
	return storage.Catalog{
		Movies: []model.Movies{
			{ID: 1, ShowID: ptr("s1"), Title: ptr("Dick Johnson Is Dead"), ReleaseYear: ptr("2020"), Rating: ptr("PG-13"), DurationMinutes: ptr(int32(90))},
			{ID: 2, ShowID: ptr("s7"), Title: ptr("My Little Pony"), ReleaseYear: ptr("2021"), Rating: ptr("PG"), DurationMinutes: ptr(int32(91))},
			{ID: 3, ShowID: ptr("s8"), Title: ptr("Sankofa"), ReleaseYear: ptr("1993"), Rating: nil, DurationMinutes: nil},
		},
		TVShows: []model.Tvshows{
			{ID: 1, ShowID: ptr("s2"), Title: ptr("Blood & Water"), ReleaseYear: ptr("2021"), Rating: ptr("TV-MA"), Seasons: ptr(int32(2))},
			{ID: 2, ShowID: ptr("s3"), Title: ptr("Ganglands"), ReleaseYear: ptr("unknown"), Rating: ptr("TV-MA"), Seasons: ptr(int32(1))},
		},
		MovieGenres: []model.MovieGenres{
			{TitleID: 1, Genre: ptr("Documentaries")},
			{TitleID: 2, Genre: ptr("Children & Family Movies")},
			{TitleID: 3, Genre: ptr("Dramas")},
			{TitleID: 3, Genre: ptr("Independent Movies")},
			{TitleID: 2, Genre: ptr("Dramas")},
		},
		TVShowGenres: []model.TvshowGenres{
			{TitleID: 1, Genre: ptr("International TV Shows")},
			{TitleID: 1, Genre: ptr("TV Dramas")},
			{TitleID: 2, Genre: ptr("Crime TV Shows")},
			{TitleID: 2, Genre: ptr("International TV Shows")},
		},
		MovieCountries: []model.MovieCountries{
			{TitleID: 1, Country: ptr("United States")},
			{TitleID: 3, Country: ptr("Ghana")},
			{TitleID: 3, Country: ptr("United States")},
			{TitleID: 2, Country: nil},
		},
		TVShowsCountries: []model.TvshowsCountries{
			{TitleID: 1, Country: ptr("South Africa")},
		},
	}
}

func TestInit(t *testing.T) {
	store := initSqlite(t, context.Background())
	assert.NotNil(t, store)
}

func TestListTitles(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	t.Run("empty", func(t *testing.T) {
		movies, err := store.ListMovies(ctx)
		require.NoError(t, err)
		assert.Empty(t, movies)

		shows, err := store.ListTVShows(ctx)
		require.NoError(t, err)
		assert.Empty(t, shows)
	})

	catalog := testCatalog()
	require.NoError(t, store.ReplaceCatalog(ctx, catalog))

	t.Run("movies", func(t *testing.T) {
		movies, err := store.ListMovies(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 3)
		assert.Equal(t, &catalog.Movies[0], movies[0])
		assert.Equal(t, &catalog.Movies[2], movies[2])
		assert.Nil(t, movies[2].Rating)
	})

	t.Run("tv shows", func(t *testing.T) {
		shows, err := store.ListTVShows(ctx)
		require.NoError(t, err)
		require.Len(t, shows, 2)
		assert.Equal(t, "unknown", *shows[1].ReleaseYear)
		assert.Equal(t, int32(2), *shows[0].Seasons)
	})
}

func TestListGenreTitleIDs(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	require.NoError(t, store.ReplaceCatalog(ctx, testCatalog()))

	t.Run("no genres", func(t *testing.T) {
		ids, err := store.ListGenreTitleIDs(ctx, storage.KindMovie, nil)
		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})

	t.Run("distinct movie ids", func(t *testing.T) {
		ids, err := store.ListGenreTitleIDs(ctx, storage.KindMovie, []string{"Dramas", "Independent Movies"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{2, 3}, ids)
	})

	t.Run("tv show ids", func(t *testing.T) {
		ids, err := store.ListGenreTitleIDs(ctx, storage.KindTVShow, []string{"International TV Shows"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2}, ids)
	})

	t.Run("unmatched genre", func(t *testing.T) {
		ids, err := store.ListGenreTitleIDs(ctx, storage.KindTVShow, []string{"Dramas"})
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := store.ListGenreTitleIDs(ctx, storage.Kind("podcast"), []string{"Dramas"})
		assert.Error(t, err)
	})
}

func TestCountLabels(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	require.NoError(t, store.ReplaceCatalog(ctx, testCatalog()))

	t.Run("sorted descending with ties in first-seen order", func(t *testing.T) {
		counts, err := store.CountLabels(ctx, storage.LinkMovieGenres)
		require.NoError(t, err)

		want := []storage.LabelCount{
			{Label: "Dramas", Count: 2},
			{Label: "Documentaries", Count: 1},
			{Label: "Children & Family Movies", Count: 1},
			{Label: "Independent Movies", Count: 1},
		}
		assert.Equal(t, want, counts)
	})

	t.Run("null labels are skipped", func(t *testing.T) {
		counts, err := store.CountLabels(ctx, storage.LinkMovieCountries)
		require.NoError(t, err)

		want := []storage.LabelCount{
			{Label: "United States", Count: 2},
			{Label: "Ghana", Count: 1},
		}
		assert.Equal(t, want, counts)
	})

	t.Run("tv tables", func(t *testing.T) {
		genres, err := store.CountLabels(ctx, storage.LinkTVShowGenres)
		require.NoError(t, err)
		require.NotEmpty(t, genres)
		assert.Equal(t, storage.LabelCount{Label: "International TV Shows", Count: 2}, genres[0])

		countries, err := store.CountLabels(ctx, storage.LinkTVShowCountries)
		require.NoError(t, err)
		assert.Equal(t, []storage.LabelCount{{Label: "South Africa", Count: 1}}, countries)
	})

	t.Run("unknown link", func(t *testing.T) {
		_, err := store.CountLabels(ctx, storage.Link("movie_directors"))
		assert.ErrorIs(t, err, storage.ErrUnknownLink)
	})
}

func TestReplaceCatalog(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	require.NoError(t, store.ReplaceCatalog(ctx, testCatalog()))

	t.Run("replaces previous rows", func(t *testing.T) {
		next := storage.Catalog{
			Movies: []model.Movies{{ID: 10, Title: ptr("Only Movie"), ReleaseYear: ptr("2019")}},
		}
		require.NoError(t, store.ReplaceCatalog(ctx, next))

		movies, err := store.ListMovies(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, int32(10), movies[0].ID)

		shows, err := store.ListTVShows(ctx)
		require.NoError(t, err)
		assert.Empty(t, shows)

		counts, err := store.CountLabels(ctx, storage.LinkMovieGenres)
		require.NoError(t, err)
		assert.Empty(t, counts)
	})

	t.Run("more rows than a single batch", func(t *testing.T) {
		var catalog storage.Catalog
		for i := 1; i <= insertBatchSize*2+7; i++ {
			catalog.Movies = append(catalog.Movies, model.Movies{
				ID:          int32(i),
				Title:       ptr(fmt.Sprintf("movie %d", i)),
				ReleaseYear: ptr("2001"),
			})
			catalog.MovieGenres = append(catalog.MovieGenres, model.MovieGenres{TitleID: int32(i), Genre: ptr("Dramas")})
		}
		require.NoError(t, store.ReplaceCatalog(ctx, catalog))

		movies, err := store.ListMovies(ctx)
		require.NoError(t, err)
		assert.Len(t, movies, insertBatchSize*2+7)

		counts, err := store.CountLabels(ctx, storage.LinkMovieGenres)
		require.NoError(t, err)
		assert.Equal(t, []storage.LabelCount{{Label: "Dramas", Count: insertBatchSize*2 + 7}}, counts)
	})
}
