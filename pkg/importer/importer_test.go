package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/mocks"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/cases"
)

const titlesCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description
s1,Movie,Dick Johnson Is Dead,Kirsten Johnson,,United States,"September 25, 2021",2020,PG-13,90 min,Documentaries,"As her father nears the end of his life, filmmaker Kirsten Johnson stages his death."
s2,TV Show,Blood & Water,,"Ama Qamata, Khosi Ngema",South Africa,"September 24, 2021",2021,TV-MA,2 Seasons,"International TV Shows, TV Dramas, TV Mysteries",After crossing paths at a party.
s3,TV Show,Ganglands,Julien Leclercq,Sami Bouajila,,"September 24, 2021",2021,TV-MA,1 Season,"Crime TV Shows, International TV Shows, TV Action & Adventure",To protect his family.
s4,Movie,Sankofa,Haile Gerima,Kofi Ghanaba,"United States, Ghana, Burkina Faso, United Kingdom, Germany, Ethiopia","September 24, 2021",1993,TV-MA,125 min,"Dramas, Independent Movies, International Movies",On a photo shoot in Ghana.
s5,Podcast,Not A Title,,,,,2020,,,,
s6,Movie,Louis C.K. 2017,Louis C.K.,Louis C.K.,United States,"April 4, 2017",2017,74 min,,Movies,Louis C.K. muses on religion.
`

func TestParse(t *testing.T) {
	ctx := context.Background()

	catalog, stats, err := Parse(ctx, strings.NewReader(titlesCSV))
	require.NoError(t, err)

	assert.Equal(t, Stats{Rows: 6, Movies: 3, TVShows: 2, Genres: 11, Countries: 9, Skipped: 1}, stats)

	require.Len(t, catalog.Movies, 3)
	first := catalog.Movies[0]
	assert.Equal(t, int32(1), first.ID)
	assert.Equal(t, "s1", *first.ShowID)
	assert.Equal(t, "Dick Johnson Is Dead", *first.Title)
	assert.Nil(t, first.CastMembers)
	assert.Equal(t, "2020", *first.ReleaseYear)
	assert.Equal(t, int32(90), *first.DurationMinutes)

	// the duration landed in the rating column for this row
	odd := catalog.Movies[2]
	assert.Equal(t, int32(3), odd.ID)
	assert.Equal(t, "74 min", *odd.Rating)
	assert.Nil(t, odd.DurationMinutes)

	require.Len(t, catalog.TVShows, 2)
	assert.Equal(t, int32(1), catalog.TVShows[0].ID)
	assert.Equal(t, int32(2), *catalog.TVShows[0].Seasons)
	assert.Equal(t, int32(1), *catalog.TVShows[1].Seasons)

	var sankofaCountries []string
	for _, c := range catalog.MovieCountries {
		if c.TitleID == 2 {
			sankofaCountries = append(sankofaCountries, *c.Country)
		}
	}
	assert.Equal(t, []string{"United States", "Ghana", "Burkina Faso", "United Kingdom", "Germany", "Ethiopia"}, sankofaCountries)

	genre := "TV Dramas"
	assert.Contains(t, catalog.TVShowGenres, model.TvshowGenres{TitleID: 1, Genre: &genre})

	// a title without countries gets no link rows
	for _, c := range catalog.TVShowsCountries {
		assert.NotEqual(t, int32(2), c.TitleID)
	}
}

func TestParse_MissingColumn(t *testing.T) {
	_, _, err := Parse(context.Background(), strings.NewReader("show_id,type,title\ns1,Movie,Foo\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParse_ByteOrderMark(t *testing.T) {
	catalog, _, err := Parse(context.Background(), strings.NewReader("\ufeff"+titlesCSV))
	require.NoError(t, err)
	assert.Len(t, catalog.Movies, 3)
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		var stored storage.Catalog
		store.EXPECT().ReplaceCatalog(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c storage.Catalog) error {
			stored = c
			return nil
		}).Times(1)

		stats, err := Import(ctx, store, strings.NewReader(titlesCSV))
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Movies)
		assert.Len(t, stored.Movies, 3)
		assert.Len(t, stored.TVShows, 2)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		cause := errors.New("disk I/O error")
		store.EXPECT().ReplaceCatalog(ctx, gomock.Any()).Return(cause)

		_, err := Import(ctx, store, strings.NewReader(titlesCSV))
		assert.ErrorIs(t, err, cause)
	})
}

func TestSplitLabels(t *testing.T) {
	tests := []struct {
		cell string
		want []string
	}{
		{cell: "", want: nil},
		{cell: "Dramas", want: []string{"Dramas"}},
		{cell: " Dramas ,  International Movies,", want: []string{"Dramas", "International Movies"}},
		{cell: "India, India, France", want: []string{"India", "France"}},
		{cell: "Curac\u0327ao", want: []string{"Cura\u00e7ao"}},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLabels(tt.cell))
		})
	}
}

func TestParseDuration(t *testing.T) {
	fold := cases.Fold()
	i32 := func(v int32) *int32 { return &v }

	tests := []struct {
		in               string
		minutes, seasons *int32
	}{
		{in: "90 min", minutes: i32(90)},
		{in: "1 Season", seasons: i32(1)},
		{in: "17 Seasons", seasons: i32(17)},
		{in: "", minutes: nil, seasons: nil},
		{in: "min", minutes: nil, seasons: nil},
		{in: "ten min", minutes: nil, seasons: nil},
		{in: "3 hours", minutes: nil, seasons: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			minutes, seasons := parseDuration(fold, tt.in)
			assert.Equal(t, tt.minutes, minutes)
			assert.Equal(t, tt.seasons, seasons)
		})
	}
}
