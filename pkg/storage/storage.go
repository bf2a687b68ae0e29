package storage

import (
	"context"
	"errors"

	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/model"
)

type Storage interface {
	RunMigrations(ctx context.Context) error
	Close() error
	CatalogStorage
	ImportStorage
}

// CatalogStorage is the read-only side of the store used to render the dashboard
type CatalogStorage interface {
	ListMovies(ctx context.Context) ([]*model.Movies, error)
	ListTVShows(ctx context.Context) ([]*model.Tvshows, error)
	ListGenreTitleIDs(ctx context.Context, kind Kind, genres []string) ([]int64, error)
	CountLabels(ctx context.Context, link Link) ([]LabelCount, error)
}

// ImportStorage replaces the stored catalog
type ImportStorage interface {
	ReplaceCatalog(ctx context.Context, catalog Catalog) error
}

// Kind is the category of a fact table
type Kind string

const (
	KindMovie  Kind = "movie"
	KindTVShow Kind = "tvshow"
)

// Link names one of the association tables that map a title to a label
type Link string

const (
	LinkMovieGenres     Link = "movie_genres"
	LinkTVShowGenres    Link = "tvshow_genres"
	LinkMovieCountries  Link = "movie_countries"
	LinkTVShowCountries Link = "tvshows_countries"
)

var ErrUnknownLink = errors.New("unknown association table")

// LabelCount is a label from an association table and the number of links carrying it
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Catalog is a full set of rows for every table in the schema
type Catalog struct {
	Movies           []model.Movies
	TVShows          []model.Tvshows
	MovieGenres      []model.MovieGenres
	TVShowGenres     []model.TvshowGenres
	MovieCountries   []model.MovieCountries
	TVShowsCountries []model.TvshowsCountries
}
