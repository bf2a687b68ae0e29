package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var ErrMissingColumn = errors.New("missing csv column")

const (
	colShowID      = "show_id"
	colType        = "type"
	colTitle       = "title"
	colDirector    = "director"
	colCast        = "cast"
	colCountry     = "country"
	colDateAdded   = "date_added"
	colReleaseYear = "release_year"
	colRating      = "rating"
	colDuration    = "duration"
	colListedIn    = "listed_in"
	colDescription = "description"
)

var requiredColumns = []string{colType, colTitle, colReleaseYear, colDuration, colListedIn, colCountry}

// Stats counts what an import read and wrote
type Stats struct {
	Rows      int
	Movies    int
	TVShows   int
	Genres    int
	Countries int
	Skipped   int
}

// Parse reads a netflix_titles.csv export and splits it into the catalog tables.
// Titles are numbered per kind in file order starting at 1. Rows whose type is
// neither a movie nor a tv show are skipped.
func Parse(ctx context.Context, r io.Reader) (storage.Catalog, Stats, error) {
	log := logger.FromCtx(ctx)

	var (
		catalog storage.Catalog
		stats   Stats
	)

	fold := cases.Fold()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return catalog, stats, fmt.Errorf("csv: read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return catalog, stats, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return catalog, stats, fmt.Errorf("csv: read row %d: %w", stats.Rows+1, err)
		}
		stats.Rows++

		field := func(name string) *string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return nil
			}
			v := strings.TrimSpace(record[i])
			if v == "" {
				return nil
			}
			return &v
		}

		switch fold.String(value(field(colType))) {
		case "movie":
			id := int32(len(catalog.Movies) + 1)
			minutes, _ := parseDuration(fold, value(field(colDuration)))
			catalog.Movies = append(catalog.Movies, model.Movies{
				ID:              id,
				ShowID:          field(colShowID),
				Title:           field(colTitle),
				Director:        field(colDirector),
				CastMembers:     field(colCast),
				DateAdded:       field(colDateAdded),
				ReleaseYear:     field(colReleaseYear),
				Rating:          field(colRating),
				DurationMinutes: minutes,
				Description:     field(colDescription),
			})
			for _, g := range SplitLabels(value(field(colListedIn))) {
				catalog.MovieGenres = append(catalog.MovieGenres, model.MovieGenres{TitleID: id, Genre: &g})
			}
			for _, c := range SplitLabels(value(field(colCountry))) {
				catalog.MovieCountries = append(catalog.MovieCountries, model.MovieCountries{TitleID: id, Country: &c})
			}
		case "tv show":
			id := int32(len(catalog.TVShows) + 1)
			_, seasons := parseDuration(fold, value(field(colDuration)))
			catalog.TVShows = append(catalog.TVShows, model.Tvshows{
				ID:          id,
				ShowID:      field(colShowID),
				Title:       field(colTitle),
				Director:    field(colDirector),
				CastMembers: field(colCast),
				DateAdded:   field(colDateAdded),
				ReleaseYear: field(colReleaseYear),
				Rating:      field(colRating),
				Seasons:     seasons,
				Description: field(colDescription),
			})
			for _, g := range SplitLabels(value(field(colListedIn))) {
				catalog.TVShowGenres = append(catalog.TVShowGenres, model.TvshowGenres{TitleID: id, Genre: &g})
			}
			for _, c := range SplitLabels(value(field(colCountry))) {
				catalog.TVShowsCountries = append(catalog.TVShowsCountries, model.TvshowsCountries{TitleID: id, Country: &c})
			}
		default:
			log.Debug("skipping row with unknown type", zap.Int("row", stats.Rows), zap.Stringp("type", field(colType)))
			stats.Skipped++
		}
	}

	stats.Movies = len(catalog.Movies)
	stats.TVShows = len(catalog.TVShows)
	stats.Genres = len(catalog.MovieGenres) + len(catalog.TVShowGenres)
	stats.Countries = len(catalog.MovieCountries) + len(catalog.TVShowsCountries)

	return catalog, stats, nil
}

// Import parses r and replaces the stored catalog with its contents
func Import(ctx context.Context, store storage.ImportStorage, r io.Reader) (Stats, error) {
	log := logger.FromCtx(ctx)

	catalog, stats, err := Parse(ctx, r)
	if err != nil {
		return stats, err
	}

	if err := store.ReplaceCatalog(ctx, catalog); err != nil {
		return stats, fmt.Errorf("failed to store catalog: %w", err)
	}

	log.Infow("imported catalog", "rows", stats.Rows, "movies", stats.Movies, "tvshows", stats.TVShows, "skipped", stats.Skipped)
	return stats, nil
}

// SplitLabels splits a comma separated cell into trimmed, NFC normalized
// labels. Empty and repeated labels are dropped, first occurrence wins.
func SplitLabels(cell string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(cell, ",") {
		label := norm.NFC.String(strings.TrimSpace(part))
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

// parseDuration reads "90 min" as minutes and "2 Seasons" or "1 Season" as seasons.
// Anything else yields nil for both.
func parseDuration(fold cases.Caser, s string) (minutes, seasons *int32) {
	num, unit, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return nil, nil
	}

	n, err := strconv.ParseInt(num, 10, 32)
	if err != nil || n < 0 {
		return nil, nil
	}
	v := int32(n)

	switch fold.String(strings.TrimSpace(unit)) {
	case "min", "mins", "minutes":
		return &v, nil
	case "season", "seasons":
		return nil, &v
	default:
		return nil, nil
	}
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
