package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// ReplaceCatalog deletes every stored row and writes the given catalog in a single transaction
func (s *SQLite) ReplaceCatalog(ctx context.Context, catalog storage.Catalog) error {
	log := logger.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return err
	}

	// link tables first so no link ever points at a missing title
	tables := []sqlite.Table{
		table.TvshowsCountries,
		table.MovieCountries,
		table.TvshowGenres,
		table.MovieGenres,
		table.Tvshows,
		table.Movies,
	}
	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", t.TableName())); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", t.TableName(), err)
		}
	}

	inserts := []func() error{
		func() error {
			return insertBatches(ctx, s, tx, catalog.Movies, func(b []model.Movies) sqlite.InsertStatement {
				return table.Movies.INSERT(table.Movies.AllColumns).MODELS(b)
			})
		},
		func() error {
			return insertBatches(ctx, s, tx, catalog.TVShows, func(b []model.Tvshows) sqlite.InsertStatement {
				return table.Tvshows.INSERT(table.Tvshows.AllColumns).MODELS(b)
			})
		},
		func() error {
			return insertBatches(ctx, s, tx, catalog.MovieGenres, func(b []model.MovieGenres) sqlite.InsertStatement {
				return table.MovieGenres.INSERT(table.MovieGenres.AllColumns).MODELS(b)
			})
		},
		func() error {
			return insertBatches(ctx, s, tx, catalog.TVShowGenres, func(b []model.TvshowGenres) sqlite.InsertStatement {
				return table.TvshowGenres.INSERT(table.TvshowGenres.AllColumns).MODELS(b)
			})
		},
		func() error {
			return insertBatches(ctx, s, tx, catalog.MovieCountries, func(b []model.MovieCountries) sqlite.InsertStatement {
				return table.MovieCountries.INSERT(table.MovieCountries.AllColumns).MODELS(b)
			})
		},
		func() error {
			return insertBatches(ctx, s, tx, catalog.TVShowsCountries, func(b []model.TvshowsCountries) sqlite.InsertStatement {
				return table.TvshowsCountries.INSERT(table.TvshowsCountries.AllColumns).MODELS(b)
			})
		},
	}
	for _, insert := range inserts {
		if err := insert(); err != nil {
			tx.Rollback()
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		log.Debug("failed to commit transaction", zap.Error(err))
		return err
	}

	log.Infow("replaced catalog",
		"movies", len(catalog.Movies),
		"tvshows", len(catalog.TVShows),
		"movie_genres", len(catalog.MovieGenres),
		"tvshow_genres", len(catalog.TVShowGenres),
		"movie_countries", len(catalog.MovieCountries),
		"tvshows_countries", len(catalog.TVShowsCountries))

	return nil
}

func insertBatches[T any](ctx context.Context, s *SQLite, tx *sql.Tx, rows []T, insert func([]T) sqlite.InsertStatement) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		if err := s.handleStatement(ctx, tx, insert(rows[start:end])); err != nil {
			return err
		}
	}

	return nil
}
