package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/table"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// insertBatchSize keeps multi-row inserts under sqlite's bound parameter limit
const insertBatchSize = 500

type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new sqlite database given a path to the database file
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// a single connection keeps ":memory:" databases shared across queries
	db.SetMaxOpenConns(1)

	return &SQLite{
		db: db,
	}, nil
}

// RunMigrations brings the schema up to the latest version
func (s *SQLite) RunMigrations(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := runMigrations(s.db)
	if err != nil {
		log.Error("failed to run migrations", zap.Error(err))
		return err
	}

	return nil
}

// Close releases the underlying database handle
func (s *SQLite) Close() error {
	return s.db.Close()
}

// ListMovies returns every row of the movies table ordered by id
func (s *SQLite) ListMovies(ctx context.Context) ([]*model.Movies, error) {
	movies := make([]*model.Movies, 0)

	stmt := table.Movies.
		SELECT(table.Movies.AllColumns).
		FROM(table.Movies).
		ORDER_BY(table.Movies.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &movies)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	return movies, nil
}

// ListTVShows returns every row of the tvshows table ordered by id
func (s *SQLite) ListTVShows(ctx context.Context) ([]*model.Tvshows, error) {
	shows := make([]*model.Tvshows, 0)

	stmt := table.Tvshows.
		SELECT(table.Tvshows.AllColumns).
		FROM(table.Tvshows).
		ORDER_BY(table.Tvshows.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		return nil, fmt.Errorf("failed to list tv shows: %w", err)
	}

	return shows, nil
}

// ListGenreTitleIDs returns the distinct title ids linked to at least one of the given genres
func (s *SQLite) ListGenreTitleIDs(ctx context.Context, kind storage.Kind, genres []string) ([]int64, error) {
	ids := make([]int64, 0)
	if len(genres) == 0 {
		return ids, nil
	}

	labels := make([]sqlite.Expression, len(genres))
	for i, g := range genres {
		labels[i] = sqlite.String(g)
	}

	var linked []int32
	switch kind {
	case storage.KindMovie:
		var rows []*model.MovieGenres
		stmt := table.MovieGenres.
			SELECT(table.MovieGenres.AllColumns).
			FROM(table.MovieGenres).
			WHERE(table.MovieGenres.Genre.IN(labels...))
		if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
			return nil, fmt.Errorf("failed to list movie genre links: %w", err)
		}
		for _, r := range rows {
			linked = append(linked, r.TitleID)
		}
	case storage.KindTVShow:
		var rows []*model.TvshowGenres
		stmt := table.TvshowGenres.
			SELECT(table.TvshowGenres.AllColumns).
			FROM(table.TvshowGenres).
			WHERE(table.TvshowGenres.Genre.IN(labels...))
		if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
			return nil, fmt.Errorf("failed to list tv show genre links: %w", err)
		}
		for _, r := range rows {
			linked = append(linked, r.TitleID)
		}
	default:
		return nil, fmt.Errorf("unknown title kind %q", kind)
	}

	seen := make(map[int32]struct{}, len(linked))
	for _, id := range linked {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, int64(id))
	}

	return ids, nil
}

func (s *SQLite) handleStatement(ctx context.Context, tx *sql.Tx, stmt sqlite.Statement) error {
	log := logger.FromCtx(ctx)

	_, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		return err
	}

	return nil
}
