package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// ErrUnrecognizedSchema is returned when catalog tables exist outside of
// migration bookkeeping but do not match the first schema version.
var ErrUnrecognizedSchema = errors.New("existing catalog tables do not match schema version 1")

// baselineColumns lists every table and column created by migration 1
var baselineColumns = map[string][]string{
	"movies":            {"id", "show_id", "title", "director", "cast_members", "date_added", "release_year", "rating", "duration_minutes", "description"},
	"tvshows":           {"id", "show_id", "title", "director", "cast_members", "date_added", "release_year", "rating", "seasons", "description"},
	"movie_genres":      {"title_id", "genre"},
	"tvshow_genres":     {"title_id", "genre"},
	"movie_countries":   {"title_id", "country"},
	"tvshows_countries": {"title_id", "country"},
}

// runMigrations executes pending database migrations
func runMigrations(db *sql.DB) error {
	isLegacy, err := isLegacyDatabase(db)
	if err != nil {
		return fmt.Errorf("failed to check database type: %w", err)
	}
	if isLegacy {
		if err := checkBaselineSchema(db); err != nil {
			return err
		}
	}

	sourceDriver, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	dbDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{
		MigrationsTable: "schema_migrations",
		NoTxWrap:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if isLegacy {
		// the catalog tables were created from migration 1 by hand
		if err := m.Force(1); err != nil {
			return fmt.Errorf("failed to baseline existing catalog: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// isLegacyDatabase reports whether a movies table exists without migration bookkeeping
func isLegacyDatabase(db *sql.DB) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_migrations'`
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	query = `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='movies'`
	err = db.QueryRow(query).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// checkBaselineSchema verifies an unmanaged database carries every table and
// column of migration 1 so it can be baselined at that version. Nothing is
// written when the check fails.
func checkBaselineSchema(db *sql.DB) error {
	for table, want := range baselineColumns {
		rows, err := db.Query(`SELECT name FROM pragma_table_info(?)`, table)
		if err != nil {
			return fmt.Errorf("failed to inspect table %s: %w", table, err)
		}

		have := make(map[string]bool)
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				rows.Close()
				return fmt.Errorf("failed to inspect table %s: %w", table, err)
			}
			have[name] = true
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return fmt.Errorf("failed to inspect table %s: %w", table, err)
		}

		if len(have) == 0 {
			return fmt.Errorf("%w: missing table %s", ErrUnrecognizedSchema, table)
		}
		for _, col := range want {
			if !have[col] {
				return fmt.Errorf("%w: table %s has no column %s", ErrUnrecognizedSchema, table, col)
			}
		}
	}

	return nil
}

// GetMigrationVersion returns the current migration version and dirty state
func (s *SQLite) GetMigrationVersion() (version uint, dirty bool, err error) {
	var v sql.NullInt64
	var d bool
	query := `SELECT version, dirty FROM schema_migrations LIMIT 1`
	err = s.db.QueryRow(query).Scan(&v, &d)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return uint(v.Int64), d, nil
}
