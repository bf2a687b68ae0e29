package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/flixboard/pkg/storage"
	"github.com/kasuboski/flixboard/pkg/storage/sqlite/schema/gen/table"
)

// labelColumns maps each association table to its label column
var labelColumns = map[storage.Link]struct {
	table  sqlite.Table
	column sqlite.Column
}{
	storage.LinkMovieGenres:     {table.MovieGenres, table.MovieGenres.Genre},
	storage.LinkTVShowGenres:    {table.TvshowGenres, table.TvshowGenres.Genre},
	storage.LinkMovieCountries:  {table.MovieCountries, table.MovieCountries.Country},
	storage.LinkTVShowCountries: {table.TvshowsCountries, table.TvshowsCountries.Country},
}

// labelCountQuery groups an association table by label. Ties keep the order
// in which a label first appears in the table.
func labelCountQuery(tableName, column string) string {
	return fmt.Sprintf(`
		SELECT %[2]s AS label,
		       COUNT(*) AS total
		FROM %[1]s
		WHERE %[2]s IS NOT NULL
		GROUP BY %[2]s
		ORDER BY total DESC, MIN(rowid) ASC
	`, tableName, column)
}

// CountLabels returns the number of links per label across the whole association table
func (s *SQLite) CountLabels(ctx context.Context, link storage.Link) ([]storage.LabelCount, error) {
	target, ok := labelColumns[link]
	if !ok {
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownLink, link)
	}

	// Use raw SQL since Jet ORM doesn't properly handle aggregate queries with custom structs
	query := labelCountQuery(target.table.TableName(), target.column.Name())
	s.mu.Lock()
	rows, err := s.db.QueryContext(ctx, query)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to count %s labels: %w", link, err)
	}
	defer rows.Close()

	dest := make([]storage.LabelCount, 0)
	for rows.Next() {
		var lc storage.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		dest = append(dest, lc)
	}

	return dest, rows.Err()
}
