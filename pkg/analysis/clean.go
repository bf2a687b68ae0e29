package analysis

import (
	"strconv"

	"github.com/kasuboski/flixboard/pkg/storage"
)

// NormalizeYears keeps the rows whose release year is made only of ASCII
// digits and converts it to an int. Other rows are dropped without error.
func NormalizeYears(kind storage.Kind, raw []RawTitle) Table {
	rows := make([]Title, 0, len(raw))
	for _, r := range raw {
		if !isDigits(r.ReleaseYear) {
			continue
		}

		year, err := strconv.Atoi(r.ReleaseYear)
		if err != nil {
			// digits only but out of int range
			continue
		}

		rows = append(rows, Title{
			ID:              r.ID,
			ShowID:          r.ShowID,
			Name:            r.Name,
			ReleaseYear:     year,
			Rating:          r.Rating,
			DurationMinutes: r.DurationMinutes,
			Seasons:         r.Seasons,
		})
	}

	return NewTable(kind, rows)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// YearBounds returns the smallest and largest release year across the tables.
// ok is false when every table is empty.
func YearBounds(tables ...Table) (low, high int, ok bool) {
	for _, t := range tables {
		for _, r := range t.Rows {
			if !ok {
				low, high, ok = r.ReleaseYear, r.ReleaseYear, true
				continue
			}
			low = min(low, r.ReleaseYear)
			high = max(high, r.ReleaseYear)
		}
	}
	return low, high, ok
}
