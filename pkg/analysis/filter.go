package analysis

import (
	"slices"
)

// Filter returns a new table with the rows of t that satisfy every predicate of spec.
// linked holds the ids joined from the selected genres and is ignored when
// spec.Genres is empty. A genre selection that links to nothing yields an
// empty table.
func Filter(t Table, spec FilterSpec, linked IDSet) Table {
	if !spec.ContentType.Includes(t.Kind) {
		return NewTable(t.Kind, nil)
	}

	byGenre := len(spec.Genres) > 0
	if byGenre && len(linked) == 0 {
		return NewTable(t.Kind, nil)
	}

	rows := make([]Title, 0, len(t.Rows))
	for _, r := range t.Rows {
		if spec.Years != nil && !spec.Years.Contains(r.ReleaseYear) {
			continue
		}
		if len(spec.Ratings) > 0 && (r.Rating == nil || !slices.Contains(spec.Ratings, *r.Rating)) {
			continue
		}
		if byGenre && !linked.Has(r.ID) {
			continue
		}
		rows = append(rows, r)
	}

	return NewTable(t.Kind, rows)
}
