package analysis

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/flixboard/pkg/storage"
)

var ErrInvalidFilter = errors.New("invalid filter")

var validate = validator.New(validator.WithRequiredStructEnabled())

type ContentType string

const (
	ContentBoth    ContentType = "both"
	ContentMovies  ContentType = "movies"
	ContentTVShows ContentType = "tv"
)

// Includes reports whether titles of the given kind survive the content type selection
func (c ContentType) Includes(kind storage.Kind) bool {
	switch c {
	case ContentMovies:
		return kind == storage.KindMovie
	case ContentTVShows:
		return kind == storage.KindTVShow
	default:
		return true
	}
}

type YearRange struct {
	Low  int `json:"low" validate:"gte=0"`
	High int `json:"high" validate:"gtefield=Low"`
}

// Contains is inclusive on both ends
func (r YearRange) Contains(year int) bool {
	return year >= r.Low && year <= r.High
}

// FilterSpec is a single render's filter selection. Empty label sets and a nil
// year range do not restrict.
//
// Countries is accepted and echoed back but never narrows the result: the
// catalog has no agreed semantics for joining titles to countries yet.
type FilterSpec struct {
	Years       *YearRange  `json:"years,omitempty"`
	ContentType ContentType `json:"contentType" validate:"oneof=both movies tv"`
	Genres      []string    `json:"genres"`
	Countries   []string    `json:"countries"`
	Ratings     []string    `json:"ratings"`
}

// Validate checks the year range ordering and the content type
func (f FilterSpec) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return nil
}

// RawTitle is a fact row as stored, before the release year is cleaned
type RawTitle struct {
	ID              int64
	ShowID          string
	Name            string
	ReleaseYear     string
	Rating          *string
	DurationMinutes *int
	Seasons         *int
}

// Title is a fact row with a numeric release year
type Title struct {
	ID              int64   `json:"id"`
	ShowID          string  `json:"showId,omitempty"`
	Name            string  `json:"title"`
	ReleaseYear     int     `json:"releaseYear"`
	Rating          *string `json:"rating,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Seasons         *int    `json:"seasons,omitempty"`
}

// Table is one fact table. Rows is never nil so an empty table encodes as [].
type Table struct {
	Kind storage.Kind `json:"kind"`
	Rows []Title      `json:"rows"`
}

func NewTable(kind storage.Kind, rows []Title) Table {
	if rows == nil {
		rows = []Title{}
	}
	return Table{Kind: kind, Rows: rows}
}

func (t Table) Len() int {
	return len(t.Rows)
}

// IDSet is the set of title ids linked to the selected genres
type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}
