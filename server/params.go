package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kasuboski/flixboard/pkg/analysis"
)

// ParamError reports a query parameter that could not be parsed
type ParamError struct {
	Param string
	Value string
	Msg   string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s parameter %q: %s", e.Param, e.Value, e.Msg)
}

// ParseFilterParams extracts the filter selection from the request query.
// yearFrom and yearTo are given together or not at all; without them the
// dashboard applies its default range. genre, country and rating may repeat.
func ParseFilterParams(r *http.Request) (analysis.FilterSpec, error) {
	qp := r.URL.Query()
	spec := analysis.FilterSpec{
		ContentType: analysis.ContentBoth,
		Genres:      labels(qp["genre"]),
		Countries:   labels(qp["country"]),
		Ratings:     labels(qp["rating"]),
	}

	from, to := qp.Get("yearFrom"), qp.Get("yearTo")
	switch {
	case from == "" && to == "":
	case from == "" || to == "":
		return spec, &ParamError{Param: "yearFrom/yearTo", Value: from + "/" + to, Msg: "must be given together"}
	default:
		low, err := parseYear("yearFrom", from)
		if err != nil {
			return spec, err
		}
		high, err := parseYear("yearTo", to)
		if err != nil {
			return spec, err
		}
		if low > high {
			return spec, &ParamError{Param: "yearFrom", Value: from, Msg: "must not be after yearTo"}
		}
		spec.Years = &analysis.YearRange{Low: low, High: high}
	}

	if t := qp.Get("type"); t != "" {
		switch ct := analysis.ContentType(t); ct {
		case analysis.ContentBoth, analysis.ContentMovies, analysis.ContentTVShows:
			spec.ContentType = ct
		default:
			return spec, &ParamError{Param: "type", Value: t, Msg: "must be one of both, movies, tv"}
		}
	}

	return spec, nil
}

func parseYear(param, v string) (int, error) {
	year, err := strconv.Atoi(v)
	if err != nil || year < 0 {
		return 0, &ParamError{Param: param, Value: v, Msg: "must be a non-negative integer"}
	}
	return year, nil
}

// labels trims the values and drops empty ones
func labels(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
