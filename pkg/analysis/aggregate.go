package analysis

import (
	"cmp"
	"slices"

	"github.com/kasuboski/flixboard/pkg/storage"
)

const DefaultDurationBins = 20

// KeyCount is one group of a group-and-count
type KeyCount[K cmp.Ordered] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// countBy groups rows by key and returns the groups ascending by key. Rows
// for which key reports false are left out, the way a missing value drops
// out of a group by.
func countBy[K cmp.Ordered](t Table, key func(Title) (K, bool)) []KeyCount[K] {
	counts := make(map[K]int)
	for _, r := range t.Rows {
		k, ok := key(r)
		if !ok {
			continue
		}
		counts[k]++
	}

	out := make([]KeyCount[K], 0, len(counts))
	for k, c := range counts {
		out = append(out, KeyCount[K]{Key: k, Count: c})
	}
	slices.SortFunc(out, func(a, b KeyCount[K]) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return out
}

func CountByYear(t Table) []KeyCount[int] {
	return countBy(t, func(r Title) (int, bool) {
		return r.ReleaseYear, true
	})
}

func CountByRating(t Table) []KeyCount[string] {
	return countBy(t, func(r Title) (string, bool) {
		if r.Rating == nil {
			return "", false
		}
		return *r.Rating, true
	})
}

func CountBySeasons(t Table) []KeyCount[int] {
	return countBy(t, func(r Title) (int, bool) {
		if r.Seasons == nil {
			return 0, false
		}
		return *r.Seasons, true
	})
}

// TrendPoint is one year of the yearly trend with a count per fact table
type TrendPoint struct {
	Year    int `json:"year"`
	Movies  int `json:"movies"`
	TVShows int `json:"tvShows"`
}

// YearlyTrend outer joins the per-year counts of both tables. Every year
// present on either side gets a point and the missing side counts zero.
func YearlyTrend(movies, tvShows []KeyCount[int]) []TrendPoint {
	byYear := make(map[int]*TrendPoint, len(movies)+len(tvShows))
	point := func(year int) *TrendPoint {
		p, ok := byYear[year]
		if !ok {
			p = &TrendPoint{Year: year}
			byYear[year] = p
		}
		return p
	}

	for _, m := range movies {
		point(m.Key).Movies += m.Count
	}
	for _, tv := range tvShows {
		point(tv.Key).TVShows += tv.Count
	}

	out := make([]TrendPoint, 0, len(byYear))
	for _, p := range byYear {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b TrendPoint) int {
		return cmp.Compare(a.Year, b.Year)
	})

	return out
}

// HistogramBin covers [Start, End). The last bin of a histogram also includes End.
type HistogramBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// DurationHistogram splits movie durations into equal width bins between the
// shortest and longest duration. Rows without a duration are skipped.
func DurationHistogram(t Table, bins int) []HistogramBin {
	if bins <= 0 {
		bins = DefaultDurationBins
	}

	durations := make([]float64, 0, len(t.Rows))
	for _, r := range t.Rows {
		if r.DurationMinutes != nil {
			durations = append(durations, float64(*r.DurationMinutes))
		}
	}
	if len(durations) == 0 {
		return []HistogramBin{}
	}

	lo, hi := slices.Min(durations), slices.Max(durations)
	if lo == hi {
		return []HistogramBin{{Start: lo, End: hi, Count: len(durations)}}
	}

	// edges and bin index are both derived from the same ratio so a value
	// sitting exactly on an edge lands in the bin that starts there
	span := hi - lo
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Start = lo + span*float64(i)/float64(bins)
		out[i].End = lo + span*float64(i+1)/float64(bins)
	}
	out[bins-1].End = hi

	for _, d := range durations {
		i := int((d - lo) * float64(bins) / span)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}

	return out
}

// TopN returns at most n of the leading labels. n <= 0 keeps everything.
// Popularity tables come from the full association tables, never from a
// filtered table, so they do not move with the filter selection.
func TopN(counts []storage.LabelCount, n int) []storage.LabelCount {
	if n <= 0 || n >= len(counts) {
		n = len(counts)
	}

	out := make([]storage.LabelCount, n)
	copy(out, counts[:n])
	return out
}
