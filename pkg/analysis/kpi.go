package analysis

type Summary struct {
	Movies  int `json:"movies"`
	TVShows int `json:"tvShows"`
	Total   int `json:"total"`
}

// Summarize counts the rows of both filtered tables
func Summarize(movies, tvShows Table) Summary {
	return Summary{
		Movies:  movies.Len(),
		TVShows: tvShows.Len(),
		Total:   movies.Len() + tvShows.Len(),
	}
}

// MixSlice is one slice of the content mix pie
type MixSlice struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func ContentMix(s Summary) []MixSlice {
	return []MixSlice{
		{Type: "Movies", Count: s.Movies},
		{Type: "TV Shows", Count: s.TVShows},
	}
}
