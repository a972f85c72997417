// Response shapes for the TMDB search and detail endpoints. Only the fields
// the enrichment path reads are mapped.
package tmdb

type searchResponse struct {
	Results []movieResult `json:"results"`
}

type movieResult struct {
	ID           int     `json:"id"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
}

type movieDetail struct {
	movieResult
	Runtime int     `json:"runtime"`
	Genres  []genre `json:"genres"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
