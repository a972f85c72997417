package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"
)

// Client looks up canonical movie metadata on TMDB. Every failure mode (no
// API key, network error, non-2xx, no match, malformed body) collapses to a
// nil result: enrichment is strictly best-effort and must never surface an
// error to the aggregator.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewClientWithBaseURL exists for tests that point the client at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

var _ consensus.MetadataFetcher = (*Client)(nil)

// FetchMetadata searches for the subject and, when the first match resolves,
// fetches its detail record for runtime and genres. A search hit whose detail
// call fails still returns the partial search fields.
func (c *Client) FetchMetadata(ctx context.Context, query string) (*consensus.Metadata, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	searchURL := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s&language=en-US&page=1",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	var search searchResponse
	if err := c.getJSON(ctx, searchURL, &search); err != nil {
		return nil, nil
	}
	if len(search.Results) == 0 {
		return nil, nil
	}
	first := search.Results[0]

	detailURL := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, first.ID, url.QueryEscape(c.apiKey))

	var detail movieDetail
	if err := c.getJSON(ctx, detailURL, &detail); err != nil {
		return mapResult(first, nil, 0), nil
	}

	return mapResult(detail.movieResult, detail.Genres, detail.Runtime), nil
}

func (c *Client) getJSON(ctx context.Context, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-2xx status: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func mapResult(movie movieResult, genres []genre, runtime int) *consensus.Metadata {
	meta := &consensus.Metadata{
		ReleaseDate:    movie.ReleaseDate,
		Overview:       movie.Overview,
		VoteAverage:    movie.VoteAverage,
		RuntimeMinutes: runtime,
	}
	if movie.PosterPath != "" {
		meta.PosterURL = imageBaseURL + movie.PosterPath
	}
	if movie.BackdropPath != "" {
		meta.BackdropURL = imageBaseURL + movie.BackdropPath
	}
	for _, g := range genres {
		meta.Genres = append(meta.Genres, g.Name)
	}
	return meta
}
