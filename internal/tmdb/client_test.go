package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, detailStatus int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/search/movie"):
			require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			fmt.Fprint(w, `{"results":[{
				"id": 693134,
				"poster_path": "/dune2.jpg",
				"backdrop_path": "/dune2-backdrop.jpg",
				"release_date": "2024-02-27",
				"overview": "Paul Atreides unites with the Fremen.",
				"vote_average": 8.2
			}]}`)
		case strings.HasPrefix(r.URL.Path, "/movie/693134"):
			if detailStatus != http.StatusOK {
				w.WriteHeader(detailStatus)
				return
			}
			fmt.Fprint(w, `{
				"id": 693134,
				"poster_path": "/dune2.jpg",
				"backdrop_path": "/dune2-backdrop.jpg",
				"release_date": "2024-02-27",
				"overview": "Paul Atreides unites with the Fremen.",
				"vote_average": 8.2,
				"runtime": 167,
				"genres": [{"id":878,"name":"Science Fiction"},{"id":12,"name":"Adventure"}]
			}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestFetchMetadata(t *testing.T) {
	srv := newTestServer(t, http.StatusOK)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)

	meta, err := client.FetchMetadata(context.Background(), "Dune Part Two")
	require.NoError(t, err)
	require.NotNil(t, meta)
	require.Equal(t, "2024-02-27", meta.ReleaseDate)
	require.Equal(t, imageBaseURL+"/dune2.jpg", meta.PosterURL)
	require.Equal(t, imageBaseURL+"/dune2-backdrop.jpg", meta.BackdropURL)
	require.Equal(t, 167, meta.RuntimeMinutes)
	require.Equal(t, []string{"Science Fiction", "Adventure"}, meta.Genres)
	require.InDelta(t, 8.2, meta.VoteAverage, 1e-9)
}

func TestFetchMetadataDetailFailureReturnsPartial(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError)
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)

	meta, err := client.FetchMetadata(context.Background(), "Dune Part Two")
	require.NoError(t, err)
	require.NotNil(t, meta)
	// Search fields survive; detail-only fields stay zero.
	require.Equal(t, imageBaseURL+"/dune2.jpg", meta.PosterURL)
	require.Equal(t, 0, meta.RuntimeMinutes)
	require.Empty(t, meta.Genres)
}

func TestFetchMetadataNoKey(t *testing.T) {
	client := NewClientWithBaseURL("", "http://unreachable.invalid")

	meta, err := client.FetchMetadata(context.Background(), "anything")
	require.NoError(t, err)
	require.Nil(t, meta)
}

func TestFetchMetadataNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)

	meta, err := client.FetchMetadata(context.Background(), "no such movie")
	require.NoError(t, err)
	require.Nil(t, meta)
}

func TestFetchMetadataServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)

	meta, err := client.FetchMetadata(context.Background(), "Dune")
	require.NoError(t, err)
	require.Nil(t, meta)
}
