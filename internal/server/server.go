package server

import (
	"net/http"

	"github.com/purushothaman-98/cinema-wall/internal/api"
	"github.com/purushothaman-98/cinema-wall/internal/mongodb"
	"github.com/purushothaman-98/cinema-wall/internal/narrative"
	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
)

func NewServer(db *mongodb.DB, aggregator *consensus.Aggregator, narrativeService *narrative.Service) http.Handler {
	a := api.NewAPI(db, aggregator, narrativeService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", a.RootHandler)

	mux.HandleFunc("GET /movies", a.GetMoviesHandler)
	mux.HandleFunc("GET /movies/{slug}", a.GetMovieDetailHandler)
	mux.HandleFunc("GET /movies/{slug}/report", a.GetMovieReportHandler)

	mux.HandleFunc("GET /scans", a.GetScansHandler)

	return RequestIdMiddleware(mux)
}
