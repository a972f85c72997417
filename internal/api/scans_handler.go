package api

import (
	"net/http"

	"github.com/purushothaman-98/cinema-wall/internal/logx"
	"github.com/purushothaman-98/cinema-wall/internal/services/scans"
)

type AllScansResponse struct {
	Scans []scans.Scan `json:"scans"`
}

// GetScansHandler exposes the raw recent scans, optionally filtered to one
// subject with ?subject=. Useful for the reviewer feed and for debugging what
// the aggregator actually saw.
func (a *API) GetScansHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logx.FromContext(ctx)

	var (
		allScans []scans.Scan
		err      error
	)
	if subject := r.URL.Query().Get("subject"); subject != "" {
		allScans, err = scans.GetScansBySubject(a.Db, ctx, subject)
	} else {
		allScans, err = scans.GetRecentScans(a.Db, ctx)
	}
	if err != nil {
		logger.Printf("Failed to fetch scans: %v", err)
		respondWithError(w, http.StatusBadGateway, "Failed to fetch scans from database")
		return
	}

	if allScans == nil {
		allScans = []scans.Scan{}
	}
	respondWithJSON(w, http.StatusOK, AllScansResponse{Scans: allScans})
}
