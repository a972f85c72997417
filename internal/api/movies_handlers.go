package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/purushothaman-98/cinema-wall/internal/generics"
	"github.com/purushothaman-98/cinema-wall/internal/logx"
	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
	"github.com/purushothaman-98/cinema-wall/internal/services/scans"
)

func (a *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Cinema Wall",
	})
}

// GetMoviesHandler aggregates the recent scans into the wall of movies.
// Supports ?search=, ?sort=trending|latest|az, ?page= and ?size=.
func (a *API) GetMoviesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logx.FromContext(ctx)

	allScans, err := scans.GetRecentScans(a.Db, ctx)
	if err != nil {
		logger.Printf("Failed to fetch scans: %v", err)
		respondWithError(w, http.StatusBadGateway, "Failed to fetch scans from database")
		return
	}

	aggregates := a.Aggregator.Aggregate(ctx, allScans, false)

	if search := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search"))); search != "" {
		filtered := aggregates[:0]
		for _, agg := range aggregates {
			if strings.Contains(strings.ToLower(agg.SubjectName), search) {
				filtered = append(filtered, agg)
			}
		}
		aggregates = filtered
	}

	sortAggregates(aggregates, r.URL.Query().Get("sort"))

	page := generics.StringToInt(r.URL.Query().Get("page"))
	size := generics.StringToInt(r.URL.Query().Get("size"))
	respondWithJSON(w, http.StatusOK, paginate(aggregates, page, size))
}

// GetMovieDetailHandler resolves one subject from its slug (case-insensitive
// match against stored subject names) and returns its aggregate, enriched
// with external metadata unless ?enrich=false.
func (a *API) GetMovieDetailHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logx.FromContext(ctx)

	subjectName := consensus.Unslugify(r.PathValue("slug"))

	subjectScans, err := scans.GetScansBySubject(a.Db, ctx, subjectName)
	if err != nil {
		logger.Printf("Failed to fetch scans for %q: %v", subjectName, err)
		respondWithError(w, http.StatusBadGateway, "Failed to fetch scans from database")
		return
	}
	if len(subjectScans) == 0 {
		respondWithError(w, http.StatusNotFound, formatErrorMessage(ErrSubjectNotFound))
		return
	}

	enrich := true
	if parsed := parseUrlQueryToBool(r.URL.Query().Get("enrich")); parsed != nil {
		enrich = *parsed
	}

	aggregates := a.Aggregator.Aggregate(ctx, subjectScans, enrich)
	respondWithJSON(w, http.StatusOK, aggregates[0])
}

// GetMovieReportHandler returns the narrative consensus report for one
// subject: from the vault when cached, freshly generated otherwise. A failed
// generation degrades to a placeholder report, still HTTP 200.
func (a *API) GetMovieReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logx.FromContext(ctx)

	subjectName := consensus.Unslugify(r.PathValue("slug"))

	subjectScans, err := scans.GetScansBySubject(a.Db, ctx, subjectName)
	if err != nil {
		logger.Printf("Failed to fetch scans for %q: %v", subjectName, err)
		respondWithError(w, http.StatusBadGateway, "Failed to fetch scans from database")
		return
	}
	if len(subjectScans) == 0 {
		respondWithError(w, http.StatusNotFound, formatErrorMessage(ErrSubjectNotFound))
		return
	}

	aggregates := a.Aggregator.Aggregate(ctx, subjectScans, false)

	report, err := a.Narrative.ReportFor(ctx, aggregates[0])
	if err != nil {
		logger.Printf("Report lookup aborted for %q: %v", subjectName, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to build consensus report")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

func sortAggregates(aggregates []consensus.SubjectAggregate, order string) {
	switch order {
	case "latest":
		sort.SliceStable(aggregates, func(i, j int) bool {
			return aggregates[i].LastScanned.After(aggregates[j].LastScanned)
		})
	case "az":
		sort.SliceStable(aggregates, func(i, j int) bool {
			return aggregates[i].SubjectName < aggregates[j].SubjectName
		})
	default: // trending
		sort.SliceStable(aggregates, func(i, j int) bool {
			return aggregates[i].ReviewersCount > aggregates[j].ReviewersCount
		})
	}
}

func paginate(aggregates []consensus.SubjectAggregate, page, size int) generics.Page[consensus.SubjectAggregate] {
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	if page <= 0 {
		page = 1
	}

	total := len(aggregates)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := aggregates[start:end]
	if content == nil {
		content = []consensus.SubjectAggregate{}
	}

	return generics.Page[consensus.SubjectAggregate]{
		TotalResults: total,
		Size:         size,
		Page:         page,
		TotalPages:   totalPages,
		Content:      content,
	}
}
