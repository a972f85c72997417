package narrative

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
	"github.com/purushothaman-98/cinema-wall/internal/services/scans"
	"github.com/stretchr/testify/require"
)

func TestDecodeReportPlainJSON(t *testing.T) {
	raw := `{"tagline":"A Triumph","summary":"Critics and audiences agree."}`

	report, err := DecodeReport(raw)
	require.NoError(t, err)
	require.Equal(t, "A Triumph", report.Tagline)
	require.Equal(t, "Critics and audiences agree.", report.Summary)
	require.False(t, report.Placeholder)
}

func TestDecodeReportDoubleEncoded(t *testing.T) {
	inner := `{"tagline":"A Triumph","summary":"Critics and audiences agree."}`
	outer, err := json.Marshal(inner)
	require.NoError(t, err)

	report, err := DecodeReport(string(outer))
	require.NoError(t, err)
	require.Equal(t, "A Triumph", report.Tagline)
	require.Equal(t, "Critics and audiences agree.", report.Summary)
}

func TestDecodeReportCorrupt(t *testing.T) {
	_, err := DecodeReport(`{"tagline": "unterminated`)
	require.Error(t, err)

	_, err = DecodeReport("not json at all")
	require.Error(t, err)

	// Structurally valid JSON without a summary is still unusable.
	_, err = DecodeReport(`{"tagline":"only a tagline"}`)
	require.Error(t, err)
}

func TestBuildRequestCapsReviews(t *testing.T) {
	longText := strings.Repeat("x", maxSnippetLength+50)

	agg := consensus.SubjectAggregate{
		SubjectName:   "Dune",
		TopTopics:     []string{"Visuals", "Pacing"},
		CriticsScore:  84,
		AudienceScore: 78,
	}
	for i := 0; i < maxReviewSnippets+4; i++ {
		agg.Scans = append(agg.Scans, scans.Scan{
			ReviewerName: "Reviewer",
			Title:        "Dune review",
			CreatedAt:    time.Now().UTC(),
			Result:       scans.Result{Text: longText},
		})
	}

	req := BuildRequest(agg)
	require.Equal(t, "Dune", req.Movie)
	require.Equal(t, 84, req.Sentiments.Critics)
	require.Equal(t, 78, req.Sentiments.Audience)
	require.Len(t, req.Reviews, maxReviewSnippets)
	for _, review := range req.Reviews {
		require.Len(t, []rune(review.Snippet), maxSnippetLength)
	}
}

func TestBuildRequestFallsBackToTitle(t *testing.T) {
	agg := consensus.SubjectAggregate{
		SubjectName: "Heat",
		Scans: []scans.Scan{
			{ReviewerName: "Alice", Title: "Heat is a classic"},
			{ReviewerName: "Bob"},
		},
	}

	req := BuildRequest(agg)
	require.Len(t, req.Reviews, 1)
	require.Equal(t, "Heat is a classic", req.Reviews[0].Snippet)
}

func TestPlaceholderReportMarked(t *testing.T) {
	report := PlaceholderReport()
	require.True(t, report.Placeholder)
	require.True(t, report.Valid())
	require.Equal(t, "Analysis Delayed", report.Tagline)
}
