package narrative

import (
	"encoding/json"
	"fmt"

	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
)

const (
	maxReviewSnippets = 8
	maxSnippetLength  = 300
)

// Request is the fixed-shape payload sent to the narrative generator.
type Request struct {
	Movie      string          `json:"movie"`
	Topics     []string        `json:"topics"`
	Sentiments Sentiments      `json:"sentiments"`
	Reviews    []ReviewSnippet `json:"reviews"`
}

type Sentiments struct {
	Critics  int `json:"critics"`
	Audience int `json:"audience"`
}

type ReviewSnippet struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Report is the structured consensus narrative. Placeholder marks a degraded
// substitute produced after generation failed; placeholders are shown to the
// caller but never persisted to the vault.
type Report struct {
	Tagline           string `json:"tagline"`
	Summary           string `json:"summary"`
	CriticsVsAudience string `json:"critics_vs_audience,omitempty"`
	ConflictPoints    string `json:"conflict_points,omitempty"`
	CommentVibe       string `json:"comment_vibe,omitempty"`
	Placeholder       bool   `json:"placeholder,omitempty"`
}

func (r Report) Valid() bool {
	return r.Summary != ""
}

// PlaceholderReport is returned when generation is unavailable or failed.
// The marker lets the UI offer a manual retry instead of caching the miss.
func PlaceholderReport() Report {
	return Report{
		Tagline:     "Analysis Delayed",
		Summary:     "The consensus engine could not produce a report right now. Please retry shortly.",
		Placeholder: true,
	}
}

// BuildRequest reduces an aggregate to the bounded payload the generator
// accepts: at most 8 reviews, snippets cut to 300 characters.
func BuildRequest(agg consensus.SubjectAggregate) Request {
	req := Request{
		Movie:  agg.SubjectName,
		Topics: agg.TopTopics,
		Sentiments: Sentiments{
			Critics:  agg.CriticsScore,
			Audience: agg.AudienceScore,
		},
	}

	for _, scan := range agg.Scans {
		if len(req.Reviews) == maxReviewSnippets {
			break
		}
		snippet := scan.Result.Text
		if snippet == "" {
			snippet = scan.Title
		}
		if snippet == "" {
			continue
		}
		req.Reviews = append(req.Reviews, ReviewSnippet{
			Title:   scan.ReviewerName,
			Snippet: truncate(snippet, maxSnippetLength),
		})
	}

	return req
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

/*
DecodeReport parses a cached vault payload back into a Report.

Older writers serialized the report twice, so the payload may be a JSON
string containing JSON; one level of unwrapping is tolerated. Corrupt or
non-object payloads return an error so the caller regenerates instead of
crashing on a bad cache row.
*/
func DecodeReport(raw string) (Report, error) {
	payload := []byte(raw)

	// Double-encoded: the payload itself is a JSON string.
	var inner string
	if err := json.Unmarshal(payload, &inner); err == nil {
		payload = []byte(inner)
	}

	var report Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return Report{}, fmt.Errorf("unreadable cached report: %w", err)
	}
	if !report.Valid() {
		return Report{}, fmt.Errorf("cached report has no content")
	}

	return report, nil
}
