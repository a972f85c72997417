// The structs defined here are the canonical, closed shape the aggregation
// engine works with. The raw result payload stored in Mongo has no guaranteed
// keys and several synonymous spellings per concept; it is decoded into Result
// exactly once, at ingestion (see result.go).
package scans

import "time"

const (
	ModeReviewer = "REVIEWER"
	ModeAudience = "AUDIENCE"
	ModeComments = "COMMENTS"
)

type Scan struct {
	Id           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Mode         string    `json:"mode"`
	SubjectName  string    `json:"subjectName"`
	ReviewerName string    `json:"reviewerName"`
	Title        string    `json:"title"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	Result       Result    `json:"result"`
}

// Result is the canonical result payload. Any field may be zero; accessors in
// the engine degrade to neutral defaults.
type Result struct {
	// Score is the raw numeric rating in whatever scale the source used,
	// nil when the payload carried none.
	Score *float64 `json:"score,omitempty"`
	// AudienceScore is the separate audience-specific numeric signal.
	AudienceScore *float64 `json:"audienceScore,omitempty"`
	// Sentiment is the categorical label: Positive, Negative, Neutral or
	// Mixed. Empty when absent.
	Sentiment string `json:"sentiment,omitempty"`
	// Text is the best free-text verdict found in the payload.
	Text string `json:"text,omitempty"`

	Topics   []string  `json:"topics,omitempty"`
	Insights []Insight `json:"insights,omitempty"`
}

// Insight is one audience-comment excerpt plus its short analysis. Each one
// counts as an independent audience vote during aggregation.
type Insight struct {
	Username string `json:"username,omitempty"`
	Text     string `json:"text,omitempty"`
	Analysis string `json:"analysis,omitempty"`
}
