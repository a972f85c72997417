package consensus

import (
	"context"
	"time"

	"github.com/purushothaman-98/cinema-wall/internal/services/scans"
)

// SubjectAggregate is the consensus view of one film, rebuilt from scratch on
// every read. It is a pure projection of the scans passed in: never persisted,
// never mutated after return.
type SubjectAggregate struct {
	SubjectName    string    `json:"subjectName"`
	Slug           string    `json:"slug"`
	ReviewersCount int       `json:"reviewersCount"`
	LastScanned    time.Time `json:"lastScanned"`
	ReleaseDate    time.Time `json:"releaseDate"`
	CriticsScore   int       `json:"criticsScore"`
	AudienceScore  int       `json:"audienceScore"`
	ConsensusLine  string    `json:"consensusLine"`
	TopTopics      []string  `json:"topTopics"`
	PosterURL      string    `json:"posterUrl"`

	Metadata *Metadata `json:"metadata,omitempty"`

	// Member scans, newest first.
	Scans []scans.Scan `json:"scans"`
}

// Metadata is the optional external enrichment for a subject. Absence of any
// of it falls back to record-derived proxies.
type Metadata struct {
	PosterURL      string   `json:"posterUrl,omitempty"`
	BackdropURL    string   `json:"backdropUrl,omitempty"`
	ReleaseDate    string   `json:"releaseDate,omitempty"`
	Overview       string   `json:"overview,omitempty"`
	Genres         []string `json:"genres,omitempty"`
	RuntimeMinutes int      `json:"runtimeMinutes,omitempty"`
	VoteAverage    float64  `json:"voteAverage,omitempty"`
}

// MetadataFetcher is the external metadata lookup. Implementations must
// collapse not-found, timeout and quota failures into (nil, nil); the
// aggregator tolerates total absence of the component.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, query string) (*Metadata, error)
}
