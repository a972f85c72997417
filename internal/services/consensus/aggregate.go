package consensus

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/purushothaman-98/cinema-wall/internal/services/scans"
)

// Aggregator turns raw scans into per-subject consensus aggregates. The
// computation itself is pure and synchronous; the only I/O is the optional
// metadata lookup, which degrades silently.
type Aggregator struct {
	scorer  *Scorer
	fetcher MetadataFetcher
}

// NewAggregator builds an aggregator. A nil scorer gets the default weights;
// a nil fetcher disables enrichment entirely.
func NewAggregator(scorer *Scorer, fetcher MetadataFetcher) *Aggregator {
	if scorer == nil {
		scorer = NewScorer(DefaultLexiconWeights())
	}
	return &Aggregator{scorer: scorer, fetcher: fetcher}
}

// ScanGroup is one subject's slice of the input, in input order.
type ScanGroup struct {
	Key         string
	SubjectName string
	Scans       []scans.Scan
}

// GroupScans partitions scans by subject. The key is the canonical
// (lowercased, whitespace-collapsed) name; the displayed name is the trimmed
// name of the group's first record. Group order follows first appearance.
func GroupScans(list []scans.Scan) []ScanGroup {
	index := make(map[string]int)
	var groups []ScanGroup

	for _, scan := range list {
		key := canonicalKey(scan.SubjectName)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ScanGroup{
				Key:         key,
				SubjectName: strings.TrimSpace(scan.SubjectName),
			})
		}
		groups[i].Scans = append(groups[i].Scans, scan)
	}

	return groups
}

// Aggregate computes one SubjectAggregate per subject found in the input.
// Deterministic for identical inputs; with enrich false (or no fetcher
// configured) it performs no I/O at all.
func (a *Aggregator) Aggregate(ctx context.Context, list []scans.Scan, enrich bool) []SubjectAggregate {
	groups := GroupScans(list)

	aggregates := make([]SubjectAggregate, 0, len(groups))
	for _, group := range groups {
		agg := a.aggregateGroup(group)

		if enrich && a.fetcher != nil {
			// Failures collapse to nil; record-derived proxies stand.
			if meta, err := a.fetcher.FetchMetadata(ctx, agg.SubjectName); err == nil && meta != nil {
				agg.Metadata = meta
				if meta.PosterURL != "" {
					agg.PosterURL = meta.PosterURL
				}
			}
		}

		aggregates = append(aggregates, agg)
	}

	return aggregates
}

func (a *Aggregator) aggregateGroup(group ScanGroup) SubjectAggregate {
	reviewers := make(map[string]bool)
	for _, scan := range group.Scans {
		reviewers[scan.ReviewerName] = true
	}

	byNewest := make([]scans.Scan, len(group.Scans))
	copy(byNewest, group.Scans)
	sort.SliceStable(byNewest, func(i, j int) bool {
		return byNewest[i].CreatedAt.After(byNewest[j].CreatedAt)
	})

	// Oldest scan stands in for the release date; the oldest usable
	// thumbnail stands in for the poster.
	lastScanned := byNewest[0].CreatedAt
	releaseDate := byNewest[len(byNewest)-1].CreatedAt

	poster := DefaultPoster
	for i := len(byNewest) - 1; i >= 0; i-- {
		if strings.HasPrefix(byNewest[i].Thumbnail, "http") {
			poster = byNewest[i].Thumbnail
			break
		}
	}

	var criticTotal, criticCount float64
	var audienceTotal, audienceWeight float64
	var allTopics []string

	for _, scan := range group.Scans {
		mode := strings.ToUpper(strings.TrimSpace(scan.Mode))
		result := scan.Result

		// Critic sample: every record except pure comment aggregations
		// contributes one. Explicit numeric rating wins; otherwise the
		// blender reads the label and text.
		if mode != scans.ModeComments {
			if norm, ok := NormalizeScore(result.Score); ok {
				criticTotal += float64(norm)
			} else {
				criticTotal += float64(a.scorer.BlendScore(result.Sentiment, result.Text, PerspectiveCritic))
			}
			criticCount++
		}

		// Audience sample, in strict preference order: explicit audience
		// number, then per-insight votes, then inference from the critic
		// record itself.
		if norm, ok := NormalizeScore(result.AudienceScore); ok && norm > 0 {
			audienceTotal += float64(norm)
			audienceWeight++
		} else if len(result.Insights) > 0 {
			for _, insight := range result.Insights {
				text := insight.Analysis
				if text == "" {
					text = insight.Text
				}
				if text == "" {
					continue
				}
				score := stretchPolarity(a.scorer.ScoreText(text, PerspectiveAudience))
				// Each insight is one real audience voice, so it
				// outweighs a single inferred sample.
				audienceTotal += float64(score) * 2
				audienceWeight += 2
			}
		} else {
			inferred := a.scorer.BlendScore(result.Sentiment, result.Text, PerspectiveAudience)
			inferred = a.applyAudienceCorrections(inferred, result.Text)
			audienceTotal += float64(inferred)
			audienceWeight++
		}

		allTopics = append(allTopics, result.Topics...)
	}

	criticsScore := 0
	if criticCount > 0 {
		criticsScore = int(math.Round(criticTotal / criticCount))
	}
	audienceScore := 0
	if audienceWeight > 0 {
		audienceScore = int(math.Round(audienceTotal / audienceWeight))
	}

	return SubjectAggregate{
		SubjectName:    group.SubjectName,
		Slug:           Slugify(group.SubjectName),
		ReviewersCount: len(reviewers),
		LastScanned:    lastScanned,
		ReleaseDate:    releaseDate,
		CriticsScore:   criticsScore,
		AudienceScore:  audienceScore,
		ConsensusLine:  consensusLine(criticsScore, criticCount > 0),
		TopTopics:      ExtractTopics(allTopics),
		PosterURL:      poster,
		Scans:          byNewest,
	}
}

// stretchPolarity pushes insight scores toward the extremes: audience
// opinions cluster at "loved it" or "hated it", rarely the middle.
func stretchPolarity(score int) int {
	s := float64(score)
	switch {
	case s > 60:
		s += (s - 60) / 2
	case s < 45:
		s -= (45 - s) / 2
	}
	return clampInt(int(math.Round(s)), textScoreFloor, textScoreCeil)
}

// applyAudienceCorrections adjusts an audience score inferred from a critic
// record. Pacing complaints hit audiences harder, communal-celebration
// language props the score up, and logic complaints get partially refunded
// because audiences forgive what critics do not.
func (a *Aggregator) applyAudienceCorrections(score int, text string) int {
	if text == "" {
		return score
	}
	lower := strings.ToLower(text)

	if containsAny(lower, "second half", "pacing", "too long", "drags", "lengthy") {
		score -= 5
	}
	if containsAny(lower, "blockbuster", "houseful", "house full", "celebration", "mass entertainer", "paisa vasool") {
		score += 6
		if score < 65 {
			score = 65
		}
	}
	if containsAny(lower, "no logic", "logicless", "illogical", "plot holes", "leave your brain") {
		score += 4
	}

	return clampInt(score, textScoreFloor, textScoreCeil)
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// consensusLine maps the critic score to its human-readable bucket. The
// ladder is monotonic and covers all of [0,100].
func consensusLine(criticsScore int, hasCritics bool) string {
	if !hasCritics {
		return "Pending Analysis"
	}
	switch {
	case criticsScore >= 90:
		return "Universal Acclaim"
	case criticsScore >= 80:
		return "Critical Acclaim"
	case criticsScore >= 70:
		return "Generally Favorable"
	case criticsScore >= 60:
		return "Mostly Positive"
	case criticsScore >= 50:
		return "Mixed or Average"
	case criticsScore >= 40:
		return "Generally Unfavorable"
	default:
		return "Critical Disaster"
	}
}
