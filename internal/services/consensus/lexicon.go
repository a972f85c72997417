package consensus

import (
	"math"
	"strings"
)

// Perspective selects the weighting applied when scoring text: audiences lean
// on communal-reception language, critics on construction and craft.
type Perspective int

const (
	PerspectiveCritic Perspective = iota
	PerspectiveAudience
)

const (
	neutralScore = 50

	// Text alone never reaches the extremes; the label-anchored clamps in
	// the blender need the headroom.
	textScoreFloor = 10
	textScoreCeil  = 98
)

// Lexicon scores free text by tiered keyword matching. Pure and stateless;
// safe for concurrent use.
type Lexicon struct {
	weights LexiconWeights
}

func NewLexicon(weights LexiconWeights) *Lexicon {
	return &Lexicon{weights: weights}
}

// Score rates the text on a 0-100 sentiment scale from the given perspective.
// Matching is case-insensitive substring search. A text with zero matches
// anywhere scores exactly 50: absence of signal is never a verdict.
func (l *Lexicon) Score(text string, perspective Perspective) int {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return neutralScore
	}

	// Phrase overrides short-circuit the whole scan.
	for _, override := range l.weights.Overrides {
		if strings.Contains(lower, override.Phrase) {
			return int(math.Round(impactFor(perspective, override.Critic, override.Audience)))
		}
	}

	score := float64(neutralScore)
	matched := false

	for _, tier := range l.weights.Tiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(lower, keyword) {
				score += impactFor(perspective, tier.Critic, tier.Audience)
				matched = true
			}
		}
	}

	// Contextual shifts stack after the tier scan.
	for _, adj := range l.weights.Adjustments {
		for _, keyword := range adj.Keywords {
			if strings.Contains(lower, keyword) {
				score += impactFor(perspective, adj.Critic, adj.Audience)
				matched = true
				break
			}
		}
	}

	if !matched {
		return neutralScore
	}

	return clampInt(int(math.Round(score)), textScoreFloor, textScoreCeil)
}

func impactFor(p Perspective, critic, audience float64) float64 {
	if p == PerspectiveAudience {
		return audience
	}
	return critic
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
