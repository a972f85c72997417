package consensus

import (
	"math"
	"strings"
)

// Anchor scores implied by the categorical sentiment label, before any
// textual nuance is applied.
const (
	anchorPositive = 75
	anchorMixed    = 55
	anchorNeutral  = 50
	anchorNegative = 35

	// Post-blend clamps guaranteeing the label and the final score never
	// contradict categorically.
	positiveFloor = 60
	negativeCeil  = 49
)

// Scorer combines the lexicon with the blend factors. One instance serves the
// whole aggregation pass.
type Scorer struct {
	lexicon *Lexicon
	blend   BlendFactors
}

func NewScorer(weights LexiconWeights) *Scorer {
	return &Scorer{
		lexicon: NewLexicon(weights),
		blend:   DefaultBlendFactors(),
	}
}

func NewScorerWithBlend(weights LexiconWeights, blend BlendFactors) *Scorer {
	return &Scorer{lexicon: NewLexicon(weights), blend: blend}
}

// ScoreText exposes the bare lexicon score, used for insight votes where no
// label exists to anchor on.
func (s *Scorer) ScoreText(text string, perspective Perspective) int {
	return s.lexicon.Score(text, perspective)
}

/*
BlendScore merges a categorical label with the text's nuance into one 0-100
score.

The label sets an anchor (Positive 75, Mixed 55, Negative 35, anything else
50). The lexicon score of the text, re-centered on 50, shifts the anchor by a
perspective-dependent factor: audience text is trusted more than audience
labels, critic labels more than critic text.

A Positive label floors the result at 60 and a Negative label caps it at 49,
so the blend can sharpen a verdict but never flip it. Final range [10,98].
*/
func (s *Scorer) BlendScore(label, text string, perspective Perspective) int {
	anchor := anchorForLabel(label)

	shift := float64(s.lexicon.Score(text, perspective) - neutralScore)

	factor := s.blend.Critic
	if perspective == PerspectiveAudience {
		factor = s.blend.Audience
	}

	score := int(math.Round(float64(anchor) + shift*factor))

	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive":
		if score < positiveFloor {
			score = positiveFloor
		}
	case "negative":
		if score > negativeCeil {
			score = negativeCeil
		}
	}

	return clampInt(score, textScoreFloor, textScoreCeil)
}

func anchorForLabel(label string) int {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive":
		return anchorPositive
	case "negative":
		return anchorNegative
	case "mixed":
		return anchorMixed
	default:
		return anchorNeutral
	}
}
