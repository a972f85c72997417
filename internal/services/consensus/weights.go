package consensus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// The tier tables and blend factors live here as data, not control flow, so
// alternate weighting schemes can be swapped in from a YAML file without
// touching the scorer.

// Tier is one keyword band of the lexicon. Impact is added to the 50 baseline
// once per matched keyword; critic and audience perspectives carry separate
// magnitudes.
type Tier struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Critic   float64  `yaml:"critic"`
	Audience float64  `yaml:"audience"`
}

// Override short-circuits the scan: when the phrase appears, the score is the
// fixed target for the perspective, regardless of every other match.
type Override struct {
	Phrase   string  `yaml:"phrase"`
	Critic   float64 `yaml:"critic"`
	Audience float64 `yaml:"audience"`
}

// Adjustment is a contextual shift stacked after the tier scan.
type Adjustment struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Critic   float64  `yaml:"critic"`
	Audience float64  `yaml:"audience"`
}

type LexiconWeights struct {
	Tiers       []Tier       `yaml:"tiers"`
	Overrides   []Override   `yaml:"overrides"`
	Adjustments []Adjustment `yaml:"adjustments"`
}

// BlendFactors controls how much the free-text nuance shift moves the
// label anchor. Audience opinions trust the text more than the label.
type BlendFactors struct {
	Critic   float64 `yaml:"critic"`
	Audience float64 `yaml:"audience"`
}

func DefaultBlendFactors() BlendFactors {
	return BlendFactors{Critic: 0.4, Audience: 0.75}
}

func DefaultLexiconWeights() LexiconWeights {
	return LexiconWeights{
		Tiers: []Tier{
			{
				Name:     "masterwork",
				Keywords: []string{"masterpiece", "extraordinary", "phenomenal", "perfect", "10/10"},
				Critic:   28, Audience: 24,
			},
			{
				Name:     "strong",
				Keywords: []string{"excellent", "brilliant", "superb", "outstanding", "must watch"},
				Critic:   15, Audience: 13,
			},
			{
				Name:     "positive",
				Keywords: []string{"great", "good", "enjoyable", "solid", "fresh", "worth watch", "entertaining"},
				Critic:   8, Audience: 8,
			},
			{
				// Communal-reception language lands harder with audiences.
				Name:     "crowd",
				Keywords: []string{"blockbuster", "crowd pleaser", "mass entertainer", "whistle", "house full", "houseful"},
				Critic:   6, Audience: 12,
			},
			{
				// Craft vocabulary carries more weight for critics.
				Name:     "craft",
				Keywords: []string{"well crafted", "well made", "beautifully shot", "tight screenplay", "strong performances"},
				Critic:   7, Audience: 3,
			},
			{
				Name:     "mixed",
				Keywords: []string{"average", "decent", "okay", "mediocre", "passable", "predictable", "fine"},
				Critic:   4, Audience: 3,
			},
			{
				Name:     "negative",
				Keywords: []string{"bad", "boring", "poor", "dull", "slow", "flop", "disappointing", "skippable", "weak", "letdown"},
				Critic:   -13, Audience: -13,
			},
			{
				Name:     "harsh",
				Keywords: []string{"terrible", "disaster", "awful", "waste", "worst", "garbage", "torture", "unbearable"},
				Critic:   -26, Audience: -28,
			},
		},
		Overrides: []Override{
			// The "watchable once, unremarkable" idiom.
			{Phrase: "one time watch", Critic: 55, Audience: 57},
			{Phrase: "one-time watch", Critic: 55, Audience: 57},
			// "Worth the ticket money" idiom, a communal thumbs-up.
			{Phrase: "paisa vasool", Critic: 80, Audience: 88},
		},
		Adjustments: []Adjustment{
			{
				Name:     "pacing",
				Keywords: []string{"second half", "pacing", "too long", "drags", "drag", "lengthy", "overlong"},
				Critic:   -6, Audience: -8,
			},
			{
				Name:     "family",
				Keywords: []string{"family entertainer", "family friendly", "watch with family", "kids will enjoy"},
				Critic:   6, Audience: 7,
			},
			{
				Name:     "logic",
				Keywords: []string{"no logic", "logicless", "illogical", "plot holes", "leave your brain"},
				Critic:   -9, Audience: -3,
			},
		},
	}
}

// LoadLexiconWeights reads an alternate weighting scheme from a YAML file.
// Sections left out of the file keep their defaults.
func LoadLexiconWeights(path string) (LexiconWeights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LexiconWeights{}, fmt.Errorf("failed to read weights file: %w", err)
	}

	weights := DefaultLexiconWeights()
	if err := yaml.Unmarshal(data, &weights); err != nil {
		return LexiconWeights{}, fmt.Errorf("failed to parse weights file: %w", err)
	}
	if len(weights.Tiers) == 0 {
		return LexiconWeights{}, fmt.Errorf("weights file %s defines no tiers", path)
	}

	return weights, nil
}
