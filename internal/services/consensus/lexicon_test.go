package consensus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func defaultLexicon() *Lexicon {
	return NewLexicon(DefaultLexiconWeights())
}

func TestLexiconNeutralDefault(t *testing.T) {
	lex := defaultLexicon()

	for _, text := range []string{
		"",
		"   ",
		"the screening happened on a tuesday",
		"runtime is two hours and twelve minutes",
	} {
		require.Equal(t, 50, lex.Score(text, PerspectiveCritic), "text: %q", text)
		require.Equal(t, 50, lex.Score(text, PerspectiveAudience), "text: %q", text)
	}
}

func TestLexiconTierDirection(t *testing.T) {
	lex := defaultLexicon()

	tests := []struct {
		text  string
		above bool
	}{
		{"an absolute masterpiece", true},
		{"excellent work all around", true},
		{"a good effort", true},
		{"boring and slow", false},
		{"a complete disaster, total garbage", false},
	}

	for _, tc := range tests {
		score := lex.Score(tc.text, PerspectiveCritic)
		if tc.above {
			require.Greater(t, score, 50, "text: %q", tc.text)
		} else {
			require.Less(t, score, 50, "text: %q", tc.text)
		}
	}
}

func TestLexiconTiersStack(t *testing.T) {
	lex := defaultLexicon()

	single := lex.Score("excellent", PerspectiveCritic)
	double := lex.Score("excellent and brilliant", PerspectiveCritic)
	require.Greater(t, double, single)
}

func TestLexiconPerspectiveWeighting(t *testing.T) {
	lex := defaultLexicon()

	// Communal-reception language lands harder with audiences.
	crowd := "a total blockbuster, whistle worthy"
	require.Greater(t, lex.Score(crowd, PerspectiveAudience), lex.Score(crowd, PerspectiveCritic))

	// Craft vocabulary lands harder with critics.
	craft := "well crafted and beautifully shot"
	require.Greater(t, lex.Score(craft, PerspectiveCritic), lex.Score(craft, PerspectiveAudience))
}

func TestLexiconPhraseOverrides(t *testing.T) {
	lex := defaultLexicon()

	// The override wins even when surrounded by strong tier keywords.
	text := "an excellent film overall but honestly a one time watch"
	require.Equal(t, 55, lex.Score(text, PerspectiveCritic))
	require.Equal(t, 57, lex.Score(text, PerspectiveAudience))

	require.Equal(t, 88, lex.Score("total paisa vasool", PerspectiveAudience))
}

func TestLexiconContextualAdjustments(t *testing.T) {
	lex := defaultLexicon()

	base := lex.Score("a good film", PerspectiveCritic)
	withPacing := lex.Score("a good film but the second half drags", PerspectiveCritic)
	require.Less(t, withPacing, base)

	withFamily := lex.Score("a good film and a family entertainer", PerspectiveCritic)
	require.Greater(t, withFamily, base)

	withLogic := lex.Score("a good film with no logic", PerspectiveCritic)
	require.Less(t, withLogic, base)
}

func TestLexiconClampRange(t *testing.T) {
	lex := defaultLexicon()

	euphoric := "masterpiece extraordinary phenomenal perfect excellent brilliant superb outstanding"
	require.Equal(t, 98, lex.Score(euphoric, PerspectiveCritic))

	scathing := "terrible disaster awful waste worst garbage torture unbearable boring dull"
	require.Equal(t, 10, lex.Score(scathing, PerspectiveCritic))
}
