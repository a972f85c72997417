package consensus

import (
	"regexp"
	"strings"
)

// DefaultPoster is the placeholder shown when neither the scans nor the
// metadata lookup produced a usable image.
const DefaultPoster = "https://picsum.photos/300/450?grayscale&blur=2"

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\-]+`)
	slugDashRuns     = regexp.MustCompile(`\-\-+`)
)

// Slugify derives the URL-safe key for a subject name.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = strings.Join(strings.Fields(slug), "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Unslugify is the rough reverse, good enough because subject lookups are
// case-insensitive.
func Unslugify(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// canonicalKey is the grouping key for a subject name: case-insensitive and
// whitespace-collapsed, applied uniformly at ingestion so the listing and the
// detail lookup can never disagree about what belongs to a subject.
func canonicalKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
