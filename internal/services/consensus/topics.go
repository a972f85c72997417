package consensus

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxTopics      = 3
	minTopicLength = 3
)

// Genre-agnostic terms that say nothing about a particular film.
var topicStopwords = map[string]bool{
	"movie": true, "film": true, "review": true, "video": true,
	"story": true, "plot": true, "watch": true, "cinema": true,
	"really": true, "actor": true, "acting": true, "director": true,
	"screenplay": true,
}

var nonLetters = regexp.MustCompile(`[^a-z\s]`)

// ExtractTopics picks the most frequent qualifying keywords across all the
// topic lists of a group. Ties break on first appearance, so the output is
// stable for a given input order.
func ExtractTopics(allTopics []string) []string {
	freq := make(map[string]int)
	var firstSeen []string

	for _, topic := range allTopics {
		cleaned := strings.TrimSpace(nonLetters.ReplaceAllString(strings.ToLower(topic), ""))
		if cleaned == "" || len(cleaned) < minTopicLength || topicStopwords[cleaned] {
			continue
		}
		if freq[cleaned] == 0 {
			firstSeen = append(firstSeen, cleaned)
		}
		freq[cleaned]++
	}

	// firstSeen already encodes the tie-break order; a stable sort by
	// frequency keeps it for equal counts.
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return freq[firstSeen[i]] > freq[firstSeen[j]]
	})

	if len(firstSeen) > maxTopics {
		firstSeen = firstSeen[:maxTopics]
	}

	topics := make([]string, len(firstSeen))
	for i, topic := range firstSeen {
		topics[i] = strings.ToUpper(topic[:1]) + topic[1:]
	}
	return topics
}
