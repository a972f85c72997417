package scans

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Accepted key spellings per concept, in priority order. First match wins, so
// the decode is deterministic no matter which generation of the ingestion
// pipeline wrote the payload.
var (
	scoreKeys         = []string{"sentiment_score", "sentimentScore", "score", "rating"}
	audienceScoreKeys = []string{"audience_sentiment", "audienceSentiment", "audienceScore", "audience_score"}
	sentimentKeys     = []string{"sentiment", "sentimentLabel", "sentiment_label", "label"}
	textKeys          = []string{"sentimentDescription", "sentiment_description", "overallSummary", "overall_summary", "summary", "description"}
	topicsKeys        = []string{"topics", "keywords"}
	insightsKeys      = []string{"highQualityInsights", "high_quality_insights", "insights"}
)

var knownLabels = map[string]string{
	"positive": "Positive",
	"negative": "Negative",
	"neutral":  "Neutral",
	"mixed":    "Mixed",
}

// ParseResult decodes a raw result document into the canonical Result. Every
// field is optional; missing or unusable values just stay zero.
func ParseResult(raw map[string]any) Result {
	var res Result

	if v, ok := lookup(raw, scoreKeys...); ok {
		if f, ok := toFloat(v); ok {
			res.Score = &f
		}
	}
	if v, ok := lookup(raw, audienceScoreKeys...); ok {
		if f, ok := toFloat(v); ok {
			res.AudienceScore = &f
		}
	}

	if v, ok := lookup(raw, sentimentKeys...); ok {
		if s, ok := v.(string); ok {
			if label, known := knownLabels[strings.ToLower(strings.TrimSpace(s))]; known {
				res.Sentiment = label
			}
		}
	}

	res.Text = firstText(raw, textKeys...)
	if res.Text == "" {
		// Some payloads carry the verdict under "sentiment" as free text
		// instead of a bare label.
		if v, ok := lookup(raw, "sentiment"); ok {
			if s, ok := v.(string); ok {
				if _, isLabel := knownLabels[strings.ToLower(strings.TrimSpace(s))]; !isLabel {
					res.Text = strings.TrimSpace(s)
				}
			}
		}
	}

	if v, ok := lookup(raw, topicsKeys...); ok {
		res.Topics = toStringSlice(v)
	}
	if v, ok := lookup(raw, insightsKeys...); ok {
		res.Insights = toInsights(v)
	}

	return res
}

// lookup finds the first present, non-nil value among the given keys. Exact
// matches are tried first; a case-insensitive pass over sorted document keys
// follows, so records written with odd casing still resolve deterministically.
func lookup(m map[string]any, keys ...string) (any, bool) {
	if len(m) == 0 {
		return nil, false
	}
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, k := range keys {
		lower := strings.ToLower(k)
		for _, name := range names {
			if strings.ToLower(name) == lower {
				if v := m[name]; v != nil {
					return v, true
				}
			}
		}
	}
	return nil, false
}

func firstText(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := lookup(m, k); ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toStringSlice(v any) []string {
	var out []string
	switch list := v.(type) {
	case []string:
		for _, s := range list {
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func toInsights(v any) []Insight {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	var out []Insight
	for _, item := range list {
		entry, ok := toMap(item)
		if !ok {
			continue
		}
		ins := Insight{
			Username: firstText(entry, "username", "user"),
			Text:     firstText(entry, "text", "comment"),
			Analysis: firstText(entry, "analysis"),
		}
		if ins.Text == "" && ins.Analysis == "" {
			continue
		}
		out = append(out, ins)
	}
	return out
}

// toMap accepts both plain maps and bson documents decoded as map[string]any.
func toMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}
