package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash-exp"

// Generator produces a consensus narrative for one subject. Implementations
// return an error on any failure; degradation to a placeholder happens in the
// service, not here.
type Generator interface {
	Generate(ctx context.Context, req Request) (Report, error)
}

// GeminiGenerator calls the Gemini API with a JSON response schema so the
// model output decodes straight into a Report.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: defaultModel}, nil
}

var reportSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"tagline":             {Type: genai.TypeString},
		"summary":             {Type: genai.TypeString},
		"critics_vs_audience": {Type: genai.TypeString, Description: "Analysis of the gap between professional and casual viewers."},
		"conflict_points":     {Type: genai.TypeString, Description: "Specific elements (plot/acting) where opinions diverge."},
		"comment_vibe":        {Type: genai.TypeString, Description: "Short description of the community mood."},
	},
	Required: []string{"tagline", "summary", "critics_vs_audience", "conflict_points", "comment_vibe"},
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (Report, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(buildPrompt(req), genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   reportSchema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return Report{}, fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return Report{}, fmt.Errorf("empty response from model")
	}

	var report Report
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return Report{}, fmt.Errorf("malformed report from model: %w", err)
	}
	if !report.Valid() {
		return Report{}, fmt.Errorf("incomplete report from model")
	}

	return report, nil
}

func buildPrompt(req Request) string {
	var sources strings.Builder
	for _, review := range req.Reviews {
		fmt.Fprintf(&sources, "[%s]: %s\n", review.Title, review.Snippet)
	}

	return fmt.Sprintf(`ANALYST TASK: Generate a deep consensus report for %q.

CONTEXT:
- Scores: Critics %d / Audience %d
- Key Themes: %s
- Sources:
%s
REQUIREMENTS:
1. Tagline: Punchy, 1 sentence.
2. Summary: High-level verdict (2 sentences).
3. Critics vs Audience: Explicitly contrast their viewpoints. Do they agree? If not, why?
4. Conflict Matrix: Identify specific plot points, acting, or technical elements where reviewers disagree.
5. Comment Vibe: 3-5 adjectives describing the emotional state of the comment section.`,
		req.Movie, req.Sentiments.Critics, req.Sentiments.Audience,
		strings.Join(req.Topics, ", "), sources.String())
}
