package catclass

import (
	"context"
	"fmt"
	"strings"

	"source4/dash-etl/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSuggester implements Suggester against the Google Gemini API. It is
// purely advisory: its suggestions land in the review queue with the other
// heuristics and are never applied without approval.
type GeminiSuggester struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiSuggester creates a suggester using the given API key and model
// name (e.g. "gemini-1.5-flash").
func NewGeminiSuggester(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSuggester{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiSuggester) Close() error {
	return g.client.Close()
}

// Suggest asks the model to pick one category from the taxonomy for the
// given product title. An answer outside the category list is treated as
// no suggestion.
func (g *GeminiSuggester) Suggest(ctx context.Context, title string, categories []string) (string, error) {
	prompt := fmt.Sprintf(`Categorize the following industrial product:
Product: %s

Please assign this product to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		title,
		strings.Join(categories, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	suggestion := extractCategory(responseText, categories)

	g.logger.WithFields(
		logging.Field{Key: "title", Value: title},
		logging.Field{Key: logging.FieldCategory, Value: suggestion},
	).Debug("Gemini category suggestion")

	return suggestion, nil
}

// extractCategory parses the model response and validates the answer
// against the known category names.
func extractCategory(response string, categories []string) string {
	var answer string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			answer = strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
			break
		}
	}
	if answer == "" {
		return ""
	}

	for _, cat := range categories {
		if strings.EqualFold(cat, answer) {
			return cat
		}
	}
	return ""
}
