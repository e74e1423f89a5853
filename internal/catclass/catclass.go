// Package catclass suggests product categories for sales line items. The
// reference table is ground truth: a category resolved there is applied as
// is and never second-guessed. Everything else is a heuristic suggestion -
// keyword scoring against the taxonomy, optionally an AI suggestion - and
// heuristic suggestions are only ever routed to the review queue, never
// merged into the primary output.
package catclass

import (
	"context"
	"strings"

	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
	"source4/dash-etl/internal/taxonomy"
)

// heuristicCap keeps keyword-derived confidence strictly below 1.0;
// full confidence is reserved for reference-table matches.
const heuristicCap = 0.99

// Suggester produces a category suggestion for a product title from an
// external source (e.g. a language model). Suggestions from a Suggester are
// never auto-applied.
type Suggester interface {
	Suggest(ctx context.Context, title string, categories []string) (string, error)
}

// Classifier scores titles against the taxonomy's keyword lists.
// Immutable after construction.
type Classifier struct {
	tax     *taxonomy.Taxonomy
	divisor float64
	logger  logging.Logger
}

// New creates a category classifier. divisor scales raw keyword scores into
// confidence; values <= 0 fall back to the conventional 3.0.
func New(tax *taxonomy.Taxonomy, divisor float64, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if divisor <= 0 {
		divisor = 3.0
	}
	return &Classifier{tax: tax, divisor: divisor, logger: logger}
}

// Classify returns a category suggestion for a line item.
//
// refCategory is the category the reference table resolved; when non-blank
// it is returned with full confidence as a reference match. Otherwise the
// title is scored against the keyword taxonomy: a category's score is the
// summed word count of its keywords found in the title, so longer phrases
// outweigh single generic words. No keyword match yields BLANK/unresolved.
func (c *Classifier) Classify(title, refCategory string) models.Suggestion {
	if cat := strings.TrimSpace(refCategory); cat != "" && !strings.EqualFold(cat, models.CategoryBlank) {
		return models.Suggestion{
			Category:   cat,
			Confidence: 1.0,
			Source:     models.SourceReference,
		}
	}

	text := strings.ToLower(title)
	if strings.TrimSpace(text) == "" {
		return models.Suggestion{Category: models.CategoryBlank, Source: models.SourceUnresolved}
	}

	bestScore := 0
	bestCategory := ""
	for _, cat := range c.tax.Categories {
		score := 0
		for _, keyword := range cat.Keywords {
			if strings.Contains(text, strings.ToLower(keyword)) {
				score += len(strings.Fields(keyword))
			}
		}
		if score > bestScore {
			bestScore = score
			bestCategory = cat.Name
		}
	}

	if bestScore == 0 {
		return models.Suggestion{Category: models.CategoryBlank, Source: models.SourceUnresolved}
	}

	confidence := float64(bestScore) / c.divisor
	if confidence > heuristicCap {
		confidence = heuristicCap
	}

	return models.Suggestion{
		Category:   bestCategory,
		Confidence: confidence,
		Source:     models.SourceHeuristic,
	}
}

// CategoryNames lists the taxonomy's category names, for prompting external
// suggesters.
func (c *Classifier) CategoryNames() []string {
	names := make([]string, 0, len(c.tax.Categories))
	for _, cat := range c.tax.Categories {
		names = append(names, cat.Name)
	}
	return names
}
