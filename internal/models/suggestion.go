package models

import "fmt"

// Source identifies where a classification suggestion came from. Only
// reference-table matches may be applied without human review; the type
// makes that rule structural instead of a numeric convention on the
// confidence score.
type Source string

const (
	// SourceReference means the category came straight from the master
	// catalog and is treated as ground truth.
	SourceReference Source = "reference_match"
	// SourceHeuristic means the category was scored from title keywords
	// and must be reviewed before it is applied.
	SourceHeuristic Source = "keyword_heuristic"
	// SourceUnresolved means nothing matched.
	SourceUnresolved Source = "unresolved"
	// SourceAI means the category was proposed by the optional AI
	// suggester. Like heuristics it always goes to review.
	SourceAI Source = "ai_suggestion"
)

// Suggestion is the output of the category classifier for one line item.
type Suggestion struct {
	Category   string
	Confidence float64
	Source     Source
}

// AutoApplicable reports whether the suggestion may be merged into the
// primary output without review. Heuristic suggestions never qualify,
// however high they score.
func (s Suggestion) AutoApplicable() bool {
	return s.Source == SourceReference
}

// ReviewRow is one entry of the review-queue artifact written alongside the
// enriched output. Sorted by vendor then product name for human triage.
type ReviewRow struct {
	SKU               string `csv:"SKU"`
	ProductName       string `csv:"Product Name"`
	Vendor            string `csv:"Vendor"`
	InvoiceID         string `csv:"Invoice #"`
	SuggestedCategory string `csv:"Suggested Category"`
	Confidence        string `csv:"Confidence %"`
	Source            string `csv:"Source"`
}

// NewReviewRow builds a review-queue entry for a line item and its
// suggestion.
func NewReviewRow(li LineItem, s Suggestion) ReviewRow {
	return ReviewRow{
		SKU:               li.SKU,
		ProductName:       li.Description,
		Vendor:            li.Vendor,
		InvoiceID:         li.InvoiceID,
		SuggestedCategory: s.Category,
		Confidence:        fmt.Sprintf("%.0f%%", s.Confidence*100),
		Source:            string(s.Source),
	}
}
