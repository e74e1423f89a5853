// Package pipeline wires the enrichment stages together: load, filter,
// resolve, classify, aggregate, and write. Each stage is a pure function
// over record slices; the pipeline owns the sequencing and the run report.
package pipeline

import (
	"context"
	"sort"
	"strings"

	"source4/dash-etl/internal/catclass"
	"source4/dash-etl/internal/config"
	"source4/dash-etl/internal/invoice"
	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
	"source4/dash-etl/internal/normalize"
	"source4/dash-etl/internal/reftable"
	"source4/dash-etl/internal/taxonomy"
	"source4/dash-etl/internal/vendorclass"
)

// orderTypeOnline and orderTypeLocal are the two values of the derived
// order channel column. Web orders are attributed to a dedicated rep.
const (
	orderTypeOnline = "Online"
	orderTypeLocal  = "Local"
)

// Summary is the run report printed after processing.
type Summary struct {
	InputRows    int
	FilteredRows int
	ChargeLines  int
	DroppedRows  int
	OutputRows   int
	Invoices     int
	Resolved     int
	Unresolved   int
	MissingCost  int
	ReviewRows   int
}

// RunResult carries the artifacts of one pipeline run.
type RunResult struct {
	Enriched []models.LineItem
	Review   []models.ReviewRow
	Summary  Summary
}

// Pipeline runs the enrichment stages over a sales export. Immutable after
// construction; one Pipeline may serve several runs.
type Pipeline struct {
	cfg       *config.Config
	refs      *reftable.Table
	vendors   *vendorclass.Classifier
	cats      *catclass.Classifier
	agg       *invoice.Aggregator
	suggester catclass.Suggester
	logger    logging.Logger
}

// New assembles a pipeline from its stages. suggester may be nil, in which
// case unresolved categories go to review without an AI proposal.
func New(cfg *config.Config, tax *taxonomy.Taxonomy, refs []models.Reference, suggester catclass.Suggester, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	table := reftable.New(refs, logger)
	return &Pipeline{
		cfg:       cfg,
		refs:      table,
		vendors:   vendorclass.New(tax, logger),
		cats:      catclass.New(tax, cfg.Classification.ConfidenceDivisor, logger),
		agg:       invoice.New(logger),
		suggester: suggester,
		logger:    logger,
	}
}

// AddIDMappings registers an external-ID-to-SKU side table with the
// reference resolver. Call before Run.
func (p *Pipeline) AddIDMappings(idToSKU map[string]string) {
	p.refs.AddIDMappings(idToSKU)
}

// Run enriches the raw line items and returns the output record set, the
// review queue, and the run summary. The input slice is never mutated.
func (p *Pipeline) Run(ctx context.Context, raw []models.LineItem) (*RunResult, error) {
	summary := Summary{InputRows: len(raw)}

	kept := p.filter(raw, &summary)

	resolved := make([]models.LineItem, 0, len(kept))
	for _, li := range kept {
		resolved = append(resolved, p.enrich(li, &summary))
	}

	result := p.agg.Run(resolved)
	summary.ChargeLines = result.ChargeLines
	summary.Invoices = len(result.Totals)

	lines := result.Lines
	if !p.cfg.Pipeline.KeepIdentitylessRows {
		lines = p.dropIdentityless(lines, &summary)
	}

	review := p.reviewQueue(ctx, lines, &summary)

	summary.OutputRows = len(lines)
	summary.ReviewRows = len(review)

	p.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: summary.OutputRows},
		logging.Field{Key: "invoices", Value: summary.Invoices},
		logging.Field{Key: "review", Value: summary.ReviewRows},
	).Info("Pipeline run complete")

	return &RunResult{Enriched: lines, Review: review, Summary: summary}, nil
}

// filter drops rows from excluded activities and excluded reps before any
// enrichment. Charge lines on a dropped order vanish with it, so the
// filter runs ahead of aggregation.
func (p *Pipeline) filter(raw []models.LineItem, summary *Summary) []models.LineItem {
	kept := make([]models.LineItem, 0, len(raw))
	for _, li := range raw {
		if containsFold(p.cfg.Pipeline.ExcludedActivities, li.Activity) {
			summary.FilteredRows++
			continue
		}
		if containsFold(p.cfg.Pipeline.ExcludedReps, li.Rep) {
			summary.FilteredRows++
			continue
		}
		kept = append(kept, li)
	}
	if summary.FilteredRows > 0 {
		p.logger.WithField(logging.FieldCount, summary.FilteredRows).Info("Filtered excluded rows")
	}
	return kept
}

// enrich fills one line's identity-dependent fields: normalized SKU,
// reference data, canonical vendor, categories, order channel, geography,
// and tracked month. Allocation fields are left for the aggregator.
func (p *Pipeline) enrich(li models.LineItem, summary *Summary) models.LineItem {
	li.SKU = normalize.SKU(li.SKU)

	res := p.refs.Resolve(li.SKU, li.ExternalID, li.Description)
	if res.Found {
		summary.Resolved++
		if res.SKU != "" {
			li.SKU = res.SKU
		}
	} else if li.HasIdentity() {
		summary.Unresolved++
	}

	li.CostEach = res.Cost
	li.ProductCategory = res.ProductCategory
	li.OverallCategory = res.OverallCategory
	li.Vendor = p.vendors.Classify(res.Vendor, li.VendorRaw, li.SKU, li.Description)

	if !li.CostEach.Valid && li.HasIdentity() && invoice.Classify(li.ChargeType) == invoice.ChargeProduct {
		summary.MissingCost++
	}

	li.OrderType = p.orderType(li.Rep, li.OrderRef)

	if date := normalize.ParseDate(li.Date); !date.IsZero() {
		li.TrackedMonth = normalize.MonthCode(date)
	}

	li.State, li.Region = normalize.StateAndRegion(li.Address)

	return li
}

// orderType derives the sales channel. The web storefront has its own rep
// identity; failing that, the order reference format tells the source
// system apart (cart numbers start with "c" or carry a "#", counter orders
// start with "so").
func (p *Pipeline) orderType(rep, orderRef string) string {
	if p.cfg.Pipeline.WebRep != "" && strings.EqualFold(strings.TrimSpace(rep), p.cfg.Pipeline.WebRep) {
		return orderTypeOnline
	}
	ref := strings.ToLower(strings.TrimSpace(orderRef))
	switch {
	case strings.HasPrefix(ref, "so"):
		return orderTypeLocal
	case strings.HasPrefix(ref, "c") || strings.Contains(ref, "#"):
		return orderTypeOnline
	}
	return orderTypeLocal
}

// dropIdentityless removes rows with neither SKU nor description. They
// still contributed to invoice subtotals and allocations before removal,
// matching the workbook this output feeds.
func (p *Pipeline) dropIdentityless(lines []models.LineItem, summary *Summary) []models.LineItem {
	kept := make([]models.LineItem, 0, len(lines))
	for _, li := range lines {
		if !li.HasIdentity() {
			summary.DroppedRows++
			continue
		}
		kept = append(kept, li)
	}
	if summary.DroppedRows > 0 {
		p.logger.WithField(logging.FieldCount, summary.DroppedRows).Warn("Dropped rows without product identity")
	}
	return kept
}

// reviewQueue collects a suggestion row for every output line whose
// category the reference table could not fill. Keyword heuristics score
// first; when they come up empty and an AI suggester is configured, its
// proposal is recorded instead. Nothing here changes the enriched output.
func (p *Pipeline) reviewQueue(ctx context.Context, lines []models.LineItem, summary *Summary) []models.ReviewRow {
	var review []models.ReviewRow
	for _, li := range lines {
		sugg := p.cats.Classify(li.Description, li.ProductCategory)
		if sugg.AutoApplicable() {
			continue
		}

		if sugg.Source == models.SourceUnresolved && p.suggester != nil && li.Description != "" {
			if cat, err := p.suggester.Suggest(ctx, li.Description, p.cats.CategoryNames()); err != nil {
				p.logger.WithError(err).WithField(logging.FieldSKU, li.SKU).
					Warn("AI category suggestion failed")
			} else if cat != "" {
				sugg = models.Suggestion{Category: cat, Confidence: 0, Source: models.SourceAI}
			}
		}

		review = append(review, models.NewReviewRow(li, sugg))
	}

	// Triage order: vendor, then product name. Lines with no vendor sort
	// last so known-vendor batches review first.
	sort.SliceStable(review, func(i, j int) bool {
		vi, vj := review[i].Vendor, review[j].Vendor
		if (vi == "") != (vj == "") {
			return vj == ""
		}
		if vi != vj {
			return vi < vj
		}
		return review[i].ProductName < review[j].ProductName
	})

	return review
}

func containsFold(haystack []string, needle string) bool {
	needle = strings.TrimSpace(needle)
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}
