// Package comparator diffs two versions of the same tabular dataset - a
// generated output against a hand-maintained reference - by composite row
// key, reporting added, missing, and changed rows. It is a single-pass
// batch comparison with no state between invocations; differences are
// reported, never auto-corrected.
package comparator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
)

// blankKeyPlaceholder stands in for a null SKU inside composite keys so
// that identityless rows are not spuriously merged with each other across
// invoices.
const blankKeyPlaceholder = "NaN"

// numericTolerance is the slack allowed when both cells parse as numbers.
var numericTolerance = decimal.NewFromFloat(1e-6)

// Record is one comparable row: its key columns plus the named cells under
// comparison. A blank cell means null.
type Record struct {
	InvoiceID string
	SKU       string
	Fields    map[string]string
}

// Key builds the composite row key.
func (r Record) Key() string {
	sku := strings.TrimSpace(r.SKU)
	if sku == "" {
		sku = blankKeyPlaceholder
	}
	return r.InvoiceID + "_" + sku
}

// FieldMismatch is one differing cell on a key present in both datasets.
type FieldMismatch struct {
	Key       string
	Field     string
	Output    string
	Reference string
}

func (m FieldMismatch) String() string {
	out, ref := m.Output, m.Reference
	if out == "" {
		out = "<null>"
	}
	if ref == "" {
		ref = "<null>"
	}
	return fmt.Sprintf("%s %s: output=%s reference=%s", m.Key, m.Field, out, ref)
}

// Report summarizes one comparison run. Sample slices are bounded; the
// counts are complete.
type Report struct {
	OutputRows    int
	ReferenceRows int
	MatchedKeys   int

	ExtraCount   int
	MissingCount int
	ExtraSample  []string
	MissingSample []string

	MismatchCount  int
	MismatchSample []FieldMismatch
}

// Clean reports whether the two datasets agreed completely.
func (r Report) Clean() bool {
	return r.ExtraCount == 0 && r.MissingCount == 0 && r.MismatchCount == 0
}

// Options configures a comparison.
type Options struct {
	// Fields is the list of columns compared for matched keys.
	Fields []string
	// SampleLimit bounds each sample list; <= 0 means 10.
	SampleLimit int
}

// Comparator runs dataset comparisons.
type Comparator struct {
	opts   Options
	logger logging.Logger
}

// New creates a Comparator.
func New(opts Options, logger logging.Logger) *Comparator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.SampleLimit <= 0 {
		opts.SampleLimit = 10
	}
	return &Comparator{opts: opts, logger: logger}
}

// Compare diffs output against reference. Duplicate keys keep their first
// occurrence; partial matches are always surfaced, never silently passed.
func (c *Comparator) Compare(output, reference []Record) Report {
	report := Report{
		OutputRows:    len(output),
		ReferenceRows: len(reference),
	}

	outByKey := indexByKey(output)
	refByKey := indexByKey(reference)

	// Extra: keys only in output, in output order.
	seen := make(map[string]bool, len(output))
	for _, rec := range output {
		key := rec.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := refByKey[key]; !ok {
			report.ExtraCount++
			if len(report.ExtraSample) < c.opts.SampleLimit {
				report.ExtraSample = append(report.ExtraSample, key)
			}
		}
	}

	// Missing: keys only in reference, in reference order. Matched keys
	// get their fields compared.
	seen = make(map[string]bool, len(reference))
	for _, rec := range reference {
		key := rec.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		outRec, ok := outByKey[key]
		if !ok {
			report.MissingCount++
			if len(report.MissingSample) < c.opts.SampleLimit {
				report.MissingSample = append(report.MissingSample, key)
			}
			continue
		}

		report.MatchedKeys++
		for _, field := range c.opts.Fields {
			outVal := outRec.Fields[field]
			refVal := rec.Fields[field]
			if cellsEqual(outVal, refVal) {
				continue
			}
			report.MismatchCount++
			if len(report.MismatchSample) < c.opts.SampleLimit {
				report.MismatchSample = append(report.MismatchSample, FieldMismatch{
					Key:       key,
					Field:     field,
					Output:    outVal,
					Reference: refVal,
				})
			}
		}
	}

	c.logger.WithFields(
		logging.Field{Key: "matched", Value: report.MatchedKeys},
		logging.Field{Key: "extra", Value: report.ExtraCount},
		logging.Field{Key: "missing", Value: report.MissingCount},
		logging.Field{Key: "field_mismatches", Value: report.MismatchCount},
	).Info("Comparison complete")

	return report
}

// cellsEqual compares two cells. Both blank (null) is equal; one blank and
// one not is a mismatch. When both parse as numbers they are compared
// within tolerance, otherwise as trimmed strings.
func cellsEqual(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	aNull := a == "" || strings.EqualFold(a, "nan")
	bNull := b == "" || strings.EqualFold(b, "nan")
	if aNull || bNull {
		return aNull == bNull
	}

	da := models.ParseCurrency(a)
	db := models.ParseCurrency(b)
	if da.Valid && db.Valid {
		return da.Decimal.Sub(db.Decimal).Abs().LessThanOrEqual(numericTolerance)
	}

	return a == b
}

func indexByKey(records []Record) map[string]Record {
	byKey := make(map[string]Record, len(records))
	for _, rec := range records {
		key := rec.Key()
		if _, dup := byKey[key]; !dup {
			byKey[key] = rec
		}
	}
	return byKey
}
