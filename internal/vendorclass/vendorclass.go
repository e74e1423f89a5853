// Package vendorclass maps inconsistent vendor name strings onto the
// canonical vendor taxonomy. Precedence is explicit: a vendor resolved from
// the reference table always wins, then the vendor named by the source
// export, then the taxonomy's ordered rule list with the first matching
// rule assigning the vendor. No scoring, no guessing: unmatched input
// returns "" and the line is left for manual vendor assignment.
package vendorclass

import (
	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/normalize"
	"source4/dash-etl/internal/taxonomy"
)

// Classifier assigns canonical vendor names. Immutable after construction.
type Classifier struct {
	tax    *taxonomy.Taxonomy
	logger logging.Logger
}

// New creates a vendor classifier over the given taxonomy.
func New(tax *taxonomy.Taxonomy, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{tax: tax, logger: logger}
}

// Classify returns the canonical vendor for a line item.
//
// refVendor is the vendor the reference table resolved; rawVendor is the
// vendor named by the source export; both may be blank and both pass
// through alias normalization. The reference vendor wins, then the export
// vendor, then the taxonomy's SKU/title rules. An empty return means no
// signal matched and the vendor needs manual assignment.
func (c *Classifier) Classify(refVendor, rawVendor, sku, title string) string {
	if canonical := c.tax.CanonicalVendor(refVendor); canonical != "" {
		return canonical
	}
	if canonical := c.tax.CanonicalVendor(rawVendor); canonical != "" {
		return canonical
	}

	normSKU := normalize.SKU(sku)
	for _, rule := range c.tax.VendorRules {
		if rule.Matches(normSKU, title) {
			return rule.Vendor
		}
	}

	return ""
}

// Canonical exposes alias normalization for callers that already hold a
// vendor name (e.g. the review queue sort).
func (c *Classifier) Canonical(raw string) string {
	return c.tax.CanonicalVendor(raw)
}
