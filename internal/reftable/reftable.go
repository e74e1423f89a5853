// Package reftable indexes the master product catalog and resolves sales
// line items against it. Resolution falls through several strategies of
// decreasing strictness and never errors on a miss: an unresolved item
// comes back empty and is routed to review downstream.
package reftable

import (
	"strings"

	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
	"source4/dash-etl/internal/normalize"
)

// Table is the indexed reference catalog. Read-only after construction.
type Table struct {
	bySKU   map[string]models.Reference
	byTitle map[string]models.Reference
	idToSKU map[string]string
	all     []models.Reference
	logger  logging.Logger
}

// New indexes the catalog rows. SKUs are keyed by their normalized form so
// lookups are case- and whitespace-insensitive; when two rows normalize to
// the same SKU the first wins and the duplicate is logged.
func New(refs []models.Reference, logger logging.Logger) *Table {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	t := &Table{
		bySKU:   make(map[string]models.Reference, len(refs)),
		byTitle: make(map[string]models.Reference, len(refs)),
		idToSKU: make(map[string]string),
		logger:  logger,
	}

	for _, ref := range refs {
		key := normalize.SKU(ref.SKU)
		if key == "" {
			continue
		}
		if _, dup := t.bySKU[key]; dup {
			logger.WithField(logging.FieldSKU, key).Warn("Duplicate SKU in reference table, keeping first")
			continue
		}
		ref.SKU = key
		t.bySKU[key] = ref
		t.all = append(t.all, ref)

		if name := strings.ToLower(strings.TrimSpace(ref.ProductName)); name != "" {
			if _, dup := t.byTitle[name]; !dup {
				t.byTitle[name] = ref
			}
		}
	}

	return t
}

// AddIDMappings registers an external-ID-to-SKU side table used when a line
// carries no SKU of its own.
func (t *Table) AddIDMappings(idToSKU map[string]string) {
	for id, sku := range idToSKU {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		t.idToSKU[id] = normalize.SKU(sku)
	}
}

// Len returns the number of indexed catalog rows.
func (t *Table) Len() int {
	return len(t.all)
}

// Resolve looks up a line item against the catalog. Resolution order:
//
//  1. exact normalized-SKU match;
//  2. external ID via the side table, then retry the SKU match;
//  3. exact case-insensitive title match;
//  4. word-prefix match (3 words, then 2, then 1) against product names,
//     preferring the longest matching name among ties.
//
// A miss returns the zero Resolution; missing data is never an error.
func (t *Table) Resolve(sku, externalID, title string) models.Resolution {
	key := normalize.SKU(sku)
	if key != "" {
		if ref, ok := t.bySKU[key]; ok {
			return resolutionFrom(ref)
		}
	}

	if externalID != "" {
		if mapped, ok := t.idToSKU[strings.TrimSpace(externalID)]; ok && mapped != "" {
			if ref, ok := t.bySKU[mapped]; ok {
				return resolutionFrom(ref)
			}
		}
	}

	if title = strings.TrimSpace(title); title != "" {
		if ref, ok := t.byTitle[strings.ToLower(title)]; ok {
			return resolutionFrom(ref)
		}
		if ref, ok := t.matchByTitlePrefix(title); ok {
			return resolutionFrom(ref)
		}
	}

	return models.Resolution{}
}

// matchByTitlePrefix tries progressively shorter word prefixes of the title
// as substrings of catalog product names. Longer product names win ties on
// the assumption that they are the more specific listing.
func (t *Table) matchByTitlePrefix(title string) (models.Reference, bool) {
	words := strings.Fields(strings.ToLower(title))
	for n := 3; n >= 1; n-- {
		if len(words) < n {
			continue
		}
		prefix := strings.Join(words[:n], " ")

		var best models.Reference
		found := false
		for _, ref := range t.all {
			name := strings.ToLower(ref.ProductName)
			if name == "" || !strings.Contains(name, prefix) {
				continue
			}
			if !found || len(ref.ProductName) > len(best.ProductName) {
				best = ref
				found = true
			}
		}
		if found {
			return best, true
		}
	}
	return models.Reference{}, false
}

func resolutionFrom(ref models.Reference) models.Resolution {
	return models.Resolution{
		Found:           true,
		SKU:             ref.SKU,
		Cost:            ref.Cost,
		Price:           ref.Price,
		Vendor:          ref.Vendor,
		ProductCategory: ref.ProductCategory,
		OverallCategory: ref.OverallCategory,
	}
}
