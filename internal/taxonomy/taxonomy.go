// Package taxonomy defines the vendor and category classification tables:
// the canonical vendor list, vendor alias map, ordered vendor-matching
// rules, and per-category keyword lists. A Taxonomy is loaded once at
// startup and immutable thereafter, so test suites can substitute fixture
// taxonomies without touching global state.
package taxonomy

import (
	"strings"
)

// VendorRule matches a line item to a canonical vendor. Rules are evaluated
// in declaration order and the first match wins; there is no scoring.
type VendorRule struct {
	// Vendor is the canonical name assigned when the rule matches.
	Vendor string `yaml:"vendor"`

	// SKUPrefix matches when the normalized SKU starts with any entry.
	SKUPrefix []string `yaml:"sku_prefix,omitempty"`

	// SKUContains matches when the normalized SKU contains any entry.
	SKUContains []string `yaml:"sku_contains,omitempty"`

	// TitleAny matches when the title contains any entry,
	// case-insensitively.
	TitleAny []string `yaml:"title_any,omitempty"`

	// TitleAnyCase matches when the title contains any entry with exact
	// case. Needed for brand tokens like "EDGE" that collide with plain
	// words when folded.
	TitleAnyCase []string `yaml:"title_any_case,omitempty"`

	// TitleAllCase matches when the title contains every entry with exact
	// case (e.g. "Handle" and "It").
	TitleAllCase []string `yaml:"title_all_case,omitempty"`
}

// Matches reports whether the rule applies to the given normalized SKU and
// raw title.
func (r VendorRule) Matches(sku, title string) bool {
	for _, p := range r.SKUPrefix {
		if p != "" && strings.HasPrefix(sku, strings.ToUpper(p)) {
			return true
		}
	}
	for _, c := range r.SKUContains {
		if c != "" && strings.Contains(sku, strings.ToUpper(c)) {
			return true
		}
	}
	titleLower := strings.ToLower(title)
	for _, t := range r.TitleAny {
		if t != "" && strings.Contains(titleLower, strings.ToLower(t)) {
			return true
		}
	}
	for _, t := range r.TitleAnyCase {
		if t != "" && strings.Contains(title, t) {
			return true
		}
	}
	if len(r.TitleAllCase) > 0 {
		all := true
		for _, t := range r.TitleAllCase {
			if !strings.Contains(title, t) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// Category is one product category with the keyword phrases that signal it.
// Multi-word phrases score higher than single words, so more specific
// matches win.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy is the full classification configuration.
type Taxonomy struct {
	// MainVendors are the primary vendor names; the QC workbook filters
	// its missing-category sheet to these.
	MainVendors []string `yaml:"main_vendors"`

	// OtherVendors are recognized but secondary vendor names.
	OtherVendors []string `yaml:"other_vendors,omitempty"`

	// VendorAliases maps known vendor-name variants (sub-brands,
	// alternate spellings) onto canonical names.
	VendorAliases map[string]string `yaml:"vendor_aliases"`

	// VendorRules is the ordered rule list for vendor inference when the
	// reference table has no vendor for a line.
	VendorRules []VendorRule `yaml:"vendor_rules"`

	// Categories is the keyword taxonomy used for heuristic category
	// suggestions.
	Categories []Category `yaml:"categories"`
}

// CanonicalVendor maps a raw vendor string onto the canonical vendor name
// via the alias table. Unknown names pass through trimmed; blank stays
// blank.
func (t *Taxonomy) CanonicalVendor(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	if canonical, ok := t.VendorAliases[name]; ok {
		return canonical
	}
	return name
}

// IsMainVendor reports whether the canonical vendor name is one of the
// primary vendors.
func (t *Taxonomy) IsMainVendor(vendor string) bool {
	for _, v := range t.MainVendors {
		if v == vendor {
			return true
		}
	}
	return false
}
