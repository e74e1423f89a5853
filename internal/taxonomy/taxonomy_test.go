package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalVendor(t *testing.T) {
	tax := Default()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Blank stays blank", "", ""},
		{"Whitespace only", "   ", ""},
		{"Alias maps to canonical", "Durable Superior Casters", "Casters"},
		{"Sub-brand alias", "Colson", "Casters"},
		{"Spelling variant", "Handle It", "Handle-It"},
		{"Short alias", "Bluff", "Bluff Manufacturing"},
		{"Canonical passes through", "Noblelift", "Noblelift"},
		{"Unknown passes through trimmed", "  Acme Corp  ", "Acme Corp"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tax.CanonicalVendor(tc.raw))
		})
	}
}

func TestIsMainVendor(t *testing.T) {
	tax := Default()
	assert.True(t, tax.IsMainVendor("Casters"))
	assert.True(t, tax.IsMainVendor("Ekko Lifts"))
	assert.False(t, tax.IsMainVendor("Luxor"))
	assert.False(t, tax.IsMainVendor(""))
}

func TestVendorRuleOrder(t *testing.T) {
	tax := Default()

	match := func(sku, title string) string {
		for _, rule := range tax.VendorRules {
			if rule.Matches(sku, title) {
				return rule.Vendor
			}
		}
		return ""
	}

	tests := []struct {
		name     string
		sku      string
		title    string
		expected string
	}{
		{"Specific prefix beats broad family", "0244-15", "Motorized cart", "Electro Kinetic Technologies"},
		{"Second specific prefix", "0845-3", "", "Electro Kinetic Technologies"},
		{"Broad 02 family", "0299-X", "Pallet jack", "Ekko Lifts"},
		{"Caster prefix beats 03 family", "03MA-400", "", "Casters"},
		{"Title brand with exact case", "", "NOBLELIFT EDGE pallet truck", "Noblelift"},
		{"EDGE requires exact case", "", "Straight edge ruler", ""},
		{"Handle-It needs both tokens", "", "Handle It rack protector", "Handle-It"},
		{"Handle alone is not enough", "", "Door handle replacement", ""},
		{"No rule matches", "ZZZ-1", "Mystery widget", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, match(tc.sku, tc.title))
		})
	}
}

func TestDefaultTaxonomyShape(t *testing.T) {
	tax := Default()

	assert.Len(t, tax.MainVendors, 18)
	assert.NotEmpty(t, tax.OtherVendors)
	assert.NotEmpty(t, tax.VendorRules)
	assert.NotEmpty(t, tax.Categories)

	// Every alias target is a known vendor.
	known := make(map[string]bool)
	for _, v := range tax.MainVendors {
		known[v] = true
	}
	for _, v := range tax.OtherVendors {
		known[v] = true
	}
	for alias, target := range tax.VendorAliases {
		assert.True(t, known[target], "alias %q points to unknown vendor %q", alias, target)
	}

	// Category names are unique; duplicates would shadow each other in
	// first-match-wins scoring ties.
	seen := make(map[string]bool)
	for _, c := range tax.Categories {
		require.False(t, seen[c.Name], "duplicate category %q", c.Name)
		seen[c.Name] = true
		assert.NotEmpty(t, c.Keywords, "category %q has no keywords", c.Name)
	}
}
