package reftable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
)

func fixtureTable(t *testing.T) (*Table, *logging.MockLogger) {
	t.Helper()
	logger := logging.NewMockLogger()
	refs := []models.Reference{
		{
			SKU:             "ABC-123",
			ProductName:     "Heavy Duty Container Caster 500lb",
			Cost:            models.AmountFromFloat(42.50),
			Price:           models.AmountFromFloat(79.99),
			Vendor:          "Casters",
			ProductCategory: "Heavy Duty / Container",
			OverallCategory: "Casters",
		},
		{
			SKU:         "0244-15",
			ProductName: "Motorized Platform Cart",
			Cost:        models.AmountFromFloat(1200),
			Vendor:      "Electro Kinetic Technologies",
		},
		{
			SKU:         "BOL-44",
			ProductName: "Fixed Steel Bollard",
			Vendor:      "S4 Bollards",
		},
		{
			SKU:         "BOL-44-LONG",
			ProductName: "Fixed Steel Bollard with Embedded Anchor",
			Vendor:      "S4 Bollards",
		},
	}
	return New(refs, logger), logger
}

func TestResolveExactSKU(t *testing.T) {
	table, _ := fixtureTable(t)

	tests := []struct {
		name string
		sku  string
	}{
		{"Canonical form", "ABC-123"},
		{"Lowercase with spaces", "  abc-123 "},
		{"Comma noise", "ABC-1,23"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := table.Resolve(tc.sku, "", "")
			require.True(t, res.Found)
			assert.Equal(t, "ABC-123", res.SKU)
			assert.Equal(t, "Casters", res.Vendor)
			assert.True(t, models.AmountFromFloat(42.50).Equal(res.Cost))
			assert.Equal(t, "Heavy Duty / Container", res.ProductCategory)
		})
	}
}

func TestResolveByExternalID(t *testing.T) {
	table, _ := fixtureTable(t)
	table.AddIDMappings(map[string]string{"1000123": "abc-123"})

	res := table.Resolve("", "1000123", "")
	require.True(t, res.Found)
	assert.Equal(t, "ABC-123", res.SKU)

	res = table.Resolve("", "9999999", "")
	assert.False(t, res.Found)
}

func TestResolveByTitle(t *testing.T) {
	table, _ := fixtureTable(t)

	// Exact title, case-insensitive.
	res := table.Resolve("UNKNOWN-1", "", "heavy duty container caster 500LB")
	require.True(t, res.Found)
	assert.Equal(t, "ABC-123", res.SKU)

	// Word-prefix fallback: first three words identify the product.
	res = table.Resolve("", "", "Motorized Platform Cart with Remote")
	require.True(t, res.Found)
	assert.Equal(t, "0244-15", res.SKU)

	// Tie on the prefix prefers the longer (more specific) product name.
	res = table.Resolve("", "", "Fixed Steel Bollard 6in x 48in")
	require.True(t, res.Found)
	assert.Equal(t, "BOL-44-LONG", res.SKU)
}

func TestResolveMiss(t *testing.T) {
	table, _ := fixtureTable(t)

	res := table.Resolve("ZZZ-999", "", "Completely unknown gadget")
	assert.False(t, res.Found)
	assert.Empty(t, res.SKU)
	assert.False(t, res.Cost.Valid)
	assert.Empty(t, res.Vendor)
}

func TestDuplicateSKUKeepsFirst(t *testing.T) {
	logger := logging.NewMockLogger()
	table := New([]models.Reference{
		{SKU: "DUP-1", ProductName: "First listing", Cost: models.AmountFromFloat(10)},
		{SKU: "dup-1", ProductName: "Second listing", Cost: models.AmountFromFloat(99)},
	}, logger)

	assert.Equal(t, 1, table.Len())

	res := table.Resolve("DUP-1", "", "")
	require.True(t, res.Found)
	assert.True(t, models.AmountFromFloat(10).Equal(res.Cost))

	warned := false
	for _, e := range logger.Entries() {
		if e.Level == "WARN" {
			warned = true
		}
	}
	assert.True(t, warned, "duplicate should be logged")
}

func TestBlankSKURowsSkipped(t *testing.T) {
	table := New([]models.Reference{
		{SKU: "", ProductName: "Headerless junk row"},
		{SKU: "GOOD-1", ProductName: "Real product"},
	}, logging.NewMockLogger())

	assert.Equal(t, 1, table.Len())
}
