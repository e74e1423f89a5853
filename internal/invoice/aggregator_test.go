package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
)

func amt(f float64) models.Amount { return models.AmountFromFloat(f) }

func findLine(t *testing.T, lines []models.LineItem, sku string) models.LineItem {
	t.Helper()
	for _, li := range lines {
		if li.SKU == sku {
			return li
		}
	}
	t.Fatalf("line %s not found", sku)
	return models.LineItem{}
}

func TestRunAllocatesShippingByShare(t *testing.T) {
	agg := New(logging.NewMockLogger())

	lines := []models.LineItem{
		{InvoiceID: "INV-100", SKU: "A", Quantity: amt(1), CostEach: amt(30), LineTotal: amt(60)},
		{InvoiceID: "INV-100", SKU: "B", Quantity: amt(1), CostEach: amt(20), LineTotal: amt(40)},
		{InvoiceID: "INV-100", ChargeType: "Freight Charged", LineTotal: amt(20)},
	}

	result := agg.Run(lines)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, 1, result.ChargeLines)

	a := findLine(t, result.Lines, "A")
	b := findLine(t, result.Lines, "B")

	// 60/40 split of the $20 shipping charge.
	assert.True(t, amt(12).Equal(a.ShippingAllocated), "got %#v", a.ShippingAllocated)
	assert.True(t, amt(8).Equal(b.ShippingAllocated), "got %#v", b.ShippingAllocated)
	assert.True(t, amt(0.6).Equal(a.OrderShare))
	assert.True(t, amt(0.4).Equal(b.OrderShare))

	// Allocations sum back to the charge total.
	sum := a.ShippingAllocated.Decimal.Add(b.ShippingAllocated.Decimal)
	assert.True(t, decimal.NewFromInt(20).Sub(sum).Abs().LessThanOrEqual(decimal.NewFromFloat(1e-6)))

	// Invoice total folds the allocation in.
	assert.True(t, amt(72).Equal(a.InvoiceTotal))
	assert.True(t, amt(48).Equal(b.InvoiceTotal))

	// Profit ignores shipping: line total minus cost minus discount share.
	assert.True(t, amt(30).Equal(a.ProfitTotal))
	assert.True(t, amt(20).Equal(b.ProfitTotal))
}

func TestRunDiscountUsesAbsoluteValue(t *testing.T) {
	agg := New(logging.NewMockLogger())

	lines := []models.LineItem{
		{InvoiceID: "INV-200", SKU: "A", Quantity: amt(2), CostEach: amt(10), LineTotal: amt(100)},
		{InvoiceID: "INV-200", ChargeType: "Discount", LineTotal: amt(-15)},
	}

	result := agg.Run(lines)
	require.Len(t, result.Lines, 1)

	a := result.Lines[0]
	assert.True(t, amt(15).Equal(a.DiscountAllocated), "got %#v", a.DiscountAllocated)
	// invoice total = 100 + 0 - 15
	assert.True(t, amt(85).Equal(a.InvoiceTotal))
	// profit = 100 - 20 - 15
	assert.True(t, amt(65).Equal(a.ProfitTotal))

	// ROI = profit / (invoice total + epsilon), just under 65/85.
	require.True(t, a.ROI.Valid)
	expected := decimal.NewFromInt(65).Div(decimal.NewFromFloat(85.0001))
	assert.True(t, expected.Sub(a.ROI.Decimal).Abs().LessThanOrEqual(decimal.NewFromFloat(1e-9)))
}

func TestRunNullCostPropagates(t *testing.T) {
	agg := New(logging.NewMockLogger())

	lines := []models.LineItem{
		{InvoiceID: "INV-300", SKU: "A", Quantity: amt(3), LineTotal: amt(90)},
	}

	result := agg.Run(lines)
	require.Len(t, result.Lines, 1)

	a := result.Lines[0]
	assert.False(t, a.CostTotal.Valid)
	assert.False(t, a.ProfitTotal.Valid)
	assert.False(t, a.ROI.Valid)
	// Revenue-side numbers still compute.
	assert.True(t, amt(90).Equal(a.InvoiceTotal))
}

func TestRunChargeOnlyInvoice(t *testing.T) {
	agg := New(logging.NewMockLogger())

	// An invoice that is nothing but a freight line: the charge has
	// nowhere to go and the invoice contributes no output rows.
	lines := []models.LineItem{
		{InvoiceID: "INV-400", ChargeType: "Delivery Fee", LineTotal: amt(25)},
	}

	result := agg.Run(lines)
	assert.Empty(t, result.Lines)
	assert.Equal(t, 1, result.ChargeLines)
	assert.True(t, decimal.NewFromInt(25).Equal(result.Totals["INV-400"].Shipping))
	assert.True(t, result.Totals["INV-400"].Subtotal.IsZero())
}

func TestRunZeroSubtotalShare(t *testing.T) {
	agg := New(logging.NewMockLogger())

	lines := []models.LineItem{
		{InvoiceID: "INV-500", SKU: "A", Quantity: amt(1), LineTotal: amt(0)},
		{InvoiceID: "INV-500", ChargeType: "Freight Charged", LineTotal: amt(10)},
	}

	result := agg.Run(lines)
	require.Len(t, result.Lines, 1)

	// Zero subtotal means no defensible share; nothing is allocated.
	a := result.Lines[0]
	assert.True(t, amt(0).Equal(a.OrderShare))
	assert.True(t, amt(0).Equal(a.ShippingAllocated))
}

func TestRunDoesNotMutateInput(t *testing.T) {
	agg := New(logging.NewMockLogger())

	lines := []models.LineItem{
		{InvoiceID: "INV-600", SKU: "A", Quantity: amt(1), CostEach: amt(5), LineTotal: amt(50)},
		{InvoiceID: "INV-600", ChargeType: "Discount", LineTotal: amt(-5)},
	}

	agg.Run(lines)

	assert.False(t, lines[0].ShippingAllocated.Valid)
	assert.False(t, lines[0].InvoiceTotal.Valid)
	assert.False(t, lines[0].ProfitTotal.Valid)
}

func TestRunSeparateInvoicesStaySeparate(t *testing.T) {
	agg := New(logging.NewMockLogger())

	lines := []models.LineItem{
		{InvoiceID: "INV-700", SKU: "A", Quantity: amt(1), CostEach: amt(1), LineTotal: amt(10)},
		{InvoiceID: "INV-701", SKU: "B", Quantity: amt(1), CostEach: amt(1), LineTotal: amt(10)},
		{InvoiceID: "INV-701", ChargeType: "Delivery Fee", LineTotal: amt(6)},
	}

	result := agg.Run(lines)
	require.Len(t, result.Lines, 2)

	a := findLine(t, result.Lines, "A")
	b := findLine(t, result.Lines, "B")
	assert.True(t, amt(0).Equal(a.ShippingAllocated))
	assert.True(t, amt(6).Equal(b.ShippingAllocated))
}
