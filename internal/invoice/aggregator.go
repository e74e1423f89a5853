// Package invoice apportions invoice-level shipping and discount charges
// across the product lines of each invoice and derives per-line profit and
// ROI. Aggregation is two read-only passes - build immutable per-invoice
// totals, then map the original records to a new enriched set - so the
// input slice is never mutated.
package invoice

import (
	"github.com/shopspring/decimal"

	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
)

// roiEpsilon pads the ROI denominator so a zero invoice total cannot divide
// by zero while leaving real invoices materially unchanged.
var roiEpsilon = decimal.NewFromFloat(0.0001)

// Totals holds the per-invoice aggregates computed in the pre-pass.
type Totals struct {
	// Shipping is the summed amount of the invoice's shipping-type charge
	// lines.
	Shipping decimal.Decimal
	// Discount is the summed absolute amount of the invoice's
	// discount-type charge lines; source amounts may be negative.
	Discount decimal.Decimal
	// Subtotal is the summed line total of the invoice's product lines,
	// computed after charge-line removal.
	Subtotal decimal.Decimal
}

// Result is the outcome of one aggregation run.
type Result struct {
	// Lines is the new enriched record set; charge lines are removed
	// because they are not independently sellable.
	Lines []models.LineItem
	// Totals maps invoice ID to its aggregates, kept for reconciliation
	// reporting.
	Totals map[string]Totals
	// ChargeLines counts the shipping/discount lines absorbed into
	// allocations.
	ChargeLines int
}

// Aggregator runs the allocation passes.
type Aggregator struct {
	logger logging.Logger
}

// New creates an Aggregator.
func New(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Aggregator{logger: logger}
}

// Run partitions lines into product and charge lines, sums charges per
// invoice, and returns a new record set with shipping/discount allocated
// proportionally to each product line's share of its invoice subtotal.
//
// A line with unknown cost keeps null cost, profit, and ROI; the numbers
// are never computed against an implicit zero cost.
func (a *Aggregator) Run(lines []models.LineItem) Result {
	totals := make(map[string]Totals)
	chargeLines := 0

	// Pass 1: sum shipping and discount charges per invoice.
	for _, li := range lines {
		t := totals[li.InvoiceID]
		switch Classify(li.ChargeType) {
		case ChargeShipping:
			t.Shipping = t.Shipping.Add(li.LineTotal.OrZero())
			chargeLines++
		case ChargeDiscount:
			t.Discount = t.Discount.Add(li.LineTotal.OrZero().Abs())
			chargeLines++
		}
		totals[li.InvoiceID] = t
	}

	// Pass 2: invoice subtotals over product lines only.
	for _, li := range lines {
		if Classify(li.ChargeType) != ChargeProduct {
			continue
		}
		t := totals[li.InvoiceID]
		t.Subtotal = t.Subtotal.Add(li.LineTotal.OrZero())
		totals[li.InvoiceID] = t
	}

	// Pass 3: map product lines to enriched copies.
	enriched := make([]models.LineItem, 0, len(lines)-chargeLines)
	for _, li := range lines {
		if Classify(li.ChargeType) != ChargeProduct {
			continue
		}
		enriched = append(enriched, a.allocate(li, totals[li.InvoiceID]))
	}

	if chargeLines > 0 {
		a.logger.WithField(logging.FieldCount, chargeLines).Info("Absorbed charge lines into allocations")
	}

	return Result{
		Lines:       enriched,
		Totals:      totals,
		ChargeLines: chargeLines,
	}
}

// allocate fills the derived fields of one product line from its invoice
// totals.
func (a *Aggregator) allocate(li models.LineItem, t Totals) models.LineItem {
	// Order share: this line's fraction of the invoice subtotal. Zero for
	// malformed lines or empty invoices.
	share := decimal.Zero
	if li.LineTotal.Valid && t.Subtotal.IsPositive() {
		share = li.LineTotal.Decimal.Div(t.Subtotal)
	}
	li.OrderShare = models.NewAmount(share)

	li.ShippingAllocated = models.NewAmount(share.Mul(t.Shipping))
	li.DiscountAllocated = models.NewAmount(share.Mul(t.Discount))

	// Cost total follows quantity x unit cost; unknown cost stays null.
	li.CostTotal = li.Quantity.Mul(li.CostEach)

	if li.LineTotal.Valid {
		invoiceTotal := li.LineTotal.Decimal.
			Add(li.ShippingAllocated.Decimal).
			Sub(li.DiscountAllocated.Decimal)
		li.InvoiceTotal = models.NewAmount(invoiceTotal)
	} else {
		li.InvoiceTotal = models.NullAmount()
	}

	li.ProfitTotal = li.LineTotal.Sub(li.CostTotal).Sub(li.DiscountAllocated)

	li.ROI = roi(li.ProfitTotal, li.InvoiceTotal)

	return li
}

// roi computes profit / (invoice total + epsilon); null profit or invoice
// total propagates as null.
func roi(profit, invoiceTotal models.Amount) models.Amount {
	if !profit.Valid || !invoiceTotal.Valid {
		return models.NullAmount()
	}
	denom := invoiceTotal.Decimal.Add(roiEpsilon)
	if denom.IsZero() {
		return models.NullAmount()
	}
	return models.NewAmount(profit.Decimal.Div(denom))
}
