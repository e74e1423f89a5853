// Package models defines the data records flowing through the enrichment
// pipeline: sales line items, reference catalog rows, and classification
// suggestions.
package models

// LineItem is one row of a sales export as it moves through the pipeline.
// The raw fields come from parsing one export row; the derived fields are
// filled in by successive pipeline stages. Once the pipeline completes the
// record is written out and never mutated again.
//
// The csv tags describe the enriched output layout, which mirrors the
// dashboard import sheet.
type LineItem struct {
	// Raw fields from the export.
	Customer    string `csv:"Customer"`
	Rep         string `csv:"Rep"`
	OrderType   string `csv:"Online / In Person"`
	Date        string `csv:"Date"`
	InvoiceID   string `csv:"Invoice #"`
	SKU         string `csv:"SKU"`
	Description string `csv:"Description"`
	Quantity    Amount `csv:"Order Quantity"`
	UnitPrice   Amount `csv:"Sales Each"`
	LineTotal   Amount `csv:"Sales Total"`

	// Not exported to the output sheet: the order document reference and
	// the charge-type tag used for shipping/discount detection.
	OrderRef   string `csv:"-"`
	ChargeType string `csv:"-"`
	VendorRaw  string `csv:"-"`
	ExternalID string `csv:"-"`
	Activity   string `csv:"-"`
	Address    string `csv:"-"`

	// Derived fields populated by the pipeline.
	CostEach          Amount `csv:"Cost Each"`
	CostTotal         Amount `csv:"Cost Total"`
	Vendor            string `csv:"Vendor"`
	OrderShare        Amount `csv:"Orders"`
	ShippingAllocated Amount `csv:"Shipping"`
	DiscountAllocated Amount `csv:"Discount"`
	InvoiceTotal      Amount `csv:"Invoice Total"`
	ProfitTotal       Amount `csv:"Profit Total"`
	ROI               Amount `csv:"ROI"`
	ProductCategory   string `csv:"Product Category"`
	OverallCategory   string `csv:"Overall Product Category"`
	State             string `csv:"State"`
	Region            string `csv:"Region"`
	TrackedMonth      string `csv:"Tracked Month"`
}

// HasIdentity reports whether the line carries any product identity. Rows
// with neither SKU nor description are charge remnants or adjustments and
// are dropped unless the run is configured to keep them.
func (li LineItem) HasIdentity() bool {
	return li.SKU != "" || li.Description != ""
}

// CategoryBlank is the category value for lines nothing could classify.
const CategoryBlank = "BLANK"
