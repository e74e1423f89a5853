package models

// Reference is one row of the master product catalog. The catalog is
// curated externally and read-only for this pipeline; it is the only
// source allowed to fill cost, price, vendor, and category without review.
type Reference struct {
	SKU             string `csv:"SKU"`
	ProductName     string `csv:"PRODUCT NAME"`
	Cost            Amount `csv:"COST"`
	Price           Amount `csv:"PRICE"`
	Vendor          string `csv:"VENDOR"`
	ProductCategory string `csv:"PRODUCT CATEGORY"`
	OverallCategory string `csv:"OVERALL PRODUCT CATEGORY"`
}

// Resolution is the outcome of a reference lookup. Zero value means
// "not found": every field empty/null, Found false. The resolver never
// guesses; an unresolved record is routed to review downstream.
type Resolution struct {
	Found           bool
	SKU             string
	Cost            Amount
	Price           Amount
	Vendor          string
	ProductCategory string
	OverallCategory string
}
