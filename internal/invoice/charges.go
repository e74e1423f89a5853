package invoice

import "strings"

// ChargeClass partitions line items into sellable product lines and the
// invoice-level charge lines that get apportioned across them.
type ChargeClass int

const (
	ChargeProduct ChargeClass = iota
	ChargeShipping
	ChargeDiscount
)

// shippingTerms and discountTerms are matched case-insensitively as
// substrings of the charge-type field - not the product title, which may
// coincidentally contain words like "discount".
var shippingTerms = []string{
	"DELIVERY FEE",
	"FREIGHT CHARGED",
	"FREIGHT-NON TAX",
	"FREIGHT-TAXABLE",
	"SHIPPING CHARGED - NON-TAXABLE",
	"SHIPPING CHARGED - TAXABLE",
	"RESTOCKING FEE",
	"TAX, TARIFF, FREIGHT",
}

var discountTerms = []string{
	"DISCOUNT",
}

// Classify identifies what kind of line a charge-type tag describes. An
// empty or unrecognized tag is an ordinary product line.
func Classify(chargeType string) ChargeClass {
	tag := strings.ToUpper(strings.TrimSpace(chargeType))
	if tag == "" {
		return ChargeProduct
	}
	for _, term := range shippingTerms {
		if strings.Contains(tag, term) {
			return ChargeShipping
		}
	}
	for _, term := range discountTerms {
		if strings.Contains(tag, term) {
			return ChargeDiscount
		}
	}
	return ChargeProduct
}
