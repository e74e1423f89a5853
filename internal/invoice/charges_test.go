package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCharge(t *testing.T) {
	tests := []struct {
		name       string
		chargeType string
		expected   ChargeClass
	}{
		{"Empty tag is product", "", ChargeProduct},
		{"Whitespace tag is product", "  ", ChargeProduct},
		{"Ordinary charge tag is product", "Handling", ChargeProduct},
		{"Delivery fee", "Delivery Fee", ChargeShipping},
		{"Freight charged", "FREIGHT CHARGED", ChargeShipping},
		{"Freight non-taxable", "Freight-Non Tax", ChargeShipping},
		{"Freight taxable mixed case", "Freight-Taxable", ChargeShipping},
		{"Shipping charged taxable", "Shipping Charged - Taxable", ChargeShipping},
		{"Restocking fee", "Restocking Fee", ChargeShipping},
		{"Tariff freight", "Tax, Tariff, Freight", ChargeShipping},
		{"Discount", "Discount", ChargeDiscount},
		{"Volume discount", "Volume Discount 5%", ChargeDiscount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.chargeType))
		})
	}
}
