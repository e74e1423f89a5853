package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a nullable decimal for currency and quantity fields. The zero
// value is null. Null means "unknown", which is distinct from zero: an
// unknown cost must never be treated as a free unit.
type Amount struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NewAmount returns a valid Amount holding d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d, Valid: true}
}

// AmountFromFloat returns a valid Amount from a float64.
func AmountFromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f), Valid: true}
}

// NullAmount returns the null Amount.
func NullAmount() Amount {
	return Amount{}
}

// ParseCurrency extracts a decimal value from a currency string such as
// "$1,234.56". Blank input or anything that does not parse yields null -
// malformed numbers are excluded from sums rather than crashing the batch.
func ParseCurrency(value string) Amount {
	s := strings.TrimSpace(value)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}

	// Accounting-style negatives: (12.34) means -12.34.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return Amount{Decimal: d, Valid: true}
}

// OrZero returns the held decimal, or zero when null. Use only where an
// unknown value legitimately counts as zero (e.g. charge sums), never for
// cost propagation.
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Decimal
}

// Mul multiplies two amounts; null propagates.
func (a Amount) Mul(b Amount) Amount {
	if !a.Valid || !b.Valid {
		return Amount{}
	}
	return NewAmount(a.Decimal.Mul(b.Decimal))
}

// Sub subtracts b from a; null propagates.
func (a Amount) Sub(b Amount) Amount {
	if !a.Valid || !b.Valid {
		return Amount{}
	}
	return NewAmount(a.Decimal.Sub(b.Decimal))
}

// String renders the amount, or "" when null.
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return a.Decimal.String()
}

// StringFixed renders the amount with the given number of decimal places,
// or "" when null.
func (a Amount) StringFixed(places int32) string {
	if !a.Valid {
		return ""
	}
	return a.Decimal.StringFixed(places)
}

// MarshalCSV implements the gocsv marshaller. Null renders as an empty cell.
func (a Amount) MarshalCSV() (string, error) {
	return a.String(), nil
}

// UnmarshalCSV implements the gocsv unmarshaller. Anything non-numeric
// (including currency formatting noise) coerces to null, never to an error.
func (a *Amount) UnmarshalCSV(value string) error {
	*a = ParseCurrency(value)
	return nil
}

// Equal reports whether two amounts are both null or hold the same value.
func (a Amount) Equal(b Amount) bool {
	if a.Valid != b.Valid {
		return false
	}
	if !a.Valid {
		return true
	}
	return a.Decimal.Equal(b.Decimal)
}

// WithinTolerance reports whether two valid amounts differ by no more than
// tol. A null on either side is only within tolerance of another null.
func (a Amount) WithinTolerance(b Amount, tol decimal.Decimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	if !a.Valid {
		return true
	}
	return a.Decimal.Sub(b.Decimal).Abs().LessThanOrEqual(tol)
}

func (a Amount) GoString() string {
	if !a.Valid {
		return "Amount(null)"
	}
	return fmt.Sprintf("Amount(%s)", a.Decimal.String())
}
