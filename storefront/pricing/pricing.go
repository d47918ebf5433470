// Package pricing computes customer-facing prices from the string-typed
// numeric fields the API serves. Parsing is always explicit; a value that
// fails to parse renders as the not-available sentinel instead of silently
// becoming zero.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NotAvailable is rendered when a price field cannot be parsed
const NotAvailable = "N/A"

var hundred = decimal.NewFromInt(100)

// ParsedDecimal wraps a decimal parsed from a string-typed API field.
// The zero value is invalid.
type ParsedDecimal struct {
	value decimal.Decimal
	valid bool
}

// ParseDecimal parses a string-typed numeric field
func ParseDecimal(s string) (ParsedDecimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ParsedDecimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return ParsedDecimal{value: d, valid: true}, nil
}

// MustParse parses a literal known to be valid; it is for tests and
// constants, never for API data
func MustParse(s string) ParsedDecimal {
	p, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return p
}

// FromDecimal wraps an already-parsed decimal
func FromDecimal(d decimal.Decimal) ParsedDecimal {
	return ParsedDecimal{value: d, valid: true}
}

// Valid reports whether the value parsed
func (p ParsedDecimal) Valid() bool {
	return p.valid
}

// Decimal returns the parsed value, or zero when invalid
func (p ParsedDecimal) Decimal() decimal.Decimal {
	return p.value
}

// String renders at two decimal places, or the not-available sentinel
func (p ParsedDecimal) String() string {
	if !p.valid {
		return NotAvailable
	}
	return p.value.StringFixed(2)
}

// SellPriceDecimal computes the VAT-inclusive sell price rounded to two
// places. Both inputs must be valid.
func SellPriceDecimal(discountPrice, vatPercentage ParsedDecimal) (decimal.Decimal, bool) {
	if !discountPrice.valid || !vatPercentage.valid {
		return decimal.Zero, false
	}
	vat := discountPrice.value.Mul(vatPercentage.value).Div(hundred)
	return discountPrice.value.Add(vat).Round(2), true
}

// SellPrice renders the VAT-inclusive price of the given string-typed
// fields, or the not-available sentinel when either fails to parse
func SellPrice(discountPrice, vatPercentage string) string {
	d, errD := ParseDecimal(discountPrice)
	v, errV := ParseDecimal(vatPercentage)
	if errD != nil || errV != nil {
		return NotAvailable
	}
	price, _ := SellPriceDecimal(d, v)
	return price.StringFixed(2)
}

// Line is one priced cart line
type Line struct {
	UnitPrice ParsedDecimal
	Quantity  int
}

// LineTotal returns quantity times unit price at full precision.
// Non-positive quantities and unparsed prices contribute zero.
func LineTotal(unitPrice ParsedDecimal, quantity int) decimal.Decimal {
	if !unitPrice.valid || quantity <= 0 {
		return decimal.Zero
	}
	return unitPrice.value.Mul(decimal.NewFromInt(int64(quantity)))
}

// CartTotal sums line totals at full precision and rounds once at the end.
// The result does not depend on line order.
func CartTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return total.Round(2)
}

// FormatAmount renders a computed amount at two decimal places
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
