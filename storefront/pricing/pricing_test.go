package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	p, err := ParseDecimal("105.50")
	require.NoError(t, err)
	assert.True(t, p.Valid())
	assert.Equal(t, "105.50", p.String())

	_, err = ParseDecimal("twelve")
	assert.Error(t, err)

	var zero ParsedDecimal
	assert.False(t, zero.Valid())
	assert.Equal(t, NotAvailable, zero.String())
}

func TestSellPrice(t *testing.T) {
	tests := []struct {
		name          string
		discountPrice string
		vatPercentage string
		want          string
	}{
		{"reference example", "100", "5", "105.00"},
		{"zero vat", "50", "0", "50.00"},
		{"fractional vat", "99.99", "7.5", "107.49"},
		{"unparseable discount", "", "5", "N/A"},
		{"unparseable vat", "100", "five", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SellPrice(tt.discountPrice, tt.vatPercentage))
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, "21.00", LineTotal(MustParse("10.5"), 2).StringFixed(2))
	assert.True(t, LineTotal(MustParse("10.5"), 0).IsZero())
	assert.True(t, LineTotal(MustParse("10.5"), -3).IsZero())
	assert.True(t, LineTotal(ParsedDecimal{}, 2).IsZero())
}

func TestCartTotal(t *testing.T) {
	lines := []Line{
		{UnitPrice: MustParse("10"), Quantity: 2},
		{UnitPrice: MustParse("5.5"), Quantity: 3},
	}
	assert.Equal(t, "36.50", FormatAmount(CartTotal(lines)))
}

func TestCartTotal_OrderIndependent(t *testing.T) {
	a := []Line{
		{UnitPrice: MustParse("10"), Quantity: 2},
		{UnitPrice: MustParse("5.5"), Quantity: 3},
		{UnitPrice: MustParse("7.25"), Quantity: 1},
	}
	b := []Line{a[2], a[0], a[1]}

	assert.True(t, CartTotal(a).Equal(CartTotal(b)))
}

func TestCartTotal_IgnoresNonPositiveQuantities(t *testing.T) {
	lines := []Line{
		{UnitPrice: MustParse("10"), Quantity: 2},
		{UnitPrice: MustParse("99"), Quantity: 0},
		{UnitPrice: MustParse("50"), Quantity: -1},
	}
	assert.Equal(t, "20.00", FormatAmount(CartTotal(lines)))
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(CartTotal(nil)))
}
