package storefront

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "R$ 0,00"},
		{"whole", 10, "R$ 10,00"},
		{"fraction", 9.9, "R$ 9,90"},
		{"thousands", 1234.56, "R$ 1.234,56"},
		{"millions", 1000000, "R$ 1.000.000,00"},
		{"rounds half up", 2.345, "R$ 2,35"},
		{"more than two decimals", 1234.567, "R$ 1.234,57"},
		{"negative", -10, "-R$ 10,00"},
		{"negative rounding to zero", -0.004, "R$ 0,00"},
		{"NaN", math.NaN(), "R$ 0,00"},
		{"positive infinity", math.Inf(1), "R$ 0,00"},
		{"negative infinity", math.Inf(-1), "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}

func TestFormatPrice_Missing(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatPrice(nil))
}

func TestFormatMoney_Decimal(t *testing.T) {
	assert.Equal(t, "R$ 0,30", FormatMoney(decimal.NewFromFloat(0.1).Add(decimal.NewFromFloat(0.2))))
}

func TestUnitPrice(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	price := 12.5

	assert.True(t, UnitPrice(nil).IsZero())
	assert.True(t, UnitPrice(&nan).IsZero())
	assert.True(t, UnitPrice(&inf).IsZero())
	assert.True(t, UnitPrice(&price).Equal(decimal.RequireFromString("12.5")))
}
