package storefront

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const CurrencySymbol = "R$"

var moneyLocale = language.BrazilianPortuguese

// UnitPrice coerces a catalog price into a decimal. Missing, NaN and infinite prices are zero.
func UnitPrice(price *float64) decimal.Decimal {
	if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*price)
}

// FormatMoney renders an amount as "R$ 1.234,56", rounding half away from zero.
// Negative amounts render as "-R$ 10,00"; anything that rounds to zero has no sign.
func FormatMoney(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	value, _ := rounded.Float64()
	p := message.NewPrinter(moneyLocale)
	return sign + CurrencySymbol + " " + p.Sprint(number.Decimal(value, number.Scale(2)))
}

func FormatAmount(amount float64) string {
	return FormatPrice(&amount)
}

func FormatPrice(price *float64) string {
	return FormatMoney(UnitPrice(price))
}
