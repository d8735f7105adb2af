package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Formatter turns an amount into its display string
type Formatter interface {
	Format(amount decimal.Decimal) string
}

// Currency formats amounts for display with two fraction digits
type Currency struct {
	Symbol  string
	Decimal string
	Group   string
}

// BRL is the display format of the food app: R$ 1.234,50
var BRL = Currency{Symbol: "R$", Decimal: ",", Group: "."}

func (c Currency) Format(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteString("-")
	}
	b.WriteString(c.Symbol)
	b.WriteString(" ")

	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(c.Group)
		}
		b.WriteRune(digit)
	}

	b.WriteString(c.Decimal)
	b.WriteString(frac)

	return b.String()
}
