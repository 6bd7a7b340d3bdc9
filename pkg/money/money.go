package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Round2 rounds v to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Sub2 returns a-b rounded to 2 decimal places. The subtraction is done in
// decimal so that two already-rounded amounts produce an exact difference.
func Sub2(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// Format renders v with thousands separators and exactly 2 decimals
// ("12,345.60"). The whole part is grouped as a big.Int so amounts past
// int64 keep their digits.
func Format(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).StringFixed(2) // "0.xx"
	return sign + humanize.BigComma(whole.BigInt()) + cents[1:]
}

// Group renders v rounded to a whole number with thousands separators.
func Group(v float64) string {
	return humanize.BigComma(decimal.NewFromFloat(v).Round(0).BigInt())
}
