package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Blank reports whether a raw form value is absent.
func Blank(raw string) bool { return strings.TrimSpace(raw) == "" }

// Float parses a decimal form value. NaN, infinities and anything that is
// not a plain decimal number are rejected, as is anything beyond float64
// range.
func Float(raw string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int parses a base-10 whole number form value.
func Int(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
