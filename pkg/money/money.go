// Package money holds the lenient numeric coercion used for deal records
// and the shared currency formatting helpers.
package money

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric prefix of a raw field, e.g. "7.2" in "7.2 kW".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)(?:[eE]([+-]?\d+))?`)

// maxExponent bounds the exponent of scientific notation accepted by Parse.
const maxExponent = 100

// Parse coerces a numeric-like string into a decimal.
// Surrounding whitespace, a leading "$" and thousands separators are ignored,
// and only the leading numeric portion is read. ok is false when no number
// could be read or its exponent is out of range, in which case the returned
// value is zero.
func Parse(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}
	if exp := m[2]; exp != "" {
		n, err := strconv.Atoi(exp)
		if err != nil || n > maxExponent || n < -maxExponent {
			return decimal.Zero, false
		}
	}
	d, err := decimal.NewFromString(m[0])
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOrZero is Parse without the ok flag.
func ParseOrZero(raw string) decimal.Decimal {
	d, _ := Parse(raw)
	return d
}

// NonNegative clamps negative amounts to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Sum adds the given amounts in order.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Must builds a decimal from a literal; it panics on malformed input and is
// meant for package-level constants.
func Must(literal string) decimal.Decimal {
	return decimal.RequireFromString(literal)
}

// FormatCurrency formats an amount as USD with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a rate (0.39) as a percentage string (39.00%).
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
