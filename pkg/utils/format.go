// Package utils provides common pure formatting helpers for CryptoTrack.
package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	one      = decimal.NewFromInt(1)
	thousand = decimal.NewFromInt(1000)
)

// FormatUSD formats a price with tiered precision: two decimals with
// thousands separators above $1000, four decimals above $1, eight below.
// Sub-dollar assets need the extra places to show movement at all.
func FormatUSD(price decimal.Decimal) string {
	abs := price.Abs()
	switch {
	case abs.GreaterThanOrEqual(thousand):
		return "$" + groupThousands(price.StringFixed(2))
	case abs.GreaterThanOrEqual(one):
		return "$" + price.StringFixed(4)
	default:
		return "$" + price.StringFixed(8)
	}
}

// FormatCompactUSD formats a large amount in compact notation,
// e.g. 1234000000000 → "$1.23T", 45600000 → "$45.60M".
func FormatCompactUSD(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "N/A"
	}

	f, _ := amount.Float64()
	switch {
	case f >= 1e12:
		return fmt.Sprintf("$%.2fT", f/1e12)
	case f >= 1e9:
		return fmt.Sprintf("$%.2fB", f/1e9)
	case f >= 1e6:
		return fmt.Sprintf("$%.2fM", f/1e6)
	case f >= 1e3:
		return fmt.Sprintf("$%.2fK", f/1e3)
	default:
		return "$" + amount.StringFixed(2)
	}
}

// FormatPct formats a percentage with an explicit sign and suffix,
// e.g. 2.45 → "+2.45%", -1.23 → "-1.23%".
func FormatPct(pct decimal.Decimal) string {
	if pct.Sign() >= 0 {
		return "+" + pct.StringFixed(2) + "%"
	}
	return pct.StringFixed(2) + "%"
}

// Truncate shortens s to max runes, appending ".." when it was cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-2]) + ".."
}

// groupThousands inserts commas into the integer part of a fixed-point
// decimal string ("1234567.89" → "1,234,567.89").
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var sb strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}

	out := sb.String() + frac
	if neg {
		return "-" + out
	}
	return out
}
