// Package money converts integer minor currency units (cents) to display
// strings. Nothing outside the presentation layer should call it.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const symbol = "$"

// Units returns cents as an exact decimal amount of major units.
func Units(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders cents as "$1234.50". Negative amounts render as "-$12.00".
func Format(cents int64) string {
	d := Units(cents)
	if d.IsNegative() {
		return "-" + symbol + d.Neg().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

// FormatNullable renders nil as "$0.00".
func FormatNullable(cents *int64) string {
	if cents == nil {
		return Format(0)
	}
	return Format(*cents)
}

// FormatRange renders a budget range as "$100.00 - $250.00".
func FormatRange(minCents, maxCents int64) string {
	return Format(minCents) + " - " + Format(maxCents)
}

// Parse is the inverse of Format. It rejects amounts that are not a whole
// number of cents.
func Parse(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, symbol)

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	cents := d.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("money: %q has sub-cent precision", s)
	}
	if negative {
		cents = cents.Neg()
	}
	return cents.IntPart(), nil
}

// FormatRating renders a stored average rating to two decimals.
func FormatRating(rating float64) string {
	return decimal.NewFromFloat(rating).StringFixed(2)
}
