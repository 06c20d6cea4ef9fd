// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is prefixed to every rendered amount.
var CurrencySymbol = "$"

// FormatAmount formats money with exactly two decimal places and comma
// separators in the integer part.
// e.g., 25.5 -> "$25.50", 1234.5 -> "$1,234.50"
func FormatAmount(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	return sign + CurrencySymbol + groupThousands(whole) + "." + frac
}

// groupThousands adds comma separators to a string of digits.
// e.g., "1234567" -> "1,234,567"
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a whole percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// Plural returns word with an "s" appended unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
