package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// formatCurrency renders an amount as US dollars with thousands
// separators and exactly two decimal places. Negative amounts carry a
// leading minus before the currency symbol.
func formatCurrency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	out := "$" + groupDigits(whole) + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// formatCurrencyWhole renders an amount as whole dollars, rounded to the
// nearest integer, with thousands separators and no decimals.
func formatCurrencyWhole(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	out := "$" + groupDigits(s)
	if neg {
		out = "-" + out
	}
	return out
}

// formatInt renders an integer with thousands separators.
func formatInt(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	s = groupDigits(s)
	if neg {
		s = "-" + s
	}
	return s
}

// groupDigits inserts a comma every three digits, right to left. The
// input must be an unsigned digit string.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
