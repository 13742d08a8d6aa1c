package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a formatted amount string into a decimal.
// Handled forms: thousands separators ("1,234.56" and "1.234,56"),
// accounting negatives ("(500)"), currency symbols and codes
// ("$1 200.50", "USD 300"), and explicit signs. The second return is
// false when the string holds no parseable number.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" || s == "—" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	// Strip currency markers and whitespace, keep digits, signs and separators.
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-', r == '+':
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" || s == "-" || s == "+" {
		return decimal.Zero, false
	}

	s = normalizeSeparators(s)

	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		dec = dec.Neg()
	}
	return dec, true
}

// normalizeSeparators resolves the comma/dot ambiguity between English
// ("1,234.56") and Spanish ("1.234,56") number formatting.
func normalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma == -1 && lastDot == -1:
		return s
	case lastComma == -1:
		// Dots only. A single dot followed by exactly three digits and at
		// least one more dot means thousands grouping, otherwise decimal.
		if strings.Count(s, ".") > 1 {
			return strings.ReplaceAll(s, ".", "")
		}
		return s
	case lastDot == -1:
		// Commas only: one comma with non-3 trailing digits is a decimal
		// comma, anything else is thousands grouping.
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 != 3 {
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma > lastDot:
		// "1.234,56" - dot groups thousands, comma is the decimal mark.
		s = strings.ReplaceAll(s, ".", "")
		return strings.Replace(s, ",", ".", 1)
	default:
		// "1,234.56"
		return strings.ReplaceAll(s, ",", "")
	}
}
