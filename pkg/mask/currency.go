package mask

import "strings"

const (
	// CurrencySymbol prefixes every non-empty currency value.
	CurrencySymbol = "$"
	// CurrencyFractionDigits caps the digits kept after the decimal point.
	CurrencyFractionDigits = 2
)

// FormatCurrency keeps the digits of s plus its first decimal point, truncates
// the fraction to two digits, groups the integer part in thousands and
// prefixes the currency symbol. Empty input and a lone point format to "".
func FormatCurrency(s string) string {
	var (
		integer  strings.Builder
		fraction strings.Builder
		hasPoint bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.':
			// later points are discarded
			hasPoint = true
		case !isDigit(c):
		case hasPoint:
			if fraction.Len() < CurrencyFractionDigits {
				fraction.WriteByte(c)
			}
		default:
			integer.WriteByte(c)
		}
	}

	if integer.Len() == 0 && fraction.Len() == 0 {
		return ""
	}

	out := CurrencySymbol + groupThousands(integer.String())
	if hasPoint {
		out += "." + fraction.String()
	}
	return out
}

// groupThousands inserts a comma before every group of three digits counted
// from the right, never at the start.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
