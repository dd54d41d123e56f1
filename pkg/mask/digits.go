package mask

import "strings"

// Digits returns the ASCII digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// DigitCount reports how many ASCII digits s contains.
func DigitCount(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			count++
		}
	}
	return count
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func limit(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
