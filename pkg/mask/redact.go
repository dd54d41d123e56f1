package mask

import "strings"

// Redact hides every digit of value except the last four, keeping separators
// so the shape of the value survives. It is meant for logs, not display.
func Redact(value string) string {
	total := DigitCount(value)
	if total == 0 {
		return value
	}

	keep := 4
	if total <= keep {
		keep = 0
	}

	var b strings.Builder
	b.Grow(len(value))
	seen := 0
	for i := 0; i < len(value); i++ {
		c := value[i]
		if !isDigit(c) {
			b.WriteByte(c)
			continue
		}
		seen++
		if seen > total-keep {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('*')
	}
	return b.String()
}
