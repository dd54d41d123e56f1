package mask

import "strings"

const (
	// PINDigits is the number of digits in a complete PIN.
	PINDigits = 16
	// PINGroup is the run length between hyphens.
	PINGroup = 4
	// PINMaxLength is the display length of a complete PIN, hyphens included.
	PINMaxLength = PINDigits + PINDigits/PINGroup - 1
)

// FormatPIN keeps the first sixteen digits of s and separates every run of
// four with a hyphen when more digits follow. No trailing hyphen is emitted.
func FormatPIN(s string) string {
	digits := limit(Digits(s), PINDigits)
	if len(digits) <= PINGroup {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/PINGroup)
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%PINGroup == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// ValidPIN reports whether s carries exactly sixteen digits.
func ValidPIN(s string) bool {
	return DigitCount(s) == PINDigits
}
