package mask

// PhoneDigits is the number of digits in a complete phone number.
const PhoneDigits = 10

// PhonePlaceholder mirrors the shape FormatPhone produces for a full number.
const PhonePlaceholder = "(xxx) xxx-xxxx"

// FormatPhone renders up to ten digits of s progressively as "(DDD) DDD-DDDD".
// Non-digits are dropped and digits beyond the tenth are ignored.
func FormatPhone(s string) string {
	digits := limit(Digits(s), PhoneDigits)

	switch n := len(digits); {
	case n == 0:
		return ""
	case n <= 3:
		return "(" + digits
	case n <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}

// ValidPhone reports whether s carries exactly ten digits.
func ValidPhone(s string) bool {
	return DigitCount(s) == PhoneDigits
}
