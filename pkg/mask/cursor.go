package mask

import "unicode/utf8"

// ReconcileCursor maps a caret offset taken under oldValue onto newValue after
// formatting. A caret at or past the end stays at the end; any other caret is
// shifted by the length delta and clamped into [0, len(newValue)]. Lengths are
// measured in runes.
//
// The shift is an approximation: when one edit inserts or removes several
// separators at different positions the caret can land off by the difference.
func ReconcileCursor(oldValue, newValue string, oldCursor int) int {
	oldLen := utf8.RuneCountInString(oldValue)
	newLen := utf8.RuneCountInString(newValue)

	if oldCursor >= oldLen {
		return newLen
	}

	return clamp(oldCursor+newLen-oldLen, 0, newLen)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
