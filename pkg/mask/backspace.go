package mask

// Selection is a half-open [Start, End) rune range inside a field value. A
// collapsed selection (Start == End) is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// Collapsed reports whether the selection is a plain caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// Normalize orders the bounds and clamps them into [0, length].
func (s Selection) Normalize(length int) Selection {
	start, end := s.Start, s.End
	if start > end {
		start, end = end, start
	}
	return Selection{Start: clamp(start, 0, length), End: clamp(end, 0, length)}
}

// Backspace decides how a backspace keystroke is handled on a masked value.
// When the selection is a caret and the character right before it is not a
// digit, the deletion is suppressed and the caret steps one position left;
// the second return value reports that the default action was prevented.
// Every other case returns sel unchanged and false.
func Backspace(value string, sel Selection) (Selection, bool) {
	if !sel.Collapsed() || sel.Start <= 0 {
		return sel, false
	}

	runes := []rune(value)
	if sel.Start > len(runes) {
		return sel, false
	}
	if r := runes[sel.Start-1]; r >= '0' && r <= '9' {
		return sel, false
	}
	return Caret(sel.Start - 1), true
}
