package mask_test

import (
	"testing"
	"unicode/utf8"

	"github.com/goliatone/go-contactform/pkg/mask"
)

func TestReconcileCursor_EndStaysAtEnd(t *testing.T) {
	for _, formatter := range []mask.Formatter{mask.Phone, mask.Currency, mask.PIN} {
		for _, raw := range fuzzInputs {
			formatted := formatter.Format(raw)
			end := utf8.RuneCountInString(raw)
			if got, want := mask.ReconcileCursor(raw, formatted, end), utf8.RuneCountInString(formatted); got != want {
				t.Fatalf("%s: cursor at end of %q mapped to %d, want %d", formatter.Kind(), raw, got, want)
			}
		}
	}
}

func TestReconcileCursor_ShiftsAndClamps(t *testing.T) {
	cases := []struct {
		name   string
		old    string
		new    string
		cursor int
		want   int
	}{
		{name: "grows by separator", old: "(5551", new: "(555) 1", cursor: 2, want: 4},
		{name: "shrinks", old: "(555) 1", new: "(5551", cursor: 6, want: 4},
		{name: "clamped at zero", old: "(555) 12", new: "5", cursor: 1, want: 0},
		{name: "past end", old: "12", new: "1234-5", cursor: 9, want: 6},
		{name: "unchanged length", old: "1234", new: "1234", cursor: 2, want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mask.ReconcileCursor(tc.old, tc.new, tc.cursor); got != tc.want {
				t.Fatalf("ReconcileCursor(%q, %q, %d) = %d, want %d", tc.old, tc.new, tc.cursor, got, tc.want)
			}
		})
	}
}

func TestBackspace(t *testing.T) {
	cases := []struct {
		name      string
		value     string
		sel       mask.Selection
		want      mask.Selection
		prevented bool
	}{
		{name: "over hyphen", value: "(555) 123-4", sel: mask.Caret(10), want: mask.Caret(9), prevented: true},
		{name: "over space", value: "(555) 1", sel: mask.Caret(6), want: mask.Caret(5), prevented: true},
		{name: "over digit", value: "(555) 1", sel: mask.Caret(7), want: mask.Caret(7)},
		{name: "at start", value: "(555", sel: mask.Caret(0), want: mask.Caret(0)},
		{name: "range selection", value: "1234-5", sel: mask.Selection{Start: 3, End: 5}, want: mask.Selection{Start: 3, End: 5}},
		{name: "over currency symbol", value: "$1", sel: mask.Caret(1), want: mask.Caret(0), prevented: true},
		{name: "beyond value", value: "12", sel: mask.Caret(5), want: mask.Caret(5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, prevented := mask.Backspace(tc.value, tc.sel)
			if got != tc.want || prevented != tc.prevented {
				t.Fatalf("Backspace(%q, %+v) = %+v, %v; want %+v, %v", tc.value, tc.sel, got, prevented, tc.want, tc.prevented)
			}
		})
	}
}

func TestSelectionNormalize(t *testing.T) {
	got := mask.Selection{Start: 9, End: -2}.Normalize(5)
	if got != (mask.Selection{Start: 0, End: 5}) {
		t.Fatalf("unexpected normalized selection %+v", got)
	}
}
