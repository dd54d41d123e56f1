package mask

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind names a mask so field definitions can reference it by string.
type Kind string

const (
	KindPhone    Kind = "phone"
	KindCurrency Kind = "currency"
	KindPIN      Kind = "pin"
)

// ErrUnknownMask is returned by Lookup for unregistered kinds.
var ErrUnknownMask = errors.New("mask: unknown mask kind")

// Formatter maps raw input to its display form.
type Formatter interface {
	Kind() Kind
	Format(raw string) string
}

// FormatterFunc adapts a plain function into a Formatter.
type FormatterFunc struct {
	Name Kind
	Fn   func(string) string
}

// Kind reports the formatter name.
func (f FormatterFunc) Kind() Kind { return f.Name }

// Format calls the underlying function.
func (f FormatterFunc) Format(raw string) string {
	if f.Fn == nil {
		return raw
	}
	return f.Fn(raw)
}

var (
	Phone    Formatter = FormatterFunc{Name: KindPhone, Fn: FormatPhone}
	Currency Formatter = FormatterFunc{Name: KindCurrency, Fn: FormatCurrency}
	PIN      Formatter = FormatterFunc{Name: KindPIN, Fn: FormatPIN}

	builtins = map[Kind]Formatter{
		KindPhone:    Phone,
		KindCurrency: Currency,
		KindPIN:      PIN,
	}
)

// Lookup resolves a mask kind. An empty kind returns (nil, nil) so callers can
// treat unmasked fields uniformly.
func Lookup(kind string) (Formatter, error) {
	name := Kind(strings.ToLower(strings.TrimSpace(kind)))
	if name == "" {
		return nil, nil
	}
	formatter, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMask, kind)
	}
	return formatter, nil
}

// Kinds lists the built-in mask kinds in sorted order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(builtins))
	for kind := range builtins {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
