package field

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-contactform/pkg/mask"
	"github.com/goliatone/go-contactform/pkg/model"
)

// Key identifies keystrokes the editor intercepts.
type Key string

const (
	KeyBackspace Key = "Backspace"
)

// Chrome is the visual state of the input border.
type Chrome string

const (
	ChromeIdle    Chrome = "idle"
	ChromeFocused Chrome = "focused"
	ChromeError   Chrome = "error"
)

// Option configures an Editor.
type Option func(*Editor)

// OnChange registers the callback receiving every stored value.
func OnChange(fn func(value string)) Option {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// OnBlur registers the callback run when the editor loses focus.
func OnBlur(fn func()) Option {
	return func(e *Editor) {
		e.onBlur = fn
	}
}

// WithScheduler overrides the scheduler used to restore the caret.
func WithScheduler(s Scheduler) Option {
	return func(e *Editor) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithFormatter overrides the formatter resolved from the field mask.
func WithFormatter(f mask.Formatter) Option {
	return func(e *Editor) {
		e.formatter = f
	}
}

// Editor is the state of one field instance.
type Editor struct {
	field     model.Field
	formatter mask.Formatter
	scheduler Scheduler
	onChange  func(string)
	onBlur    func()

	value   string
	sel     mask.Selection
	focused bool
	visible bool
	err     string
}

// New builds an editor for field. The field mask must name a known formatter.
func New(f model.Field, opts ...Option) (*Editor, error) {
	formatter, err := mask.Lookup(f.Mask)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}

	e := &Editor{
		field:     f,
		formatter: formatter,
		scheduler: Immediate,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e, nil
}

// Field returns the definition backing the editor.
func (e *Editor) Field() model.Field { return e.field }

// Name returns the field name.
func (e *Editor) Name() string { return e.field.Name }

// Value returns the stored (formatted) value.
func (e *Editor) Value() string { return e.value }

// Selection returns the current selection.
func (e *Editor) Selection() mask.Selection { return e.sel }

// Focused reports whether the editor has focus.
func (e *Editor) Focused() bool { return e.focused }

// Visible reports whether a secret field currently shows plaintext.
func (e *Editor) Visible() bool { return e.visible }

// Masked reports whether a formatter applies to this field.
func (e *Editor) Masked() bool { return e.formatter != nil }

// Error returns the validation message assigned to the field.
func (e *Editor) Error() string { return e.err }

// SetError assigns or clears (empty string) the validation message.
func (e *Editor) SetError(msg string) { e.err = msg }

// VisibleError returns the validation message while the field has focus.
func (e *Editor) VisibleError() string {
	if !e.focused {
		return ""
	}
	return e.err
}

// Chrome returns the border state: errors win over focus.
func (e *Editor) Chrome() Chrome {
	switch {
	case e.err != "":
		return ChromeError
	case e.focused:
		return ChromeFocused
	default:
		return ChromeIdle
	}
}

// InputType returns the HTML input type, toggling password/text for secret
// fields.
func (e *Editor) InputType() string {
	return InputTypeFor(e.field, e.visible)
}

// InputTypeFor derives the input type of def. Secret fields are password
// inputs unless visible.
func InputTypeFor(def model.Field, visible bool) string {
	if def.Secret {
		if visible {
			return model.InputText
		}
		return model.InputPassword
	}
	if t := strings.TrimSpace(def.InputType); t != "" {
		return t
	}
	return model.InputText
}

// Focus gives the editor focus.
func (e *Editor) Focus() {
	e.focused = true
}

// Blur removes focus and notifies the form state manager.
func (e *Editor) Blur() {
	e.focused = false
	if e.onBlur != nil {
		e.onBlur()
	}
}

// ToggleVisibility flips plaintext display of secret fields. Formatting is not
// affected.
func (e *Editor) ToggleVisibility() {
	if !e.field.Secret {
		return
	}
	e.visible = !e.visible
}

// Select moves the selection, clamped to the current value.
func (e *Editor) Select(start, end int) {
	e.sel = mask.Selection{Start: start, End: end}.Normalize(e.length())
}

// SetValue stores a value programmatically (prefill, reset). Masked fields
// are formatted; the caret moves to the end. No change callback fires.
func (e *Editor) SetValue(value string) {
	e.value = e.format(value)
	e.sel = mask.Caret(e.length())
}

// Change handles a change event carrying the raw value shown by the input and
// the caret position at the time of the event.
func (e *Editor) Change(raw string, caret int) {
	if e.formatter == nil {
		e.value = raw
		e.sel = mask.Caret(clampCaret(caret, utf8.RuneCountInString(raw)))
		e.publish()
		return
	}

	formatted := e.formatter.Format(raw)
	e.value = formatted
	if formatted != raw {
		// rewriting a controlled input sends the caret to the end
		e.sel = mask.Caret(e.length())
	} else {
		e.sel = mask.Caret(clampCaret(caret, e.length()))
	}
	e.publish()

	e.scheduler.Defer(func() {
		if !e.focused {
			return
		}
		e.sel = mask.Caret(clampCaret(mask.ReconcileCursor(raw, formatted, caret), e.length()))
	})
}

// KeyDown reports whether the editor prevented the default action of key.
// Backspace over a non-digit of a masked value only moves the caret left.
func (e *Editor) KeyDown(key Key) bool {
	if e.formatter == nil || key != KeyBackspace {
		return false
	}
	sel, prevented := mask.Backspace(e.value, e.sel)
	if prevented {
		e.sel = sel
	}
	return prevented
}

// Insert types text at the selection, replacing any selected range.
func (e *Editor) Insert(text string) {
	runes := []rune(e.value)
	sel := e.sel.Normalize(len(runes))

	next := string(runes[:sel.Start]) + text + string(runes[sel.End:])
	e.Change(next, sel.Start+utf8.RuneCountInString(text))
}

// DeleteBackward performs a backspace keystroke: KeyDown first, then the
// default deletion of the selection or the previous character.
func (e *Editor) DeleteBackward() {
	if e.KeyDown(KeyBackspace) {
		return
	}

	runes := []rune(e.value)
	sel := e.sel.Normalize(len(runes))
	start := sel.Start
	if sel.Collapsed() {
		if start == 0 {
			return
		}
		start--
	}
	next := string(runes[:start]) + string(runes[sel.End:])
	e.Change(next, start)
}

func (e *Editor) publish() {
	if e.onChange != nil {
		e.onChange(e.value)
	}
}

func (e *Editor) format(value string) string {
	if e.formatter == nil {
		return value
	}
	return e.formatter.Format(value)
}

func (e *Editor) length() int {
	return utf8.RuneCountInString(e.value)
}

func clampCaret(caret, length int) int {
	if caret < 0 {
		return 0
	}
	if caret > length {
		return length
	}
	return caret
}
