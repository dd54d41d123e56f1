package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/field"
	"github.com/goliatone/go-contactform/pkg/form"
	"github.com/goliatone/go-contactform/pkg/mask"
)

// RenderOptions carries the view state of one render pass.
type RenderOptions struct {
	// Method overrides the method declared by the form model.
	Method string
	// Values holds the current field values, already masked.
	Values map[string]string
	// Errors holds the validation message of every invalid field. Only the
	// focused field shows its message; the rest only change chrome.
	Errors map[string]string
	// FormErrors are messages not bound to a field.
	FormErrors []string
	// Focused names the field that has focus, if any.
	Focused string
	// Visible lists secret fields currently shown as plaintext.
	Visible map[string]bool
	// Hidden fields are emitted as hidden inputs.
	Hidden map[string]string
	// Theme supplies colour tokens and asset resolution.
	Theme *theme.RendererConfig
}

// FieldState is the derived view state of one field.
type FieldState struct {
	Value        string
	Error        string
	VisibleError string
	Focused      bool
	Visible      bool
	Chrome       field.Chrome
}

// Field derives the state of name from the options. Chrome follows the
// editor rule: error, then focus, then idle.
func (o RenderOptions) Field(name string) FieldState {
	state := FieldState{
		Value:   o.Values[name],
		Error:   o.Errors[name],
		Focused: o.Focused != "" && o.Focused == name,
		Visible: o.Visible[name],
		Chrome:  field.ChromeIdle,
	}
	switch {
	case state.Error != "":
		state.Chrome = field.ChromeError
	case state.Focused:
		state.Chrome = field.ChromeFocused
	}
	if state.Focused {
		state.VisibleError = state.Error
	}
	return state
}

// OptionsFromForm snapshots the live state of f.
func OptionsFromForm(f *form.Form) RenderOptions {
	opts := RenderOptions{
		Values:     f.Values(),
		Errors:     map[string]string(f.Errors()),
		FormErrors: f.FormErrors(),
	}
	for _, editor := range f.Editors() {
		if editor.Focused() && opts.Focused == "" {
			opts.Focused = editor.Name()
		}
		if editor.Visible() {
			if opts.Visible == nil {
				opts.Visible = make(map[string]bool)
			}
			opts.Visible[editor.Name()] = true
		}
	}
	return opts
}

// RedactedValues returns Values with the given secret fields masked. Renderers
// use it when a secret field is not toggled visible.
func (o RenderOptions) RedactedValues(secret map[string]bool) map[string]string {
	out := make(map[string]string, len(o.Values))
	for name, value := range o.Values {
		if secret[name] && !o.Visible[name] {
			value = mask.Redact(value)
		}
		out[name] = value
	}
	return out
}
