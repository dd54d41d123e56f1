package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-contactform/pkg/field"
	"github.com/goliatone/go-contactform/pkg/mask"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/validation"
)

// ErrFieldNotFound is returned when a field name is not part of the form.
var ErrFieldNotFound = errors.New("form: field not found")

// ValidationError is returned by HandleSubmit when at least one field fails.
type ValidationError struct {
	Errors validation.Errors
	Order  []string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Errors))
	for _, name := range e.Order {
		if _, ok := e.Errors[name]; ok {
			names = append(names, name)
		}
	}
	return fmt.Sprintf("form: %d invalid field(s): %s", len(names), strings.Join(names, ", "))
}

// Form tracks values and errors of a form model.
type Form struct {
	model     model.FormModel
	validator *validation.Validator
	editors   map[string]*field.Editor
	scheduler field.Scheduler
	logger    zerolog.Logger
	mode      Mode

	defaults   map[string]string
	values     map[string]string
	errors     validation.Errors
	formErrors []string
	submitted  bool
	submits    int
}

// New builds a form for m with one editor per field.
func New(m model.FormModel, opts ...Option) (*Form, error) {
	validator, err := validation.NewValidator(m)
	if err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}

	f := &Form{
		model:     m,
		validator: validator,
		editors:   make(map[string]*field.Editor, len(m.Fields)),
		scheduler: field.Immediate,
		logger:    zerolog.Nop(),
		mode:      ModeOnSubmit,
		defaults:  make(map[string]string),
		values:    make(map[string]string, len(m.Fields)),
		errors:    validation.Errors{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}

	for _, def := range m.Fields {
		name := def.Name
		editor, err := field.New(def,
			field.WithScheduler(f.scheduler),
			field.OnChange(func(value string) { f.onChange(name, value) }),
			field.OnBlur(func() { f.onBlur(name) }),
		)
		if err != nil {
			return nil, fmt.Errorf("form: %w", err)
		}
		f.editors[name] = editor
	}
	f.applyDefaults()
	return f, nil
}

// Model returns the form definition.
func (f *Form) Model() model.FormModel { return f.model }

// Validator exposes the compiled validator so callers can add custom rules.
func (f *Form) Validator() *validation.Validator { return f.validator }

// Editor returns the editor bound to name.
func (f *Form) Editor(name string) (*field.Editor, error) {
	editor, ok := f.editors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return editor, nil
}

// Editors returns the editors in field order.
func (f *Form) Editors() []*field.Editor {
	out := make([]*field.Editor, 0, len(f.model.Fields))
	for _, def := range f.model.Fields {
		out = append(out, f.editors[def.Name])
	}
	return out
}

// Value returns the stored value of name.
func (f *Form) Value(name string) string { return f.values[name] }

// Values returns a copy of every stored value.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Errors returns a copy of the current field errors.
func (f *Form) Errors() validation.Errors { return f.errors.Clone() }

// FormErrors returns form-level messages supplied through SetErrors.
func (f *Form) FormErrors() []string { return append([]string(nil), f.formErrors...) }

// Submitted reports whether a submit was attempted.
func (f *Form) Submitted() bool { return f.submitted }

// SubmitCount reports how many submits were attempted.
func (f *Form) SubmitCount() int { return f.submits }

// SetValue stores a value as if typed and re-validates per mode.
func (f *Form) SetValue(name, value string) error {
	editor, err := f.Editor(name)
	if err != nil {
		return err
	}
	editor.Change(value, len([]rune(value)))
	return nil
}

// SetErrors applies an external error payload (for example from a server)
// keyed by field path.
func (f *Form) SetErrors(payload map[string][]string) {
	mapping := validation.MapErrorPayload(f.model, payload)
	for name, msg := range mapping.FieldErrors() {
		f.setError(name, msg)
	}
	f.formErrors = validation.MergeFormErrors(f.formErrors, mapping.Form...)
}

// Trigger validates the named fields, or all fields when none are given, and
// reports whether they passed.
func (f *Form) Trigger(names ...string) bool {
	if len(names) == 0 {
		names = f.validator.Order()
	}
	ok := true
	for _, name := range names {
		if !f.validateField(name) {
			ok = false
		}
	}
	return ok
}

// Reset restores defaults and clears errors and submit state.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.model.Fields))
	f.errors = validation.Errors{}
	f.formErrors = nil
	f.submitted = false
	f.submits = 0
	for _, editor := range f.editors {
		editor.SetError("")
	}
	f.applyDefaults()
}

// HandleSubmit validates every field. On failure the first invalid field gets
// focus and a *ValidationError is returned; otherwise onValid receives the
// submission.
func (f *Form) HandleSubmit(ctx context.Context, onValid func(context.Context, Submission) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.submitted = true
	f.submits++

	errs := f.validator.Validate(f.values)
	for _, name := range f.validator.Order() {
		f.setError(name, errs[name])
	}

	if len(errs) > 0 {
		order := f.model.Names()
		if first, ok := errs.First(order); ok {
			for _, editor := range f.editors {
				if editor.Focused() && editor.Name() != first {
					editor.Blur()
				}
			}
			f.editors[first].Focus()
		}
		f.logger.Debug().Int("invalid", len(errs)).Msg("form submit rejected")
		return &ValidationError{Errors: errs.Clone(), Order: order}
	}

	submission := f.submission()
	f.logger.Info().Str("form", f.model.ID).Interface("values", submission.Redacted()).Msg("form submitted")
	if onValid == nil {
		return nil
	}
	return onValid(ctx, submission)
}

func (f *Form) submission() Submission {
	entries := make([]Entry, 0, len(f.model.Fields))
	for _, def := range f.model.Fields {
		entries = append(entries, Entry{
			Name:   def.Name,
			Value:  f.values[def.Name],
			Secret: def.Secret,
		})
	}
	return Submission{FormID: f.model.ID, Entries: entries}
}

func (f *Form) applyDefaults() {
	for _, def := range f.model.Fields {
		editor := f.editors[def.Name]
		editor.SetValue(f.defaults[def.Name])
		f.values[def.Name] = editor.Value()
	}
}

func (f *Form) onChange(name, value string) {
	f.values[name] = value
	f.logger.Debug().Str("field", name).Str("value", f.logValue(name, value)).Msg("field changed")
	if f.submitted || f.mode == ModeOnChange {
		f.validateField(name)
	}
}

func (f *Form) onBlur(name string) {
	if !f.submitted && f.mode == ModeOnBlur {
		f.validateField(name)
	}
}

func (f *Form) validateField(name string) bool {
	msg, ok := f.validator.ValidateField(name, f.values[name])
	f.setError(name, msg)
	return ok
}

func (f *Form) setError(name, msg string) {
	if msg == "" {
		delete(f.errors, name)
	} else {
		f.errors[name] = msg
	}
	if editor, ok := f.editors[name]; ok {
		editor.SetError(msg)
	}
}

func (f *Form) logValue(name, value string) string {
	if def, ok := f.model.Field(name); ok && def.Secret {
		return mask.Redact(value)
	}
	return value
}
