package form

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-contactform/pkg/field"
)

// Mode selects when fields are validated before the first submit. After a
// submit attempt fields always re-validate on change.
type Mode string

const (
	ModeOnSubmit Mode = "onSubmit"
	ModeOnBlur   Mode = "onBlur"
	ModeOnChange Mode = "onChange"
)

// Option configures a Form.
type Option func(*Form)

// WithMode sets the validation mode.
func WithMode(mode Mode) Option {
	return func(f *Form) {
		if mode != "" {
			f.mode = mode
		}
	}
}

// WithLogger attaches a logger. Secret field values are redacted.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

// WithScheduler sets the scheduler shared by every field editor.
func WithScheduler(s field.Scheduler) Option {
	return func(f *Form) {
		if s != nil {
			f.scheduler = s
		}
	}
}

// WithValues pre-populates field values.
func WithValues(values map[string]string) Option {
	return func(f *Form) {
		for name, value := range values {
			f.defaults[name] = value
		}
	}
}
