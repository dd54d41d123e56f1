package tui

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-contactform/pkg/form"
)

// Theme captures message prefixes the renderer prints through the driver.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{InfoPrefix: "  -> ", ErrorPrefix: "  ! "}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects how Render serialises the submission.
func WithOutputFormat(format form.Format) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithRevealPrompt asks before each secret field whether to show the answer
// while typing.
func WithRevealPrompt(enabled bool) Option {
	return func(r *Renderer) {
		r.askReveal = enabled
	}
}

// WithMaxAttempts caps invalid answers per field; zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}

// WithLogger attaches a logger; it is also passed to forms built by Render.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithFormOptions adds options applied to forms built by Render.
func WithFormOptions(opts ...form.Option) Option {
	return func(r *Renderer) {
		r.formOptions = append(r.formOptions, opts...)
	}
}
