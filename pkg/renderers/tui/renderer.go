// Package tui fills forms interactively in a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-contactform/pkg/field"
	"github.com/goliatone/go-contactform/pkg/form"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

// Name is the registry name of the renderer.
const Name = "tui"

// Renderer prompts every field of a form in order. Answers are typed into the
// field editor, so masks apply exactly as they do while typing in a browser.
type Renderer struct {
	driver       PromptDriver
	outputFormat form.Format
	theme        Theme
	askReveal    bool
	maxAttempts  int
	logger       zerolog.Logger
	formOptions  []form.Option
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: form.FormatJSON,
		theme:        DefaultTheme,
		logger:       zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return r.outputFormat.ContentType()
}

// Render builds a form from m seeded with opts.Values and opts.Errors, fills
// it interactively, submits it and returns the encoded submission.
func (r *Renderer) Render(ctx context.Context, m model.FormModel, opts render.RenderOptions) ([]byte, error) {
	formOpts := append([]form.Option{
		form.WithLogger(r.logger),
		form.WithValues(opts.Values),
	}, r.formOptions...)

	f, err := form.New(m, formOpts...)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if len(opts.Errors) > 0 {
		payload := make(map[string][]string, len(opts.Errors))
		for name, msg := range opts.Errors {
			payload[name] = []string{msg}
		}
		f.SetErrors(payload)
	}
	if len(opts.FormErrors) > 0 {
		f.SetErrors(map[string][]string{"form": opts.FormErrors})
	}

	if err := r.Fill(ctx, f); err != nil {
		return nil, err
	}

	var submission form.Submission
	err = f.HandleSubmit(ctx, func(_ context.Context, s form.Submission) error {
		submission = s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tui: submit: %w", err)
	}
	return submission.Encode(r.outputFormat)
}

// Fill prompts every field of f until each one passes validation.
func (r *Renderer) Fill(ctx context.Context, f *form.Form) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}

	if title := f.Model().Title; title != "" {
		if err := r.driver.Info(ctx, title); err != nil {
			return err
		}
	}
	for _, msg := range f.FormErrors() {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
			return err
		}
	}

	for _, editor := range f.Editors() {
		if err := r.promptField(ctx, f, editor); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, f *form.Form, editor *field.Editor) error {
	def := editor.Field()
	label := def.DisplayLabel()

	if msg := editor.Error(); msg != "" {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
			return err
		}
	}
	if def.Secret && r.askReveal {
		reveal, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Show %s while typing?", label),
		})
		if err != nil {
			return err
		}
		if reveal != editor.Visible() {
			editor.ToggleVisibility()
		}
	}

	editor.Focus()
	defer editor.Blur()

	for attempts := 1; ; attempts++ {
		cfg := InputConfig{
			Message: label,
			Default: editor.Value(),
			Help:    helpText(def),
		}
		var (
			answer string
			err    error
		)
		if editor.InputType() == model.InputPassword {
			answer, err = r.driver.Password(ctx, cfg)
		} else {
			answer, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}

		editor.Select(0, utf8.RuneCountInString(editor.Value()))
		editor.Insert(answer)

		if f.Trigger(def.Name) {
			if editor.Masked() && editor.Value() != answer && editor.InputType() != model.InputPassword {
				if err := r.driver.Info(ctx, r.theme.InfoPrefix+editor.Value()); err != nil {
					return err
				}
			}
			return nil
		}

		r.logger.Debug().Str("field", def.Name).Int("attempt", attempts).Msg("invalid answer")
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+editor.Error()); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempts >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, def.Name)
		}
	}
}

func helpText(def model.Field) string {
	if def.Description != "" {
		return def.Description
	}
	if def.Placeholder != "" {
		return "Format: " + def.Placeholder
	}
	return ""
}
