package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contactform/pkg/model"
)

// Transformer mutates a FormModel before rendering.
type Transformer interface {
	Transform(ctx context.Context, form *model.FormModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.FormModel) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.FormModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// PresetTransformer applies declarative overrides loaded from a YAML (or
// JSON) document:
//
//	title: Get in touch
//	submitLabel: Send
//	metadata:
//	  layout: compact
//	fields:
//	  airFryerCost:
//	    label: Air fryer budget
//	    requiredMessage: Please guess a price
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title       string                 `yaml:"title"`
	SubmitLabel string                 `yaml:"submitLabel"`
	Metadata    map[string]string      `yaml:"metadata"`
	Fields      map[string]fieldPreset `yaml:"fields"`
}

type fieldPreset struct {
	Label           string            `yaml:"label"`
	Placeholder     string            `yaml:"placeholder"`
	Description     string            `yaml:"description"`
	RequiredMessage string            `yaml:"requiredMessage"`
	Metadata        map[string]string `yaml:"metadata"`
}

// NewPresetTransformer constructs a transformer from raw YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied form.
func (t *PresetTransformer) Transform(ctx context.Context, form *model.FormModel) error {
	if form == nil {
		return errors.New("preset transformer: form model is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		form.Title = t.document.Title
	}
	if t.document.SubmitLabel != "" {
		form.SubmitLabel = t.document.SubmitLabel
	}
	if len(t.document.Metadata) > 0 {
		form.Metadata = mergeStringMap(form.Metadata, t.document.Metadata)
	}

	for name, patch := range t.document.Fields {
		field := findField(form.Fields, name)
		if field == nil {
			return fmt.Errorf("preset transformer: field %q not found", name)
		}
		applyFieldPreset(field, patch)
	}
	return nil
}

func applyFieldPreset(field *model.Field, patch fieldPreset) {
	if patch.Label != "" {
		field.Label = patch.Label
	}
	if patch.Placeholder != "" {
		field.Placeholder = patch.Placeholder
	}
	if patch.Description != "" {
		field.Description = patch.Description
	}
	if patch.RequiredMessage != "" {
		for idx := range field.Validations {
			rule := &field.Validations[idx]
			if rule.Kind != model.ValidationRuleRequired {
				continue
			}
			rule.Params = mergeStringMap(rule.Params, map[string]string{"message": patch.RequiredMessage})
		}
	}
	if len(patch.Metadata) > 0 {
		field.Metadata = mergeStringMap(field.Metadata, patch.Metadata)
	}
}

func findField(fields []model.Field, name string) *model.Field {
	for idx := range fields {
		if fields[idx].Name == name {
			return &fields[idx]
		}
	}
	return nil
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
