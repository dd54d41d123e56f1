package model

import "strings"

const (
	ValidationRuleRequired = "required"
	ValidationRulePattern  = "pattern"
	ValidationRuleDigits   = "digits"
)

// Input types understood by the renderers.
const (
	InputText     = "text"
	InputTel      = "tel"
	InputEmail    = "email"
	InputPassword = "password"
)

// ValidationRule represents a single constraint applied to a field. Pattern
// rules keep the expression in Params["pattern"] and optional flags in
// Params["flags"]; digit rules carry the exact count in Params["value"]. Every
// rule may carry a user-facing Params["message"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Message returns the user-facing message attached to the rule.
func (r ValidationRule) Message() string {
	return r.Params["message"]
}

// Field models an individual input of a form.
type Field struct {
	Name        string            `json:"name"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	InputType   string            `json:"inputType,omitempty"`
	MaxLength   int               `json:"maxLength,omitempty"`
	Mask        string            `json:"mask,omitempty"`
	Secret      bool              `json:"secret,omitempty"`
	Required    bool              `json:"required"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// DisplayLabel returns the label or a label derived from the field name.
func (f Field) DisplayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return DefaultLabeler(f.Name)
}

// Rule returns the first validation rule of the given kind.
func (f Field) Rule(kind string) (ValidationRule, bool) {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	ID          string            `json:"id"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Endpoint    string            `json:"endpoint,omitempty"`
	Method      string            `json:"method,omitempty"`
	SubmitLabel string            `json:"submitLabel,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field looks a field up by name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Names returns field names in declaration order.
func (m FormModel) Names() []string {
	out := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		out = append(out, field.Name)
	}
	return out
}
