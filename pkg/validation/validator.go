package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-contactform/pkg/model"
)

// Default messages used when a definition does not supply its own.
const (
	DefaultRequiredMessage = "This field is required"
	DefaultPatternMessage  = "Invalid format"
)

// Errors maps field names to the message of the first failed rule.
type Errors map[string]string

// First returns the first failing field following order.
func (e Errors) First(order []string) (string, bool) {
	for _, name := range order {
		if _, ok := e[name]; ok {
			return name, true
		}
	}
	return "", false
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	if len(e) == 0 {
		return Errors{}
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

type fieldRules struct {
	required Rule
	rules    []Rule
}

// Validator evaluates the rules declared by a form model.
type Validator struct {
	order  []string
	fields map[string]fieldRules
}

// NewValidator compiles the validation rules of form. Required checks run
// first, followed by pattern and digit rules in declaration order.
func NewValidator(form model.FormModel) (*Validator, error) {
	v := &Validator{
		order:  form.Names(),
		fields: make(map[string]fieldRules, len(form.Fields)),
	}
	for _, field := range form.Fields {
		compiled, err := compileField(field)
		if err != nil {
			return nil, fmt.Errorf("validation: field %q: %w", field.Name, err)
		}
		v.fields[field.Name] = compiled
	}
	return v, nil
}

// Add appends custom rules to a field, after the declared ones.
func (v *Validator) Add(name string, rules ...Rule) {
	entry := v.fields[name]
	entry.rules = append(entry.rules, rules...)
	v.fields[name] = entry
	if !contains(v.order, name) {
		v.order = append(v.order, name)
	}
}

// ValidateField checks a single value. Unknown fields always pass.
func (v *Validator) ValidateField(name, value string) (string, bool) {
	entry, ok := v.fields[name]
	if !ok {
		return "", true
	}
	if entry.required != nil {
		if msg, ok := entry.required.Check(value); !ok {
			return msg, false
		}
	} else if value == "" {
		return "", true
	}
	for _, rule := range entry.rules {
		if msg, ok := rule.Check(value); !ok {
			return msg, false
		}
	}
	return "", true
}

// Validate checks every known field and returns the failures.
func (v *Validator) Validate(values map[string]string) Errors {
	errs := Errors{}
	for _, name := range v.order {
		if msg, ok := v.ValidateField(name, values[name]); !ok {
			errs[name] = msg
		}
	}
	return errs
}

// Order returns the field names in validation order.
func (v *Validator) Order() []string {
	return append([]string(nil), v.order...)
}

func compileField(field model.Field) (fieldRules, error) {
	var out fieldRules

	requiredMsg := ""
	if rule, ok := field.Rule(model.ValidationRuleRequired); ok {
		requiredMsg = rule.Message()
		field.Required = true
	}
	if field.Required {
		if requiredMsg == "" {
			requiredMsg = DefaultRequiredMessage
		}
		out.required = Required(requiredMsg)
	}

	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleRequired:
		case model.ValidationRulePattern:
			expr := strings.TrimSpace(rule.Params["pattern"])
			if expr == "" {
				return fieldRules{}, fmt.Errorf("pattern rule without expression")
			}
			re, err := compilePattern(expr, rule.Params["flags"])
			if err != nil {
				return fieldRules{}, fmt.Errorf("compile pattern: %w", err)
			}
			out.rules = append(out.rules, Pattern(re, messageOr(rule, DefaultPatternMessage)))
		case model.ValidationRuleDigits:
			n, err := strconv.Atoi(strings.TrimSpace(rule.Params["value"]))
			if err != nil || n < 0 {
				return fieldRules{}, fmt.Errorf("digits rule needs a non-negative count, got %q", rule.Params["value"])
			}
			out.rules = append(out.rules, DigitCount(n, messageOr(rule, fmt.Sprintf("Must be exactly %d digits", n))))
		default:
			return fieldRules{}, fmt.Errorf("unknown rule kind %q", rule.Kind)
		}
	}
	return out, nil
}

func messageOr(rule model.ValidationRule, fallback string) string {
	if msg := strings.TrimSpace(rule.Message()); msg != "" {
		return msg
	}
	return fallback
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
