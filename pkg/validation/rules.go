package validation

import (
	"fmt"
	"regexp"

	"github.com/goliatone/go-contactform/pkg/mask"
)

// Rule checks a single field value.
type Rule interface {
	Check(value string) (message string, ok bool)
}

// RuleFunc adapts a predicate plus message into a Rule.
type RuleFunc struct {
	Predicate func(string) bool
	Message   string
}

// Check runs the predicate.
func (r RuleFunc) Check(value string) (string, bool) {
	if r.Predicate == nil || r.Predicate(value) {
		return "", true
	}
	return r.Message, false
}

// Func builds a Rule from an arbitrary predicate.
func Func(predicate func(string) bool, message string) Rule {
	return RuleFunc{Predicate: predicate, Message: message}
}

// Required fails on the empty string. Whitespace counts as a value.
func Required(message string) Rule {
	return Func(func(value string) bool { return value != "" }, message)
}

// Pattern fails when value does not match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Func(re.MatchString, message)
}

// DigitCount fails unless value carries exactly n digits.
func DigitCount(n int, message string) Rule {
	return Func(func(value string) bool { return mask.DigitCount(value) == n }, message)
}

func compilePattern(expr, flags string) (*regexp.Regexp, error) {
	prefix := ""
	for _, flag := range flags {
		switch flag {
		case 'i', 'm', 's':
			prefix += string(flag)
		case 'g', 'u':
			// no Go equivalent needed
		default:
			return nil, fmt.Errorf("unsupported pattern flag %q", flag)
		}
	}
	if prefix != "" {
		expr = "(?" + prefix + ")" + expr
	}
	return regexp.Compile(expr)
}
