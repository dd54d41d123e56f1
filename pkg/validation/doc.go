// Package validation evaluates the per-field rules of a form model. Outcomes
// are user-facing messages keyed by field name rather than Go errors: a field
// either passes or yields the static message of the first rule it fails.
package validation
