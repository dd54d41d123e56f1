package html

import "github.com/goliatone/go-contactform/pkg/field"

// ChromeClass is a typed identifier for the CSS classes the templates emit.
type ChromeClass string

const (
	ClassForm    ChromeClass = "cf-form"
	ClassTitle   ChromeClass = "cf-title"
	ClassField   ChromeClass = "cf-field"
	ClassControl ChromeClass = "cf-control"
	ClassToggle  ChromeClass = "cf-toggle"
	ClassError   ChromeClass = "cf-error"
	ClassErrors  ChromeClass = "cf-errors"
	ClassSubmit  ChromeClass = "cf-submit"
)

// chromeClass maps the editor chrome onto its border class.
func chromeClass(chrome field.Chrome) string {
	return "cf-chrome-" + string(chrome)
}
