package contactform

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-contactform/pkg/renderers/html"
)

const contactDefinitionName = "contact.yaml"

//go:embed definitions/*.yaml
var embeddedDefinitions embed.FS

// DefinitionsFS exposes the bundled form definitions.
func DefinitionsFS() fs.FS {
	sub, err := fs.Sub(embeddedDefinitions, "definitions")
	if err != nil {
		return embeddedDefinitions
	}
	return sub
}

// EmbeddedTemplates exposes the HTML renderer templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// StylesheetFS exposes the bundled stylesheet.
//
//	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(contactform.StylesheetFS())))
func StylesheetFS() fs.FS {
	return html.AssetsFS()
}
