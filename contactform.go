// Package contactform exposes the built-in contact form: its embedded
// definition, a ready-made form session and HTML generation helpers.
package contactform

import (
	"context"

	"github.com/goliatone/go-contactform/pkg/form"
	"github.com/goliatone/go-contactform/pkg/model"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
)

// ContactOperationID is the operation describing the contact form inside the
// embedded definition.
const ContactOperationID = "submitContact"

// RenderOptions aliases render.RenderOptions for callers of GenerateHTML.
type RenderOptions = render.RenderOptions

// ContactSource identifies the embedded definition for loaders configured
// with DefinitionsFS.
func ContactSource() pkgopenapi.Source {
	return pkgopenapi.SourceFromFS(contactDefinitionName)
}

// ContactDocument loads the embedded contact definition.
func ContactDocument(ctx context.Context) (pkgopenapi.Document, error) {
	loader := pkgopenapi.NewLoader(pkgopenapi.WithFileSystem(DefinitionsFS()))
	return loader.Load(ctx, ContactSource())
}

// ContactForm parses the embedded definition into a form model.
func ContactForm(ctx context.Context) (model.FormModel, error) {
	doc, err := ContactDocument(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	return pkgopenapi.NewParser().Form(ctx, doc, ContactOperationID)
}

// NewSession returns a live form for the contact definition.
func NewSession(ctx context.Context, opts ...form.Option) (*form.Form, error) {
	m, err := ContactForm(ctx)
	if err != nil {
		return nil, err
	}
	return form.New(m, opts...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the embedded contact form with the default HTML
// renderer.
func GenerateHTML(ctx context.Context, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	doc, err := ContactDocument(ctx)
	if err != nil {
		return nil, err
	}
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Document:      &doc,
		OperationID:   ContactOperationID,
		RenderOptions: opts,
	})
}

// GenerateSessionHTML renders the current state of a live session.
func GenerateSessionHTML(ctx context.Context, session *form.Form, options ...orchestrator.Option) ([]byte, error) {
	return GenerateHTML(ctx, render.OptionsFromForm(session), options...)
}
