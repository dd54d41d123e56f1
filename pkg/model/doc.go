// Package model defines the typed form model shared by the editor, the form
// state manager and the renderers. Definitions usually come from the OpenAPI
// parser in pkg/openapi but can be assembled by hand. Field.Mask names a
// formatter from pkg/mask; Field.Secret enables the show/hide toggle.
// Validation rules keep string parameters so the model stays trivially
// serialisable.
package model
