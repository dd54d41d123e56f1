// Package openapi loads OpenAPI 3 documents and turns the JSON request body of
// an operation into a model.FormModel. Presentation hints (labels, masks,
// messages) come from the x-formgen extension namespace.
package openapi
