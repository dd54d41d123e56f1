// Package orchestrator wires the loader → parser → transformer → renderer
// pipeline behind a single entry point. Every stage can be swapped through
// options; the defaults load OpenAPI definitions from disk and render HTML.
package orchestrator
