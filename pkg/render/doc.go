// Package render defines the Renderer contract, the per-pass view state and a
// registry of renderers.
package render
