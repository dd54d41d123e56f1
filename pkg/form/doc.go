// Package form is the form state manager: it owns one field editor per field,
// supplies value/onChange/onBlur to each of them, runs validation according
// to the configured mode and hands valid submissions to a callback.
package form
