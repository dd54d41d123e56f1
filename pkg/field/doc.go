// Package field holds the per-field editing state of a rendered form: value,
// selection, focus, secret visibility and the validation message supplied by
// the form state manager. Each Editor applies its mask on every change and
// restores the caret through a Scheduler once the new value has been painted.
package field
