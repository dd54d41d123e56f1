// Package mask implements the input masks used by the contact form: pure
// formatters that turn raw keystrokes into punctuated display strings (phone,
// currency, PIN), the cursor reconciliation applied after every reformat and
// the backspace rule that steps over inserted punctuation. Every formatter is
// idempotent so it can be reapplied on each change event.
package mask
