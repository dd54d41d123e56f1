package form

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-contactform/pkg/mask"
)

// Format controls how a submission is serialised.
type Format string

const (
	// FormatJSON emits an application/json object.
	FormatJSON Format = "json"
	// FormatFormURLEncoded emits application/x-www-form-urlencoded pairs.
	FormatFormURLEncoded Format = "form"
	// FormatPrettyText emits one name=value line per field.
	FormatPrettyText Format = "pretty"
)

// ContentType returns the MIME type produced by Encode.
func (f Format) ContentType() string {
	switch f {
	case FormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case FormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// ParseFormat resolves a format name; empty selects JSON.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatFormURLEncoded:
		return FormatFormURLEncoded, nil
	case FormatPrettyText:
		return FormatPrettyText, nil
	default:
		return "", fmt.Errorf("form: unknown output format %q", raw)
	}
}

// Entry is one submitted field.
type Entry struct {
	Name   string
	Value  string
	Secret bool
}

// Submission is the validated payload handed to the submit callback. Entries
// keep field order.
type Submission struct {
	FormID  string
	Entries []Entry
}

// Values returns the submission as a map.
func (s Submission) Values() map[string]string {
	out := make(map[string]string, len(s.Entries))
	for _, entry := range s.Entries {
		out[entry.Name] = entry.Value
	}
	return out
}

// Redacted returns the values with secret fields masked, for logging.
func (s Submission) Redacted() map[string]string {
	out := make(map[string]string, len(s.Entries))
	for _, entry := range s.Entries {
		value := entry.Value
		if entry.Secret {
			value = mask.Redact(value)
		}
		out[entry.Name] = value
	}
	return out
}

// Encode serialises the submission.
func (s Submission) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatFormURLEncoded:
		values := url.Values{}
		for _, entry := range s.Entries {
			values.Set(entry.Name, entry.Value)
		}
		return []byte(values.Encode()), nil
	case FormatPrettyText:
		var b strings.Builder
		for _, entry := range s.Entries {
			fmt.Fprintf(&b, "%s=%s\n", entry.Name, entry.Value)
		}
		return []byte(b.String()), nil
	case FormatJSON, "":
		return json.Marshal(s.Values())
	default:
		return nil, fmt.Errorf("form: unknown output format %q", format)
	}
}
