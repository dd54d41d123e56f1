package openapi

import (
	"encoding/json"
	"strconv"
	"strings"
)

const extensionNamespace = "x-formgen"

// Hint keys read from the x-formgen namespace. Unknown keys are kept as field
// metadata.
const (
	hintOrder           = "order"
	hintLabel           = "label"
	hintPlaceholder     = "placeholder"
	hintInputType       = "inputType"
	hintMask            = "mask"
	hintSecret          = "secret"
	hintRequiredMessage = "requiredMessage"
	hintPatternMessage  = "patternMessage"
	hintPatternFlags    = "patternFlags"
	hintDigits          = "digits"
	hintDigitsMessage   = "digitsMessage"
	hintTitle           = "title"
	hintSubmitLabel     = "submitLabel"
)

// hints flattens both the nested x-formgen object and x-formgen-<key>
// shorthand extensions into canonical strings.
func hints(raw map[string]any) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]string)
	for key, value := range raw {
		switch {
		case key == extensionNamespace:
			nested, ok := value.(map[string]any)
			if !ok {
				continue
			}
			for nestedKey, nestedValue := range nested {
				if str, ok := CanonicalizeExtensionValue(nestedValue); ok {
					out[nestedKey] = str
				}
			}
		case strings.HasPrefix(key, extensionNamespace+"-"):
			trimmed := strings.TrimPrefix(key, extensionNamespace+"-")
			if str, ok := CanonicalizeExtensionValue(value); ok {
				out[trimmed] = str
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// CanonicalizeExtensionValue turns a decoded extension value into a string.
// It returns false when the value cannot be represented deterministically.
func CanonicalizeExtensionValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	case map[string]any:
		if len(v) == 0 {
			return "", false
		}
		payload, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(payload), true
	case []any:
		if len(v) == 0 {
			return "", false
		}
		payload, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(payload), true
	default:
		return "", false
	}
}

func popHint(h map[string]string, key string) string {
	value, ok := h[key]
	if !ok {
		return ""
	}
	delete(h, key)
	return strings.TrimSpace(value)
}
