package html

import (
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "cf-" + trimmed
}

func labelID(name string) string {
	if id := controlID(name); id != "" {
		return id + "-label"
	}
	return ""
}

// sanitizeLabel keeps inline emphasis in labels and strips everything else.
func sanitizeLabel(raw string) string {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "em", "i", "small")
		labelPolicy = policy
	})
	return strings.TrimSpace(labelPolicy.Sanitize(raw))
}

// styleFromVars renders CSS custom properties as a sorted inline style.
func styleFromVars(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.HasPrefix(key, "--") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := strings.NewReplacer(";", "", "\"", "", "<", "", ">", "").Replace(vars[key])
		parts = append(parts, key+": "+strings.TrimSpace(value))
	}
	return strings.Join(parts, "; ")
}

// browserMethod maps verbs HTML forms cannot send onto POST plus an override.
func browserMethod(method string) (string, string) {
	upper := strings.ToUpper(strings.TrimSpace(method))
	switch upper {
	case "", "POST":
		return "post", ""
	case "GET":
		return "get", ""
	default:
		return "post", upper
	}
}
