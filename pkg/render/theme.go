package render

import (
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Palette token keys read by the renderers.
const (
	TokenFocus      = "color.focus"
	TokenError      = "color.error"
	TokenIdle       = "color.idle"
	TokenBackground = "color.background"
	TokenText       = "color.text"
)

// DefaultTokens is the stock palette: teal focus ring, red error border,
// white idle border on a dark input background.
func DefaultTokens() map[string]string {
	return map[string]string{
		TokenFocus:      "#56acbd",
		TokenError:      "#ef4444",
		TokenIdle:       "#ffffff",
		TokenBackground: "#333",
		TokenText:       "#ffffff",
	}
}

// DefaultTheme returns a renderer config carrying DefaultTokens.
func DefaultTheme() *theme.RendererConfig {
	tokens := DefaultTokens()
	return &theme.RendererConfig{
		Theme:   "default",
		Tokens:  tokens,
		CSSVars: cssVars(tokens),
	}
}

// ThemeFromSelection flattens a go-theme selection into a renderer config.
// Variant tokens and templates override the manifest; missing tokens fall
// back to DefaultTokens and missing partials to fallbacks.
func ThemeFromSelection(sel *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if sel == nil {
		return DefaultTheme()
	}

	tokens := DefaultTokens()
	partials := make(map[string]string, len(fallbacks))
	for key, value := range fallbacks {
		partials[key] = value
	}
	files := map[string]string{}
	prefix := ""

	if manifest := sel.Manifest; manifest != nil {
		merge(tokens, manifest.Tokens)
		merge(partials, manifest.Templates)
		merge(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix
		if variant, ok := manifest.Variants[sel.Variant]; ok {
			merge(tokens, variant.Tokens)
			merge(partials, variant.Templates)
			merge(files, variant.Assets.Files)
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	return &theme.RendererConfig{
		Theme:    sel.Theme,
		Variant:  sel.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars(tokens),
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok {
				return ""
			}
			if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
				return file
			}
			return path.Join(prefix, file)
		},
	}
}

// Token returns the named token of cfg, falling back to DefaultTokens.
func Token(cfg *theme.RendererConfig, key string) string {
	if cfg != nil {
		if value := strings.TrimSpace(cfg.Tokens[key]); value != "" {
			return value
		}
	}
	return DefaultTokens()[key]
}

func cssVars(tokens map[string]string) map[string]string {
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out["--"+strings.ReplaceAll(key, ".", "-")] = value
	}
	return out
}

func merge(dst, src map[string]string) {
	for key, value := range src {
		if strings.TrimSpace(value) == "" {
			continue
		}
		dst[key] = value
	}
}
