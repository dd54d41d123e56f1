package orchestrator

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/render"
)

// ThemeSelector resolves a theme selection by name and variant.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// WithThemeSelector wires a selector used when requests carry no explicit
// theme config.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme name and variant used when a request does
// not name one.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithThemeFallbacks sets partials applied when the selected manifest does
// not provide them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"forms.form":  "templates/form.html",
		"forms.style": "assets/contactform.css",
	}
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return render.DefaultTheme(), nil
	}

	name := firstNonEmpty(req.ThemeName, o.defaultTheme)
	variant := firstNonEmpty(req.ThemeVariant, o.defaultVariant)

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}

	fallbacks := o.themeFallbacks
	if fallbacks == nil {
		fallbacks = defaultThemeFallbacks()
	}
	return render.ThemeFromSelection(selection, fallbacks), nil
}

// ManifestSelector is an in-memory ThemeSelector over a fixed set of
// manifests. An empty name picks the first manifest by name.
type ManifestSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

// NewManifestSelector creates a selector holding the given manifests.
func NewManifestSelector(manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest)}
	for _, manifest := range manifests {
		s.Add(manifest)
	}
	return s
}

// Add registers or replaces a manifest.
func (s *ManifestSelector) Add(manifest *theme.Manifest) {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[manifest.Name] = manifest
}

// Select implements ThemeSelector.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if name == "" {
		names := make([]string, 0, len(s.manifests))
		for key := range s.manifests {
			names = append(names, key)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("theme selector: no themes registered")
		}
		sort.Strings(names)
		name = names[0]
	}

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("theme selector: theme %q not found", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme selector: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
