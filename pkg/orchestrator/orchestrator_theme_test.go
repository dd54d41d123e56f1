package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/model"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/render"
)

const definitionPath = "../../definitions/contact.yaml"

type captureRenderer struct {
	options render.RenderOptions
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	return []byte(form.ID), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func captureOrchestrator(renderer *captureRenderer, opts ...Option) *Orchestrator {
	registry := render.NewRegistry()
	registry.MustRegister(renderer)
	return New(append([]Option{WithRegistry(registry), WithDefaultRenderer(renderer.Name())}, opts...)...)
}

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "spidr",
		Version: "1.0.0",
		Tokens:  map[string]string{render.TokenFocus: "#123456"},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "spidr",
		Variant:  "night",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	orch := captureOrchestrator(renderer, WithThemeSelector(selector))

	_, err := orch.Generate(context.Background(), Request{
		Source:       pkgopenapi.SourceFromFile(definitionPath),
		ThemeName:    "spidr",
		ThemeVariant: "night",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 || selector.calls[0] != (selectorCall{name: "spidr", variant: "night"}) {
		t.Fatalf("unexpected selector calls: %+v", selector.calls)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatal("expected theme config passed to renderer")
	}
	if cfg.Theme != "spidr" || cfg.Variant != "night" {
		t.Fatalf("selection not propagated: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens[render.TokenFocus] != "#123456" {
		t.Fatalf("manifest token missing: %#v", cfg.Tokens)
	}
	if cfg.Tokens[render.TokenError] != render.DefaultTokens()[render.TokenError] {
		t.Fatalf("default token not kept: %#v", cfg.Tokens)
	}
	if cfg.Partials["forms.form"] != defaultThemeFallbacks()["forms.form"] {
		t.Fatalf("fallback partials not applied: %#v", cfg.Partials)
	}
}

func TestOrchestrator_ManifestSelectorVariant(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "spidr",
		Version: "1.0.0",
		Tokens:  map[string]string{render.TokenFocus: "#123456"},
		Assets: theme.Assets{
			Prefix: "/assets/spidr",
			Files:  map[string]string{"stylesheet": "form.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{render.TokenFocus: "#654321"}},
		},
	}

	renderer := &captureRenderer{}
	orch := captureOrchestrator(renderer,
		WithThemeSelector(NewManifestSelector(manifest)),
		WithDefaultTheme("spidr", "dark"),
	)

	if _, err := orch.Generate(context.Background(), Request{Source: pkgopenapi.SourceFromFile(definitionPath)}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg.Tokens[render.TokenFocus] != "#654321" {
		t.Fatalf("variant token not applied: %#v", cfg.Tokens)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/spidr/form.css" {
		t.Fatalf("asset url = %q", got)
	}
}

func TestOrchestrator_ExplicitThemeSkipsSelector(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("unused")}
	renderer := &captureRenderer{}
	orch := captureOrchestrator(renderer, WithThemeSelector(selector))

	explicit := render.DefaultTheme()
	_, err := orch.Generate(context.Background(), Request{
		Source:        pkgopenapi.SourceFromFile(definitionPath),
		RenderOptions: render.RenderOptions{Theme: explicit},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.calls) != 0 {
		t.Fatalf("selector should not run: %+v", selector.calls)
	}
	if renderer.options.Theme != explicit {
		t.Fatal("explicit theme replaced")
	}
}

func TestManifestSelector_Errors(t *testing.T) {
	empty := NewManifestSelector()
	if _, err := empty.Select("", ""); err == nil {
		t.Fatal("expected error from empty selector")
	}

	selector := NewManifestSelector(&theme.Manifest{Name: "spidr"})
	if _, err := selector.Select("acme", ""); err == nil || !strings.Contains(err.Error(), "acme") {
		t.Fatalf("expected unknown theme error, got %v", err)
	}
	if _, err := selector.Select("spidr", "dark"); err == nil {
		t.Fatal("expected unknown variant error")
	}
	sel, err := selector.Select("", "")
	if err != nil || sel.Theme != "spidr" {
		t.Fatalf("expected first theme, got %+v, %v", sel, err)
	}

	renderer := &captureRenderer{}
	orch := captureOrchestrator(renderer, WithThemeSelector(&stubThemeSelector{err: errors.New("boom")}))
	if _, err := orch.Generate(context.Background(), Request{Source: pkgopenapi.SourceFromFile(definitionPath)}); err == nil {
		t.Fatal("expected selector error to surface")
	}
}
