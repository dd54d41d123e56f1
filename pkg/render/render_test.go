package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/field"
	"github.com/goliatone/go-contactform/pkg/form"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, model.FormModel, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "tui"})
	registry.MustRegister(stubRenderer{name: "html"})

	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if diff := cmp.Diff([]string{"html", "tui"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if _, err := registry.Get("pdf"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if !registry.Has("tui") {
		t.Fatalf("expected tui registered")
	}
}

func TestRenderOptions_FieldState(t *testing.T) {
	opts := render.RenderOptions{
		Values:  map[string]string{"phoneNumber": "(555) 1", "email": "a@b"},
		Errors:  map[string]string{"phoneNumber": "Phone number must be exactly 10 digits", "email": "Invalid email address"},
		Focused: "phoneNumber",
	}

	phone := opts.Field("phoneNumber")
	if phone.Chrome != field.ChromeError || phone.VisibleError == "" {
		t.Fatalf("focused invalid field should show error chrome and message: %+v", phone)
	}
	email := opts.Field("email")
	if email.Chrome != field.ChromeError || email.VisibleError != "" {
		t.Fatalf("unfocused invalid field keeps its message hidden: %+v", email)
	}
	opts.Focused = "firstName"
	if got := opts.Field("firstName").Chrome; got != field.ChromeFocused {
		t.Fatalf("expected focused chrome, got %s", got)
	}
	if got := opts.Field("lastName").Chrome; got != field.ChromeIdle {
		t.Fatalf("expected idle chrome, got %s", got)
	}
}

func TestOptionsFromForm(t *testing.T) {
	f, err := form.New(model.FormModel{
		ID: "pin",
		Fields: []model.Field{
			{Name: "spidrPin", Mask: "pin", Secret: true, Required: true},
		},
	})
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	if err := f.HandleSubmit(context.Background(), nil); err == nil {
		t.Fatalf("expected empty pin to fail")
	}
	editor, _ := f.Editor("spidrPin")
	editor.ToggleVisibility()
	editor.Insert("12345678")

	opts := render.OptionsFromForm(f)
	if opts.Focused != "spidrPin" || !opts.Visible["spidrPin"] {
		t.Fatalf("unexpected focus/visibility snapshot %+v", opts)
	}
	if opts.Values["spidrPin"] != "1234-5678" {
		t.Fatalf("unexpected value %q", opts.Values["spidrPin"])
	}
	if opts.Errors["spidrPin"] != "This field is required" && opts.Errors["spidrPin"] != "" {
		t.Fatalf("unexpected error %q", opts.Errors["spidrPin"])
	}

	redacted := render.RenderOptions{Values: opts.Values}.RedactedValues(map[string]bool{"spidrPin": true})
	if redacted["spidrPin"] != "****-5678" {
		t.Fatalf("expected redacted pin, got %q", redacted["spidrPin"])
	}
}

func TestHiddenFields(t *testing.T) {
	merged := render.MergeHiddenFields(map[string]string{" existing ": "keep", "": "drop"},
		render.CSRFToken("_csrf", "token123"),
		render.Hidden("version", 4),
		render.Hidden("  ", "skip"),
	)
	want := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(want, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestThemeFromSelection(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "spidr",
		Version: "1.0.0",
		Tokens:  map[string]string{"color.focus": "#00ff00"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/spidr",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"light": {
				Tokens: map[string]string{"color.background": "#fafafa"},
			},
		},
	}
	cfg := render.ThemeFromSelection(&theme.Selection{Theme: "spidr", Variant: "light", Manifest: manifest}, nil)

	if cfg.Theme != "spidr" || cfg.Variant != "light" {
		t.Fatalf("unexpected theme identity %s/%s", cfg.Theme, cfg.Variant)
	}
	if got := render.Token(cfg, render.TokenFocus); got != "#00ff00" {
		t.Fatalf("manifest token not applied, got %s", got)
	}
	if got := render.Token(cfg, render.TokenError); got != "#ef4444" {
		t.Fatalf("default token not kept, got %s", got)
	}
	if cfg.CSSVars["--color-background"] != "#fafafa" {
		t.Fatalf("variant css var missing: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/spidr/theme.css" {
		t.Fatalf("unexpected asset url %s", got)
	}
	if got := render.Token(nil, render.TokenFocus); got != "#56acbd" {
		t.Fatalf("nil config should use defaults, got %s", got)
	}
}
