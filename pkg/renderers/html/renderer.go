// Package html renders contact forms as server-side HTML fragments.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-contactform/pkg/field"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
	rendertemplate "github.com/goliatone/go-contactform/pkg/render/template"
	"github.com/goliatone/go-contactform/pkg/render/template/pongo"
)

// Name is the registry name of the renderer.
const Name = "html"

// StylesheetAssetKey is the theme asset key resolved for the stylesheet link.
const StylesheetAssetKey = "stylesheet"

const (
	formTemplate       = "templates/form"
	methodOverrideName = "_method"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
	logger           zerolog.Logger
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInlineStyles controls whether the bundled stylesheet is inlined when the
// theme provides no stylesheet asset. Enabled by default.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Renderer renders a form model into an HTML fragment.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	inlineStyles bool
	logger       zerolog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		inlineStyles: true,
		logger:       zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		inlineStyles: cfg.inlineStyles,
		logger:       cfg.logger,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders form with the view state in opts.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(formTemplate, r.viewData(form, opts))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	r.logger.Debug().Str("form", form.ID).Int("fields", len(form.Fields)).Msg("rendered html form")
	return []byte(result), nil
}

func (r *Renderer) viewData(form model.FormModel, opts render.RenderOptions) map[string]any {
	declared := opts.Method
	if declared == "" {
		declared = form.Method
	}
	method, override := browserMethod(declared)
	hidden := opts.Hidden
	if override != "" {
		hidden = render.MergeHiddenFields(hidden, render.Hidden(methodOverrideName, override))
	}

	themeCfg := opts.Theme
	if themeCfg == nil {
		themeCfg = render.DefaultTheme()
	}
	vars := render.DefaultTheme().CSSVars
	for key, value := range themeCfg.CSSVars {
		vars[key] = value
	}

	stylesheetURL := ""
	if themeCfg.AssetURL != nil {
		stylesheetURL = themeCfg.AssetURL(StylesheetAssetKey)
	}
	stylesheet := ""
	if stylesheetURL == "" && r.inlineStyles {
		stylesheet = defaultStylesheet()
	}

	submitLabel := form.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Submit"
	}

	hiddenFields := make([]map[string]any, 0, len(hidden))
	for _, h := range render.SortedHiddenFields(hidden) {
		hiddenFields = append(hiddenFields, map[string]any{"name": h.Name, "value": h.Value})
	}

	fields := make([]map[string]any, 0, len(form.Fields))
	for _, def := range form.Fields {
		fields = append(fields, fieldView(def, opts.Field(def.Name)))
	}

	return map[string]any{
		"form": map[string]any{
			"id":          form.ID,
			"title":       form.Title,
			"endpoint":    form.Endpoint,
			"method":      method,
			"submitLabel": submitLabel,
			"errors":      opts.FormErrors,
		},
		"fields":         fields,
		"hidden":         hiddenFields,
		"style":          styleFromVars(vars),
		"stylesheet":     stylesheet,
		"stylesheet_url": stylesheetURL,
	}
}

func fieldView(def model.Field, state render.FieldState) map[string]any {
	return map[string]any{
		"name":         def.Name,
		"id":           controlID(def.Name),
		"labelID":      labelID(def.Name),
		"label":        sanitizeLabel(def.DisplayLabel()),
		"inputType":    field.InputTypeFor(def, state.Visible),
		"placeholder":  def.Placeholder,
		"maxLength":    def.MaxLength,
		"mask":         def.Mask,
		"required":     def.Required,
		"secret":       def.Secret,
		"visible":      state.Visible,
		"focused":      state.Focused,
		"value":        state.Value,
		"invalid":      state.Error != "",
		"visibleError": state.VisibleError,
		"chromeClass":  chromeClass(state.Chrome),
	}
}
