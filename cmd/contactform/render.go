package main

import (
	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/form"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/html"
)

const customThemeName = "custom"

func newRenderCmd(a *app) *cobra.Command {
	var (
		output    string
		themeName string
		variant   string
		focus     string
		values    map[string]string
		validate  bool
		inline    bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the form as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if flags.Changed("output") {
				a.cfg.Output.Path = output
			}
			if flags.Changed("theme") {
				a.cfg.Theme.Name = themeName
			}
			if flags.Changed("variant") {
				a.cfg.Theme.Variant = variant
			}

			renderer, err := html.New(html.WithInlineStyles(inline), html.WithLogger(a.log))
			if err != nil {
				return err
			}
			registry := render.NewRegistry()
			registry.MustRegister(renderer)

			opts := []orchestrator.Option{
				orchestrator.WithLogger(a.log),
				orchestrator.WithRegistry(registry),
			}
			if selector := a.themeSelector(); selector != nil {
				opts = append(opts,
					orchestrator.WithThemeSelector(selector),
					orchestrator.WithDefaultTheme(a.cfg.Theme.Name, a.cfg.Theme.Variant),
				)
			}
			orch := orchestrator.New(opts...)

			req, err := a.request(ctx)
			if err != nil {
				return err
			}
			m, err := orch.Form(ctx, req)
			if err != nil {
				return err
			}

			session, err := form.New(m, form.WithValues(values), form.WithLogger(a.log))
			if err != nil {
				return err
			}
			if validate {
				session.Trigger()
			}
			req.RenderOptions = render.OptionsFromForm(session)
			if focus != "" {
				req.RenderOptions.Focused = focus
			}
			req.Renderer = html.Name

			data, err := orch.Generate(ctx, req)
			if err != nil {
				return err
			}
			return a.writeOutput(a.cfg.Output.Path, data)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "write HTML to a file instead of stdout")
	f.StringVar(&themeName, "theme", "", "theme name")
	f.StringVar(&variant, "variant", "", "theme variant")
	f.StringVar(&focus, "focus", "", "field rendered as focused (shows its error)")
	f.StringToStringVar(&values, "value", nil, "prefill a field, name=value (repeatable)")
	f.BoolVar(&validate, "validate", false, "validate prefilled values before rendering")
	f.BoolVar(&inline, "inline-styles", true, "inline the stylesheet instead of linking it")
	return cmd
}

// themeSelector builds a selector from configured tokens. Without tokens the
// renderer keeps its default palette.
func (a *app) themeSelector() orchestrator.ThemeSelector {
	if len(a.cfg.Theme.Tokens) == 0 {
		return nil
	}
	name := a.cfg.Theme.Name
	if name == "" {
		name = customThemeName
		a.cfg.Theme.Name = name
	}
	return orchestrator.NewManifestSelector(&theme.Manifest{
		Name:    name,
		Version: "1.0.0",
		Tokens:  a.cfg.Theme.Tokens,
	})
}
