package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/form"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
)

func newPromptCmd(a *app) *cobra.Command {
	var (
		format      string
		output      string
		reveal      bool
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill the form interactively and print the submission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if flags.Changed("format") {
				a.cfg.Output.Format = format
			}
			if flags.Changed("output") {
				a.cfg.Output.Path = output
			}
			if flags.Changed("reveal") {
				a.cfg.Prompt.RevealSecrets = reveal
			}
			if flags.Changed("max-attempts") {
				a.cfg.Prompt.MaxAttempts = maxAttempts
			}

			outFormat, err := form.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}

			m, err := a.formModel(ctx, orchestrator.New(orchestrator.WithLogger(a.log)))
			if err != nil {
				return err
			}

			driver := a.driver
			if driver == nil {
				driver = tui.NewSurveyDriver(a.errOut)
			}

			renderer, err := tui.New(
				tui.WithPromptDriver(driver),
				tui.WithOutputFormat(outFormat),
				tui.WithRevealPrompt(a.cfg.Prompt.RevealSecrets),
				tui.WithMaxAttempts(a.cfg.Prompt.MaxAttempts),
				tui.WithLogger(a.log),
				tui.WithFormOptions(
					form.WithMode(form.Mode(a.cfg.Form.Mode)),
					form.WithLogger(a.log),
				),
			)
			if err != nil {
				return err
			}

			data, err := renderer.Render(ctx, m, render.RenderOptions{})
			if errors.Is(err, tui.ErrAborted) {
				a.log.Warn().Msg("prompt aborted")
				return err
			}
			if err != nil {
				return err
			}
			if len(data) > 0 && data[len(data)-1] != '\n' {
				data = append(data, '\n')
			}
			return a.writeOutput(a.cfg.Output.Path, data)
		},
	}

	f := cmd.Flags()
	f.StringVar(&format, "format", "json", "submission encoding (json, form, pretty)")
	f.StringVarP(&output, "output", "o", "", "write the submission to a file instead of stdout")
	f.BoolVar(&reveal, "reveal", false, "offer to reveal secret fields while typing")
	f.IntVar(&maxAttempts, "max-attempts", 0, "give up after this many invalid answers per field (0 retries forever)")
	return cmd
}
