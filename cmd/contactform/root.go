package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	contactform "github.com/goliatone/go-contactform"
	"github.com/goliatone/go-contactform/internal/config"
	"github.com/goliatone/go-contactform/internal/logger"
	"github.com/goliatone/go-contactform/pkg/model"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
)

// app carries state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	configFile string
	envFile    string
	cfg        *config.Config
	log        zerolog.Logger

	// driver overrides the survey prompt driver.
	driver tui.PromptDriver
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, log: zerolog.Nop()}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		logLevel   string
		logFormat  string
		definition string
		operation  string
		mode       string
	)

	root := &cobra.Command{
		Use:           "contactform",
		Short:         "Fill, render and inspect the masked contact form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{File: a.configFile, EnvFile: a.envFile})
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = logFormat
			}
			if flags.Changed("definition") {
				cfg.Form.Definition = definition
			}
			if flags.Changed("operation") {
				cfg.Form.Operation = operation
			}
			if flags.Changed("mode") {
				cfg.Form.Mode = mode
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.log = logger.New(cfg.Logging.Level, cfg.Logging.Format, a.errOut)
			return nil
		},
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML configuration file")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file (defaults to ./.env when present)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	pf.StringVar(&definition, "definition", "", "OpenAPI definition path (embedded contact form when empty)")
	pf.StringVar(&operation, "operation", "", "operation id inside the definition")
	pf.StringVar(&mode, "mode", "onSubmit", "validation mode (onSubmit, onBlur, onChange)")

	root.AddCommand(newPromptCmd(a), newRenderCmd(a), newFormatCmd(a))
	return root
}

// request builds the orchestrator request for the configured definition.
func (a *app) request(ctx context.Context) (orchestrator.Request, error) {
	if a.cfg.Form.Definition != "" {
		return orchestrator.Request{
			Source:      pkgopenapi.SourceFromFile(a.cfg.Form.Definition),
			OperationID: a.cfg.Form.Operation,
		}, nil
	}

	doc, err := contactform.ContactDocument(ctx)
	if err != nil {
		return orchestrator.Request{}, err
	}
	operationID := a.cfg.Form.Operation
	if operationID == "" {
		operationID = contactform.ContactOperationID
	}
	return orchestrator.Request{Document: &doc, OperationID: operationID}, nil
}

func (a *app) formModel(ctx context.Context, orch *orchestrator.Orchestrator) (model.FormModel, error) {
	req, err := a.request(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	return orch.Form(ctx, req)
}

// writeOutput writes data to path, or to stdout when path is empty.
func (a *app) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := a.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.log.Info().Str("path", path).Int("bytes", len(data)).Msg("output written")
	return nil
}
