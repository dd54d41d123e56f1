package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-contactform/pkg/model"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
)

const snapshotRendererName = "form-model-snapshot"

type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, form model.FormModel, _ render.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return nil, err
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		definitionPath = flag.String("definition", "definitions/contact.yaml", "OpenAPI definition path")
		presetPath     = flag.String("preset", "", "optional YAML preset applied to the model")
		operationID    = flag.String("operation", "submitContact", "operation ID to snapshot")
		outputPath     = flag.String("output", "pkg/testsupport/testdata/contact_form_model.json", "output path for the serialized form model")
	)
	flag.Parse()

	ctx := context.Background()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	options := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
	}
	if *presetPath != "" {
		preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(*presetPath)), filepath.Base(*presetPath))
		if err != nil {
			fmt.Fprintf(os.Stderr, "load preset: %v\n", err)
			os.Exit(1)
		}
		options = append(options, orchestrator.WithTransformer(preset))
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	_, err := orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:      pkgopenapi.SourceFromFile(*definitionPath),
		OperationID: *operationID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate form model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("form model written to %s\n", *outputPath)
}
