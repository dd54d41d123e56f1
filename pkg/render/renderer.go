package render

import (
	"context"

	"github.com/goliatone/go-contactform/pkg/model"
)

// Renderer converts a FormModel plus view state into bytes (HTML, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
