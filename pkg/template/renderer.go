package template

import (
	"io"
)

// Renderer is the engine seam snippet renderers rely on. Implementations
// resolve named templates from whatever backing store they were configured
// with and execute them against the supplied data.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	Globals(data map[string]any) error
}
