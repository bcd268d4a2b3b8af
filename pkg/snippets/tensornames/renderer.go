package tensornames

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/neil-tan/utensor-cgen/pkg/snippets"
	pkgtemplate "github.com/neil-tan/utensor-cgen/pkg/template"
	"github.com/neil-tan/utensor-cgen/pkg/template/pongo2engine"
)

// templateName is the embedded template backing the renderer.
const templateName = "templates/tensor_names.hpp.tpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer pkgtemplate.Renderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/tensor_names.hpp.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the template bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine implementation.
func WithTemplateRenderer(renderer pkgtemplate.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits the tensor-names header: an include-guarded block of
// #define lines mapping macro names to tensor indices, preceded by a
// commented-out typedef hinting the index width a consumer should pick.
// Requests with at most 256 tensors get the single-byte hint, wider graphs
// the two-byte one. The typedef is documentation only and never active code.
//
// The renderer is stateless and performs no validation: macro names and
// indices pass through verbatim in request order, duplicates included.
// Identical requests yield byte-identical output, and concurrent use needs
// no coordination.
type Renderer struct {
	templates pkgtemplate.Renderer
}

// Ensure Renderer implements the Snippet interface.
var _ snippets.Snippet = (*Renderer)(nil)

// New constructs the tensor-names renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
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
		engine, err := pongo2engine.New(
			pongo2engine.WithFS(cfg.templateFS),
			pongo2engine.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("tensornames: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "tensor-names"
}

func (r *Renderer) ContentType() string {
	return "text/x-c++hdr; charset=utf-8"
}

// Render produces the header text for req. The caller owns guard uniqueness
// and macro-name validity; malformed input renders malformed but non-failing
// output.
func (r *Renderer) Render(_ context.Context, req snippets.RenderRequest) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("tensornames: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(templateName, map[string]any{
		"header_guard": req.HeaderGuard,
		"num_tensors":  req.NumTensors,
		"tensors":      req.Tensors,
	})
	if err != nil {
		return nil, fmt.Errorf("tensornames: render template: %w", err)
	}
	return []byte(result), nil
}
