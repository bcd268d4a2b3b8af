// Package utensorcgen renders C/C++ snippet files, such as the tensor-names
// header, for embedded inference code generation.
package utensorcgen

import (
	"context"
	"io/fs"

	"github.com/neil-tan/utensor-cgen/pkg/manifest"
	"github.com/neil-tan/utensor-cgen/pkg/snippets"
	"github.com/neil-tan/utensor-cgen/pkg/snippets/tensornames"
)

// RenderRequest aliases the snippet render request for callers that only
// import the root package.
type RenderRequest = snippets.RenderRequest

// TensorMacro aliases the macro entry type.
type TensorMacro = snippets.TensorMacro

// Manifest aliases the YAML manifest type.
type Manifest = manifest.Manifest

// DefaultRegistry returns a registry with the built-in snippets wired in.
func DefaultRegistry() (*snippets.Registry, error) {
	registry := snippets.NewRegistry()

	names, err := tensornames.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(names); err != nil {
		return nil, err
	}
	return registry, nil
}

// Generate renders a manifest with the named built-in snippet. It is the
// simplest entry point for callers that just want header text.
func Generate(ctx context.Context, m manifest.Manifest, snippetName string) ([]byte, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	snippet, err := registry.Get(snippetName)
	if err != nil {
		return nil, err
	}
	return snippet.Render(ctx, m.RenderRequest())
}

// GenerateFromFile loads a manifest from disk and renders it with the named
// built-in snippet.
func GenerateFromFile(ctx context.Context, path, snippetName string) ([]byte, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return Generate(ctx, m, snippetName)
}

// EmbeddedTemplates exposes the built-in tensor-names templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return tensornames.TemplatesFS()
}
