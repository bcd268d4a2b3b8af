// Package snippets defines the contract shared by code-generation snippet
// renderers and the registry used to discover them.
package snippets

import (
	"context"
)

// TensorMacro binds a preprocessor macro name to the tensor index it stands
// for. Slice order is emission order.
type TensorMacro struct {
	Name  string `json:"name" yaml:"name"`
	Index int    `json:"index" yaml:"index"`
}

// RenderRequest carries everything a snippet needs to produce its output.
//
// NumTensors is advisory metadata describing the total tensor count of the
// compiled graph. It only selects documentation hints in the output and is
// deliberately independent of len(Tensors); keeping the two consistent is the
// caller's responsibility.
type RenderRequest struct {
	// HeaderGuard is the include-guard token for the generated file. Snippets
	// prefix it with an underscore. The caller must keep it unique per
	// generated header, or downstream compilation breaks on guard collisions.
	HeaderGuard string
	// NumTensors is the total tensor count of the graph, >= 0.
	NumTensors int
	// Tensors is the final, order-stable name->index assignment. Snippets
	// emit entries verbatim in slice order with no sorting, escaping, or
	// deduplication.
	Tensors []TensorMacro
}

// Snippet converts a RenderRequest into generated source text.
type Snippet interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, req RenderRequest) ([]byte, error)
}
