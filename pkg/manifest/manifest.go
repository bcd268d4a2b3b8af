// Package manifest loads the YAML descriptions of generated headers and
// offers the opt-in validation layer callers can run before rendering.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/neil-tan/utensor-cgen/pkg/snippets"
)

// Entry is one macro-name/index pair from a manifest. Document order is
// preserved into the render request.
type Entry struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"index"`
}

// Manifest describes one generated header: the include-guard token, the
// advisory tensor count, and the ordered name->index assignment.
//
// NumTensors is optional. When the field is absent the render request
// defaults it to len(Tensors); when present it is passed through untouched,
// even if it disagrees with the entry count. Downstream graphs sometimes
// declare more tensors than they name, so the mismatch is allowed on
// purpose.
type Manifest struct {
	HeaderGuard string  `yaml:"header_guard"`
	NumTensors  *int    `yaml:"num_tensors,omitempty"`
	Tensors     []Entry `yaml:"tensors"`
}

// Load reads and parses a manifest file.
func Load(path string) (Manifest, error) {
	if path == "" {
		return Manifest{}, errors.New("manifest: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %q: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: parse %q: %w", path, err)
	}
	return m, nil
}

// Parse decodes YAML manifest content.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: unmarshal: %w", err)
	}
	return m, nil
}

// RenderRequest converts the manifest into the request snippets consume.
func (m Manifest) RenderRequest() snippets.RenderRequest {
	req := snippets.RenderRequest{
		HeaderGuard: m.HeaderGuard,
		NumTensors:  len(m.Tensors),
	}
	if m.NumTensors != nil {
		req.NumTensors = *m.NumTensors
	}

	if len(m.Tensors) > 0 {
		req.Tensors = make([]snippets.TensorMacro, 0, len(m.Tensors))
		for _, entry := range m.Tensors {
			req.Tensors = append(req.Tensors, snippets.TensorMacro{
				Name:  entry.Name,
				Index: entry.Index,
			})
		}
	}
	return req
}
