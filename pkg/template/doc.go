// Package template defines the rendering engine contract used by the snippet
// renderers. The pongo2engine subpackage provides the default implementation.
package template
