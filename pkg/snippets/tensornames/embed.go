package tensornames

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// inspect or override the built-in header layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
