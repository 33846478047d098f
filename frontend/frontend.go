// Package frontend embeds the single page served at the site root.
package frontend

import (
	"embed"
	"html/template"
)

// IndexTemplate is the template name registered for index.html.
const IndexTemplate = "index.html"

//go:embed index.html
var Files embed.FS

// Templates parses the embedded pages. The index page expects a
// "subpath" key in its data.
func Templates() *template.Template {
	return template.Must(template.ParseFS(Files, IndexTemplate))
}
