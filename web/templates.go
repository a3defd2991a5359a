// Package web embeds the HTML templates rendered by the handlers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates into one template set.
// The set is handed to gin via SetHTMLTemplate, so handlers and tests
// always render the same pages.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
