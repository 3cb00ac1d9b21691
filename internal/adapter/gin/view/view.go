// Package view holds the server-rendered dashboard page.
package view

import (
	"embed"
	"html/template"
	"strings"
)

// DashboardTemplate is the name passed to gin's c.HTML.
const DashboardTemplate = "dashboard.html"

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"lower": strings.ToLower,
}

// Templates parses the embedded templates. It panics on a malformed
// template since they are compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
