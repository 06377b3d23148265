// Package web holds the HTML templates of the page routes.
package web

import (
	"embed"
	"html/template"
	"net/url"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"pathEscape": url.PathEscape,
	"formatTime": func(t time.Time) string {
		return t.Local().Format("02.01.2006 15:04")
	},
	"formatAmount": func(f float64) string {
		return trimFloat(f)
	},
}

// Templates parses every embedded page template. Each page is addressed by
// its file name, e.g. "login.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
