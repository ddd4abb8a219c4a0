// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"embed"
	"html/template"
	"io"

	"github.com/danielhkuo/disaster-verify/chatwidget"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type pageData struct {
	Dashboard
	Chat *chatwidget.Widget
}

// RenderPage writes the full dashboard page. chat may be nil.
func RenderPage(w io.Writer, d Dashboard, chat *chatwidget.Widget) error {
	return pageTemplate.Execute(w, pageData{Dashboard: d, Chat: chat})
}
