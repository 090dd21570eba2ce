// Package ui bundles the default admin templates and static assets.
//
// Templates use the pongo2 syntax understood by the gotemplate adapter. A
// directory passed to admin.WithTemplatesDir is searched first, so any file
// here can be overridden by shipping one with the same relative name.
package ui

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl templates/form_fields/*.tpl templates/datagrid/*.tpl templates/partials/*.tpl
var embeddedTemplates embed.FS

//go:embed static/*
var embeddedStatic embed.FS

const (
	BaseTemplate  = "base.tpl"
	IndexTemplate = "index.tpl"
	ErrorTemplate = "error.tpl"
	Stylesheet    = "admin.css"
)

// TemplatesFS exposes the default templates rooted at the template directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// StaticFS exposes the static assets served under /statics.
func StaticFS() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		return embeddedStatic
	}
	return sub
}
