// Package goadmin exposes the bundled admin templates and assets for hosts
// that want to extend or serve them without importing pkg/ui.
package goadmin

import (
	"io/fs"

	"github.com/goliatone/go-admin/pkg/ui"
)

// EmbeddedTemplates exposes the built-in templates so callers can reuse or
// extend them, for example as the base of a custom template directory.
func EmbeddedTemplates() fs.FS {
	return ui.TemplatesFS()
}

// StaticFS exposes the bundled stylesheet. The admin serves it under
// <base_url>/statics; hosts with their own asset pipeline can mount it
// elsewhere:
//
//	mux.Handle("/assets/admin/",
//	  http.StripPrefix("/assets/admin/",
//	    http.FileServerFS(goadmin.StaticFS()),
//	  ),
//	)
func StaticFS() fs.FS {
	return ui.StaticFS()
}
