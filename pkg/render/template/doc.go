// Package template defines the renderer-agnostic template contract used by
// admin views. Views only depend on TemplateRenderer; the pongo2 backed
// implementation lives in the gotemplate subpackage.
package template
