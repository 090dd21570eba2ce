package views

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-admin/pkg/render/template"
)

// Kind tags an Entry variant.
type Kind string

const (
	KindView     Kind = "view"
	KindFormView Kind = "form_view"
	KindLink     Kind = "link"
	KindDropDown Kind = "dropdown"
)

// Kinds lists every variant.
func Kinds() []Kind {
	return []Kind{KindView, KindFormView, KindLink, KindDropDown}
}

// ParseKind maps a variant name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds() {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("views: unknown kind %q", name)
}

// Entry is anything that can be added to an admin panel. Only this package
// implements it.
type Entry interface {
	Kind() Kind
	sealed()
}

// Routable is an Entry that owns a route and handles requests on it.
type Routable interface {
	Entry
	// Config returns the view identity or an error wrapping ErrMissingValue
	// when none was set.
	Config() (Config, error)
	TemplateName() string
	Handle(r *http.Request, templates template.TemplateRenderer) (*Response, error)
}

// IsRoutable reports whether entry registers routes.
func IsRoutable(entry Entry) bool {
	if entry == nil {
		return false
	}
	switch entry.Kind() {
	case KindView, KindFormView:
		return true
	case KindLink, KindDropDown:
		return false
	default:
		panic(fmt.Sprintf("views: unknown kind %q", entry.Kind()))
	}
}
