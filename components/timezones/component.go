package timezones

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-admin/pkg/admin"
	"github.com/goliatone/go-admin/pkg/fields"
	"github.com/goliatone/go-admin/pkg/views"
)

// Component bundles the search view, the JSON endpoint and field helpers
// around one set of options.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return c.opts.normalized()
}

// View returns the search form view, ready for Builder.AddView.
func (c *Component) View() *views.FormView[Query] {
	return NewView(c.opts)
}

// Field declares a select input listing every zone. Options are applied
// after the choices.
func (c *Component) Field(opts ...fields.Option) (fields.Decl, error) {
	zones, err := c.opts.zones()
	if err != nil {
		return fields.Decl{}, err
	}
	all := append([]fields.Option{fields.Choices(Choices(zones)...)}, opts...)
	return fields.Select(all...), nil
}

// MustField is Field that panics when the zone list cannot be read.
func (c *Component) MustField(opts ...fields.Option) fields.Decl {
	decl, err := c.Field(opts...)
	if err != nil {
		panic(err)
	}
	return decl
}

// Register mounts the JSON endpoint on mux below basePath and returns the
// pattern used.
func (c *Component) Register(mux admin.Mux, basePath string) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("timezones: missing mux")
	}
	pattern := MountPath(basePath, c.opts.RoutePath)
	mux.Handle(pattern, Handler(c.opts))
	return pattern, nil
}

// MountPath joins basePath and routePath into an absolute path.
func MountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)
	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}
	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + routePath
}
