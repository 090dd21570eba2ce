package views

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-admin/pkg/render/template"
)

// routable carries the state every routed view shares.
type routable struct {
	config   *Config
	template string
}

func newRoutable(cfg *Config, tpl string) routable {
	r := routable{template: strings.TrimSpace(tpl)}
	if cfg != nil {
		normalized := cfg.normalized()
		r.config = &normalized
	}
	return r
}

// Config returns the view config or an error wrapping ErrMissingValue.
func (r routable) Config() (Config, error) {
	return Value(r.config, "view config")
}

// TemplateName returns the template the view renders.
func (r routable) TemplateName() string { return r.template }

func (routable) sealed() {}

// Spec declares a plain View.
type Spec struct {
	Config   *Config
	Template string
}

// View renders its template with the request and the view itself.
type View struct {
	routable
}

var _ Routable = (*View)(nil)

// NewView builds a plain view. Missing config or template are reported when
// the view is added to an admin panel, not here.
func NewView(spec Spec) *View {
	return &View{routable: newRoutable(spec.Config, spec.Template)}
}

// Kind implements Entry.
func (*View) Kind() Kind { return KindView }

// Handle renders the template for any method.
func (v *View) Handle(r *http.Request, templates template.TemplateRenderer) (*Response, error) {
	return renderPage(templates, v.template, map[string]any{
		"request": RequestInfo(r),
		"view":    Describe(v),
	})
}

func renderPage(templates template.TemplateRenderer, name string, data map[string]any) (*Response, error) {
	if templates == nil {
		return nil, fmt.Errorf("views: render %q: %w", name, fmt.Errorf("%w: template renderer", ErrMissingValue))
	}
	body, err := templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("views: render %q: %w", name, err)
	}
	return HTML(http.StatusOK, body), nil
}
