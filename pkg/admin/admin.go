package admin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-admin/pkg/logging"
	"github.com/goliatone/go-admin/pkg/render/template"
	"github.com/goliatone/go-admin/pkg/themes"
	"github.com/goliatone/go-admin/pkg/views"
)

// Mounter attaches a sub handler under a prefix. chi.Router satisfies it.
type Mounter interface {
	Mount(pattern string, h http.Handler)
}

// Mux registers a handler for a pattern. *http.ServeMux satisfies it.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Admin is a built admin panel. It is immutable and safe for concurrent use.
type Admin struct {
	baseURL   string
	routeName string
	title     string
	debug     bool

	router       chi.Router
	templates    template.TemplateRenderer
	theme        *themes.Theme
	nav          []views.Entry
	routes       []Route
	names        map[string]string
	errorHandler ErrorHandler
	logger       logging.Logger
}

var _ http.Handler = (*Admin)(nil)

// ServeHTTP routes r relative to the admin root. Mounted under a chi router
// the prefix is already consumed.
func (a *Admin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// MountTo attaches the admin to host under the base URL.
func (a *Admin) MountTo(host Mounter) error {
	if host == nil {
		return errors.New("admin: missing host router")
	}
	host.Mount(a.mountPattern(), a)
	a.logger.Infow("admin mounted", "base_url", a.mountPattern(), "name", a.routeName)
	return nil
}

// RegisterOn attaches the admin to a standard library style mux, stripping
// the base URL before routing. It returns the registered pattern.
func (a *Admin) RegisterOn(mux Mux) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("admin: missing mux")
	}
	pattern := a.baseURL + "/"
	mux.Handle(pattern, http.StripPrefix(a.baseURL, a))
	return pattern, nil
}

func (a *Admin) mountPattern() string {
	if a.baseURL == "" {
		return "/"
	}
	return a.baseURL
}

// BaseURL returns the mount prefix without a trailing slash.
func (a *Admin) BaseURL() string { return a.baseURL }

// Name returns the admin route name.
func (a *Admin) Name() string { return a.routeName }

// Title returns the admin title.
func (a *Admin) Title() string { return a.title }

// Templates returns the renderer views render with.
func (a *Admin) Templates() template.TemplateRenderer { return a.templates }

// Theme returns the resolved theme, nil when none was configured.
func (a *Admin) Theme() *themes.Theme { return a.theme }

// Navigation returns the top level entries in insertion order.
func (a *Admin) Navigation() []views.Entry {
	return append([]views.Entry(nil), a.nav...)
}

// Routes returns every routed view in registration order.
func (a *Admin) Routes() []Route {
	out := make([]Route, len(a.routes))
	for i, route := range a.routes {
		route.Methods = append([]string(nil), route.Methods...)
		out[i] = route
	}
	return out
}

// URLFor returns the absolute path of the named view.
func (a *Admin) URLFor(name string) (string, error) {
	p, ok := a.names[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	return views.JoinURL(a.baseURL, p), nil
}

// templateURLFor backs the url_for template function. Unknown names render
// as an empty string.
func (a *Admin) templateURLFor(name string) string {
	url, err := a.URLFor(name)
	if err != nil {
		a.logger.Warnw("admin url_for failed", "name", name, "error", err)
		return ""
	}
	return url
}

func (a *Admin) viewHandler(view views.Routable) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := view.Handle(r, a.templates)
		if err == nil && resp == nil {
			err = errors.New("admin: view returned no response")
		}
		if err != nil {
			a.errorHandler(w, r, err)
			return
		}
		if err := resp.Write(w); err != nil {
			a.logger.Warnw("admin write response failed", "path", r.URL.Path, "error", err)
		}
	})
}
