package admin

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-admin/pkg/ui"
	"github.com/goliatone/go-admin/pkg/views"
)

// StaticsPath is the route prefix of bundled assets. Views cannot use it.
const StaticsPath = "/statics"

// IndexViewName names the default index view.
const IndexViewName = "index"

// Route describes one registered view route.
type Route struct {
	Name    string
	Path    string
	Kind    views.Kind
	Methods []string
}

var routeMethods = []string{http.MethodGet, http.MethodPost}

// Builder collects views during setup. It is not safe for concurrent use.
type Builder struct {
	settings settings
	app      *Admin
	router   chi.Router

	nav    []views.Entry
	paths  map[string]string
	names  map[string]string
	routes []Route
	frozen bool
}

// New returns a builder with the index view and any configured links
// already added.
func New(opts ...Option) *Builder {
	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	s.baseURL = normalizeBaseURL(s.baseURL)

	b := &Builder{
		settings: s,
		router:   chi.NewRouter(),
		paths:    map[string]string{},
		names:    map[string]string{},
	}
	b.app = &Admin{
		baseURL:   s.baseURL,
		routeName: s.routeName,
		title:     s.title,
		debug:     s.debug,
		logger:    s.logger,
		router:    b.router,
	}

	if !s.noIndex {
		index := s.index
		if index == nil {
			index = views.NewView(views.Spec{
				Config:   &views.Config{Name: IndexViewName, Title: s.title, Path: "/"},
				Template: ui.IndexTemplate,
			})
		}
		b.MustAddView(index)
	}
	for _, link := range s.links {
		opts := []views.LinkOption{views.LinkIcon(link.Icon)}
		if link.Blank {
			opts = append(opts, views.OpenInNewTab())
		}
		b.MustAddView(views.NewLink(link.Title, link.URL, opts...))
	}
	return b
}

// AddView validates entry and registers it. Dropdown children are validated
// together before any of them is registered, then added unlisted in order.
// Validation failures are *ConfigError values and leave the builder unchanged.
func (b *Builder) AddView(entry views.Entry, opts ...AddOption) error {
	if b.frozen {
		return ErrFrozen
	}
	if isNilEntry(entry) {
		return &ConfigError{Err: ErrMissingConfig}
	}

	add := addSettings{listed: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&add)
		}
	}

	if err := b.validate(entry, newReservations()); err != nil {
		b.settings.logger.Warnw("admin view rejected", "kind", string(entry.Kind()), "error", err)
		return err
	}
	b.add(entry, add.listed)
	return nil
}

// MustAddView is AddView that panics on error. Configuration errors are
// programmer errors and setup code usually wants to stop.
func (b *Builder) MustAddView(entry views.Entry, opts ...AddOption) {
	if err := b.AddView(entry, opts...); err != nil {
		panic(err)
	}
}

// AddViews adds entries in order, stopping at the first error.
func (b *Builder) AddViews(entries ...views.Entry) error {
	for _, entry := range entries {
		if err := b.AddView(entry); err != nil {
			return err
		}
	}
	return nil
}

// reservations tracks paths and names claimed by entries validated in the
// same AddView call.
type reservations struct {
	paths map[string]struct{}
	names map[string]struct{}
}

func newReservations() reservations {
	return reservations{paths: map[string]struct{}{}, names: map[string]struct{}{}}
}

// isNilEntry also catches typed nil pointers such as (*views.View)(nil).
func isNilEntry(entry views.Entry) bool {
	if entry == nil {
		return true
	}
	rv := reflect.ValueOf(entry)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func (b *Builder) validate(entry views.Entry, pending reservations) error {
	if isNilEntry(entry) {
		return &ConfigError{Err: ErrMissingConfig}
	}

	switch entry.Kind() {
	case views.KindLink:
		return nil
	case views.KindDropDown:
		dd := entry.(*views.DropDown)
		children := dd.Views()
		for _, child := range children {
			if !isNilEntry(child) && child.Kind() == views.KindDropDown {
				return &ConfigError{View: dd.Title(), Err: ErrNestedDropDown}
			}
		}
		for _, child := range children {
			if err := b.validate(child, pending); err != nil {
				return err
			}
		}
		return nil
	case views.KindView, views.KindFormView:
		return b.validateRoutable(entry.(views.Routable), pending)
	default:
		panic(fmt.Sprintf("admin: unknown view kind %q", entry.Kind()))
	}
}

func (b *Builder) validateRoutable(view views.Routable, pending reservations) error {
	cfg, err := view.Config()
	if err != nil {
		return &ConfigError{Err: fmt.Errorf("%w: %w", ErrMissingConfig, err)}
	}
	if cfg.Name == "" {
		return &ConfigError{Path: cfg.ResolvedPath(), Err: fmt.Errorf("%w: name is empty", ErrMissingConfig)}
	}

	path := cfg.ResolvedPath()
	if b.pathReserved(path, pending) {
		return &ConfigError{View: cfg.Name, Path: path, Err: ErrPathReserved}
	}
	if strings.TrimSpace(view.TemplateName()) == "" {
		return &ConfigError{View: cfg.Name, Path: path, Err: ErrMissingTemplate}
	}
	if _, taken := b.names[cfg.Name]; taken {
		return &ConfigError{View: cfg.Name, Path: path, Err: ErrNameReserved}
	}
	if _, taken := pending.names[cfg.Name]; taken {
		return &ConfigError{View: cfg.Name, Path: path, Err: ErrNameReserved}
	}

	pending.paths[path] = struct{}{}
	pending.names[cfg.Name] = struct{}{}
	return nil
}

func (b *Builder) pathReserved(path string, pending reservations) bool {
	if path == StaticsPath || strings.HasPrefix(path, StaticsPath+"/") {
		return true
	}
	if _, taken := b.paths[path]; taken {
		return true
	}
	_, taken := pending.paths[path]
	return taken
}

func (b *Builder) add(entry views.Entry, listed bool) {
	switch entry.Kind() {
	case views.KindDropDown:
		for _, child := range entry.(*views.DropDown).Views() {
			b.add(child, false)
		}
	case views.KindView, views.KindFormView:
		b.register(entry.(views.Routable))
	case views.KindLink:
	default:
		panic(fmt.Sprintf("admin: unknown view kind %q", entry.Kind()))
	}

	if listed {
		b.nav = append(b.nav, entry)
	}
}

func (b *Builder) register(view views.Routable) {
	cfg, _ := view.Config()
	path := cfg.ResolvedPath()

	handler := b.app.viewHandler(view)
	for _, method := range routeMethods {
		b.router.Method(method, path, handler)
	}

	b.paths[path] = cfg.Name
	b.names[cfg.Name] = path
	b.routes = append(b.routes, Route{
		Name:    cfg.Name,
		Path:    path,
		Kind:    view.Kind(),
		Methods: append([]string(nil), routeMethods...),
	})
	b.settings.logger.Debugw("admin view registered",
		"name", cfg.Name,
		"path", path,
		"kind", string(view.Kind()),
		"template", view.TemplateName(),
	)
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" || baseURL == "/" {
		return ""
	}
	if !strings.HasPrefix(baseURL, "/") {
		baseURL = "/" + baseURL
	}
	return strings.TrimRight(baseURL, "/")
}
