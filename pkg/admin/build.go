package admin

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-admin/pkg/render/template"
	"github.com/goliatone/go-admin/pkg/render/template/gotemplate"
	"github.com/goliatone/go-admin/pkg/themes"
	"github.com/goliatone/go-admin/pkg/ui"
	"github.com/goliatone/go-admin/pkg/views"
)

// TemplateExtension is the file extension of admin templates.
const TemplateExtension = ".tpl"

// Build freezes the builder. The returned Admin serves every registered view
// and the bundled statics; later AddView calls fail with ErrFrozen.
func (b *Builder) Build() (*Admin, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	s := b.settings

	globals := map[string]any{
		"views":       b.navigation(),
		"admin_name":  s.routeName,
		"admin_title": s.title,
		"base_url":    s.baseURL,
		"statics_url": s.baseURL + StaticsPath,
	}
	if s.themeSelector != nil {
		resolved, err := themes.Resolve(s.themeSelector, s.themeName, s.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("admin: theme: %w", err)
		}
		globals["theme"] = resolved.TemplateContext()
		b.app.theme = resolved
	}

	renderer, err := b.renderer(globals)
	if err != nil {
		return nil, err
	}

	b.router.Get(StaticsPath+"/*", staticsHandler(s.statics))

	b.frozen = true
	b.app.templates = renderer
	b.app.nav = append([]views.Entry(nil), b.nav...)
	b.app.routes = append([]Route(nil), b.routes...)
	b.app.names = make(map[string]string, len(b.names))
	for name, p := range b.names {
		b.app.names[name] = p
	}
	b.app.errorHandler = s.errorHandler
	if b.app.errorHandler == nil {
		b.app.errorHandler = b.app.defaultErrorHandler
	}

	s.logger.Infow("admin built",
		"base_url", s.baseURL,
		"routes", len(b.routes),
		"navigation", len(b.nav),
	)
	return b.app, nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *Admin {
	app, err := b.Build()
	if err != nil {
		panic(err)
	}
	return app
}

// renderer returns the configured renderer with globals and filters
// applied, or builds the pongo2 engine over the template search path.
func (b *Builder) renderer(globals map[string]any) (template.TemplateRenderer, error) {
	s := b.settings
	if s.renderer != nil {
		for name, fn := range Filters() {
			if err := s.renderer.RegisterFilter(name, fn); err != nil {
				s.logger.Debugw("admin filter not registered", "filter", name, "error", err)
			}
		}
		withFuncs := make(map[string]any, len(globals)+1)
		for key, value := range globals {
			withFuncs[key] = value
		}
		withFuncs["url_for"] = b.app.templateURLFor
		if err := s.renderer.GlobalContext(withFuncs); err != nil {
			return nil, fmt.Errorf("admin: template globals: %w", err)
		}
		return s.renderer, nil
	}

	opts := make([]gotemplate.Option, 0, len(s.templateDirs)+7)
	for _, dir := range s.templateDirs {
		opts = append(opts, gotemplate.WithBaseDir(dir))
	}
	opts = append(opts,
		gotemplate.WithFS(s.templateFS...),
		gotemplate.WithFS(ui.TemplatesFS()),
		gotemplate.WithExtension(TemplateExtension),
		gotemplate.WithFilters(Filters()),
		gotemplate.WithGlobalData(globals),
		gotemplate.WithTemplateFunc(map[string]any{"url_for": b.app.templateURLFor}),
		gotemplate.WithPreHooks(s.preHooks...),
		gotemplate.WithPostHooks(s.postHooks...),
	)
	engine, err := gotemplate.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("admin: template engine: %w", err)
	}
	return engine, nil
}

func (b *Builder) navigation() []any {
	out := make([]any, 0, len(b.nav))
	for _, entry := range b.nav {
		out = append(out, views.DescribeUnder(entry, b.settings.baseURL))
	}
	return out
}

func staticsHandler(fsys fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
		if name == "" || name == "." {
			http.NotFound(w, r)
			return
		}
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			http.NotFound(w, r)
			return
		}
		http.ServeFileFS(w, r, fsys, name)
	}
}
