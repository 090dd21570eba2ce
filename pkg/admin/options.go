package admin

import (
	"io/fs"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-admin/pkg/config"
	"github.com/goliatone/go-admin/pkg/logging"
	"github.com/goliatone/go-admin/pkg/render/template"
	"github.com/goliatone/go-admin/pkg/ui"
	"github.com/goliatone/go-admin/pkg/views"
)

// Option configures a Builder.
type Option func(*settings)

type settings struct {
	baseURL   string
	routeName string
	title     string
	debug     bool

	templateDirs []string
	templateFS   []fs.FS
	renderer     template.TemplateRenderer
	statics      fs.FS
	preHooks     []gotemplatepkg.PreHook
	postHooks    []gotemplatepkg.PostHook

	logger       logging.Logger
	errorHandler ErrorHandler

	index   views.Routable
	noIndex bool
	links   []config.Link

	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
}

func defaultSettings() settings {
	def := config.Default()
	return settings{
		baseURL:   def.BaseURL,
		routeName: def.RouteName,
		title:     def.Title,
		statics:   ui.StaticFS(),
		logger:    logging.Nop(),
	}
}

// WithConfig applies loaded settings. Links become LinkView entries added
// after the index view.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		if cfg.BaseURL != "" {
			s.baseURL = cfg.BaseURL
		}
		if cfg.RouteName != "" {
			s.routeName = cfg.RouteName
		}
		if cfg.Title != "" {
			s.title = cfg.Title
		}
		s.debug = cfg.Debug
		if cfg.TemplatesDir != "" {
			s.templateDirs = append(s.templateDirs, cfg.TemplatesDir)
		}
		if cfg.Theme.Name != "" {
			s.themeName = cfg.Theme.Name
		}
		if cfg.Theme.Variant != "" {
			s.themeVariant = cfg.Theme.Variant
		}
		s.links = append(s.links, cfg.Links...)
	}
}

// WithBaseURL sets the mount prefix. Defaults to /admin.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			s.baseURL = trimmed
		}
	}
}

// WithTitle sets the panel title shown in navigation and on the index page.
func WithTitle(title string) Option {
	return func(s *settings) { s.title = title }
}

// WithRouteName sets the name templates see as admin_name.
func WithRouteName(name string) Option {
	return func(s *settings) { s.routeName = name }
}

// WithDebug exposes internal error messages on error pages.
func WithDebug(debug bool) Option {
	return func(s *settings) { s.debug = debug }
}

// WithTemplatesDir searches dir before the built-in templates.
func WithTemplatesDir(dir string) Option {
	return func(s *settings) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			s.templateDirs = append(s.templateDirs, trimmed)
		}
	}
}

// WithTemplateFS searches fsys before the built-in templates and after any
// template directory.
func WithTemplateFS(fsys fs.FS) Option {
	return func(s *settings) {
		if fsys != nil {
			s.templateFS = append(s.templateFS, fsys)
		}
	}
}

// WithRenderer replaces the pongo2 engine. Template options are ignored and
// filters are registered on the renderer at build time.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(s *settings) { s.renderer = renderer }
}

// WithTemplatePreHooks runs hooks before every page render of the built-in
// engine. Ignored when WithRenderer is used.
func WithTemplatePreHooks(hooks ...gotemplatepkg.PreHook) Option {
	return func(s *settings) { s.preHooks = append(s.preHooks, hooks...) }
}

// WithTemplatePostHooks runs hooks over every page rendered by the built-in
// engine, for example templatehooks.RemoveTrailingWhitespaceHook. Ignored
// when WithRenderer is used.
func WithTemplatePostHooks(hooks ...gotemplatepkg.PostHook) Option {
	return func(s *settings) { s.postHooks = append(s.postHooks, hooks...) }
}

// WithStaticFS replaces the assets served under /statics.
func WithStaticFS(fsys fs.FS) Option {
	return func(s *settings) {
		if fsys != nil {
			s.statics = fsys
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithErrorHandler replaces the handler for errors returned by views.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(s *settings) { s.errorHandler = handler }
}

// WithIndexView replaces the default index page.
func WithIndexView(view views.Routable) Option {
	return func(s *settings) {
		s.index = view
		s.noIndex = view == nil
	}
}

// WithoutIndex skips the default index page.
func WithoutIndex() Option {
	return func(s *settings) {
		s.index = nil
		s.noIndex = true
	}
}

// WithTheme resolves a go-theme selection at build time and exposes it to
// templates as theme. Empty name and variant fall back to WithConfig values.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(s *settings) {
		s.themeSelector = selector
		if name != "" {
			s.themeName = name
		}
		if variant != "" {
			s.themeVariant = variant
		}
	}
}

// AddOption configures a single AddView call.
type AddOption func(*addSettings)

type addSettings struct {
	listed bool
}

// Unlisted registers the entry without a top level navigation item.
func Unlisted() AddOption {
	return func(s *addSettings) { s.listed = false }
}
