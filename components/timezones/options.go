package timezones

import "net/http"

// EmptySearchMode decides what an empty query returns.
type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

// GuardFunc authorises a request. Errors carrying a StatusCode set the
// response status, anything else is a 403.
type GuardFunc func(r *http.Request) error

// Options configures the component.
type Options struct {
	// ViewName, ViewTitle and ViewPath identify the search view.
	ViewName  string
	ViewTitle string
	ViewPath  string

	// RoutePath is where the JSON endpoint mounts below a base path.
	RoutePath   string
	SearchParam string
	LimitParam  string

	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Zones replaces the embedded list when set.
	Zones []string
}

// OptionFn customises Options.
type OptionFn func(*Options)

// DefaultOptions returns the settings used without overrides.
func DefaultOptions() Options {
	return Options{
		ViewName:        "timezones",
		ViewTitle:       "Time zones",
		ViewPath:        "/timezones",
		RoutePath:       "/api/timezones",
		SearchParam:     "q",
		LimitParam:      "limit",
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchNone,
	}
}

// NewOptions applies fns over the defaults and restores any setting left
// empty.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	return opts.normalized()
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.ViewName == "" {
		o.ViewName = def.ViewName
	}
	if o.ViewTitle == "" {
		o.ViewTitle = def.ViewTitle
	}
	if o.ViewPath == "" {
		o.ViewPath = def.ViewPath
	}
	if o.RoutePath == "" {
		o.RoutePath = def.RoutePath
	}
	if o.SearchParam == "" {
		o.SearchParam = def.SearchParam
	}
	if o.LimitParam == "" {
		o.LimitParam = def.LimitParam
	}
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = def.DefaultLimit
	}
	if o.MaxLimit <= 0 {
		o.MaxLimit = def.MaxLimit
	}
	if o.EmptySearchMode == "" {
		o.EmptySearchMode = def.EmptySearchMode
	}
	if o.Zones != nil {
		o.Zones = append([]string(nil), o.Zones...)
	}
	return o
}

// zones returns the configured list or the embedded one.
func (o Options) zones() ([]string, error) {
	if o.Zones != nil {
		return o.Zones, nil
	}
	return DefaultZones()
}

// WithView sets the search view identity.
func WithView(name, title, path string) OptionFn {
	return func(o *Options) {
		o.ViewName, o.ViewTitle, o.ViewPath = name, title, path
	}
}

// WithRoutePath sets the JSON endpoint path.
func WithRoutePath(path string) OptionFn {
	return func(o *Options) { o.RoutePath = path }
}

// WithSearchParam renames the query parameter.
func WithSearchParam(name string) OptionFn {
	return func(o *Options) { o.SearchParam = name }
}

// WithLimitParam renames the limit parameter.
func WithLimitParam(name string) OptionFn {
	return func(o *Options) { o.LimitParam = name }
}

// WithDefaultLimit sets the limit used when a request gives none.
func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) { o.DefaultLimit = limit }
}

// WithMaxLimit caps requested limits.
func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) { o.MaxLimit = limit }
}

// WithEmptySearchMode sets what an empty query returns.
func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) { o.EmptySearchMode = mode }
}

// WithGuard authorises every search.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) { o.Guard = guard }
}

// WithZones replaces the embedded zone list.
func WithZones(zones []string) OptionFn {
	return func(o *Options) {
		if zones == nil {
			o.Zones = nil
			return
		}
		o.Zones = append([]string(nil), zones...)
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
