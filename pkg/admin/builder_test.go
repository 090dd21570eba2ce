package admin

import (
	"errors"
	"net/http"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-admin/pkg/config"
	"github.com/goliatone/go-admin/pkg/testsupport"
	"github.com/goliatone/go-admin/pkg/views"
)

func newTestBuilder(t *testing.T, opts ...Option) (*Builder, *testsupport.RecordingRenderer) {
	t.Helper()
	renderer := &testsupport.RecordingRenderer{}
	base := []Option{WithRenderer(renderer), WithoutIndex()}
	return New(append(base, opts...)...), renderer
}

func page(name, path string) *views.View {
	return views.NewView(views.Spec{
		Config:   &views.Config{Name: name, Title: name, Path: path},
		Template: name + ".tpl",
	})
}

// chiRoutes lists "METHOD path" for every route on the builder router.
func chiRoutes(t *testing.T, b *Builder) []string {
	t.Helper()
	var out []string
	err := chi.Walk(b.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		out = append(out, method+" "+route)
		return nil
	})
	if err != nil {
		t.Fatalf("walk routes: %v", err)
	}
	sort.Strings(out)
	return out
}

func routeNames(routes []Route) []string {
	names := make([]string, 0, len(routes))
	for _, route := range routes {
		names = append(names, route.Name)
	}
	return names
}

func TestAddView_RegistersGetAndPost(t *testing.T) {
	b, _ := newTestBuilder(t)
	if err := b.AddView(page("users", "/users")); err != nil {
		t.Fatalf("add view: %v", err)
	}

	want := []string{"GET /users", "POST /users"}
	if diff := cmp.Diff(want, chiRoutes(t, b)); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
	if len(b.nav) != 1 {
		t.Fatalf("expected 1 navigation entry, got %d", len(b.nav))
	}
}

func TestAddView_DuplicatePathRejected(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.MustAddView(page("users", "/users"))

	err := b.AddView(page("people", "/users"))
	if !errors.Is(err, ErrPathReserved) {
		t.Fatalf("expected ErrPathReserved, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.View != "people" || cfgErr.Path != "/users" {
		t.Fatalf("expected ConfigError for people, got %#v", err)
	}

	if diff := cmp.Diff([]string{"users"}, routeNames(b.routes)); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"GET /users", "POST /users"}, chiRoutes(t, b)); diff != "" {
		t.Fatalf("router mismatch (-want +got):\n%s", diff)
	}
	if len(b.nav) != 1 {
		t.Fatalf("rejected view must not be listed, got %d entries", len(b.nav))
	}
}

func TestAddView_EmptyPathIsRoot(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.MustAddView(page("home", ""))
	if err := b.AddView(page("other", "/")); !errors.Is(err, ErrPathReserved) {
		t.Fatalf("expected ErrPathReserved for second root view, got %v", err)
	}
}

func TestAddView_MissingConfigOrTemplateRegistersNothing(t *testing.T) {
	cases := []struct {
		name  string
		entry views.Entry
		want  error
	}{
		{
			name:  "missing config",
			entry: views.NewView(views.Spec{Template: "x.tpl"}),
			want:  ErrMissingConfig,
		},
		{
			name:  "missing name",
			entry: views.NewView(views.Spec{Config: &views.Config{Path: "/x"}, Template: "x.tpl"}),
			want:  ErrMissingConfig,
		},
		{
			name:  "missing template",
			entry: views.NewView(views.Spec{Config: &views.Config{Name: "x", Path: "/x"}}),
			want:  ErrMissingTemplate,
		},
		{
			name:  "form without config",
			entry: views.NewForm(views.FormSpec[struct{}]{}),
			want:  ErrMissingConfig,
		},
		{
			name:  "nil entry",
			entry: nil,
			want:  ErrMissingConfig,
		},
		{
			name:  "typed nil view",
			entry: (*views.View)(nil),
			want:  ErrMissingConfig,
		},
		{
			name:  "typed nil form",
			entry: (*views.FormView[struct{}])(nil),
			want:  ErrMissingConfig,
		},
		{
			name:  "typed nil link",
			entry: (*views.LinkView)(nil),
			want:  ErrMissingConfig,
		},
		{
			name:  "typed nil dropdown",
			entry: (*views.DropDown)(nil),
			want:  ErrMissingConfig,
		},
		{
			name:  "typed nil dropdown child",
			entry: views.NewDropDown("Tools", "", (*views.View)(nil)),
			want:  ErrMissingConfig,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newTestBuilder(t)
			err := b.AddView(tc.entry)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if routes := chiRoutes(t, b); len(routes) != 0 {
				t.Fatalf("expected no routes, got %v", routes)
			}
			if len(b.nav) != 0 || len(b.routes) != 0 {
				t.Fatalf("expected untouched builder, got nav=%d routes=%d", len(b.nav), len(b.routes))
			}
		})
	}
}

func TestAddView_ValidationOrder(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.MustAddView(page("users", "/users"))

	// Reserved path wins over the missing template.
	noTemplate := views.NewView(views.Spec{Config: &views.Config{Name: "x", Path: "/users"}})
	if err := b.AddView(noTemplate); !errors.Is(err, ErrPathReserved) {
		t.Fatalf("expected ErrPathReserved, got %v", err)
	}

	// Missing template wins over the reserved name.
	sameName := views.NewView(views.Spec{Config: &views.Config{Name: "users", Path: "/people"}})
	if err := b.AddView(sameName); !errors.Is(err, ErrMissingTemplate) {
		t.Fatalf("expected ErrMissingTemplate, got %v", err)
	}

	if err := b.AddView(page("users", "/people")); !errors.Is(err, ErrNameReserved) {
		t.Fatalf("expected ErrNameReserved, got %v", err)
	}
}

func TestAddView_StaticsPathReserved(t *testing.T) {
	b, _ := newTestBuilder(t)
	for _, path := range []string{"/statics", "/statics/app.css"} {
		if err := b.AddView(page("s", path)); !errors.Is(err, ErrPathReserved) {
			t.Fatalf("%s: expected ErrPathReserved, got %v", path, err)
		}
	}
}

func TestAddView_DropDownRegistersChildrenUnlisted(t *testing.T) {
	b, _ := newTestBuilder(t)
	dd := views.NewDropDown("People", "ti ti-users",
		page("users", "/users"),
		page("groups", "/groups"),
		page("roles", "/roles"),
	)
	if err := b.AddView(dd); err != nil {
		t.Fatalf("add dropdown: %v", err)
	}

	if diff := cmp.Diff([]string{"users", "groups", "roles"}, routeNames(b.routes)); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
	if len(chiRoutes(t, b)) != 6 {
		t.Fatalf("expected GET and POST for 3 children, got %v", chiRoutes(t, b))
	}
	if len(b.nav) != 1 || b.nav[0] != views.Entry(dd) {
		t.Fatalf("expected the dropdown as the only navigation entry, got %v", b.nav)
	}
}

func TestAddView_NestedDropDownRejected(t *testing.T) {
	b, _ := newTestBuilder(t)
	inner := views.NewDropDown("Inner", "", page("a", "/a"))
	outer := views.NewDropDown("Outer", "", page("b", "/b"), inner)

	err := b.AddView(outer)
	if !errors.Is(err, ErrNestedDropDown) {
		t.Fatalf("expected ErrNestedDropDown, got %v", err)
	}
	if len(b.routes) != 0 || len(chiRoutes(t, b)) != 0 {
		t.Fatalf("expected nothing registered, got %v", chiRoutes(t, b))
	}
}

func TestAddView_DropDownIsAtomic(t *testing.T) {
	cases := map[string]*views.DropDown{
		"invalid child": views.NewDropDown("Broken", "",
			page("ok", "/ok"),
			views.NewView(views.Spec{Config: &views.Config{Name: "bad", Path: "/bad"}}),
		),
		"siblings share a path": views.NewDropDown("Clash", "",
			page("first", "/same"),
			page("second", "/same"),
		),
		"siblings share a name": views.NewDropDown("Clash", "",
			page("twin", "/one"),
			page("twin", "/two"),
		),
	}

	for name, dd := range cases {
		t.Run(name, func(t *testing.T) {
			b, _ := newTestBuilder(t)
			if err := b.AddView(dd); err == nil {
				t.Fatalf("expected error")
			}
			if len(b.routes) != 0 || len(b.nav) != 0 || len(chiRoutes(t, b)) != 0 {
				t.Fatalf("expected no partial registration, got routes=%v nav=%d", chiRoutes(t, b), len(b.nav))
			}
			if len(b.paths) != 0 || len(b.names) != 0 {
				t.Fatalf("expected no reservations, got %v %v", b.paths, b.names)
			}
		})
	}
}

func TestAddView_LinksAreNeverRouted(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.MustAddView(page("users", "/users"))

	links := []views.Entry{
		views.NewLink("Docs", "https://x"),
		views.NewLink("Docs again", "https://x"),
		views.NewLink("Users shortcut", "/users"),
	}
	for _, link := range links {
		if err := b.AddView(link); err != nil {
			t.Fatalf("add link: %v", err)
		}
	}

	if diff := cmp.Diff([]string{"GET /users", "POST /users"}, chiRoutes(t, b)); diff != "" {
		t.Fatalf("links must not add routes (-want +got):\n%s", diff)
	}
	if len(b.nav) != 4 {
		t.Fatalf("expected 4 navigation entries, got %d", len(b.nav))
	}
}

func TestAddView_Unlisted(t *testing.T) {
	b, _ := newTestBuilder(t)
	if err := b.AddView(page("hidden", "/hidden"), Unlisted()); err != nil {
		t.Fatalf("add view: %v", err)
	}
	if len(b.nav) != 0 || len(b.routes) != 1 {
		t.Fatalf("expected routed but unlisted view, got nav=%d routes=%d", len(b.nav), len(b.routes))
	}
}

func TestMustAddView_Panics(t *testing.T) {
	b, _ := newTestBuilder(t)
	defer func() {
		recovered := recover()
		err, ok := recovered.(error)
		if !ok || !errors.Is(err, ErrMissingTemplate) {
			t.Fatalf("expected panic with ErrMissingTemplate, got %v", recovered)
		}
	}()
	b.MustAddView(views.NewView(views.Spec{Config: &views.Config{Name: "x"}}))
}

func TestNew_DefaultIndexView(t *testing.T) {
	b := New(WithRenderer(&testsupport.RecordingRenderer{}), WithTitle("Ops"))

	if len(b.nav) != 1 {
		t.Fatalf("expected index in navigation, got %d entries", len(b.nav))
	}
	index := b.nav[0].(views.Routable)
	cfg, err := index.Config()
	if err != nil {
		t.Fatalf("index config: %v", err)
	}
	want := views.Config{Name: IndexViewName, Title: "Ops", Path: "/"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("index config mismatch (-want +got):\n%s", diff)
	}
	if err := b.AddView(page("home", "/")); !errors.Is(err, ErrPathReserved) {
		t.Fatalf("expected root to be reserved by the index view, got %v", err)
	}
}

func TestNew_CustomIndexView(t *testing.T) {
	custom := page("dashboard", "/")
	b := New(WithRenderer(&testsupport.RecordingRenderer{}), WithIndexView(custom))
	if diff := cmp.Diff([]string{"dashboard"}, routeNames(b.routes)); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_ConfigLinks(t *testing.T) {
	cfg := config.Default()
	cfg.Links = []config.Link{{Title: "Docs", URL: "https://example.com", Blank: true}}
	b := New(WithRenderer(&testsupport.RecordingRenderer{}), WithConfig(cfg))

	if len(b.nav) != 2 {
		t.Fatalf("expected index and link, got %d entries", len(b.nav))
	}
	link, ok := b.nav[1].(*views.LinkView)
	if !ok || link.URL() != "https://example.com" || !link.Blank() {
		t.Fatalf("unexpected link entry %#v", b.nav[1])
	}
}

func TestBuild_Freezes(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.MustAddView(page("users", "/users"))
	if _, err := b.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	if err := b.AddView(page("late", "/late")); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen on second build, got %v", err)
	}
}
