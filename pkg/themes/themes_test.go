package themes

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":         "#123456",
			"color.surface": "#ffffff",
		},
		Templates: map[string]string{
			"partials/nav.tpl": "themes/acme/nav.tpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
				"logo":       "https://cdn.example.com/logo.svg",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"stylesheet": "theme.dark.css",
					},
				},
			},
		},
	}
}

type stubSelector struct {
	selection *theme.Selection
	err       error
	calls     [][2]string
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, [2]string{name, variant})
	return s.selection, s.err
}

func TestResolveMergesVariant(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: acmeManifest()}}

	got, err := Resolve(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff([][2]string{{"acme", "dark"}}, selector.calls); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}

	wantTokens := map[string]string{"brand": "#654321", "color.surface": "#ffffff"}
	if diff := cmp.Diff(wantTokens, got.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	wantVars := map[string]string{"--brand": "#654321", "--color-surface": "#ffffff"}
	if diff := cmp.Diff(wantVars, got.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if url := got.AssetURL("stylesheet"); url != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("unexpected stylesheet url %q", url)
	}
	if url := got.AssetURL("logo"); url != "https://cdn.example.com/logo.svg" {
		t.Fatalf("unexpected logo url %q", url)
	}
	if url := got.AssetURL("missing"); url != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", url)
	}
}

func TestResolvePropagatesSelectorError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := Resolve(&stubSelector{err: boom}, "x", ""); !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}
	if _, err := Resolve(nil, "x", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := CSSVarsStyle(map[string]string{"--b": "2", "--a": "1"})
	want := ":root {\n--a: 1;\n--b: 2;\n}"
	if got != want {
		t.Fatalf("unexpected style %q", got)
	}
	if CSSVarsStyle(nil) != "" {
		t.Fatalf("expected empty style for no vars")
	}
}

func TestTemplateContext(t *testing.T) {
	resolved, err := FromSelection(&theme.Selection{Theme: "acme", Manifest: acmeManifest()})
	if err != nil {
		t.Fatalf("from selection: %v", err)
	}
	ctx := resolved.TemplateContext()

	if ctx["name"] != "acme" || ctx["variant"] != "" {
		t.Fatalf("unexpected identity %v/%v", ctx["name"], ctx["variant"])
	}
	assets := ctx["assets"].(map[string]any)
	if assets["stylesheet"] != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected assets %v", assets)
	}
	if ctx["css_vars_style"] == "" {
		t.Fatalf("expected css vars style")
	}

	cfg := resolved.RendererConfig()
	if cfg.Theme != "acme" || cfg.CSSVars["--brand"] != "#123456" || cfg.AssetURL("stylesheet") != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected renderer config %+v", cfg)
	}
}

func TestSelector(t *testing.T) {
	other := &theme.Manifest{Name: "plain", Version: "0.1.0"}
	selector, err := NewSelector(acmeManifest(), other)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	if diff := cmp.Diff([]string{"acme", "plain"}, selector.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	sel, err := selector.Select("", "dark")
	if err != nil {
		t.Fatalf("select fallback: %v", err)
	}
	if sel.Theme != "acme" || sel.Variant != "dark" {
		t.Fatalf("unexpected fallback selection %s/%s", sel.Theme, sel.Variant)
	}

	sel, err = selector.Select("plain", "dark")
	if err != nil {
		t.Fatalf("select plain: %v", err)
	}
	if sel.Variant != "" {
		t.Fatalf("expected unknown variant to be dropped, got %q", sel.Variant)
	}

	if _, err := selector.Select("missing", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := NewSelector(acmeManifest(), acmeManifest()); err == nil {
		t.Fatalf("expected duplicate manifest error")
	}
}
