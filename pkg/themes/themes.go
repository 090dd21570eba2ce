// Package themes turns go-theme selections into the values admin templates
// render: design tokens, CSS custom properties and asset URLs.
package themes

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme is a selection with its variant merged in.
type Theme struct {
	Name        string
	Variant     string
	Tokens      map[string]string
	CSSVars     map[string]string
	Partials    map[string]string
	AssetPrefix string
	AssetFiles  map[string]string
}

// Resolve asks selector for name/variant and flattens the selection.
func Resolve(selector theme.ThemeSelector, name, variant string) (*Theme, error) {
	if selector == nil {
		return nil, errors.New("themes: selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("themes: select %q/%q: %w", name, variant, err)
	}
	return FromSelection(selection)
}

// FromSelection merges the manifest with its selected variant. Variant tokens,
// templates and asset files win over the manifest's.
func FromSelection(selection *theme.Selection) (*Theme, error) {
	if selection == nil || selection.Manifest == nil {
		return nil, errors.New("themes: selection has no manifest")
	}
	manifest := selection.Manifest

	out := &Theme{
		Name:        selection.Theme,
		Variant:     selection.Variant,
		Tokens:      mergeStrings(manifest.Tokens, nil),
		Partials:    mergeStrings(manifest.Templates, nil),
		AssetPrefix: manifest.Assets.Prefix,
		AssetFiles:  mergeStrings(manifest.Assets.Files, nil),
	}
	if out.Name == "" {
		out.Name = manifest.Name
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		out.Tokens = mergeStrings(out.Tokens, variant.Tokens)
		out.Partials = mergeStrings(out.Partials, variant.Templates)
		out.AssetFiles = mergeStrings(out.AssetFiles, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			out.AssetPrefix = variant.Assets.Prefix
		}
	}
	out.CSSVars = CSSVars(out.Tokens)
	return out, nil
}

// AssetURL resolves an asset key against the theme prefix. Absolute paths and
// URLs are returned unchanged; unknown keys resolve to "".
func (t *Theme) AssetURL(key string) string {
	file, ok := t.AssetFiles[key]
	if !ok || file == "" {
		return ""
	}
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
		return file
	}
	prefix := strings.TrimRight(t.AssetPrefix, "/")
	if prefix == "" {
		return file
	}
	return path.Join(prefix, file)
}

// RendererConfig exposes the theme in go-theme's renderer form.
func (t *Theme) RendererConfig() *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme:    t.Name,
		Variant:  t.Variant,
		Partials: mergeStrings(t.Partials, nil),
		Tokens:   mergeStrings(t.Tokens, nil),
		CSSVars:  mergeStrings(t.CSSVars, nil),
		AssetURL: t.AssetURL,
	}
}

// TemplateContext is the map exposed to templates as the theme global.
func (t *Theme) TemplateContext() map[string]any {
	assets := make(map[string]any, len(t.AssetFiles))
	for key := range t.AssetFiles {
		if url := t.AssetURL(key); url != "" {
			assets[key] = url
		}
	}
	return map[string]any{
		"name":           t.Name,
		"variant":        t.Variant,
		"tokens":         toAnyMap(t.Tokens),
		"css_vars":       toAnyMap(t.CSSVars),
		"css_vars_style": CSSVarsStyle(t.CSSVars),
		"partials":       toAnyMap(t.Partials),
		"assets":         assets,
	}
}

// CSSVars derives custom properties from tokens: "color.brand" becomes
// "--color-brand".
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		name = strings.ReplaceAll(name, ".", "-")
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

// CSSVarsStyle renders vars as a :root rule with sorted declarations.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}

func toAnyMap(in map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
