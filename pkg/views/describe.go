package views

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/goliatone/go-admin/pkg/icons"
)

// Describe projects entry into the map templates see as a view.
func Describe(entry Entry) map[string]any {
	return DescribeUnder(entry, "")
}

// DescribeUnder is Describe with routed paths resolved below baseURL.
func DescribeUnder(entry Entry, baseURL string) map[string]any {
	out := map[string]any{"kind": string(entry.Kind())}

	switch entry.Kind() {
	case KindLink:
		link := entry.(*LinkView)
		out["title"] = link.Title()
		out["url"] = link.URL()
		out["blank"] = link.Blank()
		setIcon(out, link.Icon())
	case KindDropDown:
		dd := entry.(*DropDown)
		out["title"] = dd.Title()
		setIcon(out, dd.Icon())
		children := make([]any, 0, len(dd.children))
		for _, child := range dd.children {
			children = append(children, DescribeUnder(child, baseURL))
		}
		out["views"] = children
	case KindView, KindFormView:
		view := entry.(Routable)
		out["template"] = view.TemplateName()
		cfg, err := view.Config()
		if err != nil {
			break
		}
		out["name"] = cfg.Name
		out["title"] = cfg.DisplayTitle()
		out["path"] = cfg.ResolvedPath()
		out["url"] = JoinURL(baseURL, cfg.ResolvedPath())
		out["submit_button_text"] = cfg.SubmitButtonText
		setIcon(out, cfg.Icon)
	default:
		panic(fmt.Sprintf("views: unknown kind %q", entry.Kind()))
	}
	return out
}

func setIcon(out map[string]any, raw string) {
	icon := icons.Parse(raw)
	out["icon"] = icon.Classes
	out["icon_svg"] = icon.SVG
}

// JoinURL joins a mount prefix and a route path. The root path maps to the
// prefix followed by a slash.
func JoinURL(base, route string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if route == "" || route == "/" {
		return base + "/"
	}
	return path.Join(base+"/", route)
}

// RequestInfo is the template projection of a request.
func RequestInfo(r *http.Request) map[string]any {
	if r == nil {
		return map[string]any{}
	}
	query := map[string]any{}
	if r.URL != nil {
		for key, values := range r.URL.Query() {
			query[key] = append([]string(nil), values...)
		}
	}
	info := map[string]any{
		"method": r.Method,
		"host":   r.Host,
		"query":  query,
	}
	if r.URL != nil {
		info["path"] = r.URL.Path
		info["url"] = r.URL.String()
	}
	return info
}
