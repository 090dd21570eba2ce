// Package icons normalises view icons. An icon is either a list of CSS
// classes (for example "ti ti-home") or inline SVG markup; markup is
// sanitised before it reaches templates.
package icons

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// Icon is the template facing form of an icon.
type Icon struct {
	Classes string `json:"icon,omitempty"`
	SVG     string `json:"icon_svg,omitempty"`
}

// IsMarkup reports whether raw looks like inline markup rather than classes.
func IsMarkup(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "<")
}

// Parse splits raw into classes or sanitised markup. Markup that sanitises to
// nothing yields an empty Icon.
func Parse(raw string) Icon {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Icon{}
	}
	if !IsMarkup(trimmed) {
		return Icon{Classes: strings.Join(strings.Fields(trimmed), " ")}
	}
	return Icon{SVG: Sanitize(trimmed)}
}

// Sanitize strips everything but a conservative SVG subset from raw.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer().Sanitize(trimmed))
}

func sanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		elements := []string{
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
		}
		policy.AllowElements(elements...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs(
			"href", "xlink:href", "clip-path",
		).OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs")
		policy.AllowAttrs("id").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}
