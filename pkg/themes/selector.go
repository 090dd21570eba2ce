package themes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrUnknownTheme is returned by Selector for names it does not hold.
var ErrUnknownTheme = errors.New("themes: unknown theme")

// Selector is an in-memory theme.ThemeSelector over a fixed manifest set. An
// empty name selects the fallback theme; an unknown variant selects the
// manifest without variant overrides.
type Selector struct {
	manifests map[string]*theme.Manifest
	fallback  string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector indexes manifests by name. The first manifest is the fallback.
func NewSelector(manifests ...*theme.Manifest) (*Selector, error) {
	s := &Selector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		name := strings.TrimSpace(manifest.Name)
		if name == "" {
			return nil, errors.New("themes: manifest has no name")
		}
		if _, dup := s.manifests[name]; dup {
			return nil, fmt.Errorf("themes: manifest %q registered twice", name)
		}
		s.manifests[name] = manifest
		if s.fallback == "" {
			s.fallback = name
		}
	}
	return s, nil
}

// Names lists the registered themes in sorted order.
func (s *Selector) Names() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select implements theme.ThemeSelector.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.fallback
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	variant = strings.TrimSpace(variant)
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
