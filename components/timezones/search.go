package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-admin/pkg/fields"
)

// Search returns zones containing query, case insensitive. Zones starting
// with the query sort first, then by name. The limit is clamped by opts.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode != EmptySearchTop {
			return nil
		}
		if len(zones) > limit {
			zones = zones[:limit]
		}
		return append([]string(nil), zones...)
	}

	q := strings.ToLower(query)
	matches := make([]match, 0, 16)
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		if !strings.Contains(lower, q) {
			continue
		}
		matches = append(matches, match{zone: zone, prefix: strings.HasPrefix(lower, q)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].prefix != matches[j].prefix {
			return matches[i].prefix
		}
		return matches[i].zone < matches[j].zone
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.zone)
	}
	return out
}

// SearchChoices is Search projected to select options.
func SearchChoices(zones []string, query string, limit int, opts Options) []fields.SelectOption {
	results := Search(zones, query, limit, opts)
	if len(results) == 0 {
		return nil
	}
	return Choices(results)
}

type match struct {
	zone   string
	prefix bool
}
