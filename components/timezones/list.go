package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-admin/pkg/fields"
)

//go:embed data/zones.txt
var dataFS embed.FS

const defaultListPath = "data/zones.txt"

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultErr   error
)

// DefaultZones returns a copy of the embedded zone list, sorted.
func DefaultZones() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()
		defaultZones, defaultErr = LoadZones(f)
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string(nil), defaultZones...), nil
}

// LoadZones reads one zone per line. Blank lines and # comments are skipped,
// duplicates dropped and the result sorted.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 128)
	seen := map[string]struct{}{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("timezones: read list: %w", err)
	}

	sort.Strings(zones)
	return zones, nil
}

// Choices maps zones to select options labelled by the zone name.
func Choices(zones []string) []fields.SelectOption {
	out := make([]fields.SelectOption, 0, len(zones))
	for _, zone := range zones {
		out = append(out, fields.Choice(zone, strings.ReplaceAll(zone, "_", " ")))
	}
	return out
}
