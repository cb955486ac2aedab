// Package theme holds the colour palette offered by the text colour tool.
package theme

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iw2rmb/stanza/internal/tomlfile"
)

// FallbackColors are offered when no theme is configured.
var FallbackColors = []string{"#8c7ae6", "#0097e6", "#44bd32"}

// Color is one named palette entry.
type Color struct {
	Name string `toml:"name"`
	Hex  string `toml:"hex"`
}

// Theme is an ordered palette.
type Theme struct {
	Name   string  `toml:"name"`
	Colors []Color `toml:"colors"`
}

// Load reads and validates a theme file:
//
//	name = "default"
//	[[colors]]
//	name = "primary"
//	hex  = "#fa5723"
func Load(ctx context.Context, path string) (*Theme, error) {
	var t Theme
	if err := tomlfile.Load(ctx, path, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return &t, nil
}

// Validate checks that every colour has a unique name and parses as a hex
// colour.
func (t *Theme) Validate() error {
	seen := make(map[string]bool, len(t.Colors))
	for i, c := range t.Colors {
		if c.Name == "" {
			return fmt.Errorf("color %d: missing name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("color %q: duplicate name", c.Name)
		}
		seen[c.Name] = true
		if _, err := ParseHex(c.Hex); err != nil {
			return fmt.Errorf("color %q: %w", c.Name, err)
		}
	}
	return nil
}

// Hexes returns the palette in order, normalised to lower-case #rrggbb.
// A nil theme or an empty palette yields FallbackColors.
func Hexes(t *Theme) []string {
	if t == nil || len(t.Colors) == 0 {
		return append([]string(nil), FallbackColors...)
	}
	out := make([]string, 0, len(t.Colors))
	for _, c := range t.Colors {
		col, err := ParseHex(c.Hex)
		if err != nil {
			continue
		}
		out = append(out, col.Hex())
	}
	return out
}

// ParseHex accepts #rgb and #rrggbb, case-insensitively.
func ParseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return c, nil
}
