package tools

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/iw2rmb/stanza/theme"
)

// HeaderConfig configures the header tool.
type HeaderConfig struct {
	Levels       []int
	DefaultLevel int
}

// ColorConfig configures the text colour tool.
type ColorConfig struct {
	ThemeColors []string
}

// ColorConfigFor builds the colour tool config from th. A nil theme yields
// the fallback palette.
func ColorConfigFor(th *theme.Theme) ColorConfig {
	return ColorConfig{ThemeColors: theme.Hexes(th)}
}

// Tool is one registered tool.
type Tool struct {
	Name          string
	Kind          Kind
	InlineToolbar []string
	Shortcut      string

	// Per-kind configuration. Only the field matching Kind may be set.
	Header *HeaderConfig
	Color  *ColorConfig
}

// ValidationError reports a tool field rejected at registration.
type ValidationError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("tool %q: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("tool %q: %s: %s", e.Tool, e.Field, e.Reason)
}

var (
	nameRE     = regexp.MustCompile(`^[a-z][a-zA-Z0-9_-]*$`)
	shortcutRE = regexp.MustCompile(`^((CMD|CTRL|ALT|SHIFT)\+)+[A-Z0-9]$`)
)

func (t Tool) validate() error {
	fail := func(field, format string, args ...any) error {
		return &ValidationError{Tool: t.Name, Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	if !nameRE.MatchString(t.Name) {
		return fail("name", "must match %s", nameRE)
	}
	if !t.Kind.Known() {
		return fail("kind", "unknown kind %q", t.Kind)
	}

	if len(t.InlineToolbar) > 0 && !t.Kind.acceptsInlineToolbar() {
		return fail("inlineToolbar", "not supported by %s tools", t.Kind)
	}
	seen := make(map[string]bool, len(t.InlineToolbar))
	for _, a := range t.InlineToolbar {
		if !slices.Contains(InlineActions, a) {
			return fail("inlineToolbar", "unknown inline action %q", a)
		}
		if seen[a] {
			return fail("inlineToolbar", "duplicate inline action %q", a)
		}
		seen[a] = true
	}

	if t.Shortcut != "" && !shortcutRE.MatchString(t.Shortcut) {
		return fail("shortcut", "%q is not of the form CMD+M", t.Shortcut)
	}

	if t.Header != nil {
		if t.Kind != KindHeader {
			return fail("config", "header config on %s tool", t.Kind)
		}
		if err := t.Header.validate(); err != nil {
			return fail("config.levels", "%v", err)
		}
	}
	if t.Color != nil {
		if t.Kind != KindColor {
			return fail("config", "color config on %s tool", t.Kind)
		}
		for _, hex := range t.Color.ThemeColors {
			if _, err := theme.ParseHex(hex); err != nil {
				return fail("config.themeColors", "%v", err)
			}
		}
	}
	return nil
}

func (h *HeaderConfig) validate() error {
	if len(h.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	seen := make(map[int]bool, len(h.Levels))
	for _, l := range h.Levels {
		if l < 1 || l > 6 {
			return fmt.Errorf("level %d out of range 1..6", l)
		}
		if seen[l] {
			return fmt.Errorf("duplicate level %d", l)
		}
		seen[l] = true
	}
	if h.DefaultLevel != 0 && !seen[h.DefaultLevel] {
		return fmt.Errorf("default level %d is not enabled", h.DefaultLevel)
	}
	return nil
}

func (t Tool) clone() Tool {
	out := t
	out.InlineToolbar = slices.Clone(t.InlineToolbar)
	if t.Header != nil {
		h := *t.Header
		h.Levels = slices.Clone(h.Levels)
		out.Header = &h
	}
	if t.Color != nil {
		c := *t.Color
		c.ThemeColors = slices.Clone(c.ThemeColors)
		out.Color = &c
	}
	return out
}
