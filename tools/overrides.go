package tools

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/iw2rmb/stanza/internal/ctxlog"
	"github.com/iw2rmb/stanza/internal/tomlfile"
)

// Overrides adjusts a tool table from a TOML file:
//
//	default_block = "poetry"
//
//	[tools.header]
//	levels = [1, 2]
//
//	[tools.image]
//	disabled = true
type Overrides struct {
	DefaultBlock string                  `toml:"default_block"`
	Tools        map[string]ToolOverride `toml:"tools"`
}

// ToolOverride lists the fields of one tool that may be overridden. Nil
// pointers leave the current value in place.
type ToolOverride struct {
	Disabled      bool      `toml:"disabled"`
	InlineToolbar *[]string `toml:"inline_toolbar"`
	Shortcut      *string   `toml:"shortcut"`
	Levels        []int     `toml:"levels"`
	DefaultLevel  *int      `toml:"default_level"`
}

// LoadOverrides reads an overrides file.
func LoadOverrides(ctx context.Context, path string) (Overrides, error) {
	var o Overrides
	if err := tomlfile.Load(ctx, path, &o); err != nil {
		return Overrides{}, err
	}
	return o, nil
}

// Apply returns a new table with o applied. Every tool is re-registered, so
// overridden values pass the same validation as the originals.
func (c *Config) Apply(ctx context.Context, o Overrides) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	names := make([]string, 0, len(o.Tools))
	for name := range o.Tools {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := c.index[name]; !ok {
			return nil, &ValidationError{Tool: name, Reason: "override for unregistered tool"}
		}
	}

	next := NewConfig()
	for _, t := range c.tools {
		ov, ok := o.Tools[t.Name]
		if !ok {
			if err := next.Register(t); err != nil {
				return nil, err
			}
			continue
		}
		if ov.Disabled {
			logger.Debug("Tool disabled by override.", "tool", t.Name)
			continue
		}

		t = t.clone()
		if ov.InlineToolbar != nil {
			t.InlineToolbar = slices.Clone(*ov.InlineToolbar)
		}
		if ov.Shortcut != nil {
			t.Shortcut = *ov.Shortcut
		}
		if ov.Levels != nil || ov.DefaultLevel != nil {
			if t.Kind != KindHeader {
				return nil, &ValidationError{Tool: t.Name, Field: "levels", Reason: fmt.Sprintf("not supported by %s tools", t.Kind)}
			}
			if t.Header == nil {
				t.Header = &HeaderConfig{}
			}
			if ov.Levels != nil {
				t.Header.Levels = slices.Clone(ov.Levels)
			}
			if ov.DefaultLevel != nil {
				t.Header.DefaultLevel = *ov.DefaultLevel
			}
		}
		if err := next.Register(t); err != nil {
			return nil, err
		}
		logger.Debug("Tool overridden.", "tool", t.Name)
	}

	def := c.defaultBlock
	if o.DefaultBlock != "" {
		def = o.DefaultBlock
	}
	if err := next.SetDefaultBlock(def); err != nil {
		return nil, err
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return next, nil
}
