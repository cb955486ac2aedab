package tools

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/stanza/theme"
)

// ErrNoDefaultBlock is returned by Validate when no default block is set.
var ErrNoDefaultBlock = errors.New("tools: default block is not set")

// Config is an ordered set of registered tools plus the block used for new
// content.
type Config struct {
	tools        []Tool
	index        map[string]int
	defaultBlock string
}

func NewConfig() *Config {
	return &Config{index: make(map[string]int)}
}

// Register validates t and adds it to the table.
func (c *Config) Register(t Tool) error {
	if err := t.validate(); err != nil {
		return err
	}
	if _, dup := c.index[t.Name]; dup {
		return &ValidationError{Tool: t.Name, Reason: "already registered"}
	}
	c.index[t.Name] = len(c.tools)
	c.tools = append(c.tools, t.clone())
	return nil
}

// SetDefaultBlock selects the tool used for new blocks. It must be a
// registered block (not inline) tool.
func (c *Config) SetDefaultBlock(name string) error {
	t, ok := c.Lookup(name)
	if !ok {
		return &ValidationError{Tool: name, Field: "defaultBlock", Reason: "not registered"}
	}
	if t.Kind.Inline() {
		return &ValidationError{Tool: name, Field: "defaultBlock", Reason: "inline tools cannot be the default block"}
	}
	c.defaultBlock = name
	return nil
}

func (c *Config) DefaultBlock() string { return c.defaultBlock }

// Lookup returns a copy of the tool registered under name.
func (c *Config) Lookup(name string) (Tool, bool) {
	i, ok := c.index[name]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i].clone(), true
}

// Tools returns copies of the registered tools in registration order.
func (c *Config) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	for i, t := range c.tools {
		out[i] = t.clone()
	}
	return out
}

// ByKind returns the names of tools of kind k, in registration order.
func (c *Config) ByKind(k Kind) []string {
	var out []string
	for _, t := range c.tools {
		if t.Kind == k {
			out = append(out, t.Name)
		}
	}
	return out
}

// Validate checks table-level constraints: a default block is set, and
// inline actions backed by a tool (underline, color) have that tool
// registered.
func (c *Config) Validate() error {
	if c.defaultBlock == "" {
		return ErrNoDefaultBlock
	}
	for _, t := range c.tools {
		for _, a := range t.InlineToolbar {
			k := Kind(a)
			if !k.Inline() {
				continue
			}
			if it, ok := c.Lookup(a); !ok || it.Kind != k {
				return &ValidationError{Tool: t.Name, Field: "inlineToolbar", Reason: fmt.Sprintf("inline tool %q is not registered", a)}
			}
		}
	}
	return nil
}

var defaultInlineToolbar = []string{"bold", "italic", "underline", "color", "link"}

// Default returns the standard tool table. The colour tool palette comes
// from th; nil selects the fallback palette.
func Default(th *theme.Theme) (*Config, error) {
	color := ColorConfigFor(th)
	entries := []Tool{
		{Name: "delimiter", Kind: KindDelimiter},
		{Name: "paragraph", Kind: KindParagraph, InlineToolbar: defaultInlineToolbar},
		{
			Name:          "header",
			Kind:          KindHeader,
			InlineToolbar: defaultInlineToolbar,
			Header:        &HeaderConfig{Levels: []int{1, 2, 3, 4}},
		},
		{Name: "image", Kind: KindImage},
		{Name: "quote", Kind: KindQuote},
		{Name: "list", Kind: KindList},
		{Name: "underline", Kind: KindUnderline},
		{Name: "code", Kind: KindCode},
		{Name: "poetry", Kind: KindPoetry},
		{Name: "color", Kind: KindColor, Shortcut: "CMD+M", Color: &color},
	}

	c := NewConfig()
	for _, t := range entries {
		if err := c.Register(t); err != nil {
			return nil, err
		}
	}
	if err := c.SetDefaultBlock("paragraph"); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
