package tools

import (
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/iw2rmb/stanza/poetry"
)

// JSON renders the table in the shape block editors consume:
//
//	{"tools":{"header":{"class":"header","inlineToolbar":[...],"config":{...}}},"defaultBlock":"paragraph"}
func (c *Config) JSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := []byte(`{"tools":{}}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, v)
	}

	for _, t := range c.tools {
		base := "tools." + t.Name
		set(base+".class", string(t.Kind))
		if len(t.InlineToolbar) > 0 {
			set(base+".inlineToolbar", t.InlineToolbar)
		}
		if t.Shortcut != "" {
			set(base+".shortcut", t.Shortcut)
		}
		if t.Header != nil {
			set(base+".config.levels", t.Header.Levels)
			if t.Header.DefaultLevel != 0 {
				set(base+".config.defaultLevel", t.Header.DefaultLevel)
			}
		}
		if t.Color != nil {
			set(base+".config.themeColors", t.Color.ThemeColors)
		}
		if t.Kind == KindPoetry {
			d := poetry.Describe()
			set(base+".toolbox.title", d.Toolbox.Title)
			set(base+".toolbox.icon", d.Toolbox.Icon)
			set(base+".readOnlySupported", d.ReadOnlySupported)
			set(base+".enableLineBreaks", d.EnableLineBreaks)
			set(base+".pasteConfig.tags", d.PasteConfig.Tags)
			set(base+".sanitize", d.Sanitize)
			set(base+".config.placeholder", d.DefaultPlaceholder)
		}
	}
	set("defaultBlock", c.defaultBlock)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(out), nil
}
