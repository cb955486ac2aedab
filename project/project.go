package project

import (
	"context"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/iw2rmb/stanza/internal/ctxlog"
)

// Project is a decoded project file.
type Project struct {
	Name     string
	Template string
	// Apps maps alias to a slash-separated path relative to the project root.
	Apps         map[string]string
	FeatureFlags map[string]bool
	PluginNames  []string
}

// fileRoot mirrors the HCL layout for gohcl.
type fileRoot struct {
	Name         string      `hcl:"name"`
	Template     string      `hcl:"template,optional"`
	Apps         []*appBlock `hcl:"app,block"`
	FeatureFlags *flagsBlock `hcl:"feature_flags,block"`
	CLI          *cliBlock   `hcl:"cli,block"`
}

type appBlock struct {
	Alias string `hcl:"alias,label"`
	Path  string `hcl:"path"`
}

type flagsBlock struct {
	Remain hcl.Body `hcl:",remain"`
}

type cliBlock struct {
	Plugins []string `hcl:"plugins,optional"`
}

// Load parses and decodes the project file at path.
func Load(ctx context.Context, path string) (*Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Project loader started.", "path", path)

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, diags)
	}
	p, err := decode(f.Body, EvalContext(os.Environ()))
	if err != nil {
		return nil, fmt.Errorf("failed to decode project file %s: %w", path, err)
	}
	logger.Debug("Project loaded.", "name", p.Name, "apps", len(p.Apps), "plugins", len(p.PluginNames))
	return p, nil
}

// Parse decodes project source held in memory. filename is used in
// diagnostics only.
func Parse(src []byte, filename string, evalCtx *hcl.EvalContext) (*Project, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse project file %s: %w", filename, diags)
	}
	return decode(f.Body, evalCtx)
}

// EvalContext exposes environ (KEY=VALUE pairs) as the env object.
func EvalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(k) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{Variables: map[string]cty.Value{"env": env}}
}

func decode(body hcl.Body, evalCtx *hcl.EvalContext) (*Project, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, evalCtx, &root); diags.HasErrors() {
		return nil, diags
	}

	p := &Project{
		Name:         strings.TrimSpace(root.Name),
		Template:     root.Template,
		Apps:         make(map[string]string, len(root.Apps)),
		FeatureFlags: map[string]bool{},
	}
	if p.Name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}

	for _, a := range root.Apps {
		if _, dup := p.Apps[a.Alias]; dup {
			return nil, fmt.Errorf("app %q: duplicate alias", a.Alias)
		}
		clean := path.Clean(a.Path)
		if a.Path == "" || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
			return nil, fmt.Errorf("app %q: path %q must be relative to the project root", a.Alias, a.Path)
		}
		p.Apps[a.Alias] = clean
	}

	if root.FeatureFlags != nil {
		flags, err := decodeFlags(root.FeatureFlags.Remain, evalCtx)
		if err != nil {
			return nil, err
		}
		p.FeatureFlags = flags
	}

	if root.CLI != nil {
		seen := make(map[string]bool, len(root.CLI.Plugins))
		for _, name := range root.CLI.Plugins {
			if seen[name] {
				return nil, fmt.Errorf("cli plugin %q listed twice", name)
			}
			seen[name] = true
		}
		p.PluginNames = append([]string(nil), root.CLI.Plugins...)
	}
	return p, nil
}

func decodeFlags(body hcl.Body, evalCtx *hcl.EvalContext) (map[string]bool, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(map[string]bool, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, diags
		}
		if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.Bool) {
			return nil, fmt.Errorf("feature flag %q must be a bool, got %s", name, v.Type().FriendlyName())
		}
		out[name] = v.True()
	}
	return out, nil
}

// App returns the path registered for alias.
func (p *Project) App(alias string) (string, bool) {
	dir, ok := p.Apps[alias]
	return dir, ok
}

// AppAliases returns the aliases in sorted order.
func (p *Project) AppAliases() []string {
	out := make([]string, 0, len(p.Apps))
	for a := range p.Apps {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// FeatureEnabled reports whether flag is set to true.
func (p *Project) FeatureEnabled(flag string) bool {
	return p.FeatureFlags[flag]
}
