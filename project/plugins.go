package project

import (
	"errors"
	"fmt"
)

// PluginKind groups CLI plugins by what they contribute.
type PluginKind string

const (
	KindWorkspace PluginKind = "workspace"
	KindDeploy    PluginKind = "deploy"
	KindTemplate  PluginKind = "template"
	KindScaffold  PluginKind = "scaffold"
)

// Plugin describes one CLI plugin.
type Plugin struct {
	Name        string
	Kind        PluginKind
	Description string
}

// Constructor builds a plugin. Constructors are typed so that an unknown name
// in the project file fails at load rather than at first use.
type Constructor func() Plugin

var ErrUnknownPlugin = errors.New("unknown plugin")

// PluginRegistry maps plugin names to constructors, preserving
// registration order.
type PluginRegistry struct {
	ctors map[string]Constructor
	order []string
}

func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{ctors: map[string]Constructor{}}
}

// Register adds a constructor under name. Names must be unique.
func (r *PluginRegistry) Register(name string, c Constructor) error {
	if name == "" {
		return fmt.Errorf("plugin name must not be empty")
	}
	if c == nil {
		return fmt.Errorf("plugin %q: nil constructor", name)
	}
	if _, dup := r.ctors[name]; dup {
		return fmt.Errorf("plugin %q already registered", name)
	}
	r.ctors[name] = c
	r.order = append(r.order, name)
	return nil
}

// Names returns the registered names in registration order.
func (r *PluginRegistry) Names() []string {
	return append([]string(nil), r.order...)
}

// Build constructs the named plugin.
func (r *PluginRegistry) Build(name string) (Plugin, error) {
	c, ok := r.ctors[name]
	if !ok {
		return Plugin{}, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
	}
	return c(), nil
}

// DefaultPlugins returns a registry holding the stock plugin set.
func DefaultPlugins() *PluginRegistry {
	r := NewPluginRegistry()
	for _, p := range []Plugin{
		{Name: "workspaces", Kind: KindWorkspace, Description: "Workspace management commands."},
		{Name: "deploy-pulumi", Kind: KindDeploy, Description: "Deploy apps with Pulumi."},
		{Name: "cwp-template-aws", Kind: KindTemplate, Description: "AWS project template commands."},
		{Name: "scaffold", Kind: KindScaffold, Description: "Base scaffolding command."},
		{Name: "scaffold-graphql-service", Kind: KindScaffold, Description: "Scaffold a GraphQL service."},
		{Name: "scaffold-admin-app-module", Kind: KindScaffold, Description: "Scaffold an admin app module."},
		{Name: "scaffold-ci", Kind: KindScaffold, Description: "Scaffold CI configuration."},
	} {
		p := p // per-iteration copy; go directive is below 1.22
		// Names above are unique and non-empty.
		_ = r.Register(p.Name, func() Plugin { return p })
	}
	return r
}

// Plugins builds the project's plugins in the order the file lists them.
func (p *Project) Plugins(reg *PluginRegistry) ([]Plugin, error) {
	out := make([]Plugin, 0, len(p.PluginNames))
	var errs []error
	for _, name := range p.PluginNames {
		pl, err := reg.Build(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, pl)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
