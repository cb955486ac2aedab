package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `
name     = "backend"
template = "@webiny/cwp-template-aws@5.32.0"

app "admin" {
  path = "apps/admin"
}

app "website" {
  path = "apps/website/"
}

feature_flags {
  pb_legacy_rendering_engine = true
  new_watch_command          = env.WATCH == "on"
}

cli {
  plugins = ["workspaces", "deploy-pulumi", "scaffold-ci"]
}
`

func TestParse_Sample(t *testing.T) {
	p, err := Parse([]byte(sample), "stanza.hcl", EvalContext([]string{"WATCH=on"}))
	require.NoError(t, err)

	require.Equal(t, "backend", p.Name)
	require.Equal(t, "@webiny/cwp-template-aws@5.32.0", p.Template)
	require.Equal(t, []string{"admin", "website"}, p.AppAliases())

	dir, ok := p.App("website")
	require.True(t, ok)
	require.Equal(t, "apps/website", dir)

	require.True(t, p.FeatureEnabled("pb_legacy_rendering_engine"))
	require.True(t, p.FeatureEnabled("new_watch_command"))
	require.False(t, p.FeatureEnabled("missing"))
	require.Equal(t, []string{"workspaces", "deploy-pulumi", "scaffold-ci"}, p.PluginNames)
}

func TestParse_EnvFlagOff(t *testing.T) {
	p, err := Parse([]byte(sample), "stanza.hcl", EvalContext([]string{"WATCH=off", "not an ident=1"}))
	require.NoError(t, err)
	require.False(t, p.FeatureEnabled("new_watch_command"))
}

func TestParse_Minimal(t *testing.T) {
	p, err := Parse([]byte(`name = "x"`), "min.hcl", EvalContext(nil))
	require.NoError(t, err)
	require.Equal(t, "x", p.Name)
	require.Empty(t, p.Apps)
	require.Empty(t, p.FeatureFlags)
	require.Empty(t, p.PluginNames)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "missing name", src: `template = "t"`},
		{name: "blank name", src: `name = "  "`},
		{name: "syntax", src: `name = `},
		{name: "duplicate app", src: "name = \"x\"\napp \"a\" {\n  path = \"a\"\n}\napp \"a\" {\n  path = \"b\"\n}\n"},
		{name: "absolute app path", src: "name = \"x\"\napp \"a\" {\n  path = \"/abs\"\n}\n"},
		{name: "escaping app path", src: "name = \"x\"\napp \"a\" {\n  path = \"../up\"\n}\n"},
		{name: "non-bool flag", src: "name = \"x\"\nfeature_flags {\n  f = \"yes\"\n}\n"},
		{name: "duplicate plugin", src: "name = \"x\"\ncli {\n  plugins = [\"scaffold\", \"scaffold\"]\n}\n"},
		{name: "unknown attribute", src: "name = \"x\"\nbogus = 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src), "bad.hcl", EvalContext(nil))
			require.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stanza.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`name = "from-file"`), 0o644))

	p, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "from-file", p.Name)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}

func TestDefaultPlugins_Order(t *testing.T) {
	reg := DefaultPlugins()
	require.Equal(t, []string{
		"workspaces",
		"deploy-pulumi",
		"cwp-template-aws",
		"scaffold",
		"scaffold-graphql-service",
		"scaffold-admin-app-module",
		"scaffold-ci",
	}, reg.Names())

	pl, err := reg.Build("scaffold-ci")
	require.NoError(t, err)
	require.Equal(t, KindScaffold, pl.Kind)
}

func TestPluginRegistry_Register(t *testing.T) {
	reg := NewPluginRegistry()
	require.NoError(t, reg.Register("a", func() Plugin { return Plugin{Name: "a"} }))
	require.Error(t, reg.Register("a", func() Plugin { return Plugin{Name: "a"} }))
	require.Error(t, reg.Register("", func() Plugin { return Plugin{} }))
	require.Error(t, reg.Register("b", nil))
}

func TestProject_Plugins(t *testing.T) {
	p := &Project{Name: "x", PluginNames: []string{"scaffold", "deploy-pulumi"}}
	got, err := p.Plugins(DefaultPlugins())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "scaffold", got[0].Name)
	require.Equal(t, KindDeploy, got[1].Kind)

	p.PluginNames = []string{"scaffold", "nope", "also-nope"}
	_, err = p.Plugins(DefaultPlugins())
	require.ErrorIs(t, err, ErrUnknownPlugin)
	require.ErrorContains(t, err, "also-nope")
}
