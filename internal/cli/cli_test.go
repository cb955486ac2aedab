package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "positional document with defaults",
			args: []string{"poem.json"},
			want: Options{DocPath: "poem.json", LogFormat: "text", LogLevel: "info", LogFile: "stanza.log"},
		},
		{
			name: "all flags",
			args: []string{
				"-doc", "d.json", "-project", "stanza.hcl", "-tools", "tools.toml", "-theme", "theme.toml",
				"-readonly", "-log-format", "JSON", "-log-level", "Debug", "-log-file", "x.log",
			},
			want: Options{
				DocPath:     "d.json",
				ProjectPath: "stanza.hcl",
				ToolsPath:   "tools.toml",
				ThemePath:   "theme.toml",
				ReadOnly:    true,
				LogFormat:   "json",
				LogLevel:    "debug",
				LogFile:     "x.log",
			},
		},
		{
			name: "version needs no document",
			args: []string{"-version"},
			want: Options{Version: true, LogFile: "stanza.log"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, exit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			require.False(t, exit)
			if diff := cmp.Diff(tc.want, *got); diff != "" {
				t.Fatalf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_HelpAndUsage(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		var out bytes.Buffer
		opts, exit, err := Parse(args, &out)
		require.NoError(t, err)
		require.True(t, exit)
		require.Nil(t, opts)
		require.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "unknown flag", args: []string{"-nope"}, msg: "flag provided but not defined"},
		{name: "bad format", args: []string{"-log-format", "xml", "d.json"}, msg: "invalid log-format"},
		{name: "bad level", args: []string{"-log-level", "trace", "d.json"}, msg: "invalid log-level"},
		{name: "two documents", args: []string{"a.json", "b.json"}, msg: "too many arguments"},
		{name: "doc twice", args: []string{"-doc", "a.json", "b.json"}, msg: "both"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.msg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("warn", "json", &buf)
	l.Info("hidden")
	l.Warn("shown", "k", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	require.True(t, gjson.Valid(lines[0]))
	require.Equal(t, "shown", gjson.Get(lines[0], "msg").String())
	require.Equal(t, int64(1), gjson.Get(lines[0], "k").Int())

	buf.Reset()
	NewLogger("debug", "text", &buf).Debug("dbg")
	require.Contains(t, buf.String(), "msg=dbg")
}
