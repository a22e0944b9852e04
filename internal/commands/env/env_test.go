//go:build !integration

package env

import (
	"os"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-view/prism/internal/cmdutils"
	"github.com/prism-view/prism/internal/env"
	"github.com/prism-view/prism/internal/testing/cmdtest"
)

func strptr(s string) *string { return &s }

func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func runEnvCommand(t *testing.T, snapshot env.Snapshot, cli string, options ...func(*cmdtest.Factory)) (*cmdtest.CmdOut, error) {
	t.Helper()

	ios, _, out, errOut := cmdtest.TestIOStreams()
	f := &cmdtest.Factory{
		IOStub:        ios,
		EnvStub:       snapshot,
		BuildInfoStub: cmdutils.BuildInfo{Version: "v1.0.0", Commit: "abcdefgh"},
	}
	for _, opt := range options {
		opt(f)
	}

	return cmdtest.RunCommand(NewCmdEnv(f), cli, out, errOut)
}

func TestEnvPagerOnly(t *testing.T) {
	snapshot := env.Snapshot{
		Pagers: env.Pagers{Fallback: `/bin/sh -c "head -10000 | cat"`},
	}

	output, err := runEnvCommand(t, snapshot, "--pager-only")
	require.NoError(t, err)

	assert.Equal(t, "/bin/sh -c \"head -10000 | cat\"\n", output.String())
	assert.Empty(t, output.Stderr())
}

func TestEnvTable(t *testing.T) {
	snapshot := env.Snapshot{
		BatTheme:   strptr("ansi"),
		ColorTerm:  strptr("truecolor"),
		CurrentDir: strptr("/work/repo"),
		Features:   strptr("side-by-side line-numbers"),
		Hostname:   strptr("devbox"),
		Pagers: env.Pagers{
			Primary:  strptr("less -R"),
			Fallback: "less -R",
		},
	}

	output, err := runEnvCommand(t, snapshot, "")
	require.NoError(t, err)

	got := stripansi.Strip(output.String())
	assert.Contains(t, got, "BAT_THEME\tansi")
	assert.Contains(t, got, "COLORTERM\ttruecolor")
	assert.Contains(t, got, "PRISM_FEATURES\tside-by-side line-numbers")
	assert.Contains(t, got, "PRISM_PAGER\tless -R")
	assert.Contains(t, got, "resolved pager\tless -R")
	assert.Contains(t, got, "working directory\t/work/repo")
	assert.Contains(t, got, "hostname\tdevbox")
	assert.Contains(t, got, "PRISM_NAVIGATE\t(unset)")
}

func TestEnvTableOnTTY(t *testing.T) {
	unsetenv(t, "NO_COLOR")

	snapshot := env.Snapshot{
		BatTheme: strptr("ansi"),
		Pagers:   env.Pagers{Fallback: "less"},
	}

	ios, _, out, errOut := cmdtest.TestIOStreams(cmdtest.WithTestIOStreamsAsTTY(true))
	f := &cmdtest.Factory{IOStub: ios, EnvStub: snapshot}

	output, err := cmdtest.RunCommand(NewCmdEnv(f), "", out, errOut)
	require.NoError(t, err)

	assert.Contains(t, output.String(), "\x1b[", "TTY output is colored")

	got := stripansi.Strip(output.String())
	assert.Regexp(t, `BAT_THEME\s{2,}ansi`, got, "TTY output is padded into columns")
	assert.Regexp(t, `resolved pager\s+less`, got)
}

func TestEnvTableUnsetFields(t *testing.T) {
	snapshot := env.Snapshot{
		Pagers: env.Pagers{Fallback: "less"},
	}

	output, err := runEnvCommand(t, snapshot, "")
	require.NoError(t, err)

	got := stripansi.Strip(output.String())
	assert.Contains(t, got, "BAT_THEME\t(unset)")
	assert.Contains(t, got, "PRISM_PAGER\t(unset)")
	assert.Contains(t, got, "resolved pager\tless")
}
