package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_UnknownCommandPrintsUsage(t *testing.T) {
	cmd := newRootCmd("test")

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"bogus-command"})

	err := execute(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "bogus-command"`)

	assert.Contains(t, errOut.String(), "Usage:")
	assert.Contains(t, errOut.String(), "Available Commands:")
	assert.Contains(t, errOut.String(), "benchmark")
}

func TestExecute_SubcommandErrorSkipsUsage(t *testing.T) {
	cmd := newRootCmd("test")

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"switch", "nonexistent"})

	err := execute(cmd)
	require.Error(t, err)

	// A known command failing is not a usage problem.
	assert.NotContains(t, errOut.String(), "Available Commands:")
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd("test")

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{
		"info", "stats", "global", "enable", "disable", "reset",
		"export-json", "export-csv", "benchmark", "stress-test", "switch",
	} {
		assert.Contains(t, names, want)
	}
}
