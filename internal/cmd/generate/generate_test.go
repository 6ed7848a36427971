package generate

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/scru64/go-scru64/pkg/log"
	"github.com/scru64/go-scru64/pkg/scru64"
)

func discardLogger() logpkg.Logger {
	return logpkg.NewLogger(logpkg.WithOutput(logpkg.NewWriterOutput(io.Discard)))
}

func TestRunPrintsRequestedCount(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{
		NodeSpec:            "42/8",
		Count:               5,
		RollbackAllowanceMs: 10_000,
	}, &out, discardLogger())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	var prev scru64.ID
	for i, line := range lines {
		id, err := scru64.Parse(line)
		require.NoError(t, err, "line %d: %q", i, line)
		assert.Equal(t, uint32(42), id.NodeCtr()>>16, "node ID in line %d", i)
		if i > 0 {
			assert.Negative(t, prev.Compare(id), "line %d not greater than line %d", i, i-1)
		}
		prev = id
	}
}

func TestRunZeroCount(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{
		NodeSpec:            "42/8",
		Count:               0,
		RollbackAllowanceMs: 10_000,
	}, &out, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunMissingNodeSpec(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{Count: 1}, &out, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), scru64.NodeSpecEnv)
	assert.Empty(t, out.String(), "no partial output on misconfiguration")
}

func TestRunInvalidNodeSpec(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{NodeSpec: "42", Count: 1}, &out, discardLogger())
	require.ErrorIs(t, err, scru64.ErrSyntax)
	assert.Empty(t, out.String())
}

func TestRunNegativeCount(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{NodeSpec: "42/8", Count: -1}, &out, discardLogger())
	require.Error(t, err)
}

func TestCommandFlagsAndEnv(t *testing.T) {
	t.Setenv("SCRU64_NODE_SPEC", "0x2a/8")
	cmd := NewCommand(discardLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-n", "3"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		_, err := scru64.Parse(line)
		require.NoError(t, err)
	}
}

func TestCommandNodeSpecFlagOverridesEnv(t *testing.T) {
	t.Setenv("SCRU64_NODE_SPEC", "bogus")
	cmd := NewCommand(discardLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--node-spec", "7/8"})
	require.NoError(t, cmd.Execute())

	id, err := scru64.Parse(strings.TrimRight(out.String(), "\n"))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), id.NodeCtr()>>16)
}
