package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsys/catalog"
	"github.com/katalvlaran/lsys/grammar"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), err
}

func TestLength(t *testing.T) {
	out, err := run(t, "length", "-g", "Fibonacci", "5")
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)

	out, err = run(t, "matrix-length", "--grammar", "KochIsland", "1")
	require.NoError(t, err)
	assert.Equal(t, "59\n", out)
}

func TestLength_Upto(t *testing.T) {
	for _, sub := range []string{"length", "matrix-length"} {
		out, err := run(t, sub, "-g", "Fibonacci", "--upto", "5")
		require.NoError(t, err, sub)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 8, sub) // header, separator, n = 0..5
		assert.True(t, strings.HasSuffix(lines[7], " 13"), sub)
	}
}

func TestLength_UptoPlain(t *testing.T) {
	for _, sub := range []string{"length", "matrix-length"} {
		out, err := run(t, sub, "-g", "Fibonacci", "--upto", "--plain", "3")
		require.NoError(t, err, sub)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 5, sub) // header, n = 0..3
		assert.Equal(t, "n length", lines[0], sub)
		assert.Equal(t, "3      5", lines[4], sub)
		assert.NotContains(t, out, "─", sub)
	}
}

func TestLength_Errors(t *testing.T) {
	_, err := run(t, "length", "-g", "Fibonacci", "--", "-1")
	require.ErrorIs(t, err, grammar.ErrInvalidArgument)

	_, err = run(t, "matrix-length", "-g", "Fibonacci", "--upto", "--", "-1")
	require.ErrorIs(t, err, grammar.ErrInvalidArgument)

	_, err = run(t, "length", "-g", "Fibonacci", "ten")
	require.Error(t, err)

	_, err = run(t, "length", "5")
	require.ErrorIs(t, err, errNoGrammar)

	_, err = run(t, "length", "-g", "Nope", "5")
	require.ErrorIs(t, err, catalog.ErrUnknownGrammar)

	_, err = run(t, "--log-level", "loud", "length", "-g", "Fibonacci", "1")
	require.Error(t, err)
}

func TestFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erase.yaml")
	require.NoError(t, os.WriteFile(path, []byte("axiom: XYZ\nrules:\n  X: \"\"\n"), 0o600))

	out, err := run(t, "length", "--file", path, "0")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, "length", "--file", path, "4")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestAlphabet(t *testing.T) {
	out, err := run(t, "alphabet", "-g", "DragonCurve")
	require.NoError(t, err)
	assert.Contains(t, out, "variables: XY")
	assert.Contains(t, out, "constants: +-F")
	assert.Contains(t, out, "alphabet:  XY+-F")
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify", "--depth", "6", "--random", "2", "--size", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "10 curated and 2 random grammars agree on 84 checks (n = 0..6)")

	out, err = run(t, "verify", "-g", "Penrose", "--random", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "1 curated and 0 random grammars agree on 21 checks")

	_, err = run(t, "verify", "--depth", "-1")
	require.Error(t, err)
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--depth", "5", "--rounds", "2", "--size", "10", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "memo")
	assert.Contains(t, out, "matrix")
	assert.Contains(t, out, `lsys_length_computations_total{method="memo"} 10`)
	assert.Contains(t, out, `lsys_length_computations_total{method="matrix"} 10`)

	_, err = run(t, "bench", "--rounds", "0")
	require.Error(t, err)
}

func TestExportCommands(t *testing.T) {
	out, err := run(t, "dot", "-g", "Fibonacci")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {"))

	out, err = run(t, "mermaid", "-g", "KochIsland")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD"))

	out, err = run(t, "info", "-g", "KochIsland")
	require.NoError(t, err)
	assert.Contains(t, out, "π * A =\n[32, 12, 15]")
}

func TestCatalog(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	names, err := catalog.Names()
	require.NoError(t, err)
	for _, name := range names {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "22.5")
}
