package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/loader"
)

const kochYAML = `
name: KochIsland
axiom: F-F-F-F
angle: 90
rules:
  F: F-F+F+FF-F-F+F
`

const kochTOML = `
name = "KochIsland"
axiom = "F-F-F-F"
angle = 90
[rules]
F = "F-F+F+FF-F-F+F"
`

const kochJSON = `{
  "name": "KochIsland",
  "axiom": "F-F-F-F",
  "angle": 90,
  "rules": {"F": "F-F+F+FF-F-F+F"}
}`

func koch() grammar.Grammar {
	return grammar.Grammar{
		Name:  "KochIsland",
		Axiom: "F-F-F-F",
		Angle: 90,
		Rules: map[rune]string{'F': "F-F+F+FF-F-F+F"},
	}
}

func TestDecode_AllFormats(t *testing.T) {
	for format, data := range map[loader.Format]string{
		loader.YAML: kochYAML,
		loader.TOML: kochTOML,
		loader.JSON: kochJSON,
	} {
		g, err := loader.Decode([]byte(data), format)
		require.NoError(t, err, format)
		assert.Equal(t, koch(), g, format)
	}
}

func TestDecode_EmptyAndNumericRules(t *testing.T) {
	g, err := loader.Decode([]byte("axiom: XY\nrules:\n  X: \"\"\n  Y: 1\n"), loader.YAML)
	require.NoError(t, err)
	assert.Equal(t, "", g.Rules['X'])
	assert.Equal(t, "1", g.Rules['Y'])
	assert.True(t, grammar.IsVariable(g, 'X'))

	g, err = loader.Decode([]byte(`{"axiom":"Y","rules":{"Y":12}}`), loader.JSON)
	require.NoError(t, err)
	assert.Equal(t, "12", g.Rules['Y'])
}

func TestDecode_UnicodeAndControlKeys(t *testing.T) {
	g, err := loader.Decode([]byte("axiom: \"α\"\nrules:\n  \"α\": \"α+β\"\n  \"+\": \"-\"\n"), loader.YAML)
	require.NoError(t, err)
	assert.Equal(t, "α+β", g.Rules['α'])
	assert.Equal(t, "-", g.Rules['+'])
}

func TestDecode_Metadata(t *testing.T) {
	g, err := loader.Decode([]byte(`{"axiom":"A","rules":{"A":"AB"},"metadata":{"source":"book","page":25}}`), loader.JSON)
	require.NoError(t, err)
	assert.Equal(t, "book", g.Metadata["source"])
	assert.Equal(t, int64(25), g.Metadata["page"])
}

func TestDecode_Errors(t *testing.T) {
	_, err := loader.Decode([]byte("axiom: A\nrules:\n  AB: A\n"), loader.YAML)
	require.ErrorIs(t, err, loader.ErrBadRuleKey)

	_, err = loader.Decode([]byte("axiom: A\nrules:\n  \"\": A\n"), loader.YAML)
	require.ErrorIs(t, err, loader.ErrBadRuleKey)

	_, err = loader.Decode([]byte("axiom: A\ncolour: red\n"), loader.YAML)
	require.ErrorIs(t, err, loader.ErrBadDocument)

	_, err = loader.Decode([]byte("axiom: [1, 2"), loader.YAML)
	require.Error(t, err)

	_, err = loader.Decode([]byte("{}"), loader.Format("xml"))
	require.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestDecodeCatalog(t *testing.T) {
	data := []byte(`
grammars:
  - name: Fibonacci
    axiom: A
    rules: {A: AB, B: A}
  - name: Erase
    axiom: XY
    rules: {X: ""}
`)
	gs, err := loader.DecodeCatalog(data, loader.YAML)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	assert.Equal(t, "Fibonacci", gs[0].Name)
	assert.Equal(t, "AB", gs[0].Rules['A'])
	assert.Equal(t, "Erase", gs[1].Name)

	_, err = loader.DecodeCatalog([]byte("grammars:\n  - axiom: A\n    rules: {AB: A}\n"), loader.YAML)
	require.ErrorIs(t, err, loader.ErrBadRuleKey)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"koch.yaml": kochYAML,
		"koch.yml":  kochYAML,
		"koch.toml": kochTOML,
		"koch.json": kochJSON,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
		g, err := loader.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, koch(), g, name)
	}
}

func TestLoad_NameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fib.yaml")
	require.NoError(t, os.WriteFile(path, []byte("axiom: A\nrules: {A: AB, B: A}\n"), 0o600))
	g, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fib", g.Name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := loader.Load("grammar.xml")
	require.ErrorIs(t, err, loader.ErrUnknownFormat)

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]loader.Format{
		"a.yaml": loader.YAML, "a.YML": loader.YAML, "dir/a.toml": loader.TOML, "a.json": loader.JSON,
	} {
		got, err := loader.FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
}
