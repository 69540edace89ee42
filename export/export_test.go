package export_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsys/catalog"
	"github.com/katalvlaran/lsys/export"
	"github.com/katalvlaran/lsys/grammar"
)

func dragon(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := catalog.Get("DragonCurve")
	require.NoError(t, err)
	return g
}

func TestDOT_DragonCurve(t *testing.T) {
	out, err := export.DOT(dragon(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "digraph G {\n    bgcolor=transparent;\n    node[shape=square];\n"))
	assert.Contains(t, out, `    v0[label="X",shape=square];`)
	assert.Contains(t, out, `    v1[label="Y",shape=square];`)
	assert.Contains(t, out, `    v2[label="+",shape=square,style=filled,color=lightgrey];`)
	assert.Contains(t, out, `    v4[label="F",shape=square,style=filled,color=lightgrey];`)
	assert.Contains(t, out, `    v0 -> v2 [label=" 2"];`)
	assert.Contains(t, out, `    v1 -> v3 [label=" 2"];`)
	assert.NotContains(t, out, "v0 -> v3", "X's rule has no '-'")
	assert.NotContains(t, out, "v2 ->", "constants have no outgoing edges")
	assert.Equal(t, 8, strings.Count(out, "->"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestDOT_QuotesSymbols(t *testing.T) {
	g := grammar.Grammar{Axiom: `A"`, Rules: map[rune]string{'A': `A\`}}
	out, err := export.DOT(g)
	require.NoError(t, err)
	assert.Contains(t, out, `label="\"",`)
	assert.Contains(t, out, `label="\\",`)
}

func TestMermaid_DragonCurve(t *testing.T) {
	out, err := export.Mermaid(dragon(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `    v0["X"]`)
	assert.Contains(t, out, `    v2(["+"])`)
	assert.Contains(t, out, `    v0 -- "2" --> v2`)
	assert.Contains(t, out, "    class v2,v3,v4 constant;")
}

func TestMermaid_NoConstants(t *testing.T) {
	out, err := export.Mermaid(grammar.Grammar{Axiom: "A", Rules: map[rune]string{'A': "AB", 'B': "A"}})
	require.NoError(t, err)
	assert.NotContains(t, out, "classDef")
	assert.Contains(t, out, `    v1 -- "1" --> v0`)
}

func TestInfo_KochIsland(t *testing.T) {
	g, err := catalog.Get("KochIsland")
	require.NoError(t, err)
	out, err := export.Info(g)
	require.NoError(t, err)

	assert.Contains(t, out, "V = ['F' '+' '-']")
	assert.Contains(t, out, `ω = "F-F-F-F"`)
	assert.Contains(t, out, `    'F' → "F-F+F+FF-F-F+F"`)
	assert.Contains(t, out, "π =\n[4, 0, 3]\n")
	assert.Contains(t, out, "A =\n[8, 3, 3]\n[0, 1, 0]\n[0, 0, 1]\n")
	assert.Contains(t, out, "π * A =\n[32, 12, 15]\n")
}

func TestExport_InvalidGrammar(t *testing.T) {
	bad := grammar.Grammar{Axiom: "\xff"}
	_, err := export.DOT(bad)
	require.ErrorIs(t, err, grammar.ErrInvalidSymbol)
	_, err = export.Mermaid(bad)
	require.ErrorIs(t, err, grammar.ErrInvalidSymbol)
	_, err = export.Info(bad)
	require.ErrorIs(t, err, grammar.ErrInvalidSymbol)
}

func TestInfo_EmptyGrammar(t *testing.T) {
	out, err := export.Info(grammar.Grammar{})
	require.NoError(t, err)
	assert.Contains(t, out, "A =\n[]\n")
}

func ExampleDOT() {
	g := grammar.Grammar{Axiom: "A", Rules: map[rune]string{'A': "AB", 'B': "A"}}
	out, _ := export.DOT(g)
	fmt.Print(out)
	// Output:
	// digraph G {
	//     bgcolor=transparent;
	//     node[shape=square];
	//     v0[label="A",shape=square];
	//     v1[label="B",shape=square];
	//     v0 -> v0 [label=" 1"];
	//     v0 -> v1 [label=" 1"];
	//     v1 -> v0 [label=" 1"];
	// }
}

func ExampleInfo() {
	g := grammar.Grammar{Axiom: "A", Rules: map[rune]string{'A': "AB", 'B': "A"}}
	out, _ := export.Info(g)
	fmt.Print(out)
	// Output:
	// V = ['A' 'B']
	// ω = "A"
	// P = {
	//     'A' → "AB"
	//     'B' → "A"
	// }
	//
	// π =
	// [1, 0]
	//
	// A =
	// [1, 1]
	// [1, 0]
	//
	// π * A =
	// [1, 1]
}
