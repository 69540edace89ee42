// SPDX-License-Identifier: MIT

// Package export renders a grammar's symbol dependency graph and growth data
// as Graphviz DOT, Mermaid flowcharts and plain-text reports.
//
// Symbols become nodes v0..vk in alphabet order (variables first); each
// variable vi has an edge vi -> vj labeled k when symbol j occurs k times in
// rule(vi). Constants are drawn filled light grey.
package export

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/growth"
	"github.com/katalvlaran/lsys/matrix"
)

const indent = "    "

// edge is one non-zero growth-matrix entry.
type edge struct {
	from, to int
	count    *big.Int
}

// view is the shared input of every renderer.
type view struct {
	alphabet []rune
	nvars    int
	edges    []edge
	engine   *growth.Engine
}

func newView(g grammar.Grammar) (*view, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	e, err := growth.New(g)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	v := &view{alphabet: e.Alphabet(), nvars: e.Variables(), engine: e}

	a := e.Matrix()
	for i := 0; i < v.nvars; i++ {
		for j := range v.alphabet {
			k, err := a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("export: %w", err)
			}
			if k.Sign() != 0 {
				v.edges = append(v.edges, edge{from: i, to: j, count: k})
			}
		}
	}

	return v, nil
}

func nodeID(i int) string { return fmt.Sprintf("v%d", i) }

// DOT renders g as a Graphviz digraph.
func DOT(g grammar.Grammar) (string, error) {
	v, err := newView(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString(indent + "bgcolor=transparent;\n")
	sb.WriteString(indent + "node[shape=square];\n")
	for i, r := range v.alphabet {
		attrs := fmt.Sprintf("label=%s,shape=square", dotQuote(r))
		if i >= v.nvars {
			attrs += ",style=filled,color=lightgrey"
		}
		fmt.Fprintf(&sb, "%s%s[%s];\n", indent, nodeID(i), attrs)
	}
	for _, e := range v.edges {
		fmt.Fprintf(&sb, "%s%s -> %s [label=\" %d\"];\n", indent, nodeID(e.from), nodeID(e.to), e.count)
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}

// Mermaid renders g as a Mermaid flowchart.
func Mermaid(g grammar.Grammar) (string, error) {
	v, err := newView(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for i, r := range v.alphabet {
		opener, closer := "[", "]"
		if i >= v.nvars {
			opener, closer = "([", "])" // Stadium for constants
		}
		fmt.Fprintf(&sb, "%s%s%s\"%s\"%s\n", indent, nodeID(i), opener, mermaidLabel(r), closer)
	}
	for _, e := range v.edges {
		fmt.Fprintf(&sb, "%s%s -- \"%d\" --> %s\n", indent, nodeID(e.from), e.count, nodeID(e.to))
	}
	if len(v.alphabet) > v.nvars {
		ids := make([]string, 0, len(v.alphabet)-v.nvars)
		for i := v.nvars; i < len(v.alphabet); i++ {
			ids = append(ids, nodeID(i))
		}
		sb.WriteString("\n" + indent + "classDef constant fill:#d3d3d3,stroke:#999,color:#000;\n")
		fmt.Fprintf(&sb, "%sclass %s constant;\n", indent, strings.Join(ids, ","))
	}

	return sb.String(), nil
}

// Info renders V, ω, P, π, A and π·A as text.
func Info(g grammar.Grammar) (string, error) {
	v, err := newView(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "V = %q\n", v.alphabet)
	fmt.Fprintf(&sb, "ω = %q\n", g.Axiom)
	sb.WriteString("P = {\n")
	for _, x := range v.alphabet[:v.nvars] {
		fmt.Fprintf(&sb, "%s%q → %q\n", indent, x, g.Rules[x])
	}
	sb.WriteString("}\n\n")

	step, err := v.engine.Step()
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(&sb, "π =\n%s\n\n", formatVec(v.engine.Start()))
	fmt.Fprintf(&sb, "A =\n%s\n", formatMatrix(v.engine.Matrix()))
	fmt.Fprintf(&sb, "π * A =\n%s\n", formatVec(step))

	return sb.String(), nil
}

func formatVec(x []*big.Int) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = v.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatMatrix(a *matrix.Dense) string {
	if a.Rows() == 0 {
		return "[]\n"
	}

	return a.String()
}

// dotQuote quotes a symbol as a DOT string ID.
func dotQuote(r rune) string {
	switch r {
	case '"', '\\':
		return `"\` + string(r) + `"`
	default:
		return `"` + string(r) + `"`
	}
}

// mermaidLabel escapes a symbol for a quoted Mermaid label.
func mermaidLabel(r rune) string {
	switch r {
	case '"':
		return "#quot;"
	case '#':
		return "#35;"
	default:
		return string(r)
	}
}
