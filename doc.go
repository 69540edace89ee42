// Package lsys computes exact string lengths of deterministic L-systems
// without ever building the strings.
//
// 🚀 What is lsys?
//
//	A small big-integer toolkit that brings together:
//		• Grammars: axiom + rules, variable/constant classification, alphabet order
//		• Histograms: one interned symbol count per distinct replacement string
//		• Length: memoized (string, depth) recursion on an explicit work-list
//		• Growth: exact growth-matrix powers, sum(π·Aⁿ), used as an oracle
//		• Verify: curated + seeded random grammars, both methods must agree
//
// ✨ Why lsys?
//
//   - Exact: every count is a *big.Int, nothing overflows
//   - No recursion limits: depth 10 000 runs on a heap work-list
//   - Pure engines: no I/O, no globals, safe for concurrent use
//
// Everything is organized under these packages:
//
//	grammar/   Grammar type, Variables, Constants, Alphabet
//	histogram/ Index of distinct strings and their symbol histograms
//	length/    memoized length engine
//	matrix/    dense *big.Int matrices: Mul, Pow, VecMul
//	growth/    growth matrix, start vector, MatrixLength
//	verify/    cross-check harness and random grammars
//	catalog/   embedded named grammars
//	loader/    YAML / TOML / JSON grammar documents
//	export/    Graphviz DOT, Mermaid and text reports
//	cmd/lsys/  command-line front end
//
// Quick example (Koch island):
//
//	ω = F-F-F-F        F → F-F+F+FF-F-F+F
//
//	length(0) = 7, length(1) = 59, length(2) = 475
//
//	go install github.com/katalvlaran/lsys/cmd/lsys@latest
package lsys
