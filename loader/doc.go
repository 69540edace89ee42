// Package loader reads grammars from YAML, TOML or JSON documents.
//
// A grammar document has the fields name, axiom, angle, rules and metadata:
//
//	name: KochIsland
//	axiom: F-F-F-F
//	angle: 90
//	rules:
//	  F: F-F+F+FF-F-F+F
//
// A catalog document holds a list of grammar documents under "grammars".
// Every rule key must be exactly one symbol; a rule value may be empty.
package loader
