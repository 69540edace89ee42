// SPDX-License-Identifier: MIT

package grammar

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors shared by the length and growth engines.
var (
	// ErrInvalidArgument indicates a negative generation count.
	ErrInvalidArgument = errors.New("grammar: invalid argument")

	// ErrMissingRule indicates a symbol was treated as a variable but the
	// rules mapping has no entry for it. Unreachable for well-formed
	// grammars; engines fail fast when it happens anyway.
	ErrMissingRule = errors.New("grammar: missing rule")

	// ErrInvalidSymbol indicates an axiom or replacement that is not valid UTF-8.
	ErrInvalidSymbol = errors.New("grammar: invalid symbol")
)

// Grammar is a deterministic context-free L-system.
//
// Axiom is the generation-0 string. Rules maps a variable to its
// replacement. Name, Angle and Metadata are opaque to the engines and are
// only carried for renderers and exporters.
type Grammar struct {
	// Name identifies the grammar in logs, catalogs and diagnostics.
	Name string

	// Axiom is the initial symbol string.
	Axiom string

	// Rules maps each variable to its replacement string.
	Rules map[rune]string

	// Angle is the turtle turn angle in degrees (0 when unset).
	Angle float64

	// Metadata stores arbitrary renderer data. It is shallow-copied by Clone.
	Metadata map[string]any
}

// New returns a Grammar with the given axiom and rules.
// The rules map is used as-is; callers keep ownership.
func New(axiom string, rules map[rune]string) Grammar {
	return Grammar{Axiom: axiom, Rules: rules}
}

// Rule returns the replacement for x and whether x is a variable.
// Complexity: O(1).
func (g Grammar) Rule(x rune) (string, bool) {
	s, ok := g.Rules[x]

	return s, ok
}

// MustRule returns the replacement for x or a wrapped ErrMissingRule.
func (g Grammar) MustRule(x rune) (string, error) {
	s, ok := g.Rules[x]
	if !ok {
		return "", fmt.Errorf("rule %q: %w", x, ErrMissingRule)
	}

	return s, nil
}

// Validate reports ErrInvalidSymbol when the axiom or any replacement is
// not valid UTF-8. An empty or nil rules map is legal.
// Complexity: O(L).
func (g Grammar) Validate() error {
	if !utf8.ValidString(g.Axiom) {
		return fmt.Errorf("axiom: %w", ErrInvalidSymbol)
	}
	for _, x := range Variables(g) {
		if !utf8.ValidRune(x) {
			return fmt.Errorf("rule key %q: %w", x, ErrInvalidSymbol)
		}
		if !utf8.ValidString(g.Rules[x]) {
			return fmt.Errorf("rule %q: %w", x, ErrInvalidSymbol)
		}
	}

	return nil
}

// Clone returns a copy of g whose Rules map can be mutated independently.
// Metadata values are not deep-copied.
func (g Grammar) Clone() Grammar {
	out := g
	if g.Rules != nil {
		out.Rules = make(map[rune]string, len(g.Rules))
		for k, v := range g.Rules {
			out.Rules[k] = v
		}
	}
	if g.Metadata != nil {
		out.Metadata = make(map[string]any, len(g.Metadata))
		for k, v := range g.Metadata {
			out.Metadata[k] = v
		}
	}

	return out
}

// String renders the grammar as "name: axiom {x→s, ...}" in variable order.
func (g Grammar) String() string {
	var b []byte
	if g.Name != "" {
		b = append(b, g.Name...)
		b = append(b, ": "...)
	}
	b = append(b, fmt.Sprintf("%q {", g.Axiom)...)
	for i, x := range Variables(g) {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, fmt.Sprintf("%c→%q", x, g.Rules[x])...)
	}
	b = append(b, '}')

	return string(b)
}
