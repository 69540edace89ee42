// SPDX-License-Identifier: MIT

package grammar

import "slices"

// Variables returns the key set of g.Rules in code-point order.
// A symbol is a variable iff it has a rule, whatever that rule maps to.
// Complexity: O(R log R).
func Variables(g Grammar) []rune {
	vs := make([]rune, 0, len(g.Rules))
	for x := range g.Rules {
		vs = append(vs, x)
	}
	slices.Sort(vs)

	return vs
}

// Constants returns every symbol that occurs in the axiom or in any
// replacement but has no rule, in code-point order.
// Complexity: O(L + S log S).
func Constants(g Grammar) []rune {
	seen := make(map[rune]struct{})
	collect := func(s string) {
		for _, r := range s {
			if _, isVar := g.Rules[r]; isVar {
				continue
			}
			seen[r] = struct{}{}
		}
	}
	collect(g.Axiom)
	for _, s := range g.Rules {
		collect(s)
	}

	cs := make([]rune, 0, len(seen))
	for r := range seen {
		cs = append(cs, r)
	}
	slices.Sort(cs)

	return cs
}

// Alphabet returns sorted(Variables(g)) ++ sorted(Constants(g)).
// The two halves are disjoint, so the result has no duplicates.
func Alphabet(g Grammar) []rune {
	vs := Variables(g)
	cs := Constants(g)
	ab := make([]rune, 0, len(vs)+len(cs))
	ab = append(ab, vs...)

	return append(ab, cs...)
}

// IsVariable reports whether x has a rule in g.
func IsVariable(g Grammar, x rune) bool {
	_, ok := g.Rules[x]

	return ok
}

// IndexOf maps each symbol of alphabet to its position.
// Used by the growth matrix and exporters to address rows and columns.
func IndexOf(alphabet []rune) map[rune]int {
	idx := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		idx[r] = i
	}

	return idx
}
