// SPDX-License-Identifier: MIT

package histogram

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/katalvlaran/lsys/grammar"
)

// ErrMissingRule is re-exported so callers of RuleID can match it directly.
var ErrMissingRule = grammar.ErrMissingRule

// Entry is the immutable summary of one replacement string.
type Entry struct {
	// Text is the replacement string this entry summarizes.
	Text string

	// Length is the number of symbols in Text (not bytes).
	Length int

	// Histogram maps each symbol of Text to its occurrence count.
	Histogram map[rune]int64

	// ConstantCount is the sum of Histogram restricted to constants.
	ConstantCount int64

	// Variables lists the distinct variables of Text in code-point order.
	Variables []rune
}

// Count returns the number of occurrences of r in the entry.
func (e *Entry) Count(r rune) int64 { return e.Histogram[r] }

// Index maps every distinct replacement string of a grammar to its Entry.
// Ids are dense: 0 is always the axiom, the rest follow variable order.
type Index struct {
	entries []*Entry
	byText  map[string]int
	ruleIDs map[rune]int
	axiom   int
}

// Build summarizes the axiom and every rule of g.
//
// Implementation:
//   - Stage 1: intern the axiom, then each rule text in variable order.
//   - Stage 2: for each new text, count symbols and split variables from constants.
//
// Empty axiom or empty replacements produce zero-valued entries.
// Complexity: O(L + Σ S log S).
func Build(g grammar.Grammar) *Index {
	idx := &Index{
		byText:  make(map[string]int, len(g.Rules)+1),
		ruleIDs: make(map[rune]int, len(g.Rules)),
	}
	idx.axiom = idx.intern(g, g.Axiom)
	for _, x := range grammar.Variables(g) {
		idx.ruleIDs[x] = idx.intern(g, g.Rules[x])
	}

	return idx
}

// intern returns the id of s, creating its Entry on first sight.
func (idx *Index) intern(g grammar.Grammar, s string) int {
	if id, ok := idx.byText[s]; ok {
		return id
	}

	e := &Entry{
		Text:      s,
		Length:    utf8.RuneCountInString(s),
		Histogram: make(map[rune]int64),
	}
	for _, r := range s {
		e.Histogram[r]++
	}
	for r, n := range e.Histogram {
		if grammar.IsVariable(g, r) {
			e.Variables = append(e.Variables, r)
			continue
		}
		e.ConstantCount += n
	}
	slices.Sort(e.Variables)

	id := len(idx.entries)
	idx.entries = append(idx.entries, e)
	idx.byText[s] = id

	return id
}

// Len returns the number of distinct replacement strings (D).
func (idx *Index) Len() int { return len(idx.entries) }

// AxiomID returns the id of the axiom entry.
func (idx *Index) AxiomID() int { return idx.axiom }

// Entry returns the entry with the given id. Panics on an id not issued by
// this index; ids only come from AxiomID, RuleID and Lookup.
func (idx *Index) Entry(id int) *Entry { return idx.entries[id] }

// Lookup returns the id of the entry whose text is s.
func (idx *Index) Lookup(s string) (int, bool) {
	id, ok := idx.byText[s]

	return id, ok
}

// RuleID returns the id of the entry for rule(x), or ErrMissingRule when x
// has no rule in the grammar the index was built from.
func (idx *Index) RuleID(x rune) (int, error) {
	id, ok := idx.ruleIDs[x]
	if !ok {
		return 0, fmt.Errorf("histogram: RuleID(%q): %w", x, ErrMissingRule)
	}

	return id, nil
}

// Entries returns all entries in id order. The slice is a copy; entries are shared.
func (idx *Index) Entries() []*Entry {
	return slices.Clone(idx.entries)
}
