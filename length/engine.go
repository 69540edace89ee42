// SPDX-License-Identifier: MIT

package length

import (
	"fmt"
	"math/big"
	"slices"
	"sync"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/histogram"
)

// key addresses one memo cell: entry id and remaining generations.
type key struct {
	id    int
	depth int
}

// dep is one distinct dependency of an entry: the entry id of rule(x) and
// the number of occurrences contributing to it. Variables whose rules share
// a text are merged into one dep.
type dep struct {
	id    int
	count *big.Int
}

// memo is the cache of a single query (or of one Engine with reuse on).
type memo struct {
	values map[key]*big.Int
}

// Engine evaluates length(g, n) for one grammar. The histogram index and
// the dependency table are derived once in New and shared by all queries.
type Engine struct {
	idx       *histogram.Index
	deps      [][]dep    // deps[id] lists the depth-1 dependencies of entry id
	constants []*big.Int // constants[id] = constantCount(entry id)
	opts      options

	cacheMu sync.Mutex // guards shared when reuseCache is on
	shared  *memo

	statsMu sync.Mutex
	stats   Stats
}

// New prepares an Engine for g.
//
// Implementation:
//   - Stage 1: build (or adopt) the histogram index.
//   - Stage 2: resolve, for every entry, the entry ids of rule(x) for each of
//     its variables, merging variables whose rules have the same text.
//
// Errors:
//   - ErrMissingRule when an entry names a variable g has no rule for, or the
//     rule's text is not present in a caller-supplied index.
//   - ErrIndexMismatch when a caller-supplied index has another axiom, maps a
//     variable to another text, or classifies some symbol differently than g.
//
// Complexity: O(L + D·V).
func New(g grammar.Grammar, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	idx := o.index
	if idx == nil {
		idx = histogram.Build(g)
	}

	e := &Engine{
		idx:       idx,
		deps:      make([][]dep, idx.Len()),
		constants: make([]*big.Int, idx.Len()),
		opts:      o,
	}
	for id := 0; id < idx.Len(); id++ {
		entry := idx.Entry(id)
		e.constants[id] = big.NewInt(entry.ConstantCount)

		pos := make(map[int]int, len(entry.Variables)) // dep id -> slot in e.deps[id]
		for _, x := range entry.Variables {
			text, err := g.MustRule(x)
			if err != nil {
				return nil, fmt.Errorf("%s: entry %q: %w", opNew, entry.Text, err)
			}
			rid, ok := idx.Lookup(text)
			if !ok {
				return nil, fmt.Errorf("%s: rule %q → %q not indexed: %w", opNew, x, text, ErrMissingRule)
			}
			if slot, seen := pos[rid]; seen {
				e.deps[id][slot].count.Add(e.deps[id][slot].count, big.NewInt(entry.Count(x)))
				continue
			}
			pos[rid] = len(e.deps[id])
			e.deps[id] = append(e.deps[id], dep{id: rid, count: big.NewInt(entry.Count(x))})
		}
	}
	if o.index != nil {
		if err := checkIndex(g, idx); err != nil {
			return nil, err
		}
	}
	if o.reuseCache {
		e.shared = e.newMemo()
	}

	return e, nil
}

// checkIndex verifies that idx was built from g: same axiom text, each
// variable's rule id pointing at g's replacement, and every indexed symbol
// listed as a variable exactly when g has a rule for it.
// Complexity: O(V + Σ |histogram|·log V).
func checkIndex(g grammar.Grammar, idx *histogram.Index) error {
	if text := idx.Entry(idx.AxiomID()).Text; text != g.Axiom {
		return fmt.Errorf("%s: axiom %q, index axiom %q: %w", opNew, g.Axiom, text, ErrIndexMismatch)
	}
	for _, x := range grammar.Variables(g) {
		id, err := idx.RuleID(x)
		if err != nil {
			return fmt.Errorf("%s: variable %q not in index: %w", opNew, x, ErrIndexMismatch)
		}
		if text := idx.Entry(id).Text; text != g.Rules[x] {
			return fmt.Errorf("%s: rule %q → %q, index has %q: %w", opNew, x, g.Rules[x], text, ErrIndexMismatch)
		}
	}
	for _, entry := range idx.Entries() {
		for r := range entry.Histogram {
			_, listed := slices.BinarySearch(entry.Variables, r)
			if listed != grammar.IsVariable(g, r) {
				return fmt.Errorf("%s: symbol %q in %q classified differently: %w", opNew, r, entry.Text, ErrIndexMismatch)
			}
		}
	}

	return nil
}

// Length returns the length of the string obtained by rewriting the axiom
// n times. n == 0 returns |axiom| without consulting any rule.
// The result is a fresh *big.Int owned by the caller.
func (e *Engine) Length(n int) (*big.Int, error) {
	if n < 0 {
		return nil, lengthErrorf(opLength, n, ErrInvalidArgument)
	}
	axiom := e.idx.AxiomID()
	if n == 0 {
		return big.NewInt(int64(e.idx.Entry(axiom).Length)), nil
	}

	m, release := e.acquire()
	defer release()

	st := Stats{Entries: e.idx.Len()}
	v := e.solve(m, key{id: axiom, depth: n}, &st)
	st.CacheSize = len(m.values)
	e.setStats(st)

	return new(big.Int).Set(v), nil
}

// Lengths returns the lengths for generations 0..n, sharing one cache
// across the whole sequence.
func (e *Engine) Lengths(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, lengthErrorf(opLengths, n, ErrInvalidArgument)
	}

	m, release := e.acquire()
	defer release()

	axiom := e.idx.AxiomID()
	st := Stats{Entries: e.idx.Len()}
	out := make([]*big.Int, n+1)
	for depth := 0; depth <= n; depth++ {
		out[depth] = new(big.Int).Set(e.solve(m, key{id: axiom, depth: depth}, &st))
	}
	st.CacheSize = len(m.values)
	e.setStats(st)

	return out, nil
}

// Stats returns the statistics of the most recent Length or Lengths call.
func (e *Engine) Stats() Stats {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()

	return e.stats
}

// Entries returns D, the number of distinct replacement strings.
func (e *Engine) Entries() int { return e.idx.Len() }

func (e *Engine) setStats(st Stats) {
	e.statsMu.Lock()
	e.stats = st
	e.statsMu.Unlock()
}

// acquire returns the cache for one query and its release function.
func (e *Engine) acquire() (*memo, func()) {
	if !e.opts.reuseCache {
		return e.newMemo(), func() {}
	}
	e.cacheMu.Lock()

	return e.shared, e.cacheMu.Unlock
}

// newMemo returns a cache pre-seeded with (s, 0) → |s| for every entry.
func (e *Engine) newMemo() *memo {
	m := &memo{values: make(map[key]*big.Int, e.idx.Len())}
	for id := 0; id < e.idx.Len(); id++ {
		m.values[key{id: id, depth: 0}] = big.NewInt(int64(e.idx.Entry(id).Length))
	}

	return m
}

// solve evaluates target through an explicit LIFO work-list.
//
// Implementation:
//   - Peek the top key k. If cached, pop it.
//   - Otherwise push every dependency (rule(x), depth-1) absent from the
//     cache and leave k in place; once none is missing, compute k from the
//     cached dependencies, store it and pop it.
//
// Every key is computed exactly once. Depth 0 is pre-seeded, so uncached
// keys always have depth >= 1 and dependency depths never go negative.
// Dependencies of a key sit strictly deeper in the stack than any sibling
// of equal depth, so a pending key is never pushed twice.
func (e *Engine) solve(m *memo, target key, st *Stats) *big.Int {
	stack := []key{target}
	tmp := new(big.Int)

	for len(stack) > 0 {
		if len(stack) > st.MaxWorklist {
			st.MaxWorklist = len(stack)
		}
		k := stack[len(stack)-1]
		if _, ok := m.values[k]; ok {
			stack = stack[:len(stack)-1]
			continue
		}

		missing := false
		for _, d := range e.deps[k.id] {
			dk := key{id: d.id, depth: k.depth - 1}
			if _, ok := m.values[dk]; !ok {
				stack = append(stack, dk)
				missing = true
			}
		}
		if missing {
			continue
		}

		sum := new(big.Int).Set(e.constants[k.id])
		for _, d := range e.deps[k.id] {
			tmp.Mul(d.count, m.values[key{id: d.id, depth: k.depth - 1}])
			sum.Add(sum, tmp)
		}
		m.values[k] = sum
		st.Evaluations++
		stack = stack[:len(stack)-1]
	}

	return m.values[target]
}

// Length is a convenience wrapper: New(g) followed by Length(n) with a
// query-scoped cache.
func Length(g grammar.Grammar, n int) (*big.Int, error) {
	if n < 0 {
		return nil, lengthErrorf(opLength, n, ErrInvalidArgument)
	}
	e, err := New(g)
	if err != nil {
		return nil, err
	}

	return e.Length(n)
}
