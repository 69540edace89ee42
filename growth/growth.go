// SPDX-License-Identifier: MIT

package growth

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/matrix"
)

// Sentinel errors shared with package length.
var (
	// ErrInvalidArgument is returned for a negative generation count.
	ErrInvalidArgument = grammar.ErrInvalidArgument

	// ErrMissingRule is returned when a variable row has no rule to count.
	ErrMissingRule = grammar.ErrMissingRule
)

const (
	opNew          = "growth.New"
	opMatrixLength = "growth.MatrixLength"
	opStep         = "growth.Step"
)

// Engine holds the growth matrix A and the start vector π of one grammar.
// It is immutable after New and safe for concurrent use.
type Engine struct {
	alphabet []rune
	nvars    int
	a        *matrix.Dense
	pi       []*big.Int
}

// New builds A and π for g over grammar.Alphabet(g).
//
// Implementation:
//   - Stage 1: derive the alphabet and its index.
//   - Stage 2: fill variable rows from rule histograms, constant rows with 1 on the diagonal.
//   - Stage 3: count the axiom over the alphabet into π.
//
// Errors:
//   - ErrMissingRule if a variable row cannot be resolved.
func New(g grammar.Grammar) (*Engine, error) {
	vars := grammar.Variables(g)
	ab := grammar.Alphabet(g)
	pos := grammar.IndexOf(ab)

	a, err := matrix.NewDense(len(ab), len(ab))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	counts := make([]int64, len(ab))
	for i, vi := range ab {
		if i >= len(vars) {
			if err = a.SetInt64(i, i, 1); err != nil {
				return nil, fmt.Errorf("%s: %w", opNew, err)
			}
			continue
		}
		rule, err := g.MustRule(vi)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opNew, err)
		}
		clear(counts)
		for _, r := range rule {
			counts[pos[r]]++
		}
		for j, c := range counts {
			if c == 0 {
				continue
			}
			if err = a.SetInt64(i, j, c); err != nil {
				return nil, fmt.Errorf("%s: %w", opNew, err)
			}
		}
	}

	pi := make([]*big.Int, len(ab))
	for j := range pi {
		pi[j] = new(big.Int)
	}
	for _, r := range g.Axiom {
		pi[pos[r]].Add(pi[pos[r]], big.NewInt(1))
	}

	return &Engine{alphabet: ab, nvars: len(vars), a: a, pi: pi}, nil
}

// Alphabet returns a copy of the alphabet indexing rows and columns.
func (e *Engine) Alphabet() []rune { return append([]rune(nil), e.alphabet...) }

// Variables returns how many leading alphabet symbols are variables.
func (e *Engine) Variables() int { return e.nvars }

// Matrix returns a copy of the growth matrix A.
func (e *Engine) Matrix() *matrix.Dense { return e.a.Clone() }

// Start returns a copy of the start vector π.
func (e *Engine) Start() []*big.Int { return copyVec(e.pi) }

// Step returns π·A: the symbol histogram after one generation.
func (e *Engine) Step() ([]*big.Int, error) {
	y, err := matrix.VecMul(e.pi, e.a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opStep, err)
	}

	return y, nil
}

// Histogram returns π·Aⁿ: how many times each alphabet symbol occurs after n generations.
func (e *Engine) Histogram(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(n=%d): %w", opMatrixLength, n, ErrInvalidArgument)
	}
	an, err := matrix.Pow(e.a, n)
	if err != nil {
		return nil, fmt.Errorf("%s(n=%d): %w", opMatrixLength, n, err)
	}
	y, err := matrix.VecMul(e.pi, an)
	if err != nil {
		return nil, fmt.Errorf("%s(n=%d): %w", opMatrixLength, n, err)
	}

	return y, nil
}

// MatrixLength returns sum(π·Aⁿ), the length after n generations.
// n < 0 fails with ErrInvalidArgument.
func (e *Engine) MatrixLength(n int) (*big.Int, error) {
	y, err := e.Histogram(n)
	if err != nil {
		return nil, err
	}

	return matrix.SumVec(y), nil
}

// MatrixLength is a convenience wrapper: New(g) followed by MatrixLength(n).
func MatrixLength(g grammar.Grammar, n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(n=%d): %w", opMatrixLength, n, ErrInvalidArgument)
	}
	e, err := New(g)
	if err != nil {
		return nil, err
	}

	return e.MatrixLength(n)
}

func copyVec(x []*big.Int) []*big.Int {
	out := make([]*big.Int, len(x))
	for i, v := range x {
		out[i] = new(big.Int).Set(v)
	}

	return out
}
