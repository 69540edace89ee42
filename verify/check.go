// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/growth"
	"github.com/katalvlaran/lsys/length"
)

// ErrMismatch indicates the two engines disagree for some (grammar, n).
var ErrMismatch = errors.New("verify: length engines disagree")

// Method labels used by Recorder and logs.
const (
	MethodMemo   = "memo"
	MethodMatrix = "matrix"
)

// Recorder receives timing and outcome observations from checks.
// internal/metrics provides a Prometheus-backed implementation.
type Recorder interface {
	ObserveComputation(method string, d time.Duration)
	ObserveCheck(ok bool)
}

// nopRecorder discards everything.
type nopRecorder struct{}

func (nopRecorder) ObserveComputation(string, time.Duration) {}
func (nopRecorder) ObserveCheck(bool)                        {}

// Oracle is the reference side of a check: the length after n rewrites.
// *growth.Engine satisfies it.
type Oracle interface {
	MatrixLength(n int) (*big.Int, error)
}

// OracleFunc builds the Oracle for one grammar.
type OracleFunc func(g grammar.Grammar) (Oracle, error)

// GrowthOracle is the default OracleFunc: the growth-matrix engine.
func GrowthOracle(g grammar.Grammar) (Oracle, error) {
	e, err := growth.New(g)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Mismatch describes one disagreement; it unwraps to ErrMismatch.
type Mismatch struct {
	Grammar string
	N       int
	Memo    *big.Int
	Matrix  *big.Int
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("verify: %s at n=%d: length=%d matrix_length=%d", m.Grammar, m.N, m.Memo, m.Matrix)
}

// Unwrap lets errors.Is(err, ErrMismatch) match.
func (m *Mismatch) Unwrap() error { return ErrMismatch }

// Check compares length.Length and growth.MatrixLength for n = 0..depth.
// The first disagreement is returned as a *Mismatch.
func Check(g grammar.Grammar, depth int) error {
	_, err := check(g, depth, nopRecorder{}, GrowthOracle)

	return err
}

// check runs one grammar and reports the number of pairs that agreed.
func check(g grammar.Grammar, depth int, rec Recorder, newOracle OracleFunc) (int, error) {
	if depth < 0 {
		return 0, fmt.Errorf("verify: depth=%d: %w", depth, grammar.ErrInvalidArgument)
	}
	if err := g.Validate(); err != nil {
		return 0, err
	}
	memo, err := length.New(g, length.WithCacheReuse())
	if err != nil {
		return 0, err
	}
	oracle, err := newOracle(g)
	if err != nil {
		return 0, err
	}

	for n := 0; n <= depth; n++ {
		start := time.Now()
		want, err := memo.Length(n)
		if err != nil {
			return n, err
		}
		rec.ObserveComputation(MethodMemo, time.Since(start))

		start = time.Now()
		got, err := oracle.MatrixLength(n)
		if err != nil {
			return n, err
		}
		rec.ObserveComputation(MethodMatrix, time.Since(start))

		ok := want.Cmp(got) == 0
		rec.ObserveCheck(ok)
		if !ok {
			return n, &Mismatch{Grammar: name(g), N: n, Memo: want, Matrix: got}
		}
	}

	return depth + 1, nil
}

func name(g grammar.Grammar) string {
	if g.Name != "" {
		return g.Name
	}

	return g.String()
}
