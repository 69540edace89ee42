// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lsys/grammar"
)

var (
	// ErrNeedRandSource indicates RandomGrammar was called with a nil *rand.Rand.
	ErrNeedRandSource = errors.New("verify: rng is required")

	// ErrBadRandomOptions indicates RandomOptions outside their domain.
	ErrBadRandomOptions = errors.New("verify: invalid random grammar options")
)

const methodRandomGrammar = "RandomGrammar"

// Default symbol pools for random grammars.
const (
	DefaultLetters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultControls = "+-[]"
)

// RandomOptions shapes a random grammar.
type RandomOptions struct {
	// Letters is the pool of symbols that may become variables.
	Letters string

	// Controls are bracket/turn symbols; they appear in replacements but
	// never receive a rule.
	Controls string

	// Size is the symbol count of the axiom and of every replacement.
	Size int

	// Variables is how many distinct letters receive a rule.
	// A negative value means len(Letters)-1, leaving one letter constant.
	Variables int
}

// DefaultRandomOptions mirrors the classic stress shape: 52 letters, 51 of
// them variables, four control symbols, strings of length 10.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Letters:   DefaultLetters,
		Controls:  DefaultControls,
		Size:      10,
		Variables: -1,
	}
}

// RandomGrammar draws a grammar from rng.
//
// Implementation:
//   - Stage 1: validate options; Letters and Controls must be disjoint.
//   - Stage 2: axiom = Size letters drawn with replacement.
//   - Stage 3: pick Variables distinct letters (partial Fisher–Yates); each gets
//     a replacement of Size symbols drawn from Letters ∪ Controls.
//
// Determinism: fixed draw order for a given rng state.
// Complexity: O(|Letters| + Variables·Size).
func RandomGrammar(rng *rand.Rand, opts RandomOptions) (grammar.Grammar, error) {
	if rng == nil {
		return grammar.Grammar{}, fmt.Errorf("%s: %w", methodRandomGrammar, ErrNeedRandSource)
	}
	letters := []rune(opts.Letters)
	controls := []rune(opts.Controls)
	if len(letters) == 0 || opts.Size < 0 {
		return grammar.Grammar{}, fmt.Errorf("%s: letters=%d size=%d: %w",
			methodRandomGrammar, len(letters), opts.Size, ErrBadRandomOptions)
	}
	for _, c := range controls {
		if strings.ContainsRune(opts.Letters, c) {
			return grammar.Grammar{}, fmt.Errorf("%s: control %q is also a letter: %w",
				methodRandomGrammar, c, ErrBadRandomOptions)
		}
	}
	nvars := opts.Variables
	if nvars < 0 {
		nvars = len(letters) - 1
	}
	if nvars > len(letters) {
		return grammar.Grammar{}, fmt.Errorf("%s: variables=%d > letters=%d: %w",
			methodRandomGrammar, nvars, len(letters), ErrBadRandomOptions)
	}

	g := grammar.Grammar{
		Axiom: chooseRepeat(rng, letters, opts.Size),
		Rules: make(map[rune]string, nvars),
	}

	pool := append([]rune(nil), letters...)
	for i := 0; i < nvars; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	all := append(append([]rune(nil), letters...), controls...)
	for _, v := range pool[:nvars] {
		g.Rules[v] = chooseRepeat(rng, all, opts.Size)
	}

	return g, nil
}

// chooseRepeat draws n symbols from xs with replacement.
func chooseRepeat(rng *rand.Rand, xs []rune, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(xs[rng.Intn(len(xs))])
	}

	return b.String()
}
