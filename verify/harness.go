// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/internal/logging"
)

// DefaultDepth is the default largest generation checked per grammar.
const DefaultDepth = 20

// Option configures a Harness.
type Option func(*Harness)

// WithDepth sets the largest n checked (n = 0..depth). Panics on depth < 0.
func WithDepth(depth int) Option {
	if depth < 0 {
		panic("verify: WithDepth(<0)")
	}
	return func(h *Harness) { h.depth = depth }
}

// WithRandomGrammars sets how many random grammars follow the curated set.
func WithRandomGrammars(count int) Option {
	if count < 0 {
		panic("verify: WithRandomGrammars(<0)")
	}
	return func(h *Harness) { h.random = count }
}

// WithSeed fixes the seed of the random grammars (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(h *Harness) { h.seed = seed }
}

// WithRandomSize sets the axiom and replacement length of random grammars.
func WithRandomSize(size int) Option {
	if size < 0 {
		panic("verify: WithRandomSize(<0)")
	}
	return func(h *Harness) { h.randomOpts.Size = size }
}

// WithRandomOptions overrides the shape of random grammars.
func WithRandomOptions(opts RandomOptions) Option {
	return func(h *Harness) { h.randomOpts = opts }
}

// WithOracle replaces the growth-matrix reference used by Run. Panics on nil.
func WithOracle(f OracleFunc) Option {
	if f == nil {
		panic("verify: WithOracle(nil)")
	}
	return func(h *Harness) { h.oracle = f }
}

// WithLogger routes progress and failures to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("verify: WithLogger(nil)")
	}
	return func(h *Harness) { h.logger = logger }
}

// WithRecorder installs a metrics Recorder. Panics on nil.
func WithRecorder(rec Recorder) Option {
	if rec == nil {
		panic("verify: WithRecorder(nil)")
	}
	return func(h *Harness) { h.rec = rec }
}

// Harness runs Check over curated and random grammars.
type Harness struct {
	depth      int
	random     int
	seed       int64
	randomOpts RandomOptions
	logger     *slog.Logger
	rec        Recorder
	oracle     OracleFunc
}

// Report summarizes a successful run.
type Report struct {
	Curated int // curated grammars checked
	Random  int // random grammars checked
	Checks  int // (grammar, n) pairs that agreed
	Depth   int // largest n per grammar
}

// NewHarness returns a Harness with DefaultDepth, no random grammars,
// the default seed, a discarding logger and no metrics.
func NewHarness(opts ...Option) *Harness {
	h := &Harness{
		depth:      DefaultDepth,
		randomOpts: DefaultRandomOptions(),
		logger:     logging.NewNop(),
		rec:        nopRecorder{},
		oracle:     GrowthOracle,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run checks every curated grammar, then the configured number of random
// grammars, and stops at the first error. A mismatch is logged at error
// level and returned as a *Mismatch (errors.Is(err, ErrMismatch) holds).
func (h *Harness) Run(curated []grammar.Grammar) (Report, error) {
	rep := Report{Depth: h.depth}

	for _, g := range curated {
		n, err := h.runOne(g)
		rep.Checks += n
		if err != nil {
			return rep, err
		}
		rep.Curated++
	}

	for i := 0; i < h.random; i++ {
		g, err := RandomGrammar(streamRNG(h.seed, i), h.randomOpts)
		if err != nil {
			return rep, err
		}
		g.Name = fmt.Sprintf("random-%d", i)
		n, err := h.runOne(g)
		rep.Checks += n
		if err != nil {
			return rep, err
		}
		rep.Random++
	}

	h.logger.Info("verification passed",
		"curated", rep.Curated,
		"random", rep.Random,
		"checks", rep.Checks,
		"depth", rep.Depth,
	)

	return rep, nil
}

func (h *Harness) runOne(g grammar.Grammar) (int, error) {
	n, err := check(g, h.depth, h.rec, h.oracle)
	if err != nil {
		h.logger.Error("verification failed", "grammar", name(g), "n", n, "error", err)
		return n, err
	}
	h.logger.Debug("grammar verified", "grammar", name(g), "depth", h.depth)

	return n, nil
}
