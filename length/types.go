// SPDX-License-Identifier: MIT

package length

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lsys/grammar"
	"github.com/katalvlaran/lsys/histogram"
)

// Sentinel errors, shared with the growth package through grammar so that
// callers can match either engine with the same errors.Is check.
var (
	// ErrInvalidArgument is returned for a negative generation count.
	ErrInvalidArgument = grammar.ErrInvalidArgument

	// ErrMissingRule is returned when a variable's rule cannot be resolved.
	ErrMissingRule = grammar.ErrMissingRule

	// ErrIndexMismatch indicates a WithIndex index that was not built from
	// the grammar passed to New: different axiom, rule texts or variable set.
	ErrIndexMismatch = errors.New("length: index does not match grammar")
)

// Operation tags for error wrapping.
const (
	opNew     = "length.New"
	opLength  = "length.Length"
	opLengths = "length.Lengths"
)

// lengthErrorf wraps err with an operation tag and the requested depth.
func lengthErrorf(op string, n int, err error) error {
	return fmt.Errorf("%s(n=%d): %w", op, n, err)
}

// Option configures an Engine.
type Option func(*options)

// options holds Engine settings.
type options struct {
	reuseCache bool             // keep the memo cache across queries
	index      *histogram.Index // precomputed index; nil builds one
}

// defaultOptions returns a per-query cache and a freshly built index.
func defaultOptions() options {
	return options{}
}

// WithCacheReuse keeps the memo cache inside the Engine so later queries
// reuse earlier results. Queries are then serialized by a mutex.
// Without it, every query owns a private cache and queries may run in parallel.
func WithCacheReuse() Option {
	return func(o *options) { o.reuseCache = true }
}

// WithIndex supplies a histogram index built earlier for the same grammar,
// so one index can back several engines. The index must describe the grammar
// passed to New: a rule it references but the grammar lacks yields
// ErrMissingRule, any other difference yields ErrIndexMismatch.
func WithIndex(idx *histogram.Index) Option {
	return func(o *options) { o.index = idx }
}

// Stats describes the work done by the most recent query.
type Stats struct {
	// Entries is the number of distinct replacement strings (D).
	Entries int

	// CacheSize is the number of (string, depth) keys held after the query.
	CacheSize int

	// Evaluations counts keys computed by the query (cache hits excluded).
	Evaluations int

	// MaxWorklist is the largest work-list depth reached.
	MaxWorklist int
}
