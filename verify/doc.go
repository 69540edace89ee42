// Package verify cross-checks the memoized length engine against the
// growth-matrix oracle. It is the acceptance oracle of the module: any
// disagreement between the two methods for any (grammar, n) pair is a defect
// in one of them and aborts the run with ErrMismatch.
//
// What:
//
//   - Check:          both engines over n = 0..depth for one grammar.
//   - RandomGrammar:  seeded random grammars whose replacements mix letters
//     with bracket/turn control symbols that are never variables.
//   - Harness:        curated grammars plus a batch of random ones, with
//     structured logging and an optional metrics Recorder.
//
// Determinism:
//
//   - Same seed ⇒ same random grammars. Seed 0 maps to a fixed default seed.
//   - *rand.Rand is not goroutine-safe; a Harness derives its own stream.
package verify
