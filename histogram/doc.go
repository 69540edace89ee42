// Package histogram precomputes, for every distinct replacement string of a
// grammar (the axiom and each rule's right-hand side), the per-symbol counts,
// the number of constant occurrences and the set of variables it contains.
//
// The index is the look-up table the length engine decomposes over: the
// state space of a length query is (entry, depth), so the engine never
// touches an expanded string. Strings that are textually identical across
// rules share a single Entry and a single id.
//
// Complexity: Build is O(L) in the total length of the distinct strings,
// plus O(S log S) per entry to order its variable set.
package histogram
