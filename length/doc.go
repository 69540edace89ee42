// Package length computes the length of the string an L-system produces
// after n rewriting generations, without ever building that string.
//
// What:
//
//	For a replacement string s and remaining depth n > 0,
//
//	    length(s, n) = constantCount(s) + Σ_{x ∈ vars(s)} hist(s)[x] · length(rule(x), n-1)
//
//	and length(s, 0) = |s|. Rewriting is context-free and simultaneous, so
//	every occurrence of a variable grows independently of its position.
//
// How:
//
//	The state space is the finite set of (distinct replacement string, depth)
//	pairs: at most (1 + |rules|)·(n+1) keys, whatever the final length. Keys
//	are evaluated through an explicit LIFO work-list with a memo gate: the top
//	key is computed once all its depth-1 dependencies are cached, otherwise the
//	missing ones are pushed and the key is retried later. No native recursion
//	is involved, so n in the thousands cannot exhaust the goroutine stack.
//
// Numeric semantics:
//
//	All lengths are *big.Int. Growth rates above 1 exceed int64 within a few
//	dozen generations; wraparound would be a correctness defect.
//
// Errors:
//
//	ErrInvalidArgument   n < 0
//	ErrMissingRule       a symbol treated as a variable has no rule
//
// Complexity:
//
//	Length: O(D·n) key evaluations, D = number of distinct replacement strings;
//	memory O(D·(n+1)) cache entries.
package length
