// Package grammar defines the D0L L-system data model and the symbol
// classifier shared by every other package in lsys.
//
// What:
//
//   - Grammar: an axiom (generation 0) plus per-symbol production rules.
//     Rendering metadata (Angle, Metadata) is carried untouched.
//   - Variables: symbols that own a rule, even when the rule is empty or
//     maps the symbol to itself.
//   - Constants: every other symbol that occurs in the axiom or in any
//     replacement. Constants rewrite to themselves.
//   - Alphabet: sorted(variables) ++ sorted(constants), in code-point order.
//
// Why:
//
//   - The alphabet order indexes the growth matrix and the diagram exports,
//     so it must be reproducible across runs and across packages.
//
// Errors:
//
//   - ErrInvalidArgument   a negative generation count was requested
//   - ErrMissingRule       a symbol treated as a variable has no rule
//   - ErrInvalidSymbol     axiom or replacement is not valid UTF-8
//
// Complexity:
//
//   - Variables:  O(R log R)
//   - Constants:  O(L + S log S), L = total symbol count, S = distinct symbols
//   - Alphabet:   O(L + S log S)
package grammar
