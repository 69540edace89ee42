// Package growth computes L-system string lengths by exact matrix
// exponentiation. It is the independent oracle for package length and a
// benchmarking baseline; it is not meant for production queries.
//
// Model:
//
//	Let V be the alphabet (grammar.Alphabet). The growth matrix A is |V|×|V|:
//	row i counts the symbols of rule(V[i]) when V[i] is a variable, and is the
//	identity row when V[i] is a constant (constants are fixed points). The
//	start vector π is the histogram of the axiom over V. Then
//
//	    matrix_length(n) = Σ_j (π · Aⁿ)_j
//
// Arithmetic is exact (*big.Int end to end, via package matrix); Aⁿ is
// obtained by square-and-multiply.
//
// Complexity:
//
//	New:          O(L + |V|²)
//	MatrixLength: O(|V|³ log n)
package growth
