// Package matrix provides exact dense matrices over arbitrary-precision
// integers (*big.Int) and the handful of kernels the growth-matrix oracle
// needs: multiplication, exponentiation by squaring and row-vector products.
//
// Why exact:
//
//	Growth matrices of L-systems raise small integer counts to powers in the
//	tens or hundreds. float64 silently loses precision after 2^53 and int64
//	wraps after 2^63; both are correctness defects here, so every cell is a
//	*big.Int and no kernel ever converts to a fixed-width type.
//
// Layout:
//
//	Dense stores r*c cells in a flat row-major slice (offset = i*c + j).
//	Zero-sized shapes (0×0) are legal: an empty alphabet yields an empty
//	growth matrix and a zero length.
//
// Errors:
//
//	ErrInvalidDimensions  negative rows or cols
//	ErrOutOfRange         At/Set index outside the shape
//	ErrDimensionMismatch  Mul/VecMul operands do not conform
//	ErrNonSquare          Pow on a non-square matrix
//	ErrNilMatrix          nil receiver or operand
//	ErrNegativeExponent   Pow with k < 0
//
// Complexity:
//
//	Mul:    O(n·m·p) big-integer multiply-adds
//	Pow:    O(n³ log k)
//	VecMul: O(r·c)
package matrix
