// SPDX-License-Identifier: MIT
// Package matrix provides the exact kernels used by the growth oracle:
// matrix product, exponentiation by squaring and row-vector products.
// All functions validate first and return wrapped sentinels on misuse.
// Operands are never mutated; every result is freshly allocated.

package matrix

import "math/big"

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulShape(a, b). Allocate result n×p.
//   - Stage 2: i→k→j loop over the flat buffers; zero a[i,k] cells are skipped,
//     which matters for the sparse, mostly-identity growth matrices.
//
// Complexity:
//   - Time O(n·m·p) big-integer operations, Space O(n·p).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, m, p := a.r, a.c, b.c
	res, err := NewDense(n, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	tmp := new(big.Int)
	var i, k, j int
	for i = 0; i < n; i++ {
		for k = 0; k < m; k++ {
			aik := a.data[i*m+k]
			if aik.Sign() == 0 {
				continue
			}
			for j = 0; j < p; j++ {
				bkj := b.data[k*p+j]
				if bkj.Sign() == 0 {
					continue
				}
				tmp.Mul(aik, bkj)
				res.data[i*p+j].Add(res.data[i*p+j], tmp)
			}
		}
	}

	return res, nil
}

// Pow returns a^k by binary exponentiation (square-and-multiply).
//
// Implementation:
//   - Stage 1: ValidateSquare(a); reject k < 0 with ErrNegativeExponent.
//   - Stage 2: result = I; base = a; for each bit of k, multiply result by base
//     when the bit is set, then square base.
//
// Behavior highlights:
//   - Pow(a, 0) is the identity of matching size, including 0×0.
//   - Exact: no intermediate value ever leaves *big.Int.
//
// Complexity:
//   - Time O(n³ log k), Space O(n²).
func Pow(a *Dense, k int) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, ErrNegativeExponent)
	}

	result, err := NewIdentity(a.r)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base := a.Clone()
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k == 0 {
			break // skip the last, unused squaring
		}
		if base, err = Mul(base, base); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return result, nil
}

// VecMul returns the row-vector product y = x · a, with len(x) == a.Rows().
// Complexity: O(r·c).
func VecMul(x []*big.Int, a *Dense) ([]*big.Int, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(x, a.r); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}

	y := make([]*big.Int, a.c)
	for j := range y {
		y[j] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i < a.r; i++ {
		if x[i].Sign() == 0 {
			continue
		}
		for j := 0; j < a.c; j++ {
			tmp.Mul(x[i], a.data[i*a.c+j])
			y[j].Add(y[j], tmp)
		}
	}

	return y, nil
}

// SumVec returns Σ x[i]; nil entries count as zero.
// Complexity: O(len(x)).
func SumVec(x []*big.Int) *big.Int {
	s := new(big.Int)
	for _, v := range x {
		if v != nil {
			s.Add(s, v)
		}
	}

	return s
}
