package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lsys/matrix"
	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	sq, _ := matrix.NewDense(2, 2)
	wide, _ := matrix.NewDense(2, 3)

	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateSquare(sq))
	assert.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateMulShape(sq, wide))
	assert.ErrorIs(t, matrix.ValidateMulShape(wide, sq), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateVecLen([]*big.Int{big.NewInt(0), big.NewInt(1)}, 2))
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
}
