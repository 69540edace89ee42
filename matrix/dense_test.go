package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	// Zero-sized matrices are legal: an empty alphabet has an empty growth matrix.
	z, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Rows())

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, big.NewInt(7)))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int64())

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, big.NewInt(1)), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SetInt64(0, 2, 1), matrix.ErrOutOfRange)
}

// TestDense_NoAliasing verifies that At returns copies and Set copies its input,
// so mutating either never reaches the stored cell.
func TestDense_NoAliasing(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	in := big.NewInt(5)
	require.NoError(t, m.Set(0, 0, in))
	in.SetInt64(99)

	out, err := m.At(0, 0)
	require.NoError(t, err)
	out.SetInt64(42)

	again, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), again.Int64())
}

func TestDense_CloneEqual(t *testing.T) {
	m, err := matrix.NewFromInt64([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.SetInt64(0, 0, 9))
	assert.False(t, m.Equal(c))
}

func TestNewFromInt64_Ragged(t *testing.T) {
	_, err := matrix.NewFromInt64([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewFromInt64([][]int64{{1, 0}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 0]\n[2, 3]\n", m.String())
}
