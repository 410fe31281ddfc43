package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	got, err := Add([][]float64{{1, 2}, {3, 4}}, [][]float64{{10, 20}, {30, 40}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 22}, {33, 44}}, got)
}

func TestAddShapeMismatch(t *testing.T) {
	_, err := Add([][]float64{{1, 2}}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSub(t *testing.T) {
	got, err := Sub([][]float64{{5, 5}}, [][]float64{{2, 3}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 2}}, got)
}

func TestMul(t *testing.T) {
	a := [][]float64{{1, 2, 3}, {4, 5, 6}}
	b := [][]float64{{7, 8}, {9, 10}, {11, 12}}
	got, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, got)
}

func TestMulInnerDimensionMismatch(t *testing.T) {
	_, err := Mul([][]float64{{1, 2}}, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	got := Transpose([][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, got)
}

func TestDet(t *testing.T) {
	d, err := Det([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.InDelta(t, -2.0, d, 1e-12)
}

func TestDetNonSquare(t *testing.T) {
	_, err := Det([][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.ErrorIs(t, err, ErrNonSquare)
}

func TestInverse(t *testing.T) {
	got, err := Inverse([][]float64{{4, 7}, {2, 6}})
	require.NoError(t, err)

	want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got[i][j], 1e-12)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	// det = 0: inversion must fail, not return garbage.
	got, err := Inverse([][]float64{{1, 2}, {2, 4}})
	assert.ErrorIs(t, err, ErrSingular)
	assert.Nil(t, got)
}

func TestInverseNonSquare(t *testing.T) {
	_, err := Inverse([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrNonSquare)
}

func TestRoundTripRows(t *testing.T) {
	rows := [][]float64{{1.5, -2}, {0, math.Pi}}
	assert.Equal(t, rows, ToRows(FromRows(rows)))
}
