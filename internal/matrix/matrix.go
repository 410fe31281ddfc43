// Package matrix wraps gonum's mat package behind the array shape the
// rest of the application works with. Shape validation happens here so
// callers get sentinel errors instead of gonum panics.
package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimensionMismatch indicates operand shapes that do not conform.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates a square-only operation on a rectangular matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular indicates inversion of a zero-determinant matrix.
	ErrSingular = errors.New("matrix: matrix is singular (zero determinant)")
)

// FromRows flattens a rectangular array into a gonum Dense matrix.
func FromRows(rows [][]float64) *mat.Dense {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data)
}

// ToRows converts any gonum matrix back to row slices.
func ToRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// Add returns a + b for matrices of identical shape.
func Add(a, b [][]float64) ([][]float64, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Add(FromRows(a), FromRows(b))
	return ToRows(&out), nil
}

// Sub returns a - b for matrices of identical shape.
func Sub(a, b [][]float64) ([][]float64, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Sub(FromRows(a), FromRows(b))
	return ToRows(&out), nil
}

// Mul returns the matrix product a·b; a's column count must equal b's row
// count.
func Mul(a, b [][]float64) ([][]float64, error) {
	ar, ac := dims(a)
	br, bc := dims(b)
	if ac != br {
		return nil, fmt.Errorf("%w: %dx%d times %dx%d", ErrDimensionMismatch, ar, ac, br, bc)
	}
	var out mat.Dense
	out.Mul(FromRows(a), FromRows(b))
	return ToRows(&out), nil
}

// Transpose returns the transpose of a.
func Transpose(a [][]float64) [][]float64 {
	return ToRows(FromRows(a).T())
}

// Det returns the determinant of a square matrix.
func Det(a [][]float64) (float64, error) {
	r, c := dims(a)
	if r != c {
		return 0, fmt.Errorf("%w: %dx%d", ErrNonSquare, r, c)
	}
	return mat.Det(FromRows(a)), nil
}

// Inverse returns the inverse of a square nonsingular matrix. A zero or
// numerically zero determinant yields ErrSingular, never a garbage result.
func Inverse(a [][]float64) ([][]float64, error) {
	r, c := dims(a)
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, r, c)
	}
	var out mat.Dense
	if err := out.Inverse(FromRows(a)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return ToRows(&out), nil
}

func dims(a [][]float64) (int, int) {
	if len(a) == 0 {
		return 0, 0
	}
	return len(a), len(a[0])
}

func sameShape(a, b [][]float64) error {
	ar, ac := dims(a)
	br, bc := dims(b)
	if ar != br || ac != bc {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, ar, ac, br, bc)
	}
	return nil
}
