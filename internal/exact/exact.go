// Package exact implements elimination-based matrix operations in exact
// rational arithmetic. Reduced row-echelon form, triangularization,
// determinants, inversion and Cramer's rule all run over math/big
// rationals so pivots and factors display as exact fractions, and each
// operation returns an ordered trace of the row operations it performed.
package exact

import (
	"math/big"
	"strings"
)

// Mat is a dense matrix of rationals stored row-major.
type Mat struct {
	rows, cols int
	cells      []*big.Rat
}

// FromFloats builds a rational matrix from a rectangular float array.
// Callers are expected to pass finite values; non-finite cells become zero.
func FromFloats(m [][]float64) *Mat {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	out := newMat(rows, cols)
	for i, row := range m {
		for j, v := range row {
			if r := new(big.Rat).SetFloat64(v); r != nil {
				out.cells[i*cols+j] = r
			}
		}
	}
	return out
}

// Identity returns the n-by-n identity matrix.
func Identity(n int) *Mat {
	m := newMat(n, n)
	for i := 0; i < n; i++ {
		m.cells[i*n+i] = big.NewRat(1, 1)
	}
	return m
}

func newMat(rows, cols int) *Mat {
	m := &Mat{rows: rows, cols: cols, cells: make([]*big.Rat, rows*cols)}
	for i := range m.cells {
		m.cells[i] = new(big.Rat)
	}
	return m
}

func (m *Mat) Rows() int { return m.rows }
func (m *Mat) Cols() int { return m.cols }

// At returns a copy of the cell at row i, column j.
func (m *Mat) At(i, j int) *big.Rat {
	return new(big.Rat).Set(m.cells[i*m.cols+j])
}

// Clone returns a deep copy.
func (m *Mat) Clone() *Mat {
	out := &Mat{rows: m.rows, cols: m.cols, cells: make([]*big.Rat, len(m.cells))}
	for i, c := range m.cells {
		out.cells[i] = new(big.Rat).Set(c)
	}
	return out
}

// Float64s converts to a float array for display and export.
func (m *Mat) Float64s() [][]float64 {
	out := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]float64, m.cols)
		for j := 0; j < m.cols; j++ {
			out[i][j], _ = m.cells[i*m.cols+j].Float64()
		}
	}
	return out
}

// Equal reports whether both matrices have identical shape and cells.
func (m *Mat) Equal(o *Mat) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, c := range m.cells {
		if c.Cmp(o.cells[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders cells as exact fractions, rows separated by newlines.
func (m *Mat) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.cells[i*m.cols+j].RatString())
		}
	}
	return b.String()
}

// cols [lo, hi) as a new matrix.
func (m *Mat) slice(lo, hi int) *Mat {
	out := newMat(m.rows, hi-lo)
	for i := 0; i < m.rows; i++ {
		for j := lo; j < hi; j++ {
			out.cells[i*out.cols+j-lo].Set(m.cells[i*m.cols+j])
		}
	}
	return out
}

// augment returns [m|o]; both must have equal row counts.
func (m *Mat) augment(o *Mat) *Mat {
	out := newMat(m.rows, m.cols+o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.cells[i*out.cols+j].Set(m.cells[i*m.cols+j])
		}
		for j := 0; j < o.cols; j++ {
			out.cells[i*out.cols+m.cols+j].Set(o.cells[i*o.cols+j])
		}
	}
	return out
}

func (m *Mat) swapRows(a, b int) {
	for j := 0; j < m.cols; j++ {
		m.cells[a*m.cols+j], m.cells[b*m.cols+j] = m.cells[b*m.cols+j], m.cells[a*m.cols+j]
	}
}

// scaleRow multiplies row i by factor in place.
func (m *Mat) scaleRow(i int, factor *big.Rat) {
	for j := 0; j < m.cols; j++ {
		c := m.cells[i*m.cols+j]
		c.Mul(c, factor)
	}
}

// addScaledRow performs row dst += factor * row src in place.
func (m *Mat) addScaledRow(dst, src int, factor *big.Rat) {
	tmp := new(big.Rat)
	for j := 0; j < m.cols; j++ {
		tmp.Mul(m.cells[src*m.cols+j], factor)
		c := m.cells[dst*m.cols+j]
		c.Add(c, tmp)
	}
}
