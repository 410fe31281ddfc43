package exact

import (
	"fmt"
	"math/big"
)

// Step records one row operation: a human-readable description and the
// matrix state after the operation.
type Step struct {
	Desc     string
	Snapshot *Mat
}

func snap(desc string, m *Mat) Step {
	return Step{Desc: desc, Snapshot: m.Clone()}
}

// RREF reduces m to reduced row-echelon form. It returns the reduced
// matrix, the pivot column indices (0-based), and the row-operation trace.
func RREF(m *Mat) (*Mat, []int, []Step) {
	M := m.Clone()
	steps := []Step{snap("Initial matrix", M)}
	pivots := []int{}

	r := 0
	for c := 0; c < M.cols && r < M.rows; c++ {
		piv := findPivot(M, r, c)
		if piv < 0 {
			continue
		}
		if piv != r {
			M.swapRows(piv, r)
			steps = append(steps, snap(fmt.Sprintf("Swap row %d with row %d", piv+1, r+1), M))
		}
		p := M.At(r, c)
		if p.Cmp(ratOne) != 0 {
			M.scaleRow(r, new(big.Rat).Inv(p))
			steps = append(steps, snap(fmt.Sprintf("Divide row %d by %s", r+1, p.RatString()), M))
		}
		for i := 0; i < M.rows; i++ {
			if i == r {
				continue
			}
			f := M.At(i, c)
			if f.Sign() == 0 {
				continue
			}
			M.addScaledRow(i, r, new(big.Rat).Neg(f))
			steps = append(steps, snap(fmt.Sprintf("R%d <- R%d - (%s)*R%d", i+1, i+1, f.RatString(), r+1), M))
		}
		pivots = append(pivots, c)
		r++
	}

	steps = append(steps, snap("Result: RREF", M))
	return M, pivots, steps
}

// UpperTriangular eliminates below each pivot without normalizing rows,
// producing an upper-triangular (row-echelon) form.
func UpperTriangular(m *Mat) (*Mat, []Step) {
	M := m.Clone()
	steps := []Step{snap("Initial matrix", M)}

	r := 0
	for c := 0; c < M.cols && r < M.rows; c++ {
		piv := findPivot(M, r, c)
		if piv < 0 {
			continue
		}
		if piv != r {
			M.swapRows(piv, r)
			steps = append(steps, snap(fmt.Sprintf("Swap row %d with row %d", piv+1, r+1), M))
		}
		pivVal := M.At(r, c)
		for i := r + 1; i < M.rows; i++ {
			a := M.At(i, c)
			if a.Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(a, pivVal)
			M.addScaledRow(i, r, new(big.Rat).Neg(f))
			steps = append(steps, snap(fmt.Sprintf("R%d <- R%d - (%s)*R%d", i+1, i+1, f.RatString(), r+1), M))
		}
		r++
	}

	steps = append(steps, snap("Result: upper triangular", M))
	return M, steps
}

// Determinant computes det(m) by elimination to triangular form, tracking
// row swaps for the sign. Returns ErrNonSquare for non-square input.
func Determinant(m *Mat) (*big.Rat, []Step, error) {
	if m.rows != m.cols {
		return nil, nil, ErrNonSquare
	}

	M := m.Clone()
	steps := []Step{snap("Initial matrix", M)}
	swaps := 0

	r := 0
	for c := 0; c < M.cols && r < M.rows; c++ {
		piv := findPivot(M, r, c)
		if piv < 0 {
			continue
		}
		if piv != r {
			M.swapRows(piv, r)
			swaps++
			steps = append(steps, snap(fmt.Sprintf("Swap rows %d and %d (determinant changes sign)", piv+1, r+1), M))
		}
		pivVal := M.At(r, c)
		for i := r + 1; i < M.rows; i++ {
			a := M.At(i, c)
			if a.Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(a, pivVal)
			M.addScaledRow(i, r, new(big.Rat).Neg(f))
			steps = append(steps, snap(fmt.Sprintf("Eliminate below pivot: R%d <- R%d - (%s)*R%d", i+1, i+1, f.RatString(), r+1), M))
		}
		r++
	}

	det := big.NewRat(1, 1)
	for i := 0; i < M.rows; i++ {
		det.Mul(det, M.cells[i*M.cols+i])
	}
	if swaps%2 == 1 {
		det.Neg(det)
	}
	steps = append(steps, snap(fmt.Sprintf("Determinant = diagonal product * (-1)^swaps = %s", det.RatString()), M))
	return det, steps, nil
}

// Inverse computes the inverse by reducing the augmented matrix [A|I].
// Returns ErrNonSquare for non-square input and ErrSingular when the left
// block cannot be reduced to the identity; the trace up to the failure is
// still returned.
func Inverse(m *Mat) (*Mat, []Step, error) {
	if m.rows != m.cols {
		return nil, nil, ErrNonSquare
	}
	n := m.rows

	M := m.augment(Identity(n))
	steps := []Step{snap("Augmented matrix [A|I]", M)}

	r := 0
	for c := 0; c < n && r < n; c++ {
		piv := findPivot(M, r, c)
		if piv < 0 {
			continue
		}
		if piv != r {
			M.swapRows(piv, r)
			steps = append(steps, snap(fmt.Sprintf("Swap row %d with row %d", piv+1, r+1), M))
		}
		p := M.At(r, c)
		if p.Cmp(ratOne) != 0 {
			M.scaleRow(r, new(big.Rat).Inv(p))
			steps = append(steps, snap(fmt.Sprintf("Divide row %d by %s", r+1, p.RatString()), M))
		}
		for i := 0; i < n; i++ {
			if i == r {
				continue
			}
			f := M.At(i, c)
			if f.Sign() == 0 {
				continue
			}
			M.addScaledRow(i, r, new(big.Rat).Neg(f))
			steps = append(steps, snap(fmt.Sprintf("R%d <- R%d - (%s)*R%d", i+1, i+1, f.RatString(), r+1), M))
		}
		r++
	}

	left := M.slice(0, n)
	if !left.Equal(Identity(n)) {
		steps = append(steps, snap("Left block is not I: the matrix is not invertible", M))
		return nil, steps, ErrSingular
	}
	steps = append(steps, snap("Left block is I: the right block is the inverse", M))
	return M.slice(n, 2*n), steps, nil
}

// Rank returns the number of pivot columns of m.
func Rank(m *Mat) int {
	_, pivots, _ := RREF(m)
	return len(pivots)
}

// Independent reports whether the given vectors (one per row, equal
// dimension) are linearly independent as columns of a matrix. The returned
// indices identify the pivot vectors, a maximal independent subset.
func Independent(vecs [][]float64) (bool, []int) {
	n := len(vecs)
	dim := 0
	if n > 0 {
		dim = len(vecs[0])
	}
	// Vectors become columns so pivot columns name independent vectors.
	cols := newMat(dim, n)
	for j, v := range vecs {
		for i, x := range v {
			if r := new(big.Rat).SetFloat64(x); r != nil {
				cols.cells[i*n+j] = r
			}
		}
	}
	_, pivots, _ := RREF(cols)
	return len(pivots) == n, pivots
}

func findPivot(m *Mat, fromRow, col int) int {
	for i := fromRow; i < m.rows; i++ {
		if m.cells[i*m.cols+col].Sign() != 0 {
			return i
		}
	}
	return -1
}

var ratOne = big.NewRat(1, 1)
