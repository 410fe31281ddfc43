package exact

import (
	"fmt"
	"math/big"
)

// Solution is the outcome of solving Ax = b by Cramer's rule.
type Solution struct {
	Det     *big.Rat   // det(A)
	ColDets []*big.Rat // det(A_i) with column i replaced by b
	X       []*big.Rat // exact solution, nil when Unique is false
	Unique  bool
	Steps   []Step
}

// Cramer solves the square system Ax = b. The right-hand side must be a
// single column (or single row, which is treated as a column). A zero
// determinant yields a non-unique Solution rather than an error; shape
// problems return ErrNonSquare or ErrDimensionMismatch.
func Cramer(a, b *Mat) (*Solution, error) {
	if a.rows != a.cols {
		return nil, ErrNonSquare
	}
	if b.cols != 1 && b.rows == 1 {
		b = transpose(b)
	}
	if b.cols != 1 || b.rows != a.rows {
		return nil, fmt.Errorf("%w: b must be a column of length %d", ErrDimensionMismatch, a.rows)
	}
	n := a.rows

	steps := []Step{snap("Augmented system [A|b]", a.augment(b))}

	det, _, err := Determinant(a)
	if err != nil {
		return nil, err
	}
	steps = append(steps, snap(fmt.Sprintf("det(A) = %s", det.RatString()), a))

	sol := &Solution{Det: det}
	if det.Sign() == 0 {
		steps = append(steps, snap("det(A) = 0: no unique solution, Cramer's rule does not apply", a))
		sol.Steps = steps
		return sol, nil
	}

	for i := 0; i < n; i++ {
		ai := a.Clone()
		for r := 0; r < n; r++ {
			ai.cells[r*n+i].Set(b.cells[r])
		}
		steps = append(steps, snap(fmt.Sprintf("A_%d: replace column %d with b", i+1, i+1), ai))

		di, _, err := Determinant(ai)
		if err != nil {
			return nil, err
		}
		sol.ColDets = append(sol.ColDets, di)
		steps = append(steps, snap(fmt.Sprintf("det(A_%d) = %s", i+1, di.RatString()), ai))

		xi := new(big.Rat).Quo(di, det)
		sol.X = append(sol.X, xi)
		steps = append(steps, snap(fmt.Sprintf("x_%d = det(A_%d)/det(A) = %s/%s = %s",
			i+1, i+1, di.RatString(), det.RatString(), xi.RatString()), ai))
	}

	xcol := newMat(n, 1)
	for i, x := range sol.X {
		xcol.cells[i].Set(x)
	}
	steps = append(steps, snap("Solution vector x", xcol))

	sol.Unique = true
	sol.Steps = steps
	return sol, nil
}

func transpose(m *Mat) *Mat {
	out := newMat(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.cells[j*out.cols+i].Set(m.cells[i*m.cols+j])
		}
	}
	return out
}
