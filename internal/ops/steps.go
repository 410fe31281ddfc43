package ops

import (
	"fmt"
	"strings"

	"github.com/san-kum/matrixlab/internal/format"
)

// elementwiseSteps traces C[i,j] = A[i,j] op B[i,j] cell by cell, filling
// the result into a zero matrix the way the original is taught on paper.
func elementwiseSteps(a, b, out [][]float64, op string, prec int) []Step {
	rows, cols := len(out), len(out[0])
	c := zeros(rows, cols)
	steps := []Step{{Desc: "Result matrix starts at zero", Snapshot: clone(c)}}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c[i][j] = out[i][j]
			desc := fmt.Sprintf("C[%d,%d] = %s %s %s = %s",
				i+1, j+1,
				format.Num(a[i][j], prec), op, format.Num(b[i][j], prec),
				format.Num(out[i][j], prec))
			steps = append(steps, Step{Desc: desc, Snapshot: clone(c)})
		}
	}

	label := "Sum complete: A + B"
	if op == "-" {
		label = "Difference complete: A - B"
	}
	steps = append(steps, Step{Desc: label, Snapshot: clone(c)})
	return steps
}

// productSteps traces each cell of A·B as its expanded dot product.
func productSteps(a, b, out [][]float64, prec int) []Step {
	rows, cols := len(out), len(out[0])
	inner := len(b)
	c := zeros(rows, cols)
	steps := []Step{{Desc: "Result matrix starts at zero", Snapshot: clone(c)}}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c[i][j] = out[i][j]
			terms := make([]string, inner)
			for k := 0; k < inner; k++ {
				terms[k] = fmt.Sprintf("%s*%s", format.Num(a[i][k], prec), format.Num(b[k][j], prec))
			}
			desc := fmt.Sprintf("C[%d,%d] = %s = %s",
				i+1, j+1, strings.Join(terms, " + "), format.Num(out[i][j], prec))
			steps = append(steps, Step{Desc: desc, Snapshot: clone(c)})
		}
	}

	steps = append(steps, Step{Desc: "Product complete: A x B", Snapshot: clone(c)})
	return steps
}

func zeros(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func clone(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}
