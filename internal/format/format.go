// Package format renders numbers and matrices for terminal display.
package format

import (
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// DefaultPrecision is the display precision used when none is configured.
const DefaultPrecision = 2

// Num renders x rounded to prec decimals in compact form: trailing zeros
// are stripped and values that round to integers render without a decimal
// point.
func Num(x float64, prec int) string {
	if prec < 0 {
		prec = 0
	}
	pow := math.Pow(10, float64(prec))
	v := math.Round(x*pow) / pow
	if math.Abs(v-math.Round(v)) < 1/pow {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// Bracketed renders m in bracketed-list notation, one row per line:
//
//	[[1, 2, 3],
//	 [4, 5, 6]]
//
// The output re-parses to the same values.
func Bracketed(m [][]float64, prec int) string {
	if len(m) == 0 {
		return "[]"
	}
	rows := make([]string, len(m))
	for i, row := range m {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = Num(v, prec)
		}
		rows[i] = "[" + strings.Join(cells, ", ") + "]"
	}
	return "[" + strings.Join(rows, ",\n ") + "]"
}

// Line renders m in single-line bracketed notation, suitable for embedding
// in messages and command arguments.
func Line(m [][]float64, prec int) string {
	if len(m) == 0 {
		return "[]"
	}
	rows := make([]string, len(m))
	for i, row := range m {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = Num(v, prec)
		}
		rows[i] = "[" + strings.Join(cells, ",") + "]"
	}
	return "[" + strings.Join(rows, ",") + "]"
}

// Grid renders m as an aligned column grid.
func Grid(m [][]float64, prec int) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				w.Write([]byte("\t"))
			}
			w.Write([]byte(Num(v, prec)))
		}
		w.Write([]byte("\t\n"))
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}
