// Package export renders result matrices as standalone SVG documents.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/matrixlab/internal/format"
)

const (
	cellSize = 56.0
	padding  = 8.0
)

// MatrixSVG renders m as a grid of cells, shaded by magnitude relative to
// the largest absolute value, with the compact value centered in each cell.
func MatrixSVG(m [][]float64, prec int) string {
	if len(m) == 0 || len(m[0]) == 0 {
		return ""
	}
	rows, cols := len(m), len(m[0])

	maxAbs := 0.0
	for _, row := range m {
		for _, v := range row {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	width := float64(cols)*cellSize + 2*padding
	height := float64(rows)*cellSize + 2*padding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, row := range m {
		for j, v := range row {
			x := padding + float64(j)*cellSize
			y := padding + float64(i)*cellSize

			// Shade toward the accent color with magnitude.
			intensity := math.Abs(v) / maxAbs
			shade := int(0x11 + intensity*(0x66-0x11))
			fill := fmt.Sprintf("#00%02x%02x", shade+0x30, shade)

			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#333333"/>
`, x, y, cellSize, cellSize, fill))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#e0ffe0" font-family="monospace" font-size="14" text-anchor="middle" dominant-baseline="middle">%s</text>
`, x+cellSize/2, y+cellSize/2, format.Num(v, prec)))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
