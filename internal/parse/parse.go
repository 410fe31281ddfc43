// Package parse converts free-form pasted text into rectangular numeric
// arrays. Three notations are accepted, tried in order:
//
//   - bracketed lists:  [[1,2,3],[4,5,6]]  (a flat list [1,2,3] is one row)
//   - semicolon rows:   1 2; 3 4
//   - newline rows:     1 2 3\n4,5,6
//
// Semicolons and newlines are both row separators and may be mixed freely.
// Cells split on commas and/or runs of whitespace. Parsing is
// all-or-nothing: the result is a fully valid rectangular array or a
// classified error, never a partial one.
package parse

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Matrix parses s into a rectangular array with at least one row and one
// column. All cells are finite; NaN and Inf tokens are rejected.
func Matrix(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}

	var rows [][]float64
	var err error
	if strings.HasPrefix(s, "[") {
		rows, err = parseBracketed(s)
	} else {
		rows, err = parseDelimited(s)
	}
	if err != nil {
		return nil, err
	}
	return checkShape(rows)
}

// Vectors parses s as a list of row vectors, one vector per row, all of
// equal dimension. The grammar is identical to Matrix; the name exists so
// call sites state their intent.
func Vectors(s string) ([][]float64, error) {
	return Matrix(s)
}

func parseDelimited(s string) ([][]float64, error) {
	lines := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})

	var rows [][]float64
	for _, line := range lines {
		toks := tokenize(line)
		if len(toks) == 0 {
			continue
		}
		row, err := parseRow(toks, len(rows)+1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseBracketed handles [[...],[...]] and flat [a,b,c] forms. Semicolons
// inside brackets behave as commas.
func parseBracketed(s string) ([][]float64, error) {
	s = strings.ReplaceAll(s, ";", ",")

	body, ok := stripOuter(s)
	if !ok {
		return nil, &TokenError{Row: 1, Token: s}
	}

	elems := splitTopLevel(body)

	nested := false
	for _, e := range elems {
		if strings.HasPrefix(e, "[") {
			nested = true
			break
		}
	}

	if !nested {
		// Flat list: one row.
		toks := tokenize(body)
		if len(toks) == 0 {
			return nil, nil
		}
		row, err := parseRow(toks, 1)
		if err != nil {
			return nil, err
		}
		return [][]float64{row}, nil
	}

	var rows [][]float64
	for i, e := range elems {
		inner, ok := stripOuter(e)
		if !ok {
			return nil, &TokenError{Row: i + 1, Token: e}
		}
		toks := tokenize(inner)
		if len(toks) == 0 {
			continue
		}
		row, err := parseRow(toks, len(rows)+1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// stripOuter removes one balanced pair of outer brackets. It fails when the
// first bracket does not close at the end of the string.
func stripOuter(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		return "", false
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				if strings.TrimSpace(s[i+1:]) != "" {
					return "", false
				}
				return s[1:i], true
			}
		}
	}
	return "", false
}

// splitTopLevel splits on commas at bracket depth zero, dropping empty
// fragments.
func splitTopLevel(s string) []string {
	var elems []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				if frag := strings.TrimSpace(s[start:i]); frag != "" {
					elems = append(elems, frag)
				}
				start = i + 1
			}
		}
	}
	if frag := strings.TrimSpace(s[start:]); frag != "" {
		elems = append(elems, frag)
	}
	return elems
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func parseRow(toks []string, row int) ([]float64, error) {
	vals := make([]float64, len(toks))
	for i, tok := range toks {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &TokenError{Row: row, Token: tok}
		}
		vals[i] = v
	}
	return vals, nil
}

func checkShape(rows [][]float64) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	want := len(rows[0])
	if want == 0 {
		return nil, ErrEmptyInput
	}
	for i, row := range rows {
		if len(row) != want {
			return nil, &ShapeError{Row: i + 1, Got: len(row), Want: want}
		}
	}
	return rows, nil
}
