package parse

import (
	"errors"
	"math"
	"testing"
)

func matEqual(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > 1e-12 {
				return false
			}
		}
	}
	return true
}

func TestMatrixNotations(t *testing.T) {
	want := [][]float64{{1, 2, 3}, {4, 5, 6}}

	tests := []struct {
		name  string
		input string
	}{
		{"bracketed", "[[1,2,3],[4,5,6]]"},
		{"bracketed spaced", "[ [1, 2, 3] , [4, 5, 6] ]"},
		{"bracketed semicolons", "[[1,2,3];[4,5,6]]"},
		{"newline commas", "1,2,3\n4,5,6"},
		{"newline spaces", "1 2 3\n4 5 6"},
		{"semicolon rows", "1 2 3; 4 5 6"},
		{"mixed separators", "1, 2 3;\n4 5, 6"},
		{"trailing newline", "1 2 3\n4 5 6\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Matrix(tt.input)
			if err != nil {
				t.Fatalf("Matrix(%q) failed: %v", tt.input, err)
			}
			if !matEqual(got, want) {
				t.Errorf("Matrix(%q) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestMatrixSquare(t *testing.T) {
	got, err := Matrix("1 2; 3 4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := [][]float64{{1, 2}, {3, 4}}
	if !matEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatrixFlatBracketed(t *testing.T) {
	got, err := Matrix("[1, 2, 3]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !matEqual(got, [][]float64{{1, 2, 3}}) {
		t.Errorf("flat list should be a single row, got %v", got)
	}
}

func TestMatrixNegativesAndDecimals(t *testing.T) {
	got, err := Matrix("-1.5 2.25\n0 -3e2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := [][]float64{{-1.5, 2.25}, {0, -300}}
	if !matEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatrixEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n", ";;", "[]"} {
		_, err := Matrix(input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Matrix(%q): expected ErrEmptyInput, got %v", input, err)
		}
	}
}

func TestMatrixMalformedToken(t *testing.T) {
	_, err := Matrix("1 a\n2 3")
	if !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatal("expected a *TokenError")
	}
	if te.Row != 1 || te.Token != "a" {
		t.Errorf("expected row 1 token \"a\", got row %d token %q", te.Row, te.Token)
	}
}

func TestMatrixRejectsNaNInf(t *testing.T) {
	for _, input := range []string{"1 NaN", "Inf 2", "1 -inf"} {
		_, err := Matrix(input)
		if !errors.Is(err, ErrMalformedToken) {
			t.Errorf("Matrix(%q): expected ErrMalformedToken, got %v", input, err)
		}
	}
}

func TestMatrixRaggedRows(t *testing.T) {
	_, err := Matrix("1 2\n3")
	if !errors.Is(err, ErrRaggedRows) {
		t.Fatalf("expected ErrRaggedRows, got %v", err)
	}
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatal("expected a *ShapeError")
	}
	if se.Row != 2 || se.Got != 1 || se.Want != 2 {
		t.Errorf("expected row 2 got 1 want 2, got %+v", se)
	}
}

func TestMatrixBracketedRagged(t *testing.T) {
	_, err := Matrix("[[1,2],[3]]")
	if !errors.Is(err, ErrRaggedRows) {
		t.Errorf("expected ErrRaggedRows, got %v", err)
	}
}

func TestMatrixUnbalancedBrackets(t *testing.T) {
	for _, input := range []string{"[[1,2],[3,4]", "[1,2]]", "[[1,2] [3,4]]"} {
		_, err := Matrix(input)
		if !errors.Is(err, ErrMalformedToken) {
			t.Errorf("Matrix(%q): expected ErrMalformedToken, got %v", input, err)
		}
	}
}

func TestVectors(t *testing.T) {
	got, err := Vectors("1 0 0\n0 1 0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(got) != 2 || len(got[0]) != 3 {
		t.Errorf("expected 2 vectors of dimension 3, got %v", got)
	}

	_, err = Vectors("1 0\n0 1 0")
	if !errors.Is(err, ErrRaggedRows) {
		t.Errorf("expected ErrRaggedRows for mixed dimensions, got %v", err)
	}
}
