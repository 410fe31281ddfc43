package parse

import (
	"errors"
	"fmt"
)

// Failure classes for matrix parsing. Callers match with errors.Is.
var (
	// ErrEmptyInput indicates input with no parseable rows.
	ErrEmptyInput = errors.New("parse: empty input")

	// ErrMalformedToken indicates a cell that is not a finite real number.
	ErrMalformedToken = errors.New("parse: malformed token")

	// ErrRaggedRows indicates rows of unequal length.
	ErrRaggedRows = errors.New("parse: ragged rows")
)

// TokenError reports the row and raw text of a cell that failed numeric
// conversion. It unwraps to ErrMalformedToken.
type TokenError struct {
	Row   int // 1-based
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("parse: row %d: %q is not a number", e.Row, e.Token)
}

func (e *TokenError) Unwrap() error { return ErrMalformedToken }

// ShapeError reports a row whose length differs from the expected column
// count. It unwraps to ErrRaggedRows.
type ShapeError struct {
	Row  int // 1-based
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("parse: row %d has %d columns, expected %d", e.Row, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error { return ErrRaggedRows }
