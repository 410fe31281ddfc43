package exact

import "errors"

// Domain errors for exact matrix operations.
var (
	// ErrNonSquare indicates an operation that requires a square matrix.
	ErrNonSquare = errors.New("exact: matrix is not square")

	// ErrSingular indicates a matrix with zero determinant where an
	// inverse or unique solution was requested.
	ErrSingular = errors.New("exact: matrix is singular")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("exact: dimension mismatch")
)
