// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the matrix package. Call sites wrap them
// with an operation tag via matrixErrorf so failures stay traceable
// while errors.Is keeps working.
var (
	// ErrNilMatrix indicates a nil *Dense argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes or vector lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// matrixErrorf wraps err with the failing operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
