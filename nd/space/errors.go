package space

import (
	"errors"
	"fmt"
)

// Errors returned by interval and point constructors.
var (
	ErrDimensionMismatch = errors.New("space: dimension mismatch")
	ErrInvalidBounds     = errors.New("space: min exceeds max")
	ErrNoDimensions      = errors.New("space: at least one dimension required")
)

// CheckDimensions returns ErrDimensionMismatch if any of coords does not have
// exactly n entries.
func CheckDimensions(n int, coords ...[]int64) error {
	if n < 1 {
		return ErrNoDimensions
	}
	for i, c := range coords {
		if len(c) != n {
			return fmt.Errorf("%w: argument %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(c), n)
		}
	}
	return nil
}

// CheckRealDimensions is the float64 counterpart of CheckDimensions.
func CheckRealDimensions(n int, coords ...[]float64) error {
	if n < 1 {
		return ErrNoDimensions
	}
	for i, c := range coords {
		if len(c) != n {
			return fmt.Errorf("%w: argument %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(c), n)
		}
	}
	return nil
}

// mustMatch panics when a coordinate array passed to a mutating method has the
// wrong length. Constructors report the same condition as an error instead.
func mustMatch(n, got int) {
	if n != got {
		panic(fmt.Errorf("%w: got %d coordinates, want %d", ErrDimensionMismatch, got, n))
	}
}
