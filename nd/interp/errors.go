package interp

import "errors"

var (
	ErrNilSource         = errors.New("interp: source is nil")
	ErrNotTwoDimensional = errors.New("interp: bilinear interpolation needs a 2-D source")
	ErrInvalidAlpha      = errors.New("interp: lanczos alpha must be at least 1")
)
