package region

import "errors"

var (
	ErrNegativeExtent    = errors.New("region: extents must be non-negative")
	ErrDimensionMismatch = errors.New("region: dimension mismatch")
	ErrEmptyShape        = errors.New("region: structuring element is empty")
	ErrPastEnd           = errors.New("region: can't move fwd beyond end of region")
	ErrBeforeStart       = errors.New("region: can't move bck before start of region")
)
