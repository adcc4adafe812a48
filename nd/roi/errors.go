package roi

import "errors"

var (
	ErrNilInput          = errors.New("roi: input is nil")
	ErrNilPatchFunc      = errors.New("roi: patch function is nil")
	ErrNilKernel         = errors.New("roi: kernel is nil")
	ErrNilElement        = errors.New("roi: structuring element is nil")
	ErrDimensionMismatch = errors.New("roi: dimension mismatch")
	ErrInvalidRank       = errors.New("roi: rank out of range")
	ErrClosed            = errors.New("roi: operator is closed")
	ErrPanic             = errors.New("roi: panic during processing")
)
