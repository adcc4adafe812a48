package img

import "errors"

// Errors reported by containers and cursors. Traversal errors are raised as
// panics carrying these values.
var (
	ErrOutOfBounds     = errors.New("img: position outside interval")
	ErrCursorExhausted = errors.New("img: cursor moved beyond its range")
	ErrNotPositioned   = errors.New("img: cursor has not been moved to an element")
	ErrCursorClosed    = errors.New("img: cursor is closed")
	ErrDataLength      = errors.New("img: data length does not match interval volume")
)
