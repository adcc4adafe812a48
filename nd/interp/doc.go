// Package interp samples discrete containers at real-valued positions.
//
// A [Factory] wraps an img.RandomAccessibleInterval and returns a
// [RealRandomAccess]: a movable real position whose Get combines the
// surrounding integer samples.
//
//   - [NearestNeighbor]: the sample closest to the position.
//   - [Bilinear]: the four corner samples of a 2-D cell.
//   - [NLinear]: the 2^n corner samples of an n-D cell.
//   - [Lanczos]: a windowed sinc over 2·Alpha samples per axis, optionally
//     clipped to the value range of T.
//
// Every policy anchors its window at the floor of each coordinate, so
// -0.5 falls into the cell starting at -1. Samples outside the source
// interval are read through an out-of-bounds strategy, Border unless the
// factory names another.
//
// Weights are computed when Get is called; moving the position is cheap.
package interp
