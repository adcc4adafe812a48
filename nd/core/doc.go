// Package core holds the small shared pieces every nd operator uses:
// functional options, power-of-two sizing and reusable scratch buffers.
package core
