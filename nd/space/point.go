package space

import (
	"fmt"
	"math"
	"slices"
)

// Point is a mutable integer position.
type Point struct {
	pos []int64
}

var (
	_ Localizable  = (*Point)(nil)
	_ Positionable = (*Point)(nil)
)

// NewPoint creates an n-dimensional point at the origin.
func NewPoint(n int) *Point {
	return &Point{pos: make([]int64, n)}
}

// PointAt creates a point at the given coordinates (copied).
func PointAt(pos ...int64) *Point {
	return &Point{pos: slices.Clone(pos)}
}

// PointOf copies the current position of any Localizable.
func PointOf(l Localizable) *Point {
	p := NewPoint(l.NumDimensions())
	l.Localize(p.pos)
	return p
}

func (p *Point) NumDimensions() int { return len(p.pos) }

func (p *Point) Localize(dst []int64) {
	mustMatch(len(p.pos), len(dst))
	copy(dst, p.pos)
}

func (p *Point) Position(d int) int64 { return p.pos[d] }

func (p *Point) Fwd(d int) { p.pos[d]++ }

func (p *Point) Bck(d int) { p.pos[d]-- }

func (p *Point) Move(distance int64, d int) { p.pos[d] += distance }

func (p *Point) MoveBy(distance []int64) {
	mustMatch(len(p.pos), len(distance))
	for d, v := range distance {
		p.pos[d] += v
	}
}

func (p *Point) SetPosition(pos []int64) {
	mustMatch(len(p.pos), len(pos))
	copy(p.pos, pos)
}

func (p *Point) SetPositionAt(pos int64, d int) { p.pos[d] = pos }

// Coords returns a copy of the coordinates.
func (p *Point) Coords() []int64 { return slices.Clone(p.pos) }

func (p *Point) String() string { return fmt.Sprint(p.pos) }

// RealPoint is a mutable real-valued position.
type RealPoint struct {
	pos []float64
}

var (
	_ RealLocalizable  = (*RealPoint)(nil)
	_ RealPositionable = (*RealPoint)(nil)
)

// NewRealPoint creates an n-dimensional real point at the origin.
func NewRealPoint(n int) *RealPoint {
	return &RealPoint{pos: make([]float64, n)}
}

// RealPointAt creates a real point at the given coordinates (copied).
func RealPointAt(pos ...float64) *RealPoint {
	return &RealPoint{pos: slices.Clone(pos)}
}

// RealPointOf converts an integer position into a real point.
func RealPointOf(l Localizable) *RealPoint {
	p := NewRealPoint(l.NumDimensions())
	for d := range p.pos {
		p.pos[d] = float64(l.Position(d))
	}
	return p
}

func (p *RealPoint) NumDimensions() int { return len(p.pos) }

func (p *RealPoint) RealLocalize(dst []float64) {
	mustMatch(len(p.pos), len(dst))
	copy(dst, p.pos)
}

func (p *RealPoint) RealPosition(d int) float64 { return p.pos[d] }

func (p *RealPoint) RealMove(distance float64, d int) { p.pos[d] += distance }

func (p *RealPoint) RealMoveBy(distance []float64) {
	mustMatch(len(p.pos), len(distance))
	for d, v := range distance {
		p.pos[d] += v
	}
}

func (p *RealPoint) RealSetPosition(pos []float64) {
	mustMatch(len(p.pos), len(pos))
	copy(p.pos, pos)
}

func (p *RealPoint) RealSetPositionAt(pos float64, d int) { p.pos[d] = pos }

// Floor writes the integer floor of every coordinate into dst. Negative
// coordinates round toward negative infinity, not toward zero.
func (p *RealPoint) Floor(dst []int64) {
	mustMatch(len(p.pos), len(dst))
	for d, v := range p.pos {
		dst[d] = int64(math.Floor(v))
	}
}

func (p *RealPoint) String() string { return fmt.Sprint(p.pos) }
