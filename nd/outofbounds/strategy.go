package outofbounds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-nd/nd/img"
)

// ErrUnknownStrategy is returned by ParseStrategy.
var ErrUnknownStrategy = errors.New("outofbounds: unknown strategy")

// Strategy selects how positions outside the interval are answered.
type Strategy int

const (
	StrategyConstant Strategy = iota
	StrategyBorder
	StrategyMirror
	StrategyMirrorDouble
	StrategyPeriodic
)

var strategyNames = map[Strategy]string{
	StrategyConstant:     "constant",
	StrategyBorder:       "border",
	StrategyMirror:       "mirror",
	StrategyMirrorDouble: "mirror-double",
	StrategyPeriodic:     "periodic",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a name as printed by String back to a Strategy. Case is
// ignored and "clamp" is accepted for StrategyBorder.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "clamp" {
		return StrategyBorder, nil
	}
	for s, sn := range strategyNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyConstant, StrategyBorder, StrategyMirror, StrategyMirrorDouble, StrategyPeriodic}
}

// Factory creates out-of-bounds random accesses over a source.
type Factory[T any] interface {
	Create(src img.RandomAccessibleInterval[T]) img.RandomAccess[T]
}

// Config is the Factory for all built-in strategies. Value is only used by
// StrategyConstant.
type Config[T any] struct {
	Strategy Strategy
	Value    T
}

var _ Factory[float64] = Config[float64]{}

func (c Config[T]) Create(src img.RandomAccessibleInterval[T]) img.RandomAccess[T] {
	return newRandomAccess(src, c)
}

// NewConstant answers every outside read with v.
func NewConstant[T any](v T) Config[T] { return Config[T]{Strategy: StrategyConstant, Value: v} }

// Zero answers every outside read with the zero value of T.
func Zero[T any]() Config[T] { return Config[T]{Strategy: StrategyConstant} }

// Border answers outside reads with the nearest inside sample.
func Border[T any]() Config[T] { return Config[T]{Strategy: StrategyBorder} }

// Mirror reflects at the edge sample without repeating it.
func Mirror[T any]() Config[T] { return Config[T]{Strategy: StrategyMirror} }

// MirrorDouble reflects beyond the edge sample, repeating it.
func MirrorDouble[T any]() Config[T] { return Config[T]{Strategy: StrategyMirrorDouble} }

// Periodic wraps coordinates modulo the extent.
func Periodic[T any]() Config[T] { return Config[T]{Strategy: StrategyPeriodic} }

// mapCoord folds p into [lo, hi] according to s. StrategyConstant is handled by the
// caller.
func mapCoord(s Strategy, p, lo, hi int64) int64 {
	size := hi - lo + 1
	switch s {
	case StrategyBorder:
		if p < lo {
			return lo
		}
		if p > hi {
			return hi
		}
		return p
	case StrategyPeriodic:
		return lo + floorMod(p-lo, size)
	case StrategyMirror:
		if size == 1 {
			return lo
		}
		period := 2 * (size - 1)
		r := floorMod(p-lo, period)
		if r >= size {
			r = period - r
		}
		return lo + r
	case StrategyMirrorDouble:
		period := 2 * size
		r := floorMod(p-lo, period)
		if r >= size {
			r = period - 1 - r
		}
		return lo + r
	default:
		return p
	}
}

func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
