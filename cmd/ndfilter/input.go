package main

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/value"
)

type sample = value.Float64

type inputGenerator func(a *img.ArrayImg[sample], spec InputSpec) error

var inputGenerators = map[string]inputGenerator{
	"ramp":     rampInput,
	"checker":  checkerInput,
	"noise":    noiseInput,
	"impulse":  impulseInput,
	"constant": constantInput,
}

func inputKinds() []string {
	kinds := lo.Keys(inputGenerators)
	slices.Sort(kinds)
	return kinds
}

func makeInput(spec InputSpec) (*img.ArrayImg[sample], error) {
	gen, ok := inputGenerators[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownInput, spec.Kind)
	}
	a, err := img.NewArrayImgFromDims[sample](spec.Dims...)
	if err != nil {
		return nil, fmt.Errorf("ndfilter: input: %w", err)
	}
	if err := gen(a, spec); err != nil {
		return nil, err
	}
	return a, nil
}

// rampInput stores the flat index of every sample.
func rampInput(a *img.ArrayImg[sample], _ InputSpec) error {
	for i := range a.Data() {
		a.Data()[i] = sample(i)
	}
	return nil
}

// checkerInput alternates Low and High in squares of Cell samples per axis.
func checkerInput(a *img.ArrayImg[sample], spec InputSpec) error {
	cell := max(spec.Cell, 1)
	low, high := spec.Low, spec.High
	if low == high {
		high = low + 1
	}
	pos := make([]int64, a.NumDimensions())
	c := a.Cursor()
	defer c.Close()
	for c.HasNext() {
		c.Fwd()
		c.Localize(pos)
		var parity int64
		for _, p := range pos {
			parity += p / cell
		}
		v := low
		if parity%2 == 1 {
			v = high
		}
		*c.Get() = sample(v)
	}
	return nil
}

// noiseInput draws uniform samples in [Low, High) from a seeded source.
func noiseInput(a *img.ArrayImg[sample], spec InputSpec) error {
	low, high := spec.Low, spec.High
	if low == high {
		high = low + 1
	}
	rng := rand.New(rand.NewSource(spec.Seed))
	for i := range a.Data() {
		a.Data()[i] = sample(low + rng.Float64()*(high-low))
	}
	return nil
}

// impulseInput places Value (1 when unset) at Position, or at the center.
func impulseInput(a *img.ArrayImg[sample], spec InputSpec) error {
	pos := spec.Position
	if pos == nil {
		pos = lo.Map(a.Dimensions(), func(s int64, _ int) int64 { return s / 2 })
	}
	if len(pos) != a.NumDimensions() || !a.Contains(pos) {
		return fmt.Errorf("ndfilter: impulse position %v outside %v", pos, a.Interval())
	}
	v := spec.Value
	if v == 0 {
		v = 1
	}
	*a.At(pos...) = sample(v)
	return nil
}

func constantInput(a *img.ArrayImg[sample], spec InputSpec) error {
	a.Fill(sample(spec.Value))
	return nil
}
