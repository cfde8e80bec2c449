// Package sample draws the values fed into a tree.
package sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidRange is returned for a Range that cannot be sampled.
var ErrInvalidRange = errors.New("invalid range")

// Range is the half-open interval [Min, Max).
type Range struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Validate checks that both bounds are finite and Min is below Max.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) ||
		math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min %v must be less than max %v", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v)", r.Min, r.Max)
}

// Generator draws uniformly distributed values from a Range.
type Generator struct {
	rng *rand.Rand
	r   Range
}

// NewGenerator returns a Generator over r. A zero seed seeds from the
// current time.
func NewGenerator(r Range, seed int64) (*Generator, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		r:   r,
	}, nil
}

// Float64 returns a value drawn uniformly from [Min, Max).
func (g *Generator) Float64() float64 {
	// Interpolating avoids Max-Min, which overflows to +Inf when the
	// bounds have opposite signs and large magnitudes.
	u := g.rng.Float64()
	v := g.r.Min*(1-u) + g.r.Max*u
	switch {
	case v < g.r.Min:
		v = g.r.Min
	case v >= g.r.Max:
		v = math.Nextafter(g.r.Max, g.r.Min)
	}
	return v
}

// Fill returns n values drawn from the Generator.
func (g *Generator) Fill(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Float64()
	}
	return out
}
