// Package kolam generates looped floor-drawing curves and rasterizes them.
package kolam

import (
	"fmt"
	"math"
)

const (
	// MinGridSize and MaxGridSize bound the dot grid accepted by the service.
	MinGridSize = 5
	MaxGridSize = 25

	// samplesPerCell scales the sample count with the grid size.
	samplesPerCell = 15
	// MinSamples keeps small grids from producing a coarse polygon.
	MinSamples = 120
	// revolutions is how many times the parameter circles the origin.
	revolutions = 2
)

// Point is a planar coordinate in curve space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is an ordered closed polyline: the last point equals the first.
type Curve []Point

// Closed reports whether the curve ends where it starts.
func (c Curve) Closed() bool {
	return len(c) > 0 && c[0] == c[len(c)-1]
}

// MaxAbs returns the largest absolute coordinate over both axes.
func (c Curve) MaxAbs() float64 {
	m := 0.0
	for _, p := range c {
		m = math.Max(m, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return m
}

// SampleCount returns the number of parameter samples for gridSize.
// The count is even so that the second revolution falls between the samples
// of the first instead of retracing them.
func SampleCount(gridSize int) int {
	n := max(gridSize*samplesPerCell, MinSamples)
	if n%2 != 0 {
		n++
	}
	return n
}

// Generate samples the family curve over two revolutions and closes it.
// Unknown families fall back to diamond. gridSize and bias are trusted to be
// in range; the caller validates them.
func Generate(gridSize int, family Family, bias float64) (Curve, error) {
	const op = "kolam.Generate"

	n := SampleCount(gridSize)
	span := revolutions * 2 * math.Pi
	step := span / float64(n-1)

	curve := make(Curve, 0, n+1)
	for i := 0; i < n; i++ {
		t := float64(i) * step
		p := family.shape(t, bias)
		if !finite(p) {
			return nil, &Error{
				Op:   op,
				Kind: KindGeometry,
				Err:  fmt.Errorf("%w at t=%.4f (family=%s)", ErrNonFinite, t, family),
			}
		}
		curve = append(curve, p)
	}

	if !curve.Closed() {
		curve = append(curve, curve[0])
	}
	return curve, nil
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
