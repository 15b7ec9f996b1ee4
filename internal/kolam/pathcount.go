package kolam

import "math/rand/v2"

const (
	// DefaultOneStrokeProbability is the weight of reporting a single stroke
	// when one was requested.
	DefaultOneStrokeProbability = 0.7

	minMultiStroke = 2
	maxMultiStroke = 6
	// gridPerStroke loosely ties the multi-stroke upper bound to the grid size.
	gridPerStroke = 5
)

// PathCounter estimates how many pen strokes a curve needs.
// A real single-stroke path solver can replace the heuristic behind this
// interface without touching the renderer.
type PathCounter interface {
	EstimatePathCount(curve Curve, oneStroke bool) int
}

// HeuristicPathCounter is a weighted coin flip standing in for a stroke
// continuity solver. It only looks at the curve's sample density.
type HeuristicPathCounter struct {
	OneStrokeProbability float64

	// rng is optional; nil uses the concurrency-safe global source.
	// A counter built with its own source must not be shared across goroutines.
	rng *rand.Rand
}

// NewHeuristicPathCounter returns a counter using the global random source.
func NewHeuristicPathCounter(p float64) *HeuristicPathCounter {
	return &HeuristicPathCounter{OneStrokeProbability: p}
}

// NewSeededPathCounter returns a counter with a deterministic source.
func NewSeededPathCounter(p float64, seed uint64) *HeuristicPathCounter {
	return &HeuristicPathCounter{
		OneStrokeProbability: p,
		rng:                  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// EstimatePathCount reports 1 with OneStrokeProbability when a single stroke
// was requested, 2 otherwise. Without the request it returns a value in
// [2, MultiStrokeUpperBound(g)] where g is the grid size implied by the
// curve's sample count.
func (h *HeuristicPathCounter) EstimatePathCount(curve Curve, oneStroke bool) int {
	if oneStroke {
		if h.float64() < h.OneStrokeProbability {
			return 1
		}
		return minMultiStroke
	}
	upper := MultiStrokeUpperBound(len(curve) / samplesPerCell)
	return minMultiStroke + h.intN(upper-minMultiStroke+1)
}

// MultiStrokeUpperBound is the largest count reported for a multi-stroke
// pattern on a grid of the given size.
func MultiStrokeUpperBound(gridSize int) int {
	return min(maxMultiStroke, minMultiStroke+gridSize/gridPerStroke)
}

func (h *HeuristicPathCounter) float64() float64 {
	if h.rng != nil {
		return h.rng.Float64()
	}
	return rand.Float64()
}

func (h *HeuristicPathCounter) intN(n int) int {
	if h.rng != nil {
		return h.rng.IntN(n)
	}
	return rand.IntN(n)
}
