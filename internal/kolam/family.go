package kolam

import (
	"math"
	"strings"
)

// Family names a boundary shape template.
type Family string

const (
	FamilyDiamond Family = "diamond"
	FamilyFish    Family = "fish"
	FamilyWaves   Family = "waves"
	FamilyCorners Family = "corners"
	FamilyFractal Family = "fractal"
	FamilyOrganic Family = "organic"
)

const (
	// cornersDecayScale is the envelope time constant at full complexity.
	cornersDecayScale = 10.0
	// wavesDriftBase offsets the horizontal drift divisor for the waves family.
	wavesDriftBase = 2.0
)

// shapeFunc maps the curve parameter t to a point. a is the family amplitude
// already scaled by the complexity bias.
type shapeFunc func(t, bias, a float64) Point

// familyTraits is one row of the family table.
type familyTraits struct {
	amplitude    float64
	shape        shapeFunc
	defaultColor string
	decorative   bool
}

// families is the single source of truth for per-family geometry and styling.
var families = map[Family]familyTraits{
	FamilyDiamond: {
		amplitude:    0.5,
		defaultColor: "#e377c2",
		decorative:   true,
		shape: func(t, _, a float64) Point {
			return Point{X: math.Cos(t) + a*math.Cos(3*t), Y: math.Sin(t) + a*math.Sin(3*t)}
		},
	},
	FamilyFish: {
		amplitude:    0.3,
		defaultColor: "#ff7f0e",
		decorative:   true,
		shape: func(t, _, a float64) Point {
			return Point{X: math.Cos(t) * (1 + a*math.Cos(5*t)), Y: math.Sin(t) * (1 + a*math.Sin(5*t))}
		},
	},
	FamilyWaves: {
		amplitude:    0.2,
		defaultColor: "#2ca02c",
		shape: func(t, bias, a float64) Point {
			return Point{X: bias*t/(wavesDriftBase+bias) + math.Cos(t), Y: math.Sin(t) + a*math.Sin(7*t)}
		},
	},
	FamilyCorners: {
		defaultColor: "#1f77b4",
		shape: func(t, bias, _ float64) Point {
			// e^(-t/tau) with tau = cornersDecayScale/bias, flat at bias 0.
			env := math.Exp(-t * bias / cornersDecayScale)
			return Point{X: math.Cos(t) * env, Y: math.Sin(t) * env}
		},
	},
	FamilyFractal: {
		amplitude:    0.3,
		defaultColor: "#9467bd",
		shape: func(t, _, a float64) Point {
			return Point{X: math.Cos(t) + a*math.Cos(7*t), Y: math.Sin(t) + a*math.Sin(5*t)}
		},
	},
	FamilyOrganic: {
		amplitude:    0.4,
		defaultColor: "#8c564b",
		shape: func(t, _, a float64) Point {
			return Point{X: math.Cos(t) + a*math.Sin(3*t), Y: math.Sin(t) + a*math.Cos(3*t)}
		},
	},
}

// familyOrder fixes the listing order for Families.
var familyOrder = []Family{
	FamilyDiamond, FamilyCorners, FamilyFish, FamilyWaves, FamilyFractal, FamilyOrganic,
}

// FamilyInfo describes a family for listings.
type FamilyInfo struct {
	Name         Family `json:"name"`
	DefaultColor string `json:"default_color"`
	Decorative   bool   `json:"decorative"`
}

// Families returns the supported families in a stable order.
func Families() []FamilyInfo {
	out := make([]FamilyInfo, 0, len(familyOrder))
	for _, f := range familyOrder {
		tr := families[f]
		out = append(out, FamilyInfo{Name: f, DefaultColor: tr.defaultColor, Decorative: tr.decorative})
	}
	return out
}

// ParseFamily normalizes name and reports whether it is a known family.
func ParseFamily(name string) (Family, bool) {
	f := Family(strings.ToLower(strings.TrimSpace(name)))
	_, ok := families[f]
	return f, ok
}

// Valid reports whether f is a known family.
func (f Family) Valid() bool {
	_, ok := families[f]
	return ok
}

// resolve returns f, or diamond when f is unknown.
func (f Family) resolve() Family {
	if f.Valid() {
		return f
	}
	return FamilyDiamond
}

// Decorative reports whether marker overlays apply to f.
func (f Family) Decorative() bool {
	return families[f.resolve()].decorative
}

// DefaultColor returns the stroke color used when no override is given.
func (f Family) DefaultColor() string {
	if tr, ok := families[f]; ok {
		return tr.defaultColor
	}
	return fallbackColor
}

// shape evaluates the family curve at t.
func (f Family) shape(t, bias float64) Point {
	tr := families[f.resolve()]
	return tr.shape(t, bias, tr.amplitude*bias)
}
