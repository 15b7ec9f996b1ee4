package kolam

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
)

const (
	// DefaultImageSize is the raster edge in pixels.
	DefaultImageSize = 1000
	// DefaultLineWidth is the stroke weight in pixels.
	DefaultLineWidth = 4.0

	// marginFraction pads the plot beyond the curve's extent.
	marginFraction = 0.1
	strokeOpacity  = 0.95

	markerTarget  = 8
	maxMarkers    = 12
	markerOpacity = 0.6
	// markerScale sizes marker dots relative to the line width.
	markerScale = 1.5

	dataURIPrefix = "data:image/png;base64,"
)

// RenderOptions carries the per-request styling.
type RenderOptions struct {
	Family    Family
	Color     string // optional hex override
	Theme     Theme
	Decorate  bool
	OneStroke bool
}

// Rendering is the renderer's output.
type Rendering struct {
	PNG         []byte
	DataURI     string
	PathCount   int
	IsOneStroke bool
}

// Renderer rasterizes curves to PNG. It is safe for concurrent use as long as
// its PathCounter is.
type Renderer struct {
	size      int
	lineWidth float64
	surfaces  SurfaceProvider
	counter   PathCounter
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithImageSize sets the square raster edge in pixels.
func WithImageSize(n int) RendererOption {
	return func(r *Renderer) { r.size = n }
}

// WithLineWidth sets the stroke weight in pixels.
func WithLineWidth(w float64) RendererOption {
	return func(r *Renderer) { r.lineWidth = w }
}

// WithSurfaces replaces the default surface pool.
func WithSurfaces(s SurfaceProvider) RendererOption {
	return func(r *Renderer) { r.surfaces = s }
}

// WithPathCounter replaces the default stroke-count heuristic.
func WithPathCounter(pc PathCounter) RendererOption {
	return func(r *Renderer) { r.counter = pc }
}

// NewRenderer returns a Renderer with defaults applied.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		size:      DefaultImageSize,
		lineWidth: DefaultLineWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.surfaces == nil {
		r.surfaces = NewSurfacePool()
	}
	if r.counter == nil {
		r.counter = NewHeuristicPathCounter(DefaultOneStrokeProbability)
	}
	return r
}

// Render draws curve and encodes it. The surface is released on every return
// path, including cancellation and encode failures.
func (r *Renderer) Render(ctx context.Context, curve Curve, opts RenderOptions) (*Rendering, error) {
	const op = "kolam.Render"

	if len(curve) == 0 {
		return nil, &Error{Op: op, Kind: KindRender, Err: ErrEmptyCurve}
	}

	family := opts.Family.resolve()
	strokeHex := opts.Color
	if strokeHex == "" {
		strokeHex = family.DefaultColor()
	}
	stroke, err := ParseColor(strokeHex)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindRender, Err: err}
	}
	bg, err := ParseColor(opts.Theme.Background())
	if err != nil {
		return nil, &Error{Op: op, Kind: KindRender, Err: err}
	}

	surface, err := r.surfaces.Acquire(r.size)
	if err != nil {
		return nil, err
	}
	defer r.surfaces.Release(surface)

	size := surface.Size()
	extent := PlotExtent(curve)

	surface.SetColor(withAlpha(bg, 1))
	surface.Clear()

	surface.SetColor(withAlpha(stroke, strokeOpacity))
	surface.SetLineWidth(r.lineWidth)
	surface.SetLineCapRound()
	surface.SetLineJoinRound()
	if len(curve) == 1 {
		x, y := Project(curve[0], extent, size)
		surface.DrawCircle(x, y, r.lineWidth/2)
		surface.Fill()
	} else {
		for i, p := range curve {
			x, y := Project(p, extent, size)
			if i == 0 {
				surface.MoveTo(x, y)
				continue
			}
			surface.LineTo(x, y)
		}
		surface.Stroke()
	}

	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: op, Kind: KindCanceled, Err: err}
	}

	if opts.Decorate && family.Decorative() {
		surface.SetColor(withAlpha(stroke, markerOpacity))
		for _, i := range MarkerIndices(len(curve)) {
			x, y := Project(curve[i], extent, size)
			surface.DrawCircle(x, y, r.lineWidth*markerScale)
			surface.Fill()
		}
	}

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return nil, &Error{Op: op, Kind: KindResource, Err: fmt.Errorf("encode png: %w", err)}
	}

	count := r.counter.EstimatePathCount(curve, opts.OneStroke)
	return &Rendering{
		PNG:         buf.Bytes(),
		DataURI:     DataURI(buf.Bytes()),
		PathCount:   count,
		IsOneStroke: count == 1,
	}, nil
}

// PlotExtent is the half-width of the visible square in curve units.
func PlotExtent(curve Curve) float64 {
	m := curve.MaxAbs()
	if m == 0 {
		return 1
	}
	return m * (1 + marginFraction)
}

// Project maps a curve point into pixel space on a size×size raster with the
// origin at the center and y pointing up.
func Project(p Point, extent float64, size int) (float64, float64) {
	half := float64(size) / 2
	return (p.X/extent + 1) * half, (1 - p.Y/extent) * half
}

// MarkerIndices returns regularly strided indices into a curve of n points,
// at most maxMarkers of them.
func MarkerIndices(n int) []int {
	if n <= 0 {
		return nil
	}
	stride := max(1, n/markerTarget)
	out := make([]int, 0, maxMarkers)
	for i := 0; i < n && len(out) < maxMarkers; i += stride {
		out = append(out, i)
	}
	return out
}

// DataURI wraps PNG bytes in a base64 data URI.
func DataURI(png []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png)
}
