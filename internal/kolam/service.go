package kolam

import (
	"context"
	"time"
)

// Request is a validated generation request.
type Request struct {
	GridSize       int
	Family         Family
	ComplexityBias float64
	Color          string
	Theme          Theme
	OneStroke      bool
	Decorate       bool
}

// Result is the outcome of one generation.
type Result struct {
	Image          string
	PathCount      int
	IsOneStroke    bool
	Family         Family
	ElapsedSeconds float64
	Points         int
}

// Service runs the generate → render pipeline. It holds no per-request state.
type Service struct {
	renderer *Renderer
	now      func() time.Time
}

// NewService returns a Service that renders with r.
func NewService(r *Renderer) *Service {
	if r == nil {
		r = NewRenderer()
	}
	return &Service{renderer: r, now: time.Now}
}

// Generate builds the curve for req and renders it.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	const op = "kolam.Service.Generate"
	start := s.now()

	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: op, Kind: KindCanceled, Err: err}
	}

	curve, err := Generate(req.GridSize, req.Family, req.ComplexityBias)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: op, Kind: KindCanceled, Err: err}
	}

	out, err := s.renderer.Render(ctx, curve, RenderOptions{
		Family:    req.Family,
		Color:     req.Color,
		Theme:     req.Theme,
		Decorate:  req.Decorate,
		OneStroke: req.OneStroke,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Image:          out.DataURI,
		PathCount:      out.PathCount,
		IsOneStroke:    out.IsOneStroke,
		Family:         req.Family.resolve(),
		ElapsedSeconds: s.now().Sub(start).Seconds(),
		Points:         len(curve),
	}, nil
}
