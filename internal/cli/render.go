package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnabc13/kolam-backend/internal/kolam"
	"github.com/arnabc13/kolam-backend/internal/models"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	grid      int     // odd grid size in [5,25]
	family    string  // boundary family name
	bias      float64 // complexity bias in [0,1]
	theme     string  // light or dark
	color     string  // stroke color override, empty for the family default
	oneStroke bool    // request a single-stroke path count
	decorate  bool    // draw markers on decorative families
	size      int     // raster edge in pixels
	output    string  // PNG destination
	dataURI   bool    // print the data URI instead of writing a file
	seed      uint64  // path-count seed, 0 for a random one
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		grid:     models.DefaultGridSize,
		family:   models.DefaultFamily,
		bias:     models.DefaultComplexityBias,
		theme:    models.DefaultTheme,
		decorate: true,
		size:     kolam.DefaultImageSize,
		output:   "kolam.png",
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a kolam to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVar(&opts.grid, "grid", opts.grid, "grid size (odd, 5-25)")
	cmd.Flags().StringVar(&opts.family, "family", opts.family, "boundary family: diamond, corners, fish, waves, fractal, organic")
	cmd.Flags().Float64Var(&opts.bias, "bias", opts.bias, "complexity bias (0-1)")
	cmd.Flags().StringVar(&opts.theme, "theme", opts.theme, "background theme: light, dark")
	cmd.Flags().StringVar(&opts.color, "color", "", "stroke color as hex (default: family color)")
	cmd.Flags().BoolVar(&opts.oneStroke, "one-stroke", false, "request a one-stroke kolam")
	cmd.Flags().BoolVar(&opts.decorate, "decorate", opts.decorate, "draw decorative markers")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "image edge in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG file")
	cmd.Flags().BoolVar(&opts.dataURI, "data-uri", false, "print the data URI to stdout instead of writing a file")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for the path-count estimate (0: random)")

	return cmd
}

// request converts the flags into a validated core request, applying the
// same checks as POST /api/generate.
func (o *renderOpts) request() (kolam.Request, error) {
	req := models.GenerateRequest{
		GridSize:     &o.grid,
		Sigmaref:     &o.bias,
		BoundaryType: o.family,
		Theme:        o.theme,
		OneStroke:    o.oneStroke,
		Decorate:     &o.decorate,
	}
	if o.color != "" {
		req.KolamColor = &o.color
	}
	return req.Validate()
}

func (o *renderOpts) renderer() *kolam.Renderer {
	counter := kolam.NewHeuristicPathCounter(kolam.DefaultOneStrokeProbability)
	if o.seed != 0 {
		counter = kolam.NewSeededPathCounter(kolam.DefaultOneStrokeProbability, o.seed)
	}
	return kolam.NewRenderer(kolam.WithImageSize(o.size), kolam.WithPathCounter(counter))
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	req, err := opts.request()
	if err != nil {
		return err
	}

	c.Logger.Debug("Generating curve", "family", req.Family, "grid", req.GridSize, "bias", req.ComplexityBias)
	prog := newProgress(c.Logger)

	curve, err := kolam.Generate(req.GridSize, req.Family, req.ComplexityBias)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	out, err := opts.renderer().Render(ctx, curve, kolam.RenderOptions{
		Family:    req.Family,
		Color:     req.Color,
		Theme:     req.Theme,
		Decorate:  req.Decorate,
		OneStroke: req.OneStroke,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if opts.dataURI {
		if _, err := fmt.Fprintln(c.out, out.DataURI); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(opts.output, out.PNG, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		c.Logger.Info("Wrote image", "path", opts.output, "bytes", len(out.PNG))
	}

	prog.done("Rendered kolam", "family", req.Family, "points", len(curve), "path_count", out.PathCount)
	return nil
}
