package models

import (
	"fmt"
	"strings"

	"github.com/arnabc13/kolam-backend/internal/kolam"
)

// Request defaults, matching the web client's initial form state
const (
	DefaultGridSize       = 15
	DefaultComplexityBias = 0.65
	DefaultFamily         = string(kolam.FamilyDiamond)
	DefaultTheme          = string(kolam.ThemeLight)
)

// GenerateRequest is the JSON body of POST /api/generate.
// Pointer fields distinguish "absent" from zero values so defaults apply.
type GenerateRequest struct {
	GridSize     *int     `json:"ND"`
	Sigmaref     *float64 `json:"sigmaref"` // complexity bias in [0,1]
	BoundaryType string   `json:"boundary_type"`
	Theme        string   `json:"theme"`
	KolamColor   *string  `json:"kolam_color"`
	OneStroke    bool     `json:"one_stroke"`
	Decorate     *bool    `json:"decorate"`
}

// GenerateResponse is returned on success.
type GenerateResponse struct {
	Success        bool    `json:"success"`
	Image          string  `json:"image"`
	PathCount      int     `json:"path_count"`
	IsOneStroke    bool    `json:"is_one_stroke"`
	BoundaryType   string  `json:"boundary_type"`
	GenerationTime float64 `json:"generation_time"`
	Message        string  `json:"message"`
	RequestID      string  `json:"request_id,omitempty"`
}

// ErrorResponse is returned for validation and generation failures.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ValidationError reports a request parameter rejected before generation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Validate checks the request and converts it into a core request.
func (r *GenerateRequest) Validate() (kolam.Request, error) {
	grid := DefaultGridSize
	if r.GridSize != nil {
		grid = *r.GridSize
	}
	if grid%2 == 0 || grid < kolam.MinGridSize || grid > kolam.MaxGridSize {
		return kolam.Request{}, &ValidationError{
			Field:   "ND",
			Message: fmt.Sprintf("must be odd, %d-%d", kolam.MinGridSize, kolam.MaxGridSize),
		}
	}

	bias := DefaultComplexityBias
	if r.Sigmaref != nil {
		bias = *r.Sigmaref
	}
	// The negated form also rejects NaN.
	if !(bias >= 0 && bias <= 1) {
		return kolam.Request{}, &ValidationError{Field: "sigmaref", Message: "must be between 0 and 1"}
	}

	name := r.BoundaryType
	if strings.TrimSpace(name) == "" {
		name = DefaultFamily
	}
	family, ok := kolam.ParseFamily(name)
	if !ok {
		return kolam.Request{}, &ValidationError{
			Field:   "boundary_type",
			Message: "must be one of " + strings.Join(familyNames(), ", "),
		}
	}

	color := ""
	if r.KolamColor != nil && strings.TrimSpace(*r.KolamColor) != "" {
		if _, err := kolam.ParseColor(*r.KolamColor); err != nil {
			return kolam.Request{}, &ValidationError{Field: "kolam_color", Message: "must be a hex color like #e377c2"}
		}
		color = strings.TrimSpace(*r.KolamColor)
	}

	theme := r.Theme
	if theme == "" {
		theme = DefaultTheme
	}

	decorate := true
	if r.Decorate != nil {
		decorate = *r.Decorate
	}

	return kolam.Request{
		GridSize:       grid,
		Family:         family,
		ComplexityBias: bias,
		Color:          color,
		Theme:          kolam.ParseTheme(theme),
		OneStroke:      r.OneStroke,
		Decorate:       decorate,
	}, nil
}

func familyNames() []string {
	infos := kolam.Families()
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, string(info.Name))
	}
	return names
}
