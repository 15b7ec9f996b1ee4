package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/arnabc13/kolam-backend/internal/kolam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRequest(t *testing.T, body string) GenerateRequest {
	t.Helper()
	var req GenerateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestGenerateRequest_Defaults(t *testing.T) {
	req := decodeRequest(t, `{}`)

	got, err := req.Validate()
	require.NoError(t, err)

	assert.Equal(t, kolam.Request{
		GridSize:       15,
		Family:         kolam.FamilyDiamond,
		ComplexityBias: 0.65,
		Theme:          kolam.ThemeLight,
		Decorate:       true,
	}, got)
}

func TestGenerateRequest_FullBody(t *testing.T) {
	req := decodeRequest(t, `{
		"ND": 21,
		"sigmaref": 0.35,
		"boundary_type": "Corners",
		"theme": "dark",
		"kolam_color": "#00ff88",
		"one_stroke": true,
		"decorate": false
	}`)

	got, err := req.Validate()
	require.NoError(t, err)

	assert.Equal(t, 21, got.GridSize)
	assert.Equal(t, kolam.FamilyCorners, got.Family)
	assert.InDelta(t, 0.35, got.ComplexityBias, 1e-12)
	assert.Equal(t, "#00ff88", got.Color)
	assert.Equal(t, kolam.ThemeDark, got.Theme)
	assert.True(t, got.OneStroke)
	assert.False(t, got.Decorate)
}

func TestGenerateRequest_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "even grid", body: `{"ND": 6}`, field: "ND"},
		{name: "grid too small", body: `{"ND": 3}`, field: "ND"},
		{name: "grid too large", body: `{"ND": 27}`, field: "ND"},
		{name: "zero grid", body: `{"ND": 0}`, field: "ND"},
		{name: "negative bias", body: `{"sigmaref": -0.1}`, field: "sigmaref"},
		{name: "bias above one", body: `{"sigmaref": 1.5}`, field: "sigmaref"},
		{name: "unknown family", body: `{"boundary_type": "spiral"}`, field: "boundary_type"},
		{name: "bad color", body: `{"kolam_color": "blue-ish"}`, field: "kolam_color"},
		{name: "five digit color", body: `{"kolam_color": "#12345"}`, field: "kolam_color"},
		{name: "trailing color text", body: `{"kolam_color": "#00ff88zz"}`, field: "kolam_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decodeRequest(t, tt.body)
			_, err := req.Validate()
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestGenerateRequest_BoundaryBiasValues(t *testing.T) {
	for _, body := range []string{`{"sigmaref": 0}`, `{"sigmaref": 1}`, `{"ND": 5}`, `{"ND": 25}`} {
		req := decodeRequest(t, body)
		_, err := req.Validate()
		assert.NoError(t, err, body)
	}
}

func TestGenerateRequest_EmptyColorUsesDefault(t *testing.T) {
	req := decodeRequest(t, `{"kolam_color": ""}`)
	got, err := req.Validate()
	require.NoError(t, err)
	assert.Empty(t, got.Color)
}
