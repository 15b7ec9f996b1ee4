package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arnabc13/kolam-backend/internal/config"
	"github.com/arnabc13/kolam-backend/internal/kolam"
	"github.com/arnabc13/kolam-backend/internal/metrics"
	"github.com/arnabc13/kolam-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupKolamTestRouter creates a minimal router with the kolam endpoints
func setupKolamTestRouter(t *testing.T, counter kolam.PathCounter) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Environment:          "test",
		ImageSize:            128,
		LineWidth:            2,
		RenderTimeout:        5 * time.Second,
		OneStrokeProbability: kolam.DefaultOneStrokeProbability,
	}
	cw, err := metrics.NewClient(context.Background(), cfg.Environment)
	require.NoError(t, err)

	opts := []kolam.RendererOption{kolam.WithImageSize(cfg.ImageSize), kolam.WithLineWidth(cfg.LineWidth)}
	if counter != nil {
		opts = append(opts, kolam.WithPathCounter(counter))
	}
	service := kolam.NewService(kolam.NewRenderer(opts...))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "test-request")
		c.Next()
	})

	h := NewKolamHandler(cfg, service, cw)
	router.POST("/api/generate", h.Generate)
	router.GET("/api/families", h.Families)
	return router
}

func postGenerate(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestGenerate_DiamondScenario(t *testing.T) {
	router := setupKolamTestRouter(t, nil)

	w, resp := postGenerate(t, router, `{
		"ND": 15,
		"boundary_type": "diamond",
		"sigmaref": 0.35,
		"theme": "light",
		"one_stroke": false
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "diamond", resp["boundary_type"])
	assert.Equal(t, false, resp["is_one_stroke"])
	assert.Equal(t, "test-request", resp["request_id"])

	pathCount := resp["path_count"].(float64)
	assert.GreaterOrEqual(t, pathCount, 2.0)
	assert.LessOrEqual(t, pathCount, 6.0)

	image := resp["image"].(string)
	require.True(t, strings.HasPrefix(image, "data:image/png;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(image, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestGenerate_OneStroke(t *testing.T) {
	router := setupKolamTestRouter(t, kolam.NewSeededPathCounter(1, 9))

	w, resp := postGenerate(t, router, `{"ND": 7, "boundary_type": "fish", "one_stroke": true, "theme": "dark"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.0, resp["path_count"])
	assert.Equal(t, true, resp["is_one_stroke"])
}

func TestGenerate_ValidationErrors(t *testing.T) {
	router := setupKolamTestRouter(t, nil)

	tests := []struct {
		name      string
		body      string
		wantField string
		wantError string
	}{
		{name: "even grid", body: `{"ND": 6}`, wantField: "ND", wantError: "ND must be odd, 5-25"},
		{name: "bias out of range", body: `{"sigmaref": 2}`, wantField: "sigmaref"},
		{name: "unknown family", body: `{"boundary_type": "spiral"}`, wantField: "boundary_type"},
		{name: "bad color", body: `{"kolam_color": "rose"}`, wantField: "kolam_color"},
		{name: "malformed json", body: `{"ND": `, wantError: "Invalid JSON body"},
		{name: "wrong type", body: `{"ND": "fifteen"}`, wantError: "Invalid JSON body"},
		{name: "empty body", body: ``, wantError: "No JSON data provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := postGenerate(t, router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, resp["success"])
			assert.NotContains(t, resp, "image")
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, resp["field"])
			}
			if tt.wantError != "" {
				assert.Contains(t, resp["error"], tt.wantError)
			}
		})
	}
}

func TestGenerate_TimeoutMapsToGatewayTimeout(t *testing.T) {
	cfg := &config.Config{RenderTimeout: time.Nanosecond}
	h := NewKolamHandler(cfg, kolam.NewService(kolam.NewRenderer(kolam.WithImageSize(64))), nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/generate", h.Generate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "Failed to generate kolam")
}

func TestFamilies(t *testing.T) {
	router := setupKolamTestRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/families", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Families []kolam.FamilyInfo `json:"families"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Families, 6)
	assert.Equal(t, kolam.FamilyDiamond, resp.Families[0].Name)
	assert.Equal(t, "#e377c2", resp.Families[0].DefaultColor)
}
