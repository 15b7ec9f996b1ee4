package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/arnabc13/kolam-backend/internal/config"
	"github.com/arnabc13/kolam-backend/internal/kolam"
	"github.com/arnabc13/kolam-backend/internal/logger"
	"github.com/arnabc13/kolam-backend/internal/metrics"
	"github.com/arnabc13/kolam-backend/internal/models"
	"github.com/gin-gonic/gin"
)

type KolamHandler struct {
	service       *kolam.Service
	cfg           *config.Config
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewKolamHandler(cfg *config.Config, service *kolam.Service, cw *metrics.Client) *KolamHandler {
	return &KolamHandler{
		service:       service,
		cfg:           cfg,
		cloudwatch:    cw,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// Families lists the supported boundary families
func (h *KolamHandler) Families(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"families": kolam.Families(),
	})
}

// Generate validates the request, runs the generator and returns the image
func (h *KolamHandler) Generate(c *gin.Context) {
	requestID := c.GetString("request_id")
	fields := logger.WithContext(c)

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := "Invalid JSON body: " + err.Error()
		if errors.Is(err, io.EOF) {
			msg = "No JSON data provided"
		}
		logger.Warn("Rejected generate request", fields)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msg, RequestID: requestID})
		return
	}

	coreReq, err := req.Validate()
	if err != nil {
		resp := models.ErrorResponse{Error: err.Error(), RequestID: requestID}
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			resp.Field = ve.Field
		}
		fields["error"] = err.Error()
		logger.Warn("Rejected generate request", fields)
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	fields["boundary_type"] = string(coreReq.Family)
	fields["grid_size"] = coreReq.GridSize
	fields["one_stroke"] = coreReq.OneStroke
	logger.Debug("Generating kolam", fields)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.RenderTimeout)
	defer cancel()

	start := time.Now()
	result, err := h.service.Generate(ctx, coreReq)
	duration := time.Since(start)

	sample := metrics.Generation{
		Family:    string(coreReq.Family),
		GridSize:  coreReq.GridSize,
		OneStroke: coreReq.OneStroke,
		Duration:  duration,
		Success:   err == nil,
	}

	if err != nil {
		status := http.StatusInternalServerError
		var kerr *kolam.Error
		if errors.As(err, &kerr) {
			sample.ErrorKind = string(kerr.Kind)
			if kerr.Kind == kolam.KindCanceled {
				status = http.StatusGatewayTimeout
			}
		}
		h.record(ctx, sample)

		logger.Error("Kolam generation failed", err, fields)
		c.JSON(status, models.ErrorResponse{
			Error:     fmt.Sprintf("Failed to generate kolam: %v", err),
			RequestID: requestID,
		})
		return
	}

	sample.PathCount = result.PathCount
	h.record(ctx, sample)
	logger.LogGeneration(c.Request.Context(), string(result.Family), duration, result.PathCount, logger.Fields{
		"request_id": requestID,
		"grid_size":  coreReq.GridSize,
	})

	c.JSON(http.StatusOK, models.GenerateResponse{
		Success:        true,
		Image:          result.Image,
		PathCount:      result.PathCount,
		IsOneStroke:    result.IsOneStroke,
		BoundaryType:   string(result.Family),
		GenerationTime: math.Round(result.ElapsedSeconds*generationTimePrecision) / generationTimePrecision,
		Message:        fmt.Sprintf("Generated %s kolam successfully", result.Family),
		RequestID:      requestID,
	})
}

func (h *KolamHandler) record(ctx context.Context, sample metrics.Generation) {
	h.sentryMetrics.RecordGeneration(ctx, sample)
	h.cloudwatch.RecordGeneration(sample)
}
