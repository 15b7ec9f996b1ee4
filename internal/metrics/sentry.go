package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// Generation describes one finished generate → render run
type Generation struct {
	Family    string
	GridSize  int
	PathCount int
	OneStroke bool
	Duration  time.Duration
	Success   bool
	ErrorKind string
}

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Spans are dropped by the SDK when Sentry is not configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}
	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordGeneration records a kolam generation on the request transaction
func (m *SentryMetrics) RecordGeneration(ctx context.Context, g Generation) {
	if !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("kolam.boundary_type", g.Family)
		transaction.SetTag("kolam.grid_size", fmt.Sprintf("%d", g.GridSize))
	}

	span := sentry.StartSpan(ctx, "kolam.generate")
	defer span.Finish()

	span.SetTag("boundary_type", g.Family)
	span.SetTag("one_stroke", fmt.Sprintf("%t", g.OneStroke))
	span.SetTag("success", fmt.Sprintf("%t", g.Success))
	if g.ErrorKind != "" {
		span.SetTag("error_kind", g.ErrorKind)
	}

	span.SetData("grid_size", g.GridSize)
	span.SetData("path_count", g.PathCount)
	span.SetData("duration_ms", g.Duration.Milliseconds())

	if g.Success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}
	span.Description = fmt.Sprintf("Generate %s kolam (ND=%d)", g.Family, g.GridSize)
}
