package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arnabc13/kolam-backend/internal/kolam"
)

// Config holds the application configuration
// Note: This is a stateless configuration - nothing generated is persisted
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// CORS
	AllowedOrigins []string // Origins echoed in Access-Control-Allow-Origin ("*" for any)

	// Rendering
	ImageSize            int           // Square raster edge in pixels
	LineWidth            float64       // Stroke weight in pixels
	RenderTimeout        time.Duration // Deadline for a single generation
	OneStrokeProbability float64       // Weight of reporting one stroke when requested
}

func Load() *Config {
	return &Config{
		Environment:          getEnv("ENVIRONMENT", "development"),
		Port:                 getEnv("PORT", "5000"),
		SentryDSN:            getEnv("SENTRY_DSN", ""),
		AllowedOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ImageSize:            getEnvIntBetween("KOLAM_IMAGE_SIZE", kolam.DefaultImageSize, 1, kolam.MaxImageSize),
		LineWidth:            getEnvPositiveFloat("KOLAM_LINE_WIDTH", kolam.DefaultLineWidth),
		RenderTimeout:        getEnvDuration("KOLAM_RENDER_TIMEOUT", 10*time.Second),
		OneStrokeProbability: getEnvFloatBetween("KOLAM_ONE_STROKE_PROBABILITY", kolam.DefaultOneStrokeProbability, 0, 1),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// Out-of-range values fall back to the default, like malformed ones.
func getEnvIntBetween(key string, defaultValue, lo, hi int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n >= lo && n <= hi {
		return n
	}
	return defaultValue
}

func getEnvFloatBetween(key string, defaultValue, lo, hi float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && f >= lo && f <= hi {
		return f
	}
	return defaultValue
}

func getEnvPositiveFloat(key string, defaultValue float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && f > 0 && !math.IsInf(f, 0) {
		return f
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when running with ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowsAnyOrigin returns true when CORS is open to every origin
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.AllowedOrigins) == 0
}
