package api

import (
	"github.com/arnabc13/kolam-backend/internal/api/handlers"
	apimiddleware "github.com/arnabc13/kolam-backend/internal/api/middleware"
	"github.com/arnabc13/kolam-backend/internal/config"
	"github.com/arnabc13/kolam-backend/internal/kolam"
	"github.com/arnabc13/kolam-backend/internal/metrics"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, service *kolam.Service, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS middleware (also answers preflight requests)
	router.Use(apimiddleware.CORS(cfg.AllowedOrigins))

	router.GET("/", handlers.Home(version))

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/test", handlers.CORSTest)

		metricsHandler := handlers.NewMetricsHandler(cfg, version)
		api.GET("/metrics", metricsHandler.GetMetrics)

		kolamHandler := handlers.NewKolamHandler(cfg, service, cw)
		api.GET("/families", kolamHandler.Families)
		api.POST("/generate", kolamHandler.Generate)
	}

	return router
}

// NewService builds the kolam service from configuration
func NewService(cfg *config.Config) *kolam.Service {
	renderer := kolam.NewRenderer(
		kolam.WithImageSize(cfg.ImageSize),
		kolam.WithLineWidth(cfg.LineWidth),
		kolam.WithPathCounter(kolam.NewHeuristicPathCounter(cfg.OneStrokeProbability)),
	)
	return kolam.NewService(renderer)
}
