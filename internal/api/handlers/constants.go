package handlers

const (
	// Service identity reported by the informational endpoints
	serviceName = "Kolam Generator API"

	// Decimal places kept in generation_time
	generationTimePrecision = 1000

	// Route paths advertised by the home endpoint
	pathHealth   = "/api/health"
	pathGenerate = "/api/generate"
	pathTest     = "/api/test"
	pathFamilies = "/api/families"
	pathMetrics  = "/api/metrics"
)
