package common

const (
	APIPrefix   = "/api/v1"
	HealthPath  = "/health"
	MetricsPath = "/metrics"
	DocsPath    = "/docs/*"

	RequestIDHeader = "X-Request-ID"
)
