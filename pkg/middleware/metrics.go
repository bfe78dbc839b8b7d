package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/common"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/prometheus"
)

type metricsMiddleware struct {
	logger  *logrus.Logger
	enabled bool
}

// NewMetricsMiddleware tags every request with an id and, when enabled,
// records request counts and latency per route.
func NewMetricsMiddleware(logger *logrus.Logger, enabled bool) Middleware {
	return &metricsMiddleware{
		logger:  logger,
		enabled: enabled,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		c.Locals(common.LatencyContextKey, startTime)

		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(common.RequestIDContextKey, requestID)
		c.Set(common.RequestIDHeader, requestID)

		err := c.Next()

		elapsed := time.Since(startTime)
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := c.Route().Path

		m.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"route":      route,
			"status":     status,
			"latency_ms": elapsed.Milliseconds(),
		}).Debug("request handled")

		if m.enabled {
			prometheus.RequestTotal.WithLabelValues(route, c.Method(), statusClass(status)).Inc()
			prometheus.RequestLatency.WithLabelValues(route).Observe(float64(elapsed.Microseconds()) / 1000)
		}
		return err
	}
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", code/100)
}
