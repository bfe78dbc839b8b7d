package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/common"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/handlers/http/request"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/handlers/http/response"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/prometheus"
)

type CreateScanHandlerDeps struct {
	Logger         *logrus.Logger
	Scanner        BatchScanner
	MaxTitles      int
	MetricsEnabled bool
}

type createScanHandler struct {
	logger         *logrus.Logger
	scanner        BatchScanner
	maxTitles      int
	metricsEnabled bool
}

func NewCreateScanHandler(deps CreateScanHandlerDeps) Handler {
	return &createScanHandler{
		logger:         deps.Logger,
		scanner:        deps.Scanner,
		maxTitles:      deps.MaxTitles,
		metricsEnabled: deps.MetricsEnabled,
	}
}

// Handle @Summary Scan a batch of titles
// @Description Scores every title and returns the results in input order
// @Tags Scans
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token, when auth is enabled"
// @Param scan body request.CreateScanRequest true "Titles to scan"
// @Success 201 {object} response.ScanResponse "Scan results"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/v1/scans [post]
func (h *createScanHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateScanRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return errorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidJsonPayload)
	}

	if err := req.Validate(h.maxTitles); err != nil {
		h.logger.WithError(err).Debug("invalid scan request")
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	scanID, err := uuid.NewV7()
	if err != nil {
		h.logger.WithError(err).Error("failed to generate UUID")
		return errorResponse(c, fiber.StatusInternalServerError, errors.New("failed to generate scan id"))
	}

	start := time.Now()
	results := h.scanner.Scan(req.Titles)
	if h.metricsEnabled {
		prometheus.ObserveResults(results)
	}

	h.logger.WithFields(logrus.Fields{
		"scan_id":    scanID.String(),
		"request_id": c.Locals(common.RequestIDContextKey),
		"titles":     len(results),
		"elapsed_ms": time.Since(start).Milliseconds(),
	}).Info("scan completed")

	return c.Status(fiber.StatusCreated).JSON(response.ScanResponse{
		ScanID:  scanID.String(),
		Count:   len(results),
		Results: results,
	})
}
