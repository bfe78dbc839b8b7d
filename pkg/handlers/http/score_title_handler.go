package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/handlers/http/request"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/prometheus"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/types"
)

type scoreTitleHandler struct {
	logger         *logrus.Logger
	scorer         TitleScorer
	metricsEnabled bool
}

func NewScoreTitleHandler(logger *logrus.Logger, scorer TitleScorer, metricsEnabled bool) Handler {
	return &scoreTitleHandler{
		logger:         logger,
		scorer:         scorer,
		metricsEnabled: metricsEnabled,
	}
}

// Handle @Summary Score a single title
// @Description Returns the safety and confidence scores for one title
// @Tags Scans
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token, when auth is enabled"
// @Param title body request.ScoreTitleRequest true "Title to score"
// @Success 200 {object} types.ScanResult "Scan result"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/v1/score [post]
func (h *scoreTitleHandler) Handle(c *fiber.Ctx) error {
	var req request.ScoreTitleRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return errorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	result := h.scorer.Score(*req.Title)
	if h.metricsEnabled {
		prometheus.ObserveResults([]types.ScanResult{result})
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
