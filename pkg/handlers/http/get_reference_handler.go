package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/reference"
)

type getReferenceHandler struct {
	summary reference.Summary
}

func NewGetReferenceHandler(summary reference.Summary) Handler {
	return &getReferenceHandler{summary: summary}
}

// Handle @Summary Describe the loaded reference set
// @Description Returns keyword, severity and phrase rule counts
// @Tags Reference
// @Produce json
// @Success 200 {object} reference.Summary "Reference summary"
// @Router /api/v1/reference [get]
func (h *getReferenceHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.summary)
}
