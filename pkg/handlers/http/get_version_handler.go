package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/version"
)

type getVersionHandler struct{}

func NewGetVersionHandler() Handler {
	return &getVersionHandler{}
}

// Handle @Summary Get scanner version
// @Description Returns build and engine version information
// @Tags Version
// @Produce json
// @Success 200 {object} version.Info "Version information"
// @Router /version [get]
func (h *getVersionHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(version.GetInfo())
}
