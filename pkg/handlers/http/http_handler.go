package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/types"
)

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Scans
	CreateScanHandler Handler
	ScoreTitleHandler Handler

	// Reference data
	GetReferenceHandler Handler

	// Misc
	GetVersionHandler Handler
}

// BatchScanner is satisfied by *scanner.BatchScanner.
type BatchScanner interface {
	Scan(titles []string) []types.ScanResult
}

// TitleScorer is satisfied by *scoring.TitleScorer.
type TitleScorer interface {
	Score(title string) types.ScanResult
}

func errorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
