package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport groups the middlewares the router installs. A nil entry is
// skipped.
type Transport struct {
	PanicRecoverMiddleware Middleware
	MetricsMiddleware      Middleware
	AuthMiddleware         Middleware
}

// GetGlobalMiddlewares returns the handlers that wrap every route.
func (t *Transport) GetGlobalMiddlewares() []fiber.Handler {
	return handlers(t.PanicRecoverMiddleware, t.MetricsMiddleware)
}

// GetMiddlewares returns the handlers that guard the /api/v1 group.
func (t *Transport) GetMiddlewares() []fiber.Handler {
	return handlers(t.AuthMiddleware)
}

func handlers(ms ...Middleware) []fiber.Handler {
	var out []fiber.Handler
	for _, m := range ms {
		if m != nil {
			out = append(out, m.Middleware())
		}
	}
	return out
}
