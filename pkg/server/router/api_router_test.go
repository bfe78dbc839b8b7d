package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlers "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/handlers/http"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/auth/jwt"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/middleware"
)

type okHandler struct{}

func (okHandler) Handle(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func handlerTransport() handlers.HandlerTransport {
	return handlers.HandlerTransport{
		CreateScanHandler:   okHandler{},
		ScoreTitleHandler:   okHandler{},
		GetReferenceHandler: okHandler{},
		GetVersionHandler:   okHandler{},
	}
}

func TestAPIRouter_BuildRoutesRequiresHandlers(t *testing.T) {
	r := NewAPIRouter(&middleware.Transport{}, handlers.HandlerTransport{})
	assert.ErrorIs(t, r.BuildRoutes(fiber.New()), ErrInvalidHandlerTransport)
}

func TestAPIRouter_AuthGuardsAPIGroupOnly(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mgr, err := jwt.NewJwtManager("secret")
	require.NoError(t, err)

	app := fiber.New()
	r := NewAPIRouter(&middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		AuthMiddleware:         middleware.NewAuthMiddleware(logger, mgr),
	}, handlerTransport())
	require.NoError(t, r.BuildRoutes(app))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/version", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/reference", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, err := mgr.CreateToken("test", time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scans", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAPIRouter_NoAuthConfigured(t *testing.T) {
	app := fiber.New()
	require.NoError(t, NewAPIRouter(&middleware.Transport{}, handlerTransport()).BuildRoutes(app))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/score", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
