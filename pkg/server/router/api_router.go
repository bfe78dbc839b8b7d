package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "github.com/rachgmartin/YouTube-Title-Scanner-2.0/docs"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/common"
	handlers "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/handlers/http"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/middleware"
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	ht := r.handlerTransport
	if ht.CreateScanHandler == nil || ht.ScoreTitleHandler == nil ||
		ht.GetReferenceHandler == nil || ht.GetVersionHandler == nil {
		return ErrInvalidHandlerTransport
	}

	for _, h := range r.middlewareTransport.GetGlobalMiddlewares() {
		router.Use(h)
	}

	router.Get(common.DocsPath, swagger.HandlerDefault)
	router.Get("/version", ht.GetVersionHandler.Handle)

	v1 := router.Group(common.APIPrefix)
	{
		for _, h := range r.middlewareTransport.GetMiddlewares() {
			v1.Use(h)
		}

		v1.Post("/scans", ht.CreateScanHandler.Handle)
		v1.Post("/score", ht.ScoreTitleHandler.Handle)
		v1.Get("/reference", ht.GetReferenceHandler.Handle)
	}

	return nil
}
