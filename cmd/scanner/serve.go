package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	handlers "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/handlers/http"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/auth/jwt"
	infraLogger "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/logger"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/middleware"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/server"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/server/router"
)

func runServe(args []string) error {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	configPath := flags.String("config", "./config", "directory containing config.yaml")
	if err := flags.Parse(args); err != nil {
		return err
	}

	eng, err := bootstrap(*configPath, infraLogger.Options{Console: os.Stdout})
	if err != nil {
		return err
	}
	defer eng.close()
	cfg, logger := eng.cfg, eng.logger

	middlewareTransport := middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger, cfg.Metrics.Enabled),
	}
	if cfg.Server.JWTSecret != "" {
		jwtManager, err := jwt.NewJwtManager(cfg.Server.JWTSecret)
		if err != nil {
			return err
		}
		middlewareTransport.AuthMiddleware = middleware.NewAuthMiddleware(logger, jwtManager)
	} else {
		logger.Warn("server.jwt_secret is empty, the scan API is unauthenticated")
	}

	handlerTransport := handlers.HandlerTransport{
		CreateScanHandler: handlers.NewCreateScanHandler(handlers.CreateScanHandlerDeps{
			Logger:         logger,
			Scanner:        eng.scanner,
			MaxTitles:      cfg.Server.MaxTitles,
			MetricsEnabled: cfg.Metrics.Enabled,
		}),
		ScoreTitleHandler:   handlers.NewScoreTitleHandler(logger, eng.scorer, cfg.Metrics.Enabled),
		GetReferenceHandler: handlers.NewGetReferenceHandler(eng.reference.Summary(cfg.Reference.Source)),
		GetVersionHandler:   handlers.NewGetVersionHandler(),
	}

	srv := server.NewScannerServer(server.ScannerServerDI{
		Config:  cfg,
		Logger:  logger,
		Routers: []router.ServerRouter{router.NewAPIRouter(&middlewareTransport, handlerTransport)},
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
