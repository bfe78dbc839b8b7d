package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/config"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/server/router"
)

type (
	ScannerServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	ScannerServer struct {
		*BaseServer
	}
)

func NewScannerServer(di ScannerServerDI) *ScannerServer {
	s := &ScannerServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
	}
	s.setupHealthCheck()
	s.WithRouters(di.Routers...)
	return s
}

func (s *ScannerServer) Run() error {
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting scanner server")
	return s.Router.Listen(addr)
}

func (s *ScannerServer) Shutdown() error {
	s.shutdownMetrics()
	return s.Router.Shutdown()
}
