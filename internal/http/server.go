package http

import (
	"github.com/gin-gonic/gin"

	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

// Server owns the configured engine and is the single run entrypoint.
type Server struct {
	Engine *gin.Engine
	log    *logger.Logger
}

func NewServer(log *logger.Logger, cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg), log: log}
}

func (s *Server) Run(address string) error {
	if s.log != nil {
		s.log.Info("HTTP server listening", "address", address)
	}
	return s.Engine.Run(address)
}
