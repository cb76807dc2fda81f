// internal/server/server.go
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nesscute-assistant/internal/assistant"
	"nesscute-assistant/internal/common/config"
	"nesscute-assistant/internal/common/logger"
)

// AnswerService is the single inbound operation exposed by this
// service. Implemented by assistant.Service; stubbed in tests.
type AnswerService interface {
	Answer(ctx context.Context, question string) assistant.AnswerResult
}

// HealthChecker reports backing-store reachability for /health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	engine  *gin.Engine
	service AnswerService
	health  HealthChecker
	logger  logger.Logger
}

func New(cfg *config.Config, service AnswerService, health HealthChecker, log logger.Logger) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:  gin.New(),
		service: service,
		health:  health,
		logger: log.With(map[string]interface{}{
			"component": "server",
		}),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestContext())

	s.engine.POST("/api/ai/query", s.handleQuery)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Handler exposes the router for http.Server wiring and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.health != nil {
		if err := s.health.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
