package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"smart-search-agent/internal/infrastructure/auth"
	"smart-search-agent/internal/infrastructure/config"
	"smart-search-agent/internal/interfaces/httpserver/middlewares"
	"smart-search-agent/internal/interfaces/httpserver/routes/mcp"
)

const serviceName = "smart-search-agent"

type HTTPServer struct {
	router        *gin.Engine
	config        *config.Config
	mcpRoute      *mcp.MCPRoute
	authValidator *auth.Validator
	logger        zerolog.Logger
}

func NewHTTPServer(
	cfg *config.Config,
	mcpRoute *mcp.MCPRoute,
	authValidator *auth.Validator,
	logger zerolog.Logger,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger(logger))
	router.Use(middlewares.CORS())
	router.Use(middlewares.MetricsRecorder())

	if authValidator != nil {
		router.Use(authValidator.Middleware())
	}

	s := &HTTPServer{
		router:        router,
		config:        cfg,
		mcpRoute:      mcpRoute,
		authValidator: authValidator,
		logger:        logger,
	}
	s.setupRoutes()
	return s
}

func (s *HTTPServer) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	})

	s.router.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
	})

	s.router.GET("/health/auth", func(c *gin.Context) {
		if s.authValidator == nil || s.authValidator.Ready() {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "initializing"})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.mcpRoute.RegisterRouter(s.router)
}

// Handler exposes the router for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", srv.Addr).Msg("Server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
