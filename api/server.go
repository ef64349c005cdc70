package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"bethouse/application"
	"bethouse/config"
	"bethouse/infrastructure/observability"
)

// Server exposes the wallet and betting operations over HTTP
type Server struct {
	uowFactory     application.UnitOfWorkFactory
	requestTimeout time.Duration
	httpServer     *http.Server
}

// NewServer creates a new API server
func NewServer(uowFactory application.UnitOfWorkFactory, cfg *config.Config) *Server {
	s := &Server{
		uowFactory:     uowFactory,
		requestTimeout: cfg.RequestTimeout,
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: s.Router(),
	}

	return s
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/accounts", s.handleRegister)
		v1.GET("/accounts/:email", s.handleGetAccountRole)

		v1.POST("/wallets/:userID/deposit", s.handleDeposit)
		v1.POST("/wallets/:userID/withdraw", s.handleWithdraw)
		v1.GET("/wallets/:userID/balance", s.handleBalance)
		v1.GET("/wallets/:userID/statement", s.handleStatement)

		v1.POST("/events", s.handleCreateEvent)
		v1.GET("/events", s.handleListEvents)
		v1.POST("/events/:id/review", s.handleReviewEvent)
		v1.POST("/events/:id/settle", s.handleSettleEvent)
		v1.DELETE("/events/:id", s.handleDeleteEvent)

		v1.POST("/bets", s.handlePlaceBet)
	}

	return router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", s.httpServer.Addr).Info("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	log.Info("HTTP server stopped")
	return nil
}

// requestContext derives the per-request deadline all handlers operate under
func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.requestTimeout)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		if metrics := observability.GetMetrics(); metrics != nil {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), elapsed)
		}

		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": elapsed.String(),
		}).Info("Request handled")
	}
}
