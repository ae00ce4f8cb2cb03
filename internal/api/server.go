package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/internal/api/handler"
	"github.com/vfg2006/cloud-cost-api/internal/api/handler/router"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/authenticating"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/collecting"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/connecting"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/recommending"
	"github.com/vfg2006/cloud-cost-api/pkg/middleware"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

type Services struct {
	Authenticator authenticating.Authenticator
	Connections   connecting.ConnectionService
	Collector     collecting.Collector
	Recommender   recommending.Recommender
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("authenticator is required")
	}

	limit := rate.Inf
	if config.Server.RateLimit > 0 {
		limit = rate.Limit(config.Server.RateLimit)
	}
	limiter := rate.NewLimiter(limit, config.Server.RateLimitBurst)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Connections(services.Connections)...),
		router.WithRoutes(handler.Resources(services.Collector)...),
		router.WithRoutes(handler.Costs(services.Collector)...),
		router.WithRoutes(handler.Recommendations(services.Recommender, limiter)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           newHandler(config, services.Authenticator, rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

func newHandler(config *config.Config, authenticator authenticating.Authenticator, rt http.Handler) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
