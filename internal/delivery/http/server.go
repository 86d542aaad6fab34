// Package http hosts the Echo server serving the REST API.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"weightwise/config"
	"weightwise/internal/delivery"
	sharedmiddleware "weightwise/internal/delivery/middleware"

	httpmiddleware "weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/router"
	"weightwise/internal/delivery/http/validator"
	"weightwise/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config            *config.Config
	Logger            *slog.Logger
	Registry          *prometheus.Registry
	ErrorMiddleware   *httpmiddleware.ErrorMiddleware
	MetricsMiddleware *httpmiddleware.MetricsMiddleware
	RouterParams      router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Binder = &strictBinder{}
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Use(sharedmiddleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())

	if params.Config.Metrics.Enabled {
		echoServer.Use(params.MetricsMiddleware.Handle)
		echoServer.GET("/metrics", echo.WrapHandler(
			promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{})))
	}

	// Uploaded photos are served straight from the uploads directory.
	if dir := params.Config.Uploads.Dir; dir != "" {
		echoServer.Static("/uploads", dir)
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
