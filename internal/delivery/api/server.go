// Package api serves the todo list over HTTP.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"todolist/config"
	"todolist/internal/delivery"
	apimiddleware "todolist/internal/delivery/api/middleware"
	"todolist/internal/delivery/api/router"
	"todolist/internal/delivery/api/validator"
	"todolist/internal/delivery/middleware"
	"todolist/internal/domain/lifecycle"
	"todolist/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, router.NewRouter(params.RouterParams)),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho assembles the middleware chain and routes. Tests drive the result through httptest.
func NewEcho(cfg *config.Config, logger *slog.Logger, routes interface{ RegisterRoutes(e *echo.Echo) }) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.JSONSerializer = jsonSerializer{}
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	// "/users/" and "/users" reach the same route.
	e.Pre(echomiddleware.RemoveTrailingSlash())

	// The request id must exist before the access log reads the scoped logger.
	chain := []echo.MiddlewareFunc{
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORS(),
	}
	if limit := cfg.HTTP.MaxRequestBodySize; limit != "" {
		chain = append(chain, echomiddleware.BodyLimit(limit))
	}
	e.Use(chain...)

	routes.RegisterRoutes(e)

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Todo list API listening", slog.String("addr", addr))

	err := s.server.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Todo list API shutting down")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
