// Package worker serves the mail relay that Pub/Sub pushes account mail to.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"lending/config"
	"lending/internal/delivery"
	"lending/internal/delivery/middleware"
	"lending/internal/delivery/worker/handler"
	"lending/internal/domain/lifecycle"
	"lending/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// maxPushBody bounds a push envelope; mail bodies are a few kilobytes.
const maxPushBody = "256K"

type relayServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the relay's HTTP listener. Pub/Sub only reads the status
// code, so errors are answered without a body.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = statusOnlyErrors(params.Logger)

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.BodyLimit(maxPushBody),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &relayServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port)),
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

func statusOnlyErrors(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		} else {
			logger.Error("[Worker] Unhandled error", slog.Any("error", err), slog.String("path", c.Path()))
		}

		if sendErr := c.NoContent(status); sendErr != nil {
			logger.Error("[Worker] Failed to write error status", slog.Any("error", sendErr))
		}
	}
}

func (s *relayServer) Serve(_ context.Context) error {
	s.logger.Info("Starting mail relay worker", slog.String("host_port", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *relayServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down mail relay worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
