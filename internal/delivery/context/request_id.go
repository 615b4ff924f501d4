// Package context carries request-scoped values (request id, logger) from the
// HTTP layer down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echoRequestIDKey is where the RequestID middleware leaves the id on echo.Context.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

// GetRequestID returns the id assigned by the RequestID middleware.
// Outside a request (or before the middleware ran) it falls back to the response header, then "".
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// SetRequestID stores the id on echo.Context for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// WithRequestScope attaches the id and a logger already tagged with it.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return WithLogger(WithRequestID(ctx, requestID), logger)
}

// GetRequestIDFromContext returns the id stamped on ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work and tests.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
