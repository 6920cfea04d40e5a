// Package context carries per-request values (request id, scoped logger and
// the authenticated caller) through echo.Context and context.Context.
package context

import (
	"context"
	"log/slog"

	"farmlease/internal/domain/access"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	keyRequestID contextKey = iota
	keyLogger
	keyCaller
)

// HeaderXRequestID is the header the request id is read from and echoed on.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey is the echo.Context key the request id middleware sets.
const echoRequestIDKey = "request_id"

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the id assigned to the request, falling back to the
// request context and then to the response header. Empty when none was set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestIDFromContext returns the request id in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithCaller returns a copy of ctx carrying the authenticated caller.
func WithCaller(ctx context.Context, caller *access.Caller) context.Context {
	return context.WithValue(ctx, keyCaller, caller)
}

// GetCaller returns the authenticated caller, or nil for an anonymous request.
func GetCaller(ctx context.Context) *access.Caller {
	caller, _ := ctx.Value(keyCaller).(*access.Caller)

	return caller
}
