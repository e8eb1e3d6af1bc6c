// Package context carries request-scoped values between the transports and the usecases:
// the authenticated caller, the request id and a logger tagged with both.
package context

import (
	"context"
	"log/slog"

	"parceltrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from inbound requests and echoed on responses.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey stores the request id on echo.Context for middleware that runs before the handler.
const echoRequestIDKey = "request_id"

type (
	callerKey    struct{}
	requestIDKey struct{}
	loggerKey    struct{}
)

// WithCaller returns a new context carrying the authenticated caller.
func WithCaller(ctx context.Context, caller *entity.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// GetCaller returns the authenticated caller, or nil for anonymous requests.
func GetCaller(ctx context.Context) *entity.Caller {
	if caller, ok := ctx.Value(callerKey{}).(*entity.Caller); ok && caller != nil && caller.UID != "" {
		return caller
	}

	return nil
}

// GetRequestID returns the id stored by SetRequestID, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey{}).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
