// Package context carries request-scoped values between the delivery layer
// and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is the private key type for values this package stores, so
// they cannot collide with keys from other packages.
type ContextKey string

const (
	// KeyRequestID is where the per-request correlation id lives. Activity
	// rows and published events copy it so one API call can be traced across
	// the audit trail.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is where the request-scoped slog.Logger lives.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the header the correlation id is read from and
	// echoed back on.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the correlation id stored on the echo context,
// minting a fresh UUID when the middleware has not set one.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the correlation id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the correlation id carried by a plain
// context.Context, or "" when none was attached. Use cases call this when
// stamping audit rows.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID attaches the correlation id to a context handed down to
// the use cases.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil when the context
// carries none.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to
// the given one when the context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger attaches a request-scoped logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
