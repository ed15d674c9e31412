// Package context carries request-scoped values between middleware and handlers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyBusinessID is the key for the authenticated business's ID.
	KeyBusinessID ContextKey = "business_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if requestID, ok := val.(string); ok && requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFrom extracts the request ID from a context.Context.
func RequestIDFrom(ctx context.Context) string {
	if requestID, ok := ctx.Value(KeyRequestID).(string); ok {
		return requestID
	}

	return ""
}

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// LoggerFrom extracts the request-scoped logger, falling back to the default.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}

// SetBusinessID stores the authenticated business's ID in echo.Context.
func SetBusinessID(c echo.Context, businessID string) {
	c.Set(string(KeyBusinessID), businessID)
}

// GetBusinessID extracts the authenticated business's ID from echo.Context.
func GetBusinessID(c echo.Context) (string, bool) {
	businessID, ok := c.Get(string(KeyBusinessID)).(string)

	return businessID, ok && businessID != ""
}
