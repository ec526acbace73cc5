// Package middleware holds the structured logger and the Fiber middleware
// that feeds request metadata into it.
package middleware

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Logger is the structured logger shared by the server, database and CLI.
var Logger = NewLogger(os.Getenv("APP_ENV"), slog.LevelInfo)

type contextKey string

const RequestIDKey contextKey = "request_id"

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok && id != ""
}

// ctxHandler stamps every record with the request id found in its context.
type ctxHandler struct {
	slog.Handler
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := RequestID(ctx); ok {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{h.Handler.WithGroup(name)}
}

// NewLogger writes JSON in production and logfmt-style text elsewhere.
func NewLogger(env string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if env == "production" || env == "prod" {
		return slog.New(&ctxHandler{slog.NewJSONHandler(os.Stdout, opts)})
	}
	return slog.New(&ctxHandler{slog.NewTextHandler(os.Stdout, opts)})
}

// ContextMiddleware moves the id assigned by requestid into the user
// context so service and repository logs carry it. It must run after
// requestid.New.
func ContextMiddleware() fiber.Handler {
	key := requestid.ConfigDefault.ContextKey
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals(key).(string); ok {
			c.SetUserContext(WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}

// StructuredLogger logs one line per request. Server errors log at error
// level and client errors at warn.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		attrs := []slog.Attr{
			slog.Int("status", status),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
		}

		level := slog.LevelInfo
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			level = slog.LevelError
		case status >= fiber.StatusBadRequest:
			level = slog.LevelWarn
		}

		msg := "request processed"
		if err != nil {
			msg = "request failed"
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		Logger.LogAttrs(c.UserContext(), level, msg, attrs...)
		return err
	}
}
