package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

// probePaths are logged once on their first success and then only when
// they fail, so steady polling does not flood the log.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Server errors log at ERROR, client
// errors at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var seen sync.Map // probe path -> struct{}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := responseStatus(c, err)

			if _, probe := probePaths[path]; probe && status < http.StatusBadRequest {
				if _, logged := seen.LoadOrStore(path, struct{}{}); logged {
					return err
				}
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if device := c.Request().Header.Get(DeviceIDHeader); device != "" {
				attrs = append(attrs, "device_id", device)
			}
			if sc := trace.SpanContextFromContext(c.Request().Context()); sc.HasTraceID() {
				attrs = append(attrs, "trace_id", sc.TraceID().String())
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}

			log.Log(context.Background(), levelFor(status), "request", attrs...)

			return err
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
