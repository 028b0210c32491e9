// Package middleware provides Echo middleware for happy-arz.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/happy-arz/internal/metrics"
)

// unmatchedRoute labels requests that did not hit a registered route, so
// arbitrary URLs cannot grow the label set.
const unmatchedRoute = "unmatched"

// Probe and scrape endpoints are excluded from request metrics; the health
// handlers publish their own up/down gauges.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// Metrics returns Echo middleware that records request duration and status
// per route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := routeLabel(c)
			if _, skip := metricsSkipPaths[route]; skip {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(responseStatus(c, err))
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return err
		}
	}
}

// routeLabel returns the matched route template (for example
// /api/v1/bookmarks/:id/toggle) or unmatchedRoute.
func routeLabel(c echo.Context) string {
	path := c.Path()
	if path == "" || path == "/*" {
		return unmatchedRoute
	}
	return path
}

// responseStatus reports the status the client will see. Errors returned
// by handlers are written later by Echo's error handler, so the status is
// derived from the error when nothing has been committed yet.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
