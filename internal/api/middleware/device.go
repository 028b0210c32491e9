package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

// DeviceIDHeader carries the opaque per-device identifier that owns
// bookmarks.
const DeviceIDHeader = "X-Device-ID"

var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// DeviceID returns Echo middleware that trims the device header and rejects
// values that are not short opaque tokens. Requests without the header pass
// through unchanged.
func DeviceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(DeviceIDHeader)
			if raw == "" {
				return next(c)
			}

			id := strings.TrimSpace(raw)
			if !deviceIDPattern.MatchString(id) {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "invalid " + DeviceIDHeader + " header",
				})
			}

			c.Request().Header.Set(DeviceIDHeader, id)
			c.Set("device_id", id)
			return next(c)
		}
	}
}
