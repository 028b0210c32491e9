package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     string
	}{
		{name: "absent passes through", header: "", wantStatus: http.StatusOK, wantID: ""},
		{name: "plain token", header: "device-123", wantStatus: http.StatusOK, wantID: "device-123"},
		{name: "trimmed", header: "  abc.DEF:9  ", wantStatus: http.StatusOK, wantID: "abc.DEF:9"},
		{name: "spaces inside rejected", header: "two words", wantStatus: http.StatusBadRequest},
		{name: "blank after trim rejected", header: "   ", wantStatus: http.StatusBadRequest},
		{name: "too long rejected", header: strings.Repeat("a", 129), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookmarks", http.NoBody)
			if tt.header != "" {
				req.Header.Set(DeviceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			handler := DeviceID()(func(c echo.Context) error {
				seen = c.Request().Header.Get(DeviceIDHeader)
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantID, seen)
			} else {
				assert.Contains(t, rec.Body.String(), "invalid X-Device-ID header")
			}
		})
	}
}
