package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/happy-arz/internal/places"
)

// QuotaHandler reports nearby-places API usage against the daily cap.
type QuotaHandler struct {
	rl *places.RateLimiter
}

// NewQuotaHandler creates a new QuotaHandler. A nil limiter means the
// HTTP places source is not in use.
func NewQuotaHandler(rl *places.RateLimiter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaOutput is the response body for the places quota endpoint.
type QuotaOutput struct {
	Body struct {
		Enabled    bool       `json:"enabled"            example:"true"                 doc:"Whether calls go to the rate-limited HTTP places source"`
		DailyLimit int64      `json:"daily_limit"        example:"5000"                 doc:"Configured daily call limit, 0 for unlimited"`
		DailyUsed  int64      `json:"daily_used"         example:"142"                  doc:"Calls made in the current 24-hour window"`
		Remaining  int64      `json:"remaining"          example:"4858"                 doc:"Calls left in the current window, -1 for unlimited"`
		ResetAt    *time.Time `json:"reset_at,omitempty" example:"2025-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
	}
}

// GetQuota returns the current places quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl == nil {
		return resp, nil
	}

	resetAt := h.rl.ResetAt()
	resp.Body.Enabled = true
	resp.Body.DailyLimit = h.rl.MaxDaily()
	resp.Body.DailyUsed = h.rl.DailyCount()
	resp.Body.Remaining = h.rl.Remaining()
	resp.Body.ResetAt = &resetAt
	return resp, nil
}

// RegisterQuotaRoutes registers the places quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-places-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/places/quota",
		Summary:     "Get nearby-places quota",
		Description: "Returns daily nearby-places API usage, remaining calls and the window reset time.",
		Tags:        []string{"places"},
	}, h.GetQuota)
}
