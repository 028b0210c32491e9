package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// VerifiedLister returns the current verified set.
type VerifiedLister interface {
	Verified(ctx context.Context) ([]domain.Business, error)
}

// VerifiedHandler serves the verified business set.
type VerifiedHandler struct {
	svc VerifiedLister
}

// NewVerifiedHandler creates a new VerifiedHandler.
func NewVerifiedHandler(svc VerifiedLister) *VerifiedHandler {
	return &VerifiedHandler{svc: svc}
}

// ListVerifiedOutput is the verified set in upload order.
type ListVerifiedOutput struct {
	Body struct {
		Businesses []domain.Business `json:"businesses"`
		Total      int               `json:"total"`
	}
}

// List returns every verified business, including inactive ones.
func (h *VerifiedHandler) List(ctx context.Context, _ *struct{}) (*ListVerifiedOutput, error) {
	businesses, err := h.svc.Verified(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing verified businesses failed: " + err.Error())
	}
	if businesses == nil {
		businesses = []domain.Business{}
	}

	resp := &ListVerifiedOutput{}
	resp.Body.Businesses = businesses
	resp.Body.Total = len(businesses)
	return resp, nil
}

// RegisterVerifiedRoutes registers verified-set endpoints with the Huma API.
func RegisterVerifiedRoutes(api huma.API, h *VerifiedHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-verified",
		Method:      http.MethodGet,
		Path:        "/api/v1/verified",
		Summary:     "List verified businesses",
		Description: "Returns the verified set from the last successful upload, in upload order.",
		Tags:        []string{"uploads"},
	}, h.List)
}
