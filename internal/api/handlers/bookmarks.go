package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/happy-arz/internal/store"
)

// Bookmarker reads and flips per-device bookmarks.
type Bookmarker interface {
	Bookmarks(ctx context.Context, owner string) ([]string, error)
	ToggleBookmark(ctx context.Context, owner, businessID string) (bool, error)
}

// BookmarksHandler handles bookmark endpoints.
type BookmarksHandler struct {
	svc Bookmarker
}

// NewBookmarksHandler creates a new BookmarksHandler.
func NewBookmarksHandler(svc Bookmarker) *BookmarksHandler {
	return &BookmarksHandler{svc: svc}
}

// ListBookmarksInput identifies the device.
type ListBookmarksInput struct {
	DeviceID string `header:"X-Device-ID" doc:"Device identifier scoping bookmarks"`
}

// ListBookmarksOutput is the device's bookmarked business IDs, oldest first.
type ListBookmarksOutput struct {
	Body struct {
		BusinessIDs []string `json:"business_ids"`
	}
}

// ToggleBookmarkInput is the input for toggling one bookmark.
type ToggleBookmarkInput struct {
	ID       string `path:"id"          doc:"Business ID"`
	DeviceID string `header:"X-Device-ID" doc:"Device identifier scoping bookmarks"`
}

// ToggleBookmarkOutput reports the bookmark state after the toggle.
type ToggleBookmarkOutput struct {
	Body struct {
		BusinessID string `json:"business_id"`
		Bookmarked bool   `json:"bookmarked"`
	}
}

// List returns the device's bookmarked business IDs.
func (h *BookmarksHandler) List(ctx context.Context, input *ListBookmarksInput) (*ListBookmarksOutput, error) {
	ids, err := h.svc.Bookmarks(ctx, ownerOf(input.DeviceID))
	if err != nil {
		return nil, huma.Error500InternalServerError("listing bookmarks failed: " + err.Error())
	}
	if ids == nil {
		ids = []string{}
	}

	resp := &ListBookmarksOutput{}
	resp.Body.BusinessIDs = ids
	return resp, nil
}

// Toggle flips the bookmark on one business.
func (h *BookmarksHandler) Toggle(ctx context.Context, input *ToggleBookmarkInput) (*ToggleBookmarkOutput, error) {
	on, err := h.svc.ToggleBookmark(ctx, ownerOf(input.DeviceID), input.ID)
	if err != nil {
		if errors.Is(err, store.ErrEmptyOwner) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("toggling bookmark failed: " + err.Error())
	}

	resp := &ToggleBookmarkOutput{}
	resp.Body.BusinessID = input.ID
	resp.Body.Bookmarked = on
	return resp, nil
}

// RegisterBookmarkRoutes registers bookmark endpoints with the Huma API.
func RegisterBookmarkRoutes(api huma.API, h *BookmarksHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-bookmarks",
		Method:      http.MethodGet,
		Path:        "/api/v1/bookmarks",
		Summary:     "List bookmarks",
		Description: "Returns the business IDs bookmarked by the device, oldest first.",
		Tags:        []string{"bookmarks"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "toggle-bookmark",
		Method:      http.MethodPost,
		Path:        "/api/v1/bookmarks/{id}/toggle",
		Summary:     "Toggle a bookmark",
		Description: "Adds the bookmark when absent, removes it when present, and returns the new state.",
		Tags:        []string{"bookmarks"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Toggle)
}
