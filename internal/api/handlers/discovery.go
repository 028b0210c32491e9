package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/internal/store"
)

// AnonymousOwner scopes bookmarks for requests without an X-Device-ID header.
const AnonymousOwner = "anonymous"

// Discoverer produces the ranked discovery views.
type Discoverer interface {
	Discover(ctx context.Context, req *discovery.Request) (*discovery.Result, error)
	Map(ctx context.Context, req *discovery.Request) (*discovery.MapResult, error)
	Saved(ctx context.Context, req *discovery.Request) (*discovery.Result, error)
}

// DiscoveryHandler serves the discover, map and saved views.
type DiscoveryHandler struct {
	svc Discoverer
}

// NewDiscoveryHandler creates a new DiscoveryHandler.
func NewDiscoveryHandler(svc Discoverer) *DiscoveryHandler {
	return &DiscoveryHandler{svc: svc}
}

// --- Input/Output types ---

// DiscoverInput carries the search, filter and position of a discovery
// request. A 0,0 position means no GPS fix.
type DiscoverInput struct {
	Q        string  `query:"q"           doc:"Case-insensitive search over name, description and address"`
	Category string  `query:"category"    doc:"Category filter; empty or All matches everything"           enum:"All,Restaurant,Bar,Spa,Cafe,Nightclub,Hotel,Other,"`
	Lat      float64 `query:"lat"         doc:"GPS latitude"                                                minimum:"-90"  maximum:"90"`
	Lng      float64 `query:"lng"         doc:"GPS longitude"                                               minimum:"-180" maximum:"180"`
	City     string  `query:"city"        doc:"Manually selected city ID; overrides the GPS position"`
	DeviceID string  `header:"X-Device-ID" doc:"Device identifier scoping bookmarks"`
}

func (in *DiscoverInput) request() *discovery.Request {
	req := &discovery.Request{
		Search:   in.Q,
		Category: in.Category,
		City:     in.City,
		Owner:    ownerOf(in.DeviceID),
	}
	if in.Lat != 0 || in.Lng != 0 {
		req.Latitude, req.Longitude = &in.Lat, &in.Lng
	}
	return req
}

// SavedInput is the input for the saved-places view.
type SavedInput struct {
	Category string  `query:"category"    doc:"Category filter; empty or All matches everything" enum:"All,Restaurant,Bar,Spa,Cafe,Nightclub,Hotel,Other,"`
	Lat      float64 `query:"lat"         doc:"GPS latitude"                                      minimum:"-90"  maximum:"90"`
	Lng      float64 `query:"lng"         doc:"GPS longitude"                                     minimum:"-180" maximum:"180"`
	City     string  `query:"city"        doc:"Manually selected city ID"`
	DeviceID string  `header:"X-Device-ID" doc:"Device identifier scoping bookmarks"`
}

// DiscoverOutput is the ranked discovery list.
type DiscoverOutput struct {
	Body *discovery.Result
}

// MapOutput is the partitioned map list.
type MapOutput struct {
	Body *discovery.MapResult
}

// --- Handlers ---

// Discover returns active businesses ranked live discount first, then any
// discount, then verified, then rating.
func (h *DiscoveryHandler) Discover(ctx context.Context, input *DiscoverInput) (*DiscoverOutput, error) {
	res, err := h.svc.Discover(ctx, input.request())
	if err != nil {
		return nil, discoveryError(err)
	}
	return &DiscoverOutput{Body: res}, nil
}

// Map returns ranked businesses split by whether they carry a discount.
func (h *DiscoveryHandler) Map(ctx context.Context, input *DiscoverInput) (*MapOutput, error) {
	res, err := h.svc.Map(ctx, input.request())
	if err != nil {
		return nil, discoveryError(err)
	}
	return &MapOutput{Body: res}, nil
}

// Saved returns the device's bookmarked businesses.
func (h *DiscoveryHandler) Saved(ctx context.Context, input *SavedInput) (*DiscoverOutput, error) {
	in := DiscoverInput{
		Category: input.Category,
		Lat:      input.Lat,
		Lng:      input.Lng,
		City:     input.City,
		DeviceID: input.DeviceID,
	}
	res, err := h.svc.Saved(ctx, in.request())
	if err != nil {
		return nil, discoveryError(err)
	}
	return &DiscoverOutput{Body: res}, nil
}

func ownerOf(deviceID string) string {
	if deviceID == "" {
		return AnonymousOwner
	}
	return deviceID
}

func discoveryError(err error) error {
	switch {
	case errors.Is(err, discovery.ErrUnknownCity), errors.Is(err, store.ErrEmptyOwner):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("discovery failed: " + err.Error())
	}
}

// RegisterDiscoveryRoutes registers discovery endpoints with the Huma API.
func RegisterDiscoveryRoutes(api huma.API, h *DiscoveryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "discover-businesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/businesses",
		Summary:     "Discover businesses",
		Description: "Returns verified and nearby businesses ranked live discount first, then any discount, then verified, then rating.",
		Tags:        []string{"discovery"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Discover)

	huma.Register(api, huma.Operation{
		OperationID: "map-businesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/map",
		Summary:     "Map view",
		Description: "Returns ranked businesses split into those with and without a discount, nearest first when a GPS fix is given.",
		Tags:        []string{"discovery"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Map)

	huma.Register(api, huma.Operation{
		OperationID: "saved-businesses",
		Method:      http.MethodGet,
		Path:        "/api/v1/saved",
		Summary:     "Saved places",
		Description: "Returns the device's bookmarked businesses, filtered by category.",
		Tags:        []string{"discovery"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Saved)
}
