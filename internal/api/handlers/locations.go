package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/happy-arz/internal/locations"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// ListLocationsInput filters the reference cities.
type ListLocationsInput struct {
	Q       string `query:"q"       doc:"Case-insensitive city or country substring"`
	Popular bool   `query:"popular" doc:"Only cities highlighted in the picker"`
}

// ListLocationsOutput is the matching reference cities.
type ListLocationsOutput struct {
	Body struct {
		Locations []domain.LocationOption `json:"locations"`
	}
}

// ResolveLocationInput is a GPS position.
type ResolveLocationInput struct {
	Lat float64 `query:"lat" required:"true" minimum:"-90"  maximum:"90"`
	Lng float64 `query:"lng" required:"true" minimum:"-180" maximum:"180"`
}

// ResolveLocationOutput names the city containing a position.
type ResolveLocationOutput struct {
	Body struct {
		City string `json:"city" example:"Bangkok"`
	}
}

// ListLocations returns reference cities for manual location selection.
func ListLocations(_ context.Context, input *ListLocationsInput) (*ListLocationsOutput, error) {
	var found []domain.LocationOption
	if input.Popular {
		found = locations.Popular()
	} else {
		found = locations.Search(input.Q)
	}

	resp := &ListLocationsOutput{}
	resp.Body.Locations = found
	return resp, nil
}

// ResolveLocation names the city containing a GPS position.
func ResolveLocation(_ context.Context, input *ResolveLocationInput) (*ResolveLocationOutput, error) {
	resp := &ResolveLocationOutput{}
	resp.Body.City = locations.CityFor(input.Lat, input.Lng)
	return resp, nil
}

// RegisterLocationRoutes registers reference-city endpoints with the Huma API.
func RegisterLocationRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-locations",
		Method:      http.MethodGet,
		Path:        "/api/v1/locations",
		Summary:     "List reference cities",
		Description: "Returns the cities a user can pick instead of using GPS.",
		Tags:        []string{"locations"},
	}, ListLocations)

	huma.Register(api, huma.Operation{
		OperationID: "resolve-location",
		Method:      http.MethodGet,
		Path:        "/api/v1/locations/resolve",
		Summary:     "Resolve a position to a city",
		Description: "Returns the reference city whose bounds contain the position, or \"your area\".",
		Tags:        []string{"locations"},
	}, ResolveLocation)
}
