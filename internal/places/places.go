// Package places provides nearby-places sources abstracted behind an
// interface, so discovery can run against a real HTTP provider or a static
// fixture.
package places

import (
	"context"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// DefaultRadiusMeters is used when a request does not set a radius.
const DefaultRadiusMeters = 5000

// NearbyRequest defines the parameters for a nearby-places lookup.
type NearbyRequest struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Type         string // provider place type, e.g. "restaurant", "spa"
	Query        string
}

// Source returns unverified businesses near a position.
type Source interface {
	Nearby(ctx context.Context, req NearbyRequest) ([]domain.Business, error)
}
