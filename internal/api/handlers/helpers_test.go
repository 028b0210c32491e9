package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/internal/store"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

var sixPM = time.Date(2025, 6, 1, 18, 0, 0, 0, time.Local)

func newService(st store.Store, opts ...discovery.Option) *discovery.Service {
	base := []discovery.Option{
		discovery.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		discovery.WithClock(func() time.Time { return sixPM }),
	}
	return discovery.NewService(st, append(base, opts...)...)
}

// seededStore returns a memory store holding one live-discount bar and one
// plain restaurant.
func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	ms := store.NewMemoryStore()
	require.NoError(t, ms.ReplaceVerifiedBusinesses(context.Background(), []domain.Business{
		{
			ID: "v-plain", Name: "Noodle Stop", Description: "Noodles", Category: domain.CategoryRestaurant,
			Rating: 4.5, IsActive: true,
			Location: domain.Location{Latitude: 13.74, Longitude: 100.55, Address: "Sukhumvit"},
		},
		{
			ID: "v-live", Name: "Sky Bar", Description: "Rooftop", Category: domain.CategoryBar,
			Rating: 4.0, IsActive: true,
			Location: domain.Location{Latitude: 13.72, Longitude: 100.51, Address: "Silom"},
			CurrentDiscount: &domain.Discount{
				ID: "d1", BusinessID: "v-live", Percentage: 30,
				ValidFrom: "17:00", ValidTo: "19:00", IsActive: true,
			},
		},
	}))
	return ms
}
