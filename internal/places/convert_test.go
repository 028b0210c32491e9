package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

func TestToBusinesses(t *testing.T) {
	t.Parallel()

	got := ToBusinesses(BangkokPlaces())
	require.Len(t, got, 6)

	want := map[string]domain.Category{
		"Sirocco Restaurant":                      domain.CategoryRestaurant,
		"Health Land Spa & Massage":               domain.CategorySpa,
		"Chatuchak Weekend Market":                domain.CategoryOther,
		"Wat Pho Thai Traditional Massage School": domain.CategorySpa,
		"Blue Elephant Restaurant":                domain.CategoryRestaurant,
		"Divana Virtue Spa":                       domain.CategorySpa,
	}
	for _, b := range got {
		assert.Equal(t, want[b.Name], b.Category, b.Name)
		assert.True(t, b.IsActive, b.Name)
		assert.False(t, b.IsVerified, b.Name)
		assert.NotEmpty(t, b.Image, b.Name)
		assert.True(t, b.Location.HasCoordinates(), b.Name)
	}
}

func TestToBusiness_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		place      Place
		wantDesc   string
		wantActive bool
		wantAddr   string
	}{
		{
			name: "types and opening time",
			place: Place{
				Types:          []string{"restaurant", "bar", "establishment"},
				OpeningHours:   hours("1800", "0100", true),
				BusinessStatus: "OPERATIONAL",
			},
			wantDesc:   "Restaurant, bar. Opens 18:00",
			wantActive: true,
		},
		{
			name:       "closed permanently",
			place:      Place{Types: []string{"night_club"}, BusinessStatus: "CLOSED_PERMANENTLY"},
			wantDesc:   "Night club",
			wantActive: false,
		},
		{
			name:       "vicinity fallback",
			place:      Place{Vicinity: "Soi 11"},
			wantDesc:   "",
			wantActive: true,
			wantAddr:   "Soi 11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := toBusiness(&tt.place)
			assert.Equal(t, tt.wantDesc, b.Description)
			assert.Equal(t, tt.wantActive, b.IsActive)
			assert.Equal(t, tt.wantAddr, b.Location.Address)
		})
	}
}

func TestPlaceTypeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "restaurant", PlaceTypeFor("Restaurant"))
	assert.Equal(t, "night_club", PlaceTypeFor("Nightclub"))
	assert.Equal(t, "lodging", PlaceTypeFor("Hotel"))
	assert.Empty(t, PlaceTypeFor("All"))
	assert.Empty(t, PlaceTypeFor("Other"))
	assert.Empty(t, PlaceTypeFor("restaurant"))
}
