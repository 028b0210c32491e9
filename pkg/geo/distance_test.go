package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/happy-arz/pkg/geo"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		delta                  float64
	}{
		{
			name: "same point is zero",
			lat1: 13.7563, lon1: 100.5018, lat2: 13.7563, lon2: 100.5018,
			want: 0, delta: 0,
		},
		{
			name: "bangkok to pattaya",
			lat1: 13.7563, lon1: 100.5018, lat2: 12.9, lon2: 100.9,
			want: 104.5, delta: 1.5,
		},
		{
			name: "symmetric",
			lat1: 12.9, lon1: 100.9, lat2: 13.7563, lon2: 100.5018,
			want: 104.5, delta: 1.5,
		},
		{
			name: "silom to sukhumvit",
			lat1: 13.7217, lon1: 100.5154, lat2: 13.7390, lon2: 100.5610,
			want: 5.2, delta: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := geo.Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestDistance_SamePointExactlyZero(t *testing.T) {
	t.Parallel()

	assert.Zero(t, geo.Distance(13.7563, 100.5018, 13.7563, 100.5018))
}

func TestFormatKm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.0km", geo.FormatKm(0))
	assert.Equal(t, "3.2km", geo.FormatKm(3.24))
	assert.Equal(t, "104.6km", geo.FormatKm(104.56))
}
