package ranker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/happy-arz/pkg/ranker"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// sixPM is inside the 17:00-19:00 window used by liveDiscount.
var sixPM = time.Date(2025, 6, 13, 18, 0, 0, 0, time.Local)

func liveDiscount() *domain.Discount {
	return &domain.Discount{ID: "d-live", ValidFrom: "17:00", ValidTo: "19:00", IsActive: true}
}

func laterDiscount() *domain.Discount {
	return &domain.Discount{ID: "d-later", ValidFrom: "21:00", ValidTo: "23:00", IsActive: true}
}

func biz(id string, rating float64, opts ...func(*domain.Business)) domain.Business {
	b := domain.Business{
		ID:       id,
		Name:     "Venue " + id,
		Category: domain.CategoryBar,
		Rating:   rating,
		IsActive: true,
	}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func withDiscount(d *domain.Discount) func(*domain.Business) {
	return func(b *domain.Business) { b.CurrentDiscount = d }
}

func verified(b *domain.Business) { b.IsVerified = true }

func inactive(b *domain.Business) { b.IsActive = false }

func at(lat, lng float64) func(*domain.Business) {
	return func(b *domain.Business) {
		b.Location.Latitude = lat
		b.Location.Longitude = lng
	}
}

func ids(ranked []ranker.Ranked) []string {
	out := make([]string, len(ranked))
	for i := range ranked {
		out[i] = ranked[i].ID
	}
	return out
}

func TestRank_TierOrder(t *testing.T) {
	t.Parallel()

	input := []domain.Business{
		biz("C", 5.0, verified),
		biz("B", 4.9, withDiscount(laterDiscount())),
		biz("A", 3.0, withDiscount(liveDiscount())),
	}

	got := ranker.Rank(input, ranker.Query{}, sixPM)

	assert.Equal(t, []string{"A", "B", "C"}, ids(got))
	assert.True(t, got[0].DiscountLive)
	assert.False(t, got[1].DiscountLive)
	assert.False(t, got[2].DiscountLive)
}

func TestRank_VerifiedBeforeRating(t *testing.T) {
	t.Parallel()

	input := []domain.Business{
		biz("high", 4.9),
		biz("verified", 3.1, verified),
		biz("mid", 4.2),
	}

	got := ranker.Rank(input, ranker.Query{}, sixPM)
	assert.Equal(t, []string{"verified", "high", "mid"}, ids(got))
}

func TestRank_ConfiguredInactiveDiscountStillCountsAsDiscount(t *testing.T) {
	t.Parallel()

	off := &domain.Discount{ID: "off", ValidFrom: "17:00", ValidTo: "19:00", IsActive: false}
	input := []domain.Business{
		biz("plain", 5.0, verified),
		biz("off", 1.0, withDiscount(off)),
	}

	got := ranker.Rank(input, ranker.Query{}, sixPM)
	assert.Equal(t, []string{"off", "plain"}, ids(got))
	assert.False(t, got[0].DiscountLive)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	input := []domain.Business{biz("x", 4.0), biz("y", 4.0), biz("z", 4.0)}
	got := ranker.Rank(input, ranker.Query{}, sixPM)
	assert.Equal(t, []string{"x", "y", "z"}, ids(got))
}

func TestRank_Filters(t *testing.T) {
	t.Parallel()

	input := []domain.Business{
		biz("rooftop", 4.0, func(b *domain.Business) {
			b.Name = "Pastel Rooftop Bar"
			b.Location.Address = "Sukhumvit 11, Bangkok"
		}),
		biz("spa", 4.5, func(b *domain.Business) {
			b.Name = "Health Land"
			b.Description = "Thai massage and SPA treatments"
			b.Category = domain.CategorySpa
			b.Location.Address = "Sathorn, Bangkok"
		}),
		biz("closed", 5.0, inactive, func(b *domain.Business) { b.Name = "Closed Rooftop" }),
	}

	tests := []struct {
		name  string
		query ranker.Query
		want  []string
	}{
		{name: "empty query keeps all active", query: ranker.Query{}, want: []string{"spa", "rooftop"}},
		{name: "name match is case-insensitive", query: ranker.Query{Search: "ROOFTOP"}, want: []string{"rooftop"}},
		{name: "description match", query: ranker.Query{Search: "massage"}, want: []string{"spa"}},
		{name: "address match", query: ranker.Query{Search: "bangkok"}, want: []string{"spa", "rooftop"}},
		{name: "no match", query: ranker.Query{Search: "pattaya"}, want: []string{}},
		{name: "category all", query: ranker.Query{Category: "All"}, want: []string{"spa", "rooftop"}},
		{name: "category exact", query: ranker.Query{Category: "Spa"}, want: []string{"spa"}},
		{name: "category is case-sensitive", query: ranker.Query{Category: "spa"}, want: []string{}},
		{name: "search and category combine", query: ranker.Query{Search: "bangkok", Category: "Bar"}, want: []string{"rooftop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ranker.Rank(input, tt.query, sixPM)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []domain.Business{
		biz("low", 1.0),
		biz("live", 2.0, withDiscount(liveDiscount())),
		biz("gone", 3.0, inactive),
	}
	snapshot := make([]domain.Business, len(input))
	copy(snapshot, input)

	got := ranker.Rank(input, ranker.Query{GPS: &ranker.Origin{Latitude: 13.75, Longitude: 100.5}}, sixPM)
	require.Len(t, got, 2)

	got[0].Name = "changed"
	assert.Equal(t, snapshot, input)
}

func TestRank_Idempotent(t *testing.T) {
	t.Parallel()

	input := []domain.Business{
		biz("a", 3.3),
		biz("b", 4.1, verified),
		biz("c", 2.0, withDiscount(liveDiscount())),
		biz("d", 4.1),
		biz("e", 5.0, withDiscount(laterDiscount()), verified),
	}
	q := ranker.Query{Search: "venue"}

	first := ranker.Rank(input, q, sixPM)
	second := ranker.Rank(input, q, sixPM)
	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, []string{"c", "e", "b", "d", "a"}, ids(first))
}

func TestRank_Distance(t *testing.T) {
	t.Parallel()

	input := []domain.Business{
		biz("near", 4.0, at(13.7217, 100.5154)),
		biz("nowhere", 4.0),
	}

	t.Run("no gps means no distance", func(t *testing.T) {
		t.Parallel()
		got := ranker.Rank(input, ranker.Query{}, sixPM)
		for i := range got {
			assert.Nil(t, got[i].DistanceKm)
		}
	})

	t.Run("gps annotates businesses with coordinates", func(t *testing.T) {
		t.Parallel()
		got := ranker.Rank(input, ranker.Query{
			GPS: &ranker.Origin{Latitude: 13.7563, Longitude: 100.5018},
		}, sixPM)
		require.Len(t, got, 2)
		require.NotNil(t, got[0].DistanceKm)
		assert.InDelta(t, 4.1, *got[0].DistanceKm, 0.5)
		assert.Nil(t, got[1].DistanceKm, "0,0 coordinates are unknown")
	})
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := ranker.Ranked{Business: biz("a", 4.0), DiscountLive: true}
	b := ranker.Ranked{Business: biz("b", 5.0)}

	assert.Negative(t, ranker.Compare(a, b))
	assert.Positive(t, ranker.Compare(b, a))
	assert.Zero(t, ranker.Compare(b, b))
}
