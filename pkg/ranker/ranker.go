// Package ranker orders businesses for the discovery, map and saved views.
//
// Ranking is a pure function of its inputs: callers pass a snapshot of the
// candidate set, the query and the evaluation instant, and receive a new
// slice. The input slice is never reordered or modified.
package ranker

import (
	"slices"
	"strings"
	"time"

	"github.com/donaldgifford/happy-arz/pkg/geo"
	"github.com/donaldgifford/happy-arz/pkg/happyhour"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// Origin is the user's live GPS position.
type Origin struct {
	Latitude  float64
	Longitude float64
}

// Query describes a discovery request.
type Query struct {
	// Search is matched case-insensitively against name, description and
	// address. Empty matches everything.
	Search string

	// Category is "", "All", or an exact (case-sensitive) category name.
	Category string

	// GPS is set only when the user has a live fix and has not picked a city
	// manually. Distances are computed only when it is present.
	GPS *Origin
}

// Ranked is a business annotated with its ranking signals.
type Ranked struct {
	domain.Business

	DiscountLive bool     `json:"discount_live"`
	DistanceKm   *float64 `json:"distance_km,omitempty"`
}

// Rank filters out inactive and non-matching businesses, then orders the
// rest: live discount first, then any configured discount, then verified,
// then rating descending. Ties keep their input order.
func Rank(businesses []domain.Business, q Query, now time.Time) []Ranked {
	needle := strings.ToLower(q.Search)

	out := make([]Ranked, 0, len(businesses))
	for i := range businesses {
		b := &businesses[i]
		if !b.IsActive {
			continue
		}
		if !matchesSearch(b, needle) || !MatchesCategory(b, q.Category) {
			continue
		}
		out = append(out, annotate(b, q.GPS, now))
	}

	slices.SortStableFunc(out, Compare)
	return out
}

// Compare orders two ranked businesses. It returns a negative number when a
// should be shown before b.
func Compare(a, b Ranked) int {
	if c := compareBool(a.DiscountLive, b.DiscountLive); c != 0 {
		return c
	}
	if c := compareBool(a.HasDiscount(), b.HasDiscount()); c != 0 {
		return c
	}
	if c := compareBool(a.IsVerified, b.IsVerified); c != 0 {
		return c
	}
	switch {
	case a.Rating > b.Rating:
		return -1
	case a.Rating < b.Rating:
		return 1
	default:
		return 0
	}
}

// MatchesCategory reports whether b passes the category filter.
func MatchesCategory(b *domain.Business, category string) bool {
	if category == "" || category == domain.CategoryAll {
		return true
	}
	return string(b.Category) == category
}

func matchesSearch(b *domain.Business, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Name), needle) ||
		strings.Contains(strings.ToLower(b.Description), needle) ||
		strings.Contains(strings.ToLower(b.Location.Address), needle)
}

func annotate(b *domain.Business, gps *Origin, now time.Time) Ranked {
	r := Ranked{
		Business:     *b,
		DiscountLive: happyhour.IsCurrentlyActive(b.CurrentDiscount, now),
	}
	if gps != nil && b.Location.HasCoordinates() {
		d := geo.Distance(gps.Latitude, gps.Longitude, b.Location.Latitude, b.Location.Longitude)
		r.DistanceKm = &d
	}
	return r
}

// compareBool puts true before false.
func compareBool(a, b bool) int {
	switch {
	case a && !b:
		return -1
	case !a && b:
		return 1
	default:
		return 0
	}
}
