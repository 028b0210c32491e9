package ranker

import (
	"slices"
	"time"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// MapView groups ranked businesses the way the map screen lists them.
type MapView struct {
	WithDiscount    []Ranked `json:"with_discount"`
	WithoutDiscount []Ranked `json:"without_discount"`
}

// PartitionForMap splits ranked into businesses with and without a configured
// discount. When distances are known each group is re-sorted nearest first;
// entries without a distance keep their ranked order after those with one.
func PartitionForMap(ranked []Ranked) MapView {
	view := MapView{
		WithDiscount:    []Ranked{},
		WithoutDiscount: []Ranked{},
	}
	for i := range ranked {
		if ranked[i].HasDiscount() {
			view.WithDiscount = append(view.WithDiscount, ranked[i])
		} else {
			view.WithoutDiscount = append(view.WithoutDiscount, ranked[i])
		}
	}

	slices.SortStableFunc(view.WithDiscount, compareDistance)
	slices.SortStableFunc(view.WithoutDiscount, compareDistance)
	return view
}

func compareDistance(a, b Ranked) int {
	switch {
	case a.DistanceKm == nil && b.DistanceKm == nil:
		return 0
	case a.DistanceKm == nil:
		return 1
	case b.DistanceKm == nil:
		return -1
	case *a.DistanceKm < *b.DistanceKm:
		return -1
	case *a.DistanceKm > *b.DistanceKm:
		return 1
	default:
		return 0
	}
}

// WithBookmarks returns a copy of businesses with IsBookmarked set from ids.
func WithBookmarks(businesses []domain.Business, ids []string) []domain.Business {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	out := make([]domain.Business, len(businesses))
	for i := range businesses {
		out[i] = businesses[i]
		_, out[i].IsBookmarked = set[businesses[i].ID]
	}
	return out
}

// Saved returns the bookmarked businesses of the combined candidate set,
// de-duplicated by ID (first occurrence wins) and filtered by category.
// Saved places keep their source order and are annotated with the live
// discount flag, without distances.
func Saved(businesses []domain.Business, bookmarkedIDs []string, category string, now time.Time) []Ranked {
	bookmarked := make(map[string]struct{}, len(bookmarkedIDs))
	for _, id := range bookmarkedIDs {
		bookmarked[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(bookmarkedIDs))
	out := []Ranked{}
	for i := range businesses {
		b := &businesses[i]
		if _, ok := bookmarked[b.ID]; !ok {
			continue
		}
		if _, dup := seen[b.ID]; dup {
			continue
		}
		seen[b.ID] = struct{}{}

		if !MatchesCategory(b, category) {
			continue
		}

		r := annotate(b, nil, now)
		r.IsBookmarked = true
		out = append(out, r)
	}
	return out
}
