package places

import (
	"strings"

	"github.com/donaldgifford/happy-arz/pkg/happyhour"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// typeCategories maps provider place types onto discovery categories. The
// first mapped type of a place wins.
var typeCategories = map[string]domain.Category{
	"restaurant":   domain.CategoryRestaurant,
	"food":         domain.CategoryRestaurant,
	"bar":          domain.CategoryBar,
	"spa":          domain.CategorySpa,
	"health":       domain.CategorySpa,
	"beauty_salon": domain.CategorySpa,
	"cafe":         domain.CategoryCafe,
	"bakery":       domain.CategoryCafe,
	"night_club":   domain.CategoryNightclub,
	"lodging":      domain.CategoryHotel,
}

// ToBusinesses converts provider places into unverified businesses.
func ToBusinesses(places []Place) []domain.Business {
	out := make([]domain.Business, 0, len(places))
	for i := range places {
		out = append(out, toBusiness(&places[i]))
	}
	return out
}

func toBusiness(p *Place) domain.Business {
	address := p.FormattedAddress
	if address == "" {
		address = p.Vicinity
	}

	b := domain.Business{
		ID:          p.PlaceID,
		Name:        p.Name,
		Description: describe(p),
		Category:    categoryFor(p.Types),
		Rating:      p.Rating,
		Location: domain.Location{
			Latitude:  p.Geometry.Location.Lat,
			Longitude: p.Geometry.Location.Lng,
			Address:   address,
		},
		// Closed-down places are still returned by the provider.
		IsActive: p.BusinessStatus == "" || p.BusinessStatus == "OPERATIONAL",
	}

	if len(p.Photos) > 0 {
		b.Image = p.Photos[0].PhotoReference
	}

	return b
}

func categoryFor(types []string) domain.Category {
	for _, t := range types {
		if c, ok := typeCategories[t]; ok {
			return c
		}
	}
	return domain.CategoryOther
}

// describe builds a short description from place types and opening hours,
// e.g. "Restaurant, bar. Opens 18:00".
func describe(p *Place) string {
	var words []string
	for _, t := range p.Types {
		if t == "establishment" || t == "point_of_interest" {
			continue
		}
		words = append(words, strings.ReplaceAll(t, "_", " "))
	}

	desc := ""
	if len(words) > 0 {
		desc = strings.ToUpper(words[0][:1]) + words[0][1:]
		if len(words) > 1 {
			desc += ", " + strings.Join(words[1:], ", ")
		}
	}

	if p.OpeningHours != nil && len(p.OpeningHours.Periods) > 0 {
		if opens, ok := happyhour.NormalizeClock(p.OpeningHours.Periods[0].Open.Time); ok {
			if desc != "" {
				desc += ". "
			}
			desc += "Opens " + opens
		}
	}
	return desc
}

// PlaceTypeFor returns the provider place type used to search for a
// discovery category, or "" for categories with no provider equivalent.
func PlaceTypeFor(category string) string {
	switch domain.Category(category) {
	case domain.CategoryRestaurant:
		return "restaurant"
	case domain.CategoryBar:
		return "bar"
	case domain.CategorySpa:
		return "spa"
	case domain.CategoryCafe:
		return "cafe"
	case domain.CategoryNightclub:
		return "night_club"
	case domain.CategoryHotel:
		return "lodging"
	default:
		return ""
	}
}
