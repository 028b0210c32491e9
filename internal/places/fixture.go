package places

import (
	"context"
	"slices"
	"strings"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// FixtureSource serves a static Bangkok dataset. It ignores the request
// position and radius.
type FixtureSource struct {
	places []Place
}

// NewFixtureSource returns a source over places, or over the built-in
// Bangkok dataset when places is nil.
func NewFixtureSource(places []Place) *FixtureSource {
	if places == nil {
		places = BangkokPlaces()
	}
	return &FixtureSource{places: places}
}

// Nearby implements Source. A type filter keeps places listing that type
// ("spa" also matches "health"); a query keeps places whose name or address
// contains it, case-insensitively.
func (s *FixtureSource) Nearby(ctx context.Context, req NearbyRequest) ([]domain.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(req.Query)
	var matched []Place
	for i := range s.places {
		p := &s.places[i]
		if !matchesType(p, req.Type) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.FormattedAddress), q) {
			continue
		}
		matched = append(matched, *p)
	}
	return ToBusinesses(matched), nil
}

func matchesType(p *Place, t string) bool {
	if t == "" || t == "establishment" {
		return true
	}
	if slices.Contains(p.Types, t) {
		return true
	}
	return t == "spa" && slices.Contains(p.Types, "health")
}

func hours(openHHMM, closeHHMM string, openNow bool) *OpeningHours {
	return &OpeningHours{
		OpenNow: openNow,
		Periods: []Period{{
			Open:  DayTime{Day: 0, Time: openHHMM},
			Close: &DayTime{Day: 0, Time: closeHHMM},
		}},
	}
}

func photo(ref string) []Photo {
	return []Photo{{PhotoReference: ref}}
}

// BangkokPlaces returns the built-in fixture dataset.
func BangkokPlaces() []Place {
	return []Place{
		{
			PlaceID:          "ChIJN1t_tDeuEmsRUsoyG83frY4",
			Name:             "Sirocco Restaurant",
			FormattedAddress: "1055 Silom Rd, Bang Rak, Bangkok 10500, Thailand",
			Geometry:         Geometry{Location: LatLng{Lat: 13.7217, Lng: 100.5154}},
			Rating:           4.3,
			PriceLevel:       4,
			Types:            []string{"restaurant", "bar", "establishment"},
			Photos:           photo("https://images.pexels.com/photos/1581384/pexels-photo-1581384.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop&fm=webp"),
			OpeningHours:     hours("1800", "0100", true),
			BusinessStatus:   "OPERATIONAL",
		},
		{
			PlaceID:          "ChIJrTLr-GyuEmsRBfy61i59si0",
			Name:             "Health Land Spa & Massage",
			FormattedAddress: "120 North Sathorn Rd, Silom, Bang Rak, Bangkok 10500, Thailand",
			Geometry:         Geometry{Location: LatLng{Lat: 13.7240, Lng: 100.5280}},
			Rating:           4.6,
			PriceLevel:       2,
			Types:            []string{"spa", "health", "establishment"},
			Photos:           photo("https://images.pexels.com/photos/3757942/pexels-photo-3757942.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop&fm=webp"),
			OpeningHours:     hours("0900", "2400", true),
			BusinessStatus:   "OPERATIONAL",
		},
		{
			PlaceID:          "ChIJ39UebIauEmsRSdZy5lIhOWs",
			Name:             "Chatuchak Weekend Market",
			FormattedAddress: "587, 10 Kamphaeng Phet 2 Rd, Chatuchak, Bangkok 10900, Thailand",
			Geometry:         Geometry{Location: LatLng{Lat: 13.7998, Lng: 100.5501}},
			Rating:           4.1,
			PriceLevel:       1,
			Types:            []string{"tourist_attraction", "establishment"},
			Photos:           photo("https://images.pexels.com/photos/1267320/pexels-photo-1267320.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop&fm=webp"),
			OpeningHours: &OpeningHours{
				OpenNow: false,
				Periods: []Period{{Open: DayTime{Day: 6, Time: "0600"}, Close: &DayTime{Day: 6, Time: "1800"}}},
			},
			BusinessStatus: "OPERATIONAL",
		},
		{
			PlaceID:          "ChIJBa7CjIauEmsRSKZy5lIhOWs",
			Name:             "Wat Pho Thai Traditional Massage School",
			FormattedAddress: "2 Sanamchai Road, Grand Palace Subdistrict, Pranakorn District, Bangkok 10200, Thailand",
			Geometry:         Geometry{Location: LatLng{Lat: 13.7465, Lng: 100.4927}},
			Rating:           4.8,
			PriceLevel:       2,
			Types:            []string{"spa", "school", "establishment"},
			Photos:           photo("https://images.pexels.com/photos/3865676/pexels-photo-3865676.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop&fm=webp"),
			OpeningHours:     hours("0800", "1700", true),
			BusinessStatus:   "OPERATIONAL",
		},
		{
			PlaceID:          "ChIJCa7CjIauEmsRSKZy5lIhOWs",
			Name:             "Blue Elephant Restaurant",
			FormattedAddress: "233 South Sathorn Rd, Yan Nawa, Sathorn, Bangkok 10120, Thailand",
			Geometry:         Geometry{Location: LatLng{Lat: 13.7180, Lng: 100.5310}},
			Rating:           4.4,
			PriceLevel:       3,
			Types:            []string{"restaurant", "establishment"},
			Photos:           photo("https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop&fm=webp"),
			OpeningHours:     hours("1130", "1430", true),
			BusinessStatus:   "OPERATIONAL",
		},
		{
			PlaceID:          "ChIJDa7CjIauEmsRSKZy5lIhOWs",
			Name:             "Divana Virtue Spa",
			FormattedAddress: "7 Sukhumvit Soi 25, Khlong Toei Nuea, Watthana, Bangkok 10110, Thailand",
			Geometry:         Geometry{Location: LatLng{Lat: 13.7390, Lng: 100.5610}},
			Rating:           4.7,
			PriceLevel:       3,
			Types:            []string{"spa", "beauty_salon", "establishment"},
			Photos:           photo("https://images.pexels.com/photos/3865711/pexels-photo-3865711.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop&fm=webp"),
			OpeningHours:     hours("1000", "2200", true),
			BusinessStatus:   "OPERATIONAL",
		},
	}
}
