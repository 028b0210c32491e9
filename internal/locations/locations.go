// Package locations holds the reference cities users can pick for manual
// browsing, and a coarse coordinate-to-city lookup used for display.
package locations

import (
	"slices"
	"strings"

	"github.com/twpayne/go-geom"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// UnknownCity is shown when a position falls outside every known city.
const UnknownCity = "your area"

var cities = []domain.LocationOption{
	{ID: "bangkok", Name: "Bangkok", Country: "Thailand", Coordinates: domain.Coordinates{Latitude: 13.7563, Longitude: 100.5018}, Timezone: "Asia/Bangkok", IsPopular: true},
	{ID: "pattaya", Name: "Pattaya", Country: "Thailand", Coordinates: domain.Coordinates{Latitude: 12.9236, Longitude: 100.8825}, Timezone: "Asia/Bangkok", IsPopular: true},
	{ID: "phuket", Name: "Phuket", Country: "Thailand", Coordinates: domain.Coordinates{Latitude: 7.8804, Longitude: 98.3923}, Timezone: "Asia/Bangkok", IsPopular: true},
	{ID: "chiang-mai", Name: "Chiang Mai", Country: "Thailand", Coordinates: domain.Coordinates{Latitude: 18.7883, Longitude: 98.9853}, Timezone: "Asia/Bangkok", IsPopular: true},
	{ID: "hua-hin", Name: "Hua Hin", Country: "Thailand", Coordinates: domain.Coordinates{Latitude: 12.5684, Longitude: 99.9577}, Timezone: "Asia/Bangkok"},
	{ID: "koh-samui", Name: "Koh Samui", Country: "Thailand", Coordinates: domain.Coordinates{Latitude: 9.5120, Longitude: 100.0136}, Timezone: "Asia/Bangkok"},
	{ID: "singapore", Name: "Singapore", Country: "Singapore", Coordinates: domain.Coordinates{Latitude: 1.3521, Longitude: 103.8198}, Timezone: "Asia/Singapore"},
	{ID: "tokyo", Name: "Tokyo", Country: "Japan", Coordinates: domain.Coordinates{Latitude: 35.6762, Longitude: 139.6503}, Timezone: "Asia/Tokyo"},
	{ID: "sydney", Name: "Sydney", Country: "Australia", Coordinates: domain.Coordinates{Latitude: -33.8688, Longitude: 151.2093}, Timezone: "Australia/Sydney"},
	{ID: "london", Name: "London", Country: "United Kingdom", Coordinates: domain.Coordinates{Latitude: 51.5074, Longitude: -0.1278}, Timezone: "Europe/London"},
	{ID: "paris", Name: "Paris", Country: "France", Coordinates: domain.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, Timezone: "Europe/Paris"},
	{ID: "new-york", Name: "New York", Country: "United States", Coordinates: domain.Coordinates{Latitude: 40.7128, Longitude: -74.0060}, Timezone: "America/New_York"},
	{ID: "los-angeles", Name: "Los Angeles", Country: "United States", Coordinates: domain.Coordinates{Latitude: 34.0522, Longitude: -118.2437}, Timezone: "America/Los_Angeles"},
}

// cityBox is an approximate city bounding box in XY (longitude, latitude)
// order.
type cityBox struct {
	name   string
	bounds *geom.Bounds
}

func box(name string, minLat, maxLat, minLng, maxLng float64) cityBox {
	return cityBox{
		name:   name,
		bounds: geom.NewBounds(geom.XY).Set(minLng, minLat, maxLng, maxLat),
	}
}

// Checked in order; the first match wins.
var cityBounds = []cityBox{
	box("New York", 40.4774, 40.9176, -74.2591, -73.7004),
	box("Los Angeles", 33.7037, 34.3373, -118.6681, -118.1553),
	box("London", 51.2868, 51.6918, -0.5103, 0.3340),
	box("Paris", 48.8155, 48.9021, 2.2241, 2.4699),
	box("Tokyo", 35.5322, 35.8986, 139.3431, 139.9194),
	box("Sydney", -34.1692, -33.5781, 150.5023, 151.3430),
	box("Bangkok", 13.4980, 14.0990, 100.3273, 100.9319),
	box("Pattaya", 12.8000, 13.0000, 100.8000, 101.0000),
}

// All returns every reference city.
func All() []domain.LocationOption {
	return slices.Clone(cities)
}

// Popular returns the cities highlighted in the picker.
func Popular() []domain.LocationOption {
	out := []domain.LocationOption{}
	for _, c := range cities {
		if c.IsPopular {
			out = append(out, c)
		}
	}
	return out
}

// Search matches query case-insensitively against city and country names.
// An empty query returns every city.
func Search(query string) []domain.LocationOption {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}
	out := []domain.LocationOption{}
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Country), q) {
			out = append(out, c)
		}
	}
	return out
}

// ByID returns the city with the given ID.
func ByID(id string) (domain.LocationOption, bool) {
	for _, c := range cities {
		if c.ID == id {
			return c, true
		}
	}
	return domain.LocationOption{}, false
}

// CityFor names the city containing the position, or UnknownCity.
func CityFor(lat, lng float64) string {
	pt := geom.Coord{lng, lat}
	for _, c := range cityBounds {
		if c.bounds.OverlapsPoint(geom.XY, pt) {
			return c.name
		}
	}
	return UnknownCity
}
