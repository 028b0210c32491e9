// Package geo computes great-circle distances for proximity display.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Distance returns the haversine great-circle distance in kilometers between
// two points given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// FormatKm renders a distance rounded to one decimal, e.g. "3.2km".
func FormatKm(km float64) string {
	return fmt.Sprintf("%.1fkm", km)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
