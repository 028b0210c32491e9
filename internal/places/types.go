package places

// Place is a single result of a Google-Places-shaped nearby search.
type Place struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Vicinity         string        `json:"vicinity,omitempty"`
	Geometry         Geometry      `json:"geometry"`
	Rating           float64       `json:"rating"`
	PriceLevel       int           `json:"price_level,omitempty"`
	Types            []string      `json:"types"`
	Photos           []Photo       `json:"photos,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	BusinessStatus   string        `json:"business_status,omitempty"`
}

// Geometry holds the place position.
type Geometry struct {
	Location LatLng `json:"location"`
}

// LatLng is a position in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Photo references a place photo.
type Photo struct {
	PhotoReference string `json:"photo_reference"`
}

// OpeningHours holds the weekly schedule.
type OpeningHours struct {
	OpenNow bool     `json:"open_now"`
	Periods []Period `json:"periods,omitempty"`
}

// Period is one opening interval.
type Period struct {
	Open  DayTime  `json:"open"`
	Close *DayTime `json:"close,omitempty"`
}

// DayTime is a weekday and "HHMM" time.
type DayTime struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// statusOK and statusZeroResults are the non-error response statuses.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type nearbyAPIResponse struct {
	Results      []Place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}
