package weather

// HourlyWindow is the number of hourly records in every ForecastResponse.
const HourlyWindow = 24

// pastWindow is how many hours before the current hour the window reaches back.
const pastWindow = 12

// WeatherSnapshot describes the current conditions at the queried location.
type WeatherSnapshot struct {
	Temperature int     `json:"temperature"` // °C, rounded
	WindSpeed   float64 `json:"windSpeed"`   // km/h, as reported upstream
	PrecipProb  float64 `json:"precipProb"`
	Conditions  string  `json:"conditions"`
	Icon        string  `json:"icon"`
	Humidity    float64 `json:"humidity"`
	Visibility  float64 `json:"visibility"`
	UVIndex     float64 `json:"uvIndex"`
	Datetime    string  `json:"datetime"`
}

// HourlyRecord is one entry of the rolling 24-hour strip.
// Datetime is either a bare "HH:MM:SS" (demo data) or the upstream value.
type HourlyRecord struct {
	Datetime    string  `json:"datetime"`
	Temperature int     `json:"temperature"`
	WindSpeed   float64 `json:"windSpeed"`
	PrecipProb  float64 `json:"precipProb"`
	Conditions  string  `json:"conditions"`
	Icon        string  `json:"icon"`
	IsPast      bool    `json:"isPast"`
}

// ForecastResponse is the wire contract between server and client.
type ForecastResponse struct {
	Location string          `json:"location"`
	Current  WeatherSnapshot `json:"current"`
	Hourly   []HourlyRecord  `json:"hourly"`
}

// PastCount returns how many leading hourly records are marked as past.
func (f ForecastResponse) PastCount() int {
	n := 0
	for _, h := range f.Hourly {
		if !h.IsPast {
			break
		}
		n++
	}
	return n
}

// GeoLocation is the approximate position of the caller.
type GeoLocation struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Query returns the "City, Country" string used to seed a forecast lookup.
func (g GeoLocation) Query() string {
	return g.City + ", " + g.Country
}

// FallbackLocation is returned whenever geolocation fails.
var FallbackLocation = GeoLocation{
	City:    "London",
	Country: "United Kingdom",
	Lat:     51.5074,
	Lon:     -0.1278,
}
