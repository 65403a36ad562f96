package weather

import (
	"context"
)

// UpstreamConditions is a single conditions block as reported by the weather provider.
// Nullable numeric fields are pointers so a missing value can be told apart from zero.
type UpstreamConditions struct {
	Datetime   string   `json:"datetime"`
	Temp       float64  `json:"temp"`
	WindSpeed  float64  `json:"windspeed"`
	PrecipProb *float64 `json:"precipprob"`
	Conditions string   `json:"conditions"`
	Icon       string   `json:"icon"`
	Humidity   float64  `json:"humidity"`
	Visibility float64  `json:"visibility"`
	UVIndex    float64  `json:"uvindex"`
}

// UpstreamDay is one calendar day with its hourly records.
type UpstreamDay struct {
	Datetime string               `json:"datetime"`
	Hours    []UpstreamConditions `json:"hours"`
}

// UpstreamPayload is the subset of the provider response the normalizer reads.
type UpstreamPayload struct {
	ResolvedAddress   string              `json:"resolvedAddress"`
	CurrentConditions *UpstreamConditions `json:"currentConditions"`
	Days              []UpstreamDay       `json:"days"`
}

// ForecastSource abstracts the third-party weather data provider.
type ForecastSource interface {
	Name() string
	FetchTimeline(ctx context.Context, location string) (UpstreamPayload, error)
}

// Locator abstracts the IP-geolocation provider.
type Locator interface {
	Name() string
	Locate(ctx context.Context) (GeoLocation, error)
}
