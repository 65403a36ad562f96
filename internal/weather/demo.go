package weather

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultDemoLocation is used when a demo forecast is requested without a location.
const DefaultDemoLocation = "Demo City, Demo Country"

var (
	demoCurrentConditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain"}
	demoHourlyConditions  = []string{"Clear", "Partly Cloudy", "Cloudy", "Light Rain"}
)

// DemoGenerator produces forecasts with pseudo-random values for running
// without a provider credential. Each Generate call draws from its own
// random source, so concurrent calls share no mutable state.
type DemoGenerator struct {
	seed func() int64
	now  func() time.Time
}

// NewDemoGenerator creates a generator that seeds every forecast with seed().
// A nil seed uses the clock. seed must be safe for concurrent use.
func NewDemoGenerator(seed func() int64) *DemoGenerator {
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}
	return &DemoGenerator{
		seed: seed,
		now:  time.Now,
	}
}

// FixedSeed returns a seed function that always yields n, making every
// generated forecast identical.
func FixedSeed(n int64) func() int64 {
	return func() int64 { return n }
}

// Generate returns a demo forecast centred on nowHour. It never fails.
func (g *DemoGenerator) Generate(location string, nowHour int) ForecastResponse {
	if location == "" {
		location = DefaultDemoLocation
	}
	nowHour = ((nowHour % 24) + 24) % 24

	rng := rand.New(rand.NewSource(g.seed()))
	between := func(lo, hi int) int {
		return lo + rng.Intn(hi-lo)
	}

	resp := ForecastResponse{
		Location: location,
		Current: WeatherSnapshot{
			Temperature: between(15, 30),
			WindSpeed:   float64(between(5, 25)),
			PrecipProb:  float64(between(0, 100)),
			Conditions:  demoCurrentConditions[rng.Intn(len(demoCurrentConditions))],
			Icon:        "partly-cloudy-day",
			Humidity:    float64(between(40, 80)),
			Visibility:  float64(between(5, 20)),
			UVIndex:     float64(between(0, 10)),
			Datetime:    g.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		},
		Hourly: make([]HourlyRecord, 0, HourlyWindow),
	}

	for offset := -pastWindow; offset < HourlyWindow-pastWindow; offset++ {
		hour := (nowHour + offset + 24) % 24
		icon := "clear-day"
		if hour < 6 || hour > 18 {
			icon = "clear-night"
		}
		resp.Hourly = append(resp.Hourly, HourlyRecord{
			Datetime:    fmt.Sprintf("%02d:00:00", hour),
			Temperature: between(10, 30),
			WindSpeed:   float64(between(3, 18)),
			PrecipProb:  float64(between(0, 60)),
			Conditions:  demoHourlyConditions[rng.Intn(len(demoHourlyConditions))],
			Icon:        icon,
			IsPast:      offset < 0,
		})
	}

	return resp
}
