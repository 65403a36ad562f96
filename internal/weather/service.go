package weather

import (
	"context"
	"log"
	"time"
)

// Service answers forecast and location lookups for the HTTP layer.
type Service struct {
	source   ForecastSource
	locator  Locator
	demo     *DemoGenerator
	demoMode bool
	now      func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the wall clock used to pick the current local hour.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithDemoGenerator overrides the generator used in demo mode.
func WithDemoGenerator(g *DemoGenerator) Option {
	return func(s *Service) {
		s.demo = g
	}
}

// NewService creates a new Service. When demoMode is set, or no source is
// given, forecasts come from the demo generator instead of the provider.
func NewService(source ForecastSource, locator Locator, demoMode bool, opts ...Option) *Service {
	s := &Service{
		source:   source,
		locator:  locator,
		demoMode: demoMode || source == nil,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.demo == nil {
		s.demo = NewDemoGenerator(nil)
	}
	return s
}

// DemoMode reports whether forecasts are generated locally.
func (s *Service) DemoMode() bool {
	return s.demoMode
}

// Forecast returns the normalized forecast for location.
func (s *Service) Forecast(ctx context.Context, location string) (ForecastResponse, error) {
	hour := s.now().Hour()

	if s.demoMode {
		log.Printf("INFO: weather: demo mode, generating forecast for %q", location)
		return s.demo.Generate(location, hour), nil
	}

	payload, err := s.source.FetchTimeline(ctx, location)
	if err != nil {
		return ForecastResponse{}, err
	}

	resp, err := Normalize(payload, location, hour)
	if err != nil {
		log.Printf("ERROR: weather: %s returned unusable payload for %q: %v", s.source.Name(), location, err)
		return ForecastResponse{}, err
	}
	return resp, nil
}

// ResolveLocation returns the caller's approximate location, or
// FallbackLocation on any failure. It never fails.
func (s *Service) ResolveLocation(ctx context.Context) GeoLocation {
	if s.locator == nil {
		return FallbackLocation
	}

	loc, err := s.locator.Locate(ctx)
	if err != nil {
		log.Printf("ERROR: weather: %s lookup failed, using fallback location: %v", s.locator.Name(), err)
		return FallbackLocation
	}
	return loc
}
