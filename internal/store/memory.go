package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather"
)

var (
	// ErrNotFound is returned when no forecast has been loaded yet.
	ErrNotFound = errors.New("no weather data loaded")
)

// View is a copy of the state shown to the user.
type View struct {
	Query     string
	Forecast  *weather.ForecastResponse
	Error     string
	UpdatedAt time.Time
}

// ViewState is a concurrency-safe holder for what the client currently displays.
// A successful fetch replaces the forecast and clears the error; a failed fetch
// sets the error and keeps the previous forecast.
type ViewState struct {
	mu sync.RWMutex

	query     string
	forecast  *weather.ForecastResponse
	errMsg    string
	updatedAt time.Time
}

// NewViewState creates an empty ViewState.
func NewViewState() *ViewState {
	return &ViewState{}
}

// SetQuery records the location query the view refers to.
func (s *ViewState) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

// Query returns the current location query.
func (s *ViewState) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// SaveForecast stores a freshly fetched forecast for query.
func (s *ViewState) SaveForecast(query string, f weather.ForecastResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.forecast = &f
	s.errMsg = ""
	s.updatedAt = time.Now()
}

// SaveError records a failed fetch.
func (s *ViewState) SaveError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = msg
	s.updatedAt = time.Now()
}

// Latest returns the last successfully fetched forecast.
func (s *ViewState) Latest() (weather.ForecastResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.forecast == nil {
		return weather.ForecastResponse{}, ErrNotFound
	}
	return *s.forecast, nil
}

// Snapshot returns a copy of the whole view.
func (s *ViewState) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		Query:     s.query,
		Error:     s.errMsg,
		UpdatedAt: s.updatedAt,
	}
	if s.forecast != nil {
		f := *s.forecast
		v.Forecast = &f
	}
	return v
}
