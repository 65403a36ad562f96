package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/client"
	"github.com/i474232898/weather-lookup/internal/presentation"
	"github.com/i474232898/weather-lookup/internal/weather"
)

type fakeAPI struct {
	loc        weather.GeoLocation
	locErr     error
	forecasts  map[string]weather.ForecastResponse
	weatherErr error
	queries    []string
}

func (f *fakeAPI) FetchWeather(_ context.Context, query string) (weather.ForecastResponse, error) {
	f.queries = append(f.queries, query)
	if f.weatherErr != nil {
		return weather.ForecastResponse{}, f.weatherErr
	}
	return f.forecasts[query], nil
}

func (f *fakeAPI) FetchCurrentLocation(context.Context) (weather.GeoLocation, error) {
	return f.loc, f.locErr
}

func newTestApp(api WeatherAPI) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return New(api, presentation.NewRenderer(nil), &out), &out
}

func TestInitLoadsDetectedLocation(t *testing.T) {
	api := &fakeAPI{
		loc:       weather.GeoLocation{City: "Madrid", Country: "Spain"},
		forecasts: map[string]weather.ForecastResponse{"Madrid, Spain": {Location: "Madrid, Comunidad de Madrid, España"}},
	}
	a, out := newTestApp(api)

	a.Init(context.Background())

	assert.Equal(t, []string{"Madrid, Spain"}, api.queries)
	assert.Equal(t, "Madrid, Spain", a.State().Query())
	got, err := a.State().Latest()
	require.NoError(t, err)
	assert.Equal(t, "Madrid, Comunidad de Madrid, España", got.Location)
	assert.Contains(t, out.String(), "Madrid, Comunidad de Madrid, España")
}

func TestInitFailureFallsBackToLondon(t *testing.T) {
	api := &fakeAPI{locErr: &client.Error{Message: "Failed to get current location"}}
	a, out := newTestApp(api)

	a.Init(context.Background())

	assert.Empty(t, api.queries)
	assert.Equal(t, FallbackQuery, a.State().Query())
	assert.Equal(t, "Failed to get current location", a.State().Snapshot().Error)
	assert.Contains(t, out.String(), "Error: Failed to get current location")
}

func TestSearchKeepsPreviousForecastOnError(t *testing.T) {
	api := &fakeAPI{forecasts: map[string]weather.ForecastResponse{"Oslo": {Location: "Oslo, Norway"}}}
	a, _ := newTestApp(api)

	a.Search(context.Background(), "Oslo")
	api.weatherErr = &client.Error{Message: "Invalid location. Please check the location and try again."}
	a.Search(context.Background(), "Atlantis")

	view := a.State().Snapshot()
	assert.Equal(t, "Oslo", view.Query)
	assert.Equal(t, "Oslo, Norway", view.Forecast.Location)
	assert.Equal(t, "Invalid location. Please check the location and try again.", view.Error)
}

func TestSearchIgnoresBlankQuery(t *testing.T) {
	api := &fakeAPI{}
	a, out := newTestApp(api)

	a.Search(context.Background(), "   ")

	assert.Empty(t, api.queries)
	assert.Empty(t, out.String())
}

func TestRefreshRepeatsCurrentQuery(t *testing.T) {
	api := &fakeAPI{forecasts: map[string]weather.ForecastResponse{"Oslo": {Location: "Oslo, Norway"}}}
	a, _ := newTestApp(api)

	a.Refresh(context.Background())
	assert.Empty(t, api.queries)

	a.Search(context.Background(), "Oslo")
	a.Refresh(context.Background())
	assert.Equal(t, []string{"Oslo", "Oslo"}, api.queries)
}
