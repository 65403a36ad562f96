// Package app drives the terminal weather view: initial location-based load,
// explicit searches and periodic refreshes.
package app

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/i474232898/weather-lookup/internal/client"
	"github.com/i474232898/weather-lookup/internal/presentation"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// FallbackQuery is shown when the initial location-based load fails.
const FallbackQuery = "London, UK"

// WeatherAPI is the subset of client.Client the app needs.
type WeatherAPI interface {
	FetchWeather(ctx context.Context, query string) (weather.ForecastResponse, error)
	FetchCurrentLocation(ctx context.Context) (weather.GeoLocation, error)
}

var _ WeatherAPI = (*client.Client)(nil)

// App owns the view state and redraws it after every fetch.
type App struct {
	api      WeatherAPI
	state    *store.ViewState
	renderer *presentation.Renderer
	out      io.Writer

	// serialises fetch+render so refreshes do not interleave output
	mu sync.Mutex
}

func New(api WeatherAPI, renderer *presentation.Renderer, out io.Writer) *App {
	return &App{
		api:      api,
		state:    store.NewViewState(),
		renderer: renderer,
		out:      out,
	}
}

// State exposes the view state.
func (a *App) State() *store.ViewState {
	return a.state
}

// Init resolves the caller's location and loads its forecast. On any failure
// the error is shown and the query falls back to FallbackQuery.
func (a *App) Init(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.initialLoad(ctx)
	if err != nil {
		a.state.SaveError(client.Message(err))
		a.state.SetQuery(FallbackQuery)
	}
	a.draw()
}

func (a *App) initialLoad(ctx context.Context) error {
	loc, err := a.api.FetchCurrentLocation(ctx)
	if err != nil {
		return err
	}
	query := loc.Query()
	a.state.SetQuery(query)

	forecast, err := a.api.FetchWeather(ctx, query)
	if err != nil {
		return err
	}
	a.state.SaveForecast(query, forecast)
	return nil
}

// Search loads the forecast for query. Blank queries are ignored.
// The query only becomes current once its forecast has loaded.
func (a *App) Search(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	forecast, err := a.api.FetchWeather(ctx, query)
	if err != nil {
		a.state.SaveError(client.Message(err))
	} else {
		a.state.SaveForecast(query, forecast)
	}
	a.draw()
}

// Refresh repeats the search for the current query.
func (a *App) Refresh(ctx context.Context) {
	if q := a.state.Query(); q != "" {
		a.Search(ctx, q)
	}
}

func (a *App) draw() {
	view := a.state.Snapshot()

	if view.Error != "" {
		if err := presentation.RenderError(a.out, view.Error); err != nil {
			log.Printf("ERROR: app: render failed: %v", err)
		}
	}
	if view.Forecast != nil {
		if err := a.renderer.Render(a.out, *view.Forecast); err != nil {
			log.Printf("ERROR: app: render failed: %v", err)
		}
	}
}
