package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/weather"
)

func TestViewStateEmpty(t *testing.T) {
	s := NewViewState()

	_, err := s.Latest()
	assert.ErrorIs(t, err, ErrNotFound)

	v := s.Snapshot()
	assert.Nil(t, v.Forecast)
	assert.Empty(t, v.Query)
}

func TestViewStateErrorKeepsPreviousForecast(t *testing.T) {
	s := NewViewState()
	s.SaveForecast("Oslo", weather.ForecastResponse{Location: "Oslo, Norway"})
	s.SaveError("Failed to fetch weather data")

	got, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "Oslo, Norway", got.Location)

	v := s.Snapshot()
	assert.Equal(t, "Oslo", v.Query)
	assert.Equal(t, "Failed to fetch weather data", v.Error)

	s.SaveForecast("Bergen", weather.ForecastResponse{Location: "Bergen, Norway"})
	v = s.Snapshot()
	assert.Empty(t, v.Error)
	assert.Equal(t, "Bergen", v.Query)
	assert.Equal(t, "Bergen, Norway", v.Forecast.Location)
}

func TestViewStateSnapshotIsACopy(t *testing.T) {
	s := NewViewState()
	s.SaveForecast("Oslo", weather.ForecastResponse{Location: "Oslo"})

	v := s.Snapshot()
	v.Forecast.Location = "changed"

	got, _ := s.Latest()
	assert.Equal(t, "Oslo", got.Location)
}

func TestViewStateConcurrentAccess(t *testing.T) {
	s := NewViewState()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SaveForecast("q", weather.ForecastResponse{Location: "q"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	got, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "q", got.Location)
}
