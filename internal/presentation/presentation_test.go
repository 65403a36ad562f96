package presentation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/weather"
)

func TestIconLookup(t *testing.T) {
	assert.Equal(t, PictogramSun, DefaultIconSet.Lookup("clear-night"))
	assert.Equal(t, PictogramLightning, DefaultIconSet.Lookup("thunder-showers-night"))
	assert.Equal(t, PictogramDrizzle, DefaultIconSet.Lookup("drizzle"))
	assert.Equal(t, PictogramSnow, DefaultIconSet.Lookup("snow-showers-day"))
	assert.Equal(t, PictogramWind, DefaultIconSet.Lookup("wind"))
	assert.Len(t, DefaultIconSet, 18)

	// unknown codes
	assert.Equal(t, PictogramRain, DefaultIconSet.Lookup("freezing-rain"))
	assert.Equal(t, PictogramLightning, DefaultIconSet.Lookup("thunder"))
	assert.Equal(t, PictogramCloud, DefaultIconSet.Lookup("hail"))
	assert.Equal(t, PictogramCloud, DefaultIconSet.Lookup(""))
}

func TestCustomIconSet(t *testing.T) {
	r := NewRenderer(IconSet{"clear-day": PictogramSnow})
	assert.Equal(t, PictogramSnow, r.Icons.Lookup("clear-day"))
}

func TestFormatHour(t *testing.T) {
	tests := map[string]string{
		"00:00:00":             "12 AM",
		"09:00:00":             "9 AM",
		"12:00:00":             "12 PM",
		"15:00:00":             "3 PM",
		"2024-05-01T23:00:00":  "11 PM",
		"2024-05-01T07:00:00Z": "7 AM",
		"soon":                 "soon",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatHour(in), in)
	}
}

func TestUVLevel(t *testing.T) {
	assert.Equal(t, "Low", UVLevel(0))
	assert.Equal(t, "Low", UVLevel(2))
	assert.Equal(t, "Moderate", UVLevel(5))
	assert.Equal(t, "High", UVLevel(7))
	assert.Equal(t, "Very High", UVLevel(10))
	assert.Equal(t, "Extreme", UVLevel(11))
}

func TestTemperatureBand(t *testing.T) {
	assert.Equal(t, "freezing", TemperatureBand(-5))
	assert.Equal(t, "freezing", TemperatureBand(0))
	assert.Equal(t, "cold", TemperatureBand(10))
	assert.Equal(t, "mild", TemperatureBand(20))
	assert.Equal(t, "warm", TemperatureBand(30))
	assert.Equal(t, "hot", TemperatureBand(31))
}

func TestWindDirection(t *testing.T) {
	assert.Equal(t, "N", WindDirection(0))
	assert.Equal(t, "N", WindDirection(355))
	assert.Equal(t, "NNE", WindDirection(22.5))
	assert.Equal(t, "E", WindDirection(90))
	assert.Equal(t, "SW", WindDirection(225))
	assert.Equal(t, "W", WindDirection(-90))
}

func sampleForecast() weather.ForecastResponse {
	hourly := make([]weather.HourlyRecord, 0, 24)
	for i := 0; i < 24; i++ {
		hourly = append(hourly, weather.HourlyRecord{
			Datetime:    []string{"10:00:00", "11:00:00", "12:00:00"}[i%3],
			Temperature: 10 + i,
			WindSpeed:   5.5,
			PrecipProb:  20,
			Conditions:  "Cloudy",
			Icon:        "cloudy",
			IsPast:      i < 12,
		})
	}
	return weather.ForecastResponse{
		Location: "Dublin, Ireland",
		Current: weather.WeatherSnapshot{
			Temperature: 14,
			WindSpeed:   22.3,
			PrecipProb:  40,
			Conditions:  "Rain, Overcast",
			Icon:        "rain",
			Humidity:    88,
			Visibility:  9.5,
			UVIndex:     1,
		},
		Hourly: hourly,
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).Render(&buf, sampleForecast()))
	out := buf.String()

	assert.Contains(t, out, "Dublin, Ireland")
	assert.Contains(t, out, "14°C (mild)")
	assert.Contains(t, out, "Rain, Overcast")
	assert.Contains(t, out, "22.3 km/h")
	assert.Contains(t, out, "9.5 km")
	assert.Contains(t, out, "1 (Low)")
	assert.Contains(t, out, "24-Hour Forecast")

	// Only the first 12 hourly entries are drawn, all of them past.
	assert.Contains(t, out, "21°C")
	assert.NotContains(t, out, "22°C")
	assert.Equal(t, 12, strings.Count(out, "·"))
}

func TestRenderHourlyWithoutLimit(t *testing.T) {
	r := NewRenderer(nil)
	r.HourlyLimit = 0

	var buf bytes.Buffer
	require.NoError(t, r.RenderHourly(&buf, sampleForecast().Hourly))
	assert.Contains(t, buf.String(), "33°C")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderError(&buf, " Invalid API key "))
	assert.Equal(t, "Error: Invalid API key\n", buf.String())
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, sampleForecast()))

	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "24-Hour Forecast")
	assert.Contains(t, out, "Dublin, Ireland")
}
