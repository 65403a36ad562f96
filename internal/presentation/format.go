package presentation

import (
	"fmt"
	"math"
	"time"
)

var hourLayouts = []string{
	"15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

// FormatHour renders a record datetime as a 12-hour clock label like "3 PM".
// Unparseable values are returned unchanged.
func FormatHour(datetime string) string {
	for _, layout := range hourLayouts {
		if t, err := time.Parse(layout, datetime); err == nil {
			return t.Format("3 PM")
		}
	}
	return datetime
}

// UVLevel describes a UV index reading.
func UVLevel(uv float64) string {
	switch {
	case uv <= 2:
		return "Low"
	case uv <= 5:
		return "Moderate"
	case uv <= 7:
		return "High"
	case uv <= 10:
		return "Very High"
	default:
		return "Extreme"
	}
}

// TemperatureBand buckets a temperature in °C.
func TemperatureBand(c int) string {
	switch {
	case c <= 0:
		return "freezing"
	case c <= 10:
		return "cold"
	case c <= 20:
		return "mild"
	case c <= 30:
		return "warm"
	default:
		return "hot"
	}
}

var compass = [16]string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// WindDirection converts degrees to a 16-point compass label.
func WindDirection(degrees float64) string {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return compass[int(math.Floor(d/22.5+0.5))%16]
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
