package presentation

import (
	"github.com/i474232898/weather-lookup/internal/common"
)

// Pictogram is a provider-independent weather picture category.
type Pictogram string

const (
	PictogramSun       Pictogram = "sun"
	PictogramCloud     Pictogram = "cloud"
	PictogramWind      Pictogram = "wind"
	PictogramRain      Pictogram = "rain"
	PictogramDrizzle   Pictogram = "drizzle"
	PictogramLightning Pictogram = "lightning"
	PictogramSnow      Pictogram = "snow"
)

// Glyph is the terminal symbol drawn for a pictogram.
func (p Pictogram) Glyph() string {
	switch p {
	case PictogramSun:
		return "☀"
	case PictogramWind:
		return "≋"
	case PictogramRain:
		return "☂"
	case PictogramDrizzle:
		return "⛆"
	case PictogramLightning:
		return "⚡"
	case PictogramSnow:
		return "❄"
	default:
		return "☁"
	}
}

// IconSet maps provider icon codes to pictograms.
type IconSet map[string]Pictogram

// DefaultIconSet covers the Visual Crossing "icons2" codes.
var DefaultIconSet = IconSet{
	"clear-day":             PictogramSun,
	"clear-night":           PictogramSun,
	"partly-cloudy-day":     PictogramCloud,
	"partly-cloudy-night":   PictogramCloud,
	"cloudy":                PictogramCloud,
	"overcast":              PictogramCloud,
	"fog":                   PictogramCloud,
	"wind":                  PictogramWind,
	"rain":                  PictogramRain,
	"drizzle":               PictogramDrizzle,
	"showers-day":           PictogramRain,
	"showers-night":         PictogramRain,
	"thunder-rain":          PictogramLightning,
	"thunder-showers-day":   PictogramLightning,
	"thunder-showers-night": PictogramLightning,
	"snow":                  PictogramSnow,
	"snow-showers-day":      PictogramSnow,
	"snow-showers-night":    PictogramSnow,
}

// Lookup returns the pictogram for code. Codes missing from the table are
// guessed from their wording and default to PictogramCloud.
func (s IconSet) Lookup(code string) Pictogram {
	if p, ok := s[code]; ok {
		return p
	}
	switch {
	case common.HasAny(code, "thunder"):
		return PictogramLightning
	case common.HasAny(code, "snow", "sleet"):
		return PictogramSnow
	case common.HasAny(code, "rain", "shower"):
		return PictogramRain
	default:
		return PictogramCloud
	}
}
