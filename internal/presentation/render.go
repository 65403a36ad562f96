package presentation

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultHourlyLimit is how many hourly entries the strip shows.
const DefaultHourlyLimit = 12

// Renderer draws forecasts as plain text.
type Renderer struct {
	Icons       IconSet
	HourlyLimit int
}

// NewRenderer creates a Renderer using icons (DefaultIconSet when nil).
func NewRenderer(icons IconSet) *Renderer {
	if icons == nil {
		icons = DefaultIconSet
	}
	return &Renderer{
		Icons:       icons,
		HourlyLimit: DefaultHourlyLimit,
	}
}

// Render writes the current conditions block followed by the hourly strip.
func (r *Renderer) Render(w io.Writer, f weather.ForecastResponse) error {
	if err := r.RenderCurrent(w, f); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return r.RenderHourly(w, f.Hourly)
}

// RenderCurrent writes the location header and current conditions.
func (r *Renderer) RenderCurrent(w io.Writer, f weather.ForecastResponse) error {
	c := f.Current
	icon := r.Icons.Lookup(c.Icon)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", f.Location)
	fmt.Fprintf(tw, "%s %d°C (%s)\t%s\n", icon.Glyph(), c.Temperature, TemperatureBand(c.Temperature), c.Conditions)
	fmt.Fprintf(tw, "Wind\t%s km/h\n", formatNumber(c.WindSpeed))
	fmt.Fprintf(tw, "Precipitation\t%s%%\n", formatNumber(c.PrecipProb))
	fmt.Fprintf(tw, "Humidity\t%s%%\n", formatNumber(c.Humidity))
	fmt.Fprintf(tw, "Visibility\t%s km\n", formatNumber(c.Visibility))
	fmt.Fprintf(tw, "UV index\t%s (%s)\n", formatNumber(c.UVIndex), UVLevel(c.UVIndex))
	return tw.Flush()
}

// RenderHourly writes up to HourlyLimit hourly entries, dimming past hours with a marker.
func (r *Renderer) RenderHourly(w io.Writer, hours []weather.HourlyRecord) error {
	limit := r.HourlyLimit
	if limit <= 0 || limit > len(hours) {
		limit = len(hours)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "24-Hour Forecast")
	for _, h := range hours[:limit] {
		marker := " "
		if h.IsPast {
			marker = "·"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d°C\t%s\t%s km/h\t%s%%\n",
			marker,
			FormatHour(h.Datetime),
			r.Icons.Lookup(h.Icon).Glyph(),
			h.Temperature,
			h.Conditions,
			formatNumber(h.WindSpeed),
			formatNumber(h.PrecipProb),
		)
	}
	return tw.Flush()
}

// RenderError writes a user-facing error line.
func RenderError(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "Error: %s\n", strings.TrimSpace(msg))
	return err
}
