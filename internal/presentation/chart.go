package presentation

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// RenderChart writes an HTML page plotting temperature and precipitation
// probability over the hourly strip.
func RenderChart(w io.Writer, f weather.ForecastResponse) error {
	hours := make([]string, 0, len(f.Hourly))
	temps := make([]opts.LineData, 0, len(f.Hourly))
	precip := make([]opts.LineData, 0, len(f.Hourly))

	for _, h := range f.Hourly {
		hours = append(hours, FormatHour(h.Datetime))
		temps = append(temps, opts.LineData{Value: h.Temperature})
		precip = append(precip, opts.LineData{Value: h.PrecipProb})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "24-Hour Forecast",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    f.Location,
			Subtitle: "24-Hour Forecast",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(hours).
		AddSeries("Temperature (°C)", temps).
		AddSeries("Precipitation (%)", precip).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line.Render(w)
}
