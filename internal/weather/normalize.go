package weather

import (
	"fmt"
	"math"
	"strings"
)

// Normalize reshapes a provider payload for the location query into a
// ForecastResponse. The response is labelled with the provider's resolved
// address, or with location when the provider did not resolve one.
//
// The hourly strip covers up to 12 hours before nowHour from the first day and
// fills the remainder from the first day starting at nowHour, continuing into
// the second day. Past hours are never backfilled from a previous calendar day,
// so for nowHour < 12 fewer than 12 records are marked past.
func Normalize(payload UpstreamPayload, location string, nowHour int) (ForecastResponse, error) {
	if payload.CurrentConditions == nil {
		return ForecastResponse{}, fmt.Errorf("%w: missing currentConditions", ErrUpstreamShape)
	}
	if len(payload.Days) == 0 {
		return ForecastResponse{}, fmt.Errorf("%w: missing days", ErrUpstreamShape)
	}
	if nowHour < 0 || nowHour > 23 {
		return ForecastResponse{}, fmt.Errorf("hour %d out of range", nowHour)
	}

	today := payload.Days[0].Hours
	var tomorrow []UpstreamConditions
	if len(payload.Days) > 1 {
		tomorrow = payload.Days[1].Hours
	}

	past := window(today, nowHour-pastWindow, nowHour)

	future := make([]UpstreamConditions, 0, len(today)+len(tomorrow))
	future = append(future, window(today, nowHour, len(today))...)
	future = append(future, tomorrow...)
	if need := HourlyWindow - len(past); len(future) > need {
		future = future[:need]
	}

	hourly := make([]HourlyRecord, 0, len(past)+len(future))
	for i, h := range append(append([]UpstreamConditions{}, past...), future...) {
		hourly = append(hourly, HourlyRecord{
			Datetime:    h.Datetime,
			Temperature: roundHalfUp(h.Temp),
			WindSpeed:   h.WindSpeed,
			PrecipProb:  valueOrZero(h.PrecipProb),
			Conditions:  h.Conditions,
			Icon:        h.Icon,
			IsPast:      i < len(past),
		})
	}

	label := strings.TrimSpace(payload.ResolvedAddress)
	if label == "" {
		label = location
	}

	cc := payload.CurrentConditions
	return ForecastResponse{
		Location: label,
		Current: WeatherSnapshot{
			Temperature: roundHalfUp(cc.Temp),
			WindSpeed:   cc.WindSpeed,
			PrecipProb:  valueOrZero(cc.PrecipProb),
			Conditions:  cc.Conditions,
			Icon:        cc.Icon,
			Humidity:    cc.Humidity,
			Visibility:  cc.Visibility,
			UVIndex:     cc.UVIndex,
			Datetime:    cc.Datetime,
		},
		Hourly: hourly,
	}, nil
}

// window returns hours[from:to] with both bounds clamped to the slice.
func window(hours []UpstreamConditions, from, to int) []UpstreamConditions {
	from = max(0, min(from, len(hours)))
	to = max(from, min(to, len(hours)))
	return hours[from:to]
}

// roundHalfUp rounds to the nearest integer with .5 going towards +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
