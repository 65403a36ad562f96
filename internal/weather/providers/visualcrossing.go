package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultVisualCrossingURL is the timeline endpoint of the Visual Crossing API.
const DefaultVisualCrossingURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

// VisualCrossingProvider implements weather.ForecastSource for the Visual Crossing timeline API.
type VisualCrossingProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	limiter *rate.Limiter
}

func NewVisualCrossingProvider(cfg HTTPClientConfig, baseURL, apiKey string) *VisualCrossingProvider {
	if baseURL == "" {
		baseURL = DefaultVisualCrossingURL
	}

	return &VisualCrossingProvider{
		name:    "visualcrossing",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: cfg,
		limiter: newLimiter(cfg),
	}
}

func (p *VisualCrossingProvider) Name() string {
	return p.name
}

// FetchTimeline fetches today's and tomorrow's hourly data plus current conditions.
func (p *VisualCrossingProvider) FetchTimeline(ctx context.Context, location string) (weather.UpstreamPayload, error) {
	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("unitGroup", "metric")
	values.Set("include", "hours,current")
	values.Set("iconSet", "icons2")
	values.Set("contentType", "json")

	u := fmt.Sprintf("%s/%s?%s", p.baseURL, url.PathEscape(location), values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return weather.UpstreamPayload{}, &weather.UpstreamError{Provider: p.name, Kind: fmt.Errorf("%w: %v", weather.ErrUpstreamUnavailable, err)}
	}

	body, err := doRequest(ctx, p.name, p.httpCfg, p.limiter, req)
	if err != nil {
		logUpstreamFailure(err)
		return weather.UpstreamPayload{}, err
	}

	var payload weather.UpstreamPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("ERROR: %s: failed to decode timeline for %q: %v", p.name, location, err)
		return weather.UpstreamPayload{}, fmt.Errorf("%w: %v", weather.ErrUpstreamShape, err)
	}

	return payload, nil
}

// logUpstreamFailure logs the provider's own error text, which never reaches callers.
func logUpstreamFailure(err error) {
	if ue, ok := err.(*weather.UpstreamError); ok && ue.Body != "" {
		log.Printf("ERROR: %v: %s", ue, strings.TrimSpace(ue.Body))
		return
	}
	log.Printf("ERROR: %v", err)
}
