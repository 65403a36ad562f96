package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultIPAPIURL is the ip-api.com lookup for the caller's own address.
const DefaultIPAPIURL = "http://ip-api.com/json/"

var validate = validator.New()

// IPAPIProvider implements weather.Locator using ip-api.com.
type IPAPIProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	limiter *rate.Limiter
}

func NewIPAPIProvider(cfg HTTPClientConfig, baseURL string) *IPAPIProvider {
	if baseURL == "" {
		baseURL = DefaultIPAPIURL
	}

	return &IPAPIProvider{
		name:    "ipapi",
		baseURL: baseURL,
		httpCfg: cfg,
		limiter: newLimiter(cfg),
	}
}

func (p *IPAPIProvider) Name() string {
	return p.name
}

type ipapiPayload struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	City    string  `json:"city" validate:"required"`
	Country string  `json:"country" validate:"required"`
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// Locate looks up the location of the server's public address.
func (p *IPAPIProvider) Locate(ctx context.Context) (weather.GeoLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return weather.GeoLocation{}, err
	}

	body, err := doRequest(ctx, p.name, p.httpCfg, p.limiter, req)
	if err != nil {
		return weather.GeoLocation{}, err
	}

	var payload ipapiPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.GeoLocation{}, fmt.Errorf("%s: decode response: %w", p.name, err)
	}

	if payload.Status != "success" {
		return weather.GeoLocation{}, fmt.Errorf("%s: lookup status %q: %s", p.name, payload.Status, payload.Message)
	}
	if err := validate.Struct(payload); err != nil {
		return weather.GeoLocation{}, fmt.Errorf("%s: incomplete response: %w", p.name, err)
	}

	return weather.GeoLocation{
		City:    payload.City,
		Country: payload.Country,
		Lat:     payload.Lat,
		Lon:     payload.Lon,
	}, nil
}
