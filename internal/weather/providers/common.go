package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// maxErrorBody bounds how much of an upstream error body is kept for logging.
const maxErrorBody = 512

// HTTPClientConfig bundles the HTTP client and outbound throttling settings.
type HTTPClientConfig struct {
	Client *http.Client

	// RateLimit is the number of requests per second allowed towards the
	// provider, shared by all requests. Zero (the default) disables throttling.
	RateLimit float64
	Burst     int
}

var errNoHTTPClient = errors.New("http client not configured")

// newLimiter returns the provider's outbound limiter. With RateLimit unset it
// never blocks, so requests stay independent of each other.
func newLimiter(cfg HTTPClientConfig) *rate.Limiter {
	if cfg.RateLimit <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
}

// doRequest performs exactly one call to the provider and returns the
// response body on 2xx. Failures are reported as *weather.UpstreamError.
func doRequest(
	ctx context.Context,
	provider string,
	cfg HTTPClientConfig,
	limiter *rate.Limiter,
	req *http.Request,
) ([]byte, error) {
	if cfg.Client == nil {
		return nil, &weather.UpstreamError{Provider: provider, Kind: fmt.Errorf("%w: %v", weather.ErrUpstreamUnavailable, errNoHTTPClient)}
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, &weather.UpstreamError{Provider: provider, Kind: fmt.Errorf("%w: rate limit wait canceled: %v", weather.ErrUpstreamUnavailable, err)}
	}

	resp, err := cfg.Client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, &weather.UpstreamError{Provider: provider, Kind: fmt.Errorf("%w: %v", weather.ErrUpstreamUnavailable, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &weather.UpstreamError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Kind:       weather.ClassifyStatus(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &weather.UpstreamError{Provider: provider, Kind: fmt.Errorf("%w: read body: %v", weather.ErrUpstreamUnavailable, err)}
	}
	return body, nil
}
