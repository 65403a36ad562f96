// Package client talks to the weather-lookup HTTP API and turns every failure
// into a single message suitable for display.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultBaseURL is the API root of a locally running server.
const DefaultBaseURL = "http://localhost:5000/api"

const (
	msgWeatherFailed  = "Failed to fetch weather data"
	msgLocationFailed = "Failed to get current location"
	msgEmptyQuery     = "Please enter a location"
)

// Error is the only error type returned by Client. Message is meant for end users.
type Error struct {
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Client is a thin wrapper around the server's public endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for baseURL (DefaultBaseURL when empty).
// No timeout is set beyond the transport defaults.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// FetchWeather returns the forecast for a free-text location query.
func (c *Client) FetchWeather(ctx context.Context, query string) (weather.ForecastResponse, error) {
	var out weather.ForecastResponse

	query = strings.TrimSpace(query)
	if query == "" {
		return out, &Error{Message: msgEmptyQuery}
	}

	err := c.get(ctx, "/weather/"+url.PathEscape(query), msgWeatherFailed, &out)
	return out, err
}

// FetchCurrentLocation returns the server's view of the caller's location.
func (c *Client) FetchCurrentLocation(ctx context.Context) (weather.GeoLocation, error) {
	var out weather.GeoLocation
	err := c.get(ctx, "/location", msgLocationFailed, &out)
	return out, err
}

// CheckHealth reports whether the server reports status OK on its health endpoint.
func (c *Client) CheckHealth(ctx context.Context) bool {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/health", "", &out); err != nil {
		return false
	}
	return out.Status == "OK"
}

func (c *Client) get(ctx context.Context, endpoint, fallback string, dst interface{}) error {
	fail := func(msg string, cause error) error {
		if msg == "" {
			msg = fallback
		}
		return &Error{Message: msg, cause: cause}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return fail("", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fail("", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail("", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		cause := fmt.Errorf("unexpected status code: %s", resp.Status)
		return fail(serverMessage(body), cause)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fail("", err)
	}
	return nil
}

// serverMessage extracts the "error" string from an error response body.
func serverMessage(body []byte) string {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	var msg string
	if err := json.Unmarshal(payload.Error, &msg); err != nil {
		return ""
	}
	return strings.TrimSpace(msg)
}

// Message returns the display message for err.
func Message(err error) string {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
