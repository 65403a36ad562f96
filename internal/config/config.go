package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PlaceholderAPIKey is the value shipped in example env files; it counts as unset.
const PlaceholderAPIKey = "your_api_key_here"

type AppConfig struct {
	WeatherAPIKey  string
	WeatherBaseURL string
	GeolocationURL string

	// HTTPTimeout bounds outbound provider calls (0 = transport defaults).
	HTTPTimeout time.Duration

	// Outbound throttling towards each provider (0 = unlimited).
	UpstreamRateLimit float64
	UpstreamRateBurst int

	CORSAllowOrigins string
	Port             string
}

// DemoMode reports whether forecasts should be generated locally because no
// usable provider credential is configured.
func (c *AppConfig) DemoMode() bool {
	key := strings.TrimSpace(c.WeatherAPIKey)
	return key == "" || key == PlaceholderAPIKey
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHER_API_KEY")
	cfg.WeatherBaseURL = getenvDefault("WEATHER_BASE_URL", "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline")
	cfg.GeolocationURL = getenvDefault("GEOLOCATION_URL", "http://ip-api.com/json/")

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = timeout
	}

	rateLimit, err := getenvFloat("UPSTREAM_RATE_LIMIT", 0)
	if err != nil {
		return nil, err
	}
	if rateLimit < 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_RATE_LIMIT: must not be negative")
	}
	cfg.UpstreamRateLimit = rateLimit
	cfg.UpstreamRateBurst = getenvInt("UPSTREAM_RATE_BURST", 1)

	cfg.CORSAllowOrigins = getenvDefault("CORS_ALLOW_ORIGINS", "*")
	cfg.Port = getenvDefault("PORT", "5000")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
