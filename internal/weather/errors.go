package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamShape is returned when the provider payload lacks current
	// conditions or day records.
	ErrUpstreamShape = errors.New("upstream payload has unexpected shape")

	// ErrInvalidLocation is returned when the provider rejects the location (HTTP 400).
	ErrInvalidLocation = errors.New("invalid location")

	// ErrUnauthorized is returned when the provider rejects the credential (HTTP 401).
	ErrUnauthorized = errors.New("upstream rejected credentials")

	// ErrUpstreamUnavailable covers every other provider failure.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// UpstreamError carries the provider status code alongside one of the sentinels above.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Kind       error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %v (status %d)", e.Provider, e.Kind, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Kind
}

// ClassifyStatus maps a provider HTTP status to the error taxonomy.
func ClassifyStatus(status int) error {
	switch status {
	case 400:
		return ErrInvalidLocation
	case 401:
		return ErrUnauthorized
	default:
		return ErrUpstreamUnavailable
	}
}
