package httpapi

import (
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	msgInvalidLocation = "Invalid location. Please check the location and try again."
	msgInvalidAPIKey   = "Invalid API key"
	msgFetchFailed     = "Failed to fetch weather data"
	msgHealthy         = "Weather API server is running"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	api := app.Group("/api")

	api.Get("/weather/:location", func(c *fiber.Ctx) error {
		// Demo forecasts fall back to a default location, so blank is allowed there.
		req, err := parseLocationParam(c, service.DemoMode())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, msgInvalidLocation)
		}

		forecast, err := service.Forecast(c.UserContext(), req.Location)
		if err != nil {
			log.Printf("ERROR: [%s] weather lookup for %q failed: %v", requestID(c), req.Location, err)
			return forecastError(err)
		}

		return c.JSON(forecast)
	})

	api.Get("/location", func(c *fiber.Ctx) error {
		return c.JSON(service.ResolveLocation(c.UserContext()))
	})

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"message": msgHealthy,
		})
	})
}

// ErrorHandler renders every error as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := msgFetchFailed

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": msg,
	})
}

// forecastError maps the weather error taxonomy onto HTTP responses.
func forecastError(err error) error {
	switch {
	case errors.Is(err, weather.ErrInvalidLocation):
		return fiber.NewError(fiber.StatusBadRequest, msgInvalidLocation)
	case errors.Is(err, weather.ErrUnauthorized):
		return fiber.NewError(fiber.StatusUnauthorized, msgInvalidAPIKey)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, msgFetchFailed)
	}
}

// locationParam holds the path parameter identifying a location.
type locationParam struct {
	Location string `validate:"required,max=256"`
}

func parseLocationParam(c *fiber.Ctx, allowBlank bool) (locationParam, error) {
	var p locationParam

	raw, err := url.PathUnescape(c.Params("location"))
	if err != nil {
		return p, err
	}
	p.Location = strings.TrimSpace(raw)
	if p.Location == "" && allowBlank {
		return p, nil
	}

	if err := validate.Struct(p); err != nil {
		return p, err
	}

	return p, nil
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return "-"
}
