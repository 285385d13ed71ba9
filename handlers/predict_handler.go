package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Shubhamjh4/airsense360/models"
)

// Predictor is the slice of the predictor service the handlers need.
type Predictor interface {
	PredictCurrent(ctx context.Context, location string) (*models.CurrentReading, error)
	PredictForecast(ctx context.Context, location string, days int) ([]models.ForecastPoint, error)
	PredictNearby(ctx context.Context, location string, radius int) ([]models.NearbyStationReading, error)
}

type PredictHandler struct {
	predictor Predictor
}

func NewPredictHandler(p Predictor) *PredictHandler {
	return &PredictHandler{predictor: p}
}

// GetCurrent godoc
// @Summary Current air quality
// @Description Get the current AQI and pollutant levels for a location
// @Tags predictions
// @Produce json
// @Param location query string true "Location name"
// @Success 200 {object} models.CurrentResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /current [get]
func (h *PredictHandler) GetCurrent(c *fiber.Ctx) error {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "location is required",
		})
	}

	reading, err := h.predictor.PredictCurrent(c.Context(), location)
	if err != nil {
		return predictionFailed(c, err)
	}

	return c.JSON(models.CurrentResponse{
		Location: location,
		AQI:      reading.AQI,
		Category: models.CategoryForAQI(reading.AQI),
		PM25:     reading.PM25,
		PM10:     reading.PM10,
		NO2:      reading.NO2,
		SO2:      reading.SO2,
		CO:       reading.CO,
	})
}

// GetForecast godoc
// @Summary AQI forecast
// @Description Get an hourly/daily AQI forecast for a location
// @Tags predictions
// @Produce json
// @Param location query string true "Location name"
// @Param days query int false "Forecast horizon in days (1-7)" default(3)
// @Success 200 {object} models.ForecastResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /forecast [get]
func (h *PredictHandler) GetForecast(c *fiber.Ctx) error {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "location is required",
		})
	}

	days := c.QueryInt("days", 3)
	if days < 1 {
		days = 1
	}
	if days > 7 {
		days = 7
	}

	forecast, err := h.predictor.PredictForecast(c.Context(), location, days)
	if err != nil {
		return predictionFailed(c, err)
	}

	entries := make([]models.ForecastEntry, 0, len(forecast))
	for _, p := range forecast {
		entries = append(entries, models.ForecastEntry{
			Time:     p.Time,
			AQI:      p.AQI,
			Category: models.CategoryForAQI(p.AQI),
		})
	}

	return c.JSON(models.ForecastResponse{
		Location: location,
		Days:     days,
		Forecast: entries,
	})
}

// GetNearby godoc
// @Summary Nearby air quality
// @Description Get AQI readings for stations around a location
// @Tags predictions
// @Produce json
// @Param location query string true "Location name"
// @Param radius query int false "Search radius in km (1-500)" default(50)
// @Success 200 {object} models.NearbyResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /nearby [get]
func (h *PredictHandler) GetNearby(c *fiber.Ctx) error {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "location is required",
		})
	}

	radius := c.QueryInt("radius", 50)
	if radius < 1 {
		radius = 1
	}
	if radius > 500 {
		radius = 500
	}

	readings, err := h.predictor.PredictNearby(c.Context(), location, radius)
	if err != nil {
		return predictionFailed(c, err)
	}

	stations := make([]models.NearbyStation, 0, len(readings))
	for _, r := range readings {
		stations = append(stations, models.NearbyStation{
			Name:     r.Name,
			AQI:      r.AQI,
			Category: models.CategoryForAQI(r.AQI),
			Distance: r.Distance,
		})
	}

	return c.JSON(models.NearbyResponse{
		Location: location,
		Radius:   radius,
		Stations: stations,
	})
}

// predictionFailed maps any invocation error to a 502 with the diagnostic
// text; error kinds are not distinguished in the response shape.
func predictionFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error":  "prediction failed",
		"detail": err.Error(),
	})
}
