package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"dashboard-hub/internal/models"
)

// ErrNotFound is returned when a city-name lookup yields no result.
var ErrNotFound = errors.New("location not found")

// Open-Meteo serves hourly timestamps without a zone suffix.
const openMeteoTimeLayout = "2006-01-02T15:04"

type OpenMeteoClient struct {
	*BaseClient
	forecastURL string
	geocodeURL  string
}

type openMeteoGeocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type openMeteoForecastResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature2M []float64 `json:"temperature_2m"`
		WindSpeed10M  []float64 `json:"windspeed_10m"`
	} `json:"hourly"`
}

func NewOpenMeteoClient(forecastURL, geocodeURL string, config ClientConfig, logger *zap.Logger) *OpenMeteoClient {
	return &OpenMeteoClient{
		BaseClient:  NewBaseClient("openmeteo", config, logger),
		forecastURL: forecastURL,
		geocodeURL:  geocodeURL,
	}
}

// Geocode resolves a city name to its coordinates and country using
// the Open-Meteo geocoding API. Only the best match is kept.
func (c *OpenMeteoClient) Geocode(ctx context.Context, city string) (models.Location, error) {
	reqURL := fmt.Sprintf("%s/search?name=%s&count=1&language=ja&format=json",
		c.geocodeURL, url.QueryEscape(city))

	data, err := c.GetWithRetry(ctx, reqURL)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to geocode %q: %w", city, err)
	}

	var response openMeteoGeocodeResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return models.Location{}, fmt.Errorf("failed to parse geocode response: %w", err)
	}

	if len(response.Results) == 0 {
		return models.Location{}, fmt.Errorf("%w: %q", ErrNotFound, city)
	}

	best := response.Results[0]
	return models.Location{
		Name:      best.Name,
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
		Country:   best.Country,
	}, nil
}

// FetchWeather retrieves the hourly temperature and windspeed series
// around now: pastDays back, forecastDays ahead, local timezone.
func (c *OpenMeteoClient) FetchWeather(ctx context.Context, lat, lon float64, pastDays, forecastDays int) (models.WeatherSeries, error) {
	reqURL := fmt.Sprintf("%s/forecast?latitude=%.4f&longitude=%.4f&hourly=temperature_2m,windspeed_10m&past_days=%d&forecast_days=%d&timezone=auto",
		c.forecastURL, lat, lon, pastDays, forecastDays)

	data, err := c.GetWithRetry(ctx, reqURL)
	if err != nil {
		return models.WeatherSeries{}, fmt.Errorf("failed to fetch weather: %w", err)
	}

	var response openMeteoForecastResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return models.WeatherSeries{}, fmt.Errorf("failed to parse weather response: %w", err)
	}

	n := len(response.Hourly.Time)
	if len(response.Hourly.Temperature2M) != n || len(response.Hourly.WindSpeed10M) != n {
		return models.WeatherSeries{}, fmt.Errorf("hourly arrays are ragged: %d times, %d temperatures, %d windspeeds",
			n, len(response.Hourly.Temperature2M), len(response.Hourly.WindSpeed10M))
	}

	series := models.WeatherSeries{
		Times:       make([]time.Time, 0, n),
		Temperature: response.Hourly.Temperature2M,
		Windspeed:   response.Hourly.WindSpeed10M,
	}
	for _, raw := range response.Hourly.Time {
		ts, err := time.Parse(openMeteoTimeLayout, raw)
		if err != nil {
			return models.WeatherSeries{}, fmt.Errorf("failed to parse hourly timestamp %q: %w", raw, err)
		}
		series.Times = append(series.Times, ts)
	}

	return series, nil
}
