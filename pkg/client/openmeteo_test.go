package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:        2 * time.Second,
		MaxRetries:     0,
		RetryDelay:     time.Millisecond,
		Multiplier:     2,
		BreakerTimeout: time.Second,
	}
}

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Tokyo", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"name":"Tokyo","latitude":35.6762,"longitude":139.6503,"country":"Japan"}]}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, server.URL, testClientConfig(), zap.NewNop())

	loc, err := c.Geocode(context.Background(), "Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", loc.Name)
	assert.InDelta(t, 35.6762, loc.Latitude, 0.0001)
	assert.InDelta(t, 139.6503, loc.Longitude, 0.0001)
	assert.Equal(t, "Japan", loc.Country)
}

func TestGeocode_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, server.URL, testClientConfig(), zap.NewNop())

	_, err := c.Geocode(context.Background(), "Nowheresville")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGeocode_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, server.URL, testClientConfig(), zap.NewNop())

	_, err := c.Geocode(context.Background(), "Tokyo")
	assert.Error(t, err)
}

func TestFetchWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "temperature_2m,windspeed_10m", r.URL.Query().Get("hourly"))
		assert.Equal(t, "7", r.URL.Query().Get("past_days"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hourly":{"time":["2026-08-01T00:00","2026-08-01T01:00"],"temperature_2m":[21.3,20.8],"windspeed_10m":[9.1,7.4]}}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, server.URL, testClientConfig(), zap.NewNop())

	series, err := c.FetchWeather(context.Background(), 35.6762, 139.6503, 7, 7)
	require.NoError(t, err)
	require.Equal(t, 2, series.Len())
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), series.Times[0])
	assert.Equal(t, []float64{21.3, 20.8}, series.Temperature)
	assert.Equal(t, []float64{9.1, 7.4}, series.Windspeed)
}

func TestFetchWeather_RaggedArrays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hourly":{"time":["2026-08-01T00:00","2026-08-01T01:00"],"temperature_2m":[21.3],"windspeed_10m":[9.1,7.4]}}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, server.URL, testClientConfig(), zap.NewNop())

	_, err := c.FetchWeather(context.Background(), 35.6762, 139.6503, 7, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ragged")
}
