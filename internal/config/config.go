package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	OpenMeteo struct {
		ForecastURL  string
		GeocodeURL   string
		PastDays     int
		ForecastDays int
	}

	News struct {
		SearchURL    string
		DefaultQuery string
		MaxEntries   int
	}

	Sheets struct {
		BaseURL   string
		EventsGID string
		ItemsGID  string
	}

	Cache struct {
		TTL time.Duration
	}

	Client struct {
		Timeout        time.Duration
		MaxRetries     int
		RetryDelay     time.Duration
		Multiplier     float64
		BreakerTimeout time.Duration
	}

	Scheduler struct {
		CronSpec    string
		DefaultFrom string
		DefaultTo   string
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("SERVER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("SERVER_WRITE_TIMEOUT", "10s"))

	cfg.OpenMeteo.ForecastURL = getEnv("OPENMETEO_FORECAST_URL", "https://api.open-meteo.com/v1")
	cfg.OpenMeteo.GeocodeURL = getEnv("OPENMETEO_GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1")
	cfg.OpenMeteo.PastDays = parseInt(getEnv("OPENMETEO_PAST_DAYS", "7"))
	cfg.OpenMeteo.ForecastDays = parseInt(getEnv("OPENMETEO_FORECAST_DAYS", "7"))

	cfg.News.SearchURL = getEnv("NEWS_SEARCH_URL", "https://news.google.com/rss/search")
	cfg.News.DefaultQuery = getEnv("NEWS_DEFAULT_QUERY", "Artificial Intelligence")
	cfg.News.MaxEntries = parseInt(getEnv("NEWS_MAX_ENTRIES", "15"))

	cfg.Sheets.BaseURL = getEnv("SHEETS_BASE_URL", "")
	cfg.Sheets.EventsGID = getEnv("SHEETS_EVENTS_GID", "0")
	cfg.Sheets.ItemsGID = getEnv("SHEETS_ITEMS_GID", "1476106697")

	cfg.Cache.TTL = parseDuration(getEnv("CACHE_TTL", "1h"))

	cfg.Client.Timeout = parseDuration(getEnv("CLIENT_TIMEOUT", "10s"))
	cfg.Client.MaxRetries = parseInt(getEnv("MAX_RETRIES", "3"))
	cfg.Client.RetryDelay = parseDuration(getEnv("RETRY_DELAY", "1s"))
	cfg.Client.Multiplier = parseFloat(getEnv("RETRY_MULTIPLIER", "2"))
	cfg.Client.BreakerTimeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	cfg.Scheduler.CronSpec = getEnv("WARMUP_CRON", "@every 1h")
	cfg.Scheduler.DefaultFrom = getEnv("DEFAULT_FROM_CITY", "Tokyo")
	cfg.Scheduler.DefaultTo = getEnv("DEFAULT_TO_CITY", "Osaka")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}
