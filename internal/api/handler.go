package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dashboard-hub/internal/config"
	"dashboard-hub/internal/models"
	"dashboard-hub/internal/services"
	"dashboard-hub/pkg/client"
)

const (
	dateLayout    = "2006-01-02"
	maxWindowDays = 14
)

type Handler struct {
	fetcher *services.CachedFetcher
	cfg     *config.Config
	logger  *zap.Logger
}

func NewHandler(fetcher *services.CachedFetcher, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger,
	}
}

// GetRouteSummary handles GET /api/v1/route
func (h *Handler) GetRouteSummary(c *fiber.Ctx) error {
	fromCity := c.Query("from")
	toCity := c.Query("to")
	if fromCity == "" || toCity == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Parameters from and to are required",
		})
	}

	window, err := h.parseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.logger.Info("Building route summary",
		zap.String("from", fromCity),
		zap.String("to", toCity))

	from, err := h.fetcher.Geocode(c.Context(), fromCity)
	if err != nil {
		return h.geocodeError(c, fromCity, err)
	}
	to, err := h.fetcher.Geocode(c.Context(), toCity)
	if err != nil {
		return h.geocodeError(c, toCity, err)
	}

	series, err := h.fetcher.FetchWeather(c.Context(), to.Latitude, to.Longitude,
		h.cfg.OpenMeteo.PastDays, h.cfg.OpenMeteo.ForecastDays)
	if err != nil {
		h.logger.Error("Failed to fetch weather",
			zap.String("city", to.Name),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch weather data",
		})
	}

	summary, err := services.BuildRouteSummary(from, to, series, window)
	if err != nil {
		h.logger.Error("Failed to build route summary", zap.Error(err))

		code := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidCoordinate) || errors.Is(err, services.ErrInvalidWindow) {
			code = fiber.StatusBadRequest
		}
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}

// GetNews handles GET /api/v1/news
func (h *Handler) GetNews(c *fiber.Ctx) error {
	query := c.Query("q", h.cfg.News.DefaultQuery)
	limit := c.QueryInt("limit", h.cfg.News.MaxEntries)

	h.logger.Info("Fetching news", zap.String("query", query), zap.Int("limit", limit))

	items, err := h.fetcher.FetchFeed(c.Context(), query)
	if err != nil {
		h.logger.Error("Failed to fetch feed",
			zap.String("query", query),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch news feed",
		})
	}

	entries := services.FormatFeed(items, limit)

	return c.JSON(fiber.Map{
		"query":   query,
		"count":   len(entries),
		"entries": entries,
	})
}

// GetEvents handles GET /api/v1/events
func (h *Handler) GetEvents(c *fiber.Ctx) error {
	events, err := h.fetcher.FetchEvents(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch events sheet", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}

	options, err := services.ListEvents(events)
	if err != nil {
		return h.sheetError(c, err)
	}

	return c.JSON(fiber.Map{
		"count":  len(options),
		"events": options,
	})
}

// GetSetlist handles GET /api/v1/setlist
func (h *Handler) GetSetlist(c *fiber.Ctx) error {
	eventID := c.Query("event_id")
	if eventID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Parameter event_id is required",
		})
	}

	events, err := h.fetcher.FetchEvents(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch events sheet", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}
	items, err := h.fetcher.FetchItems(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch items sheet", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch setlist items",
		})
	}

	options, err := services.ListEvents(events)
	if err != nil {
		return h.sheetError(c, err)
	}

	var event *models.EventOption
	for i := range options {
		if options[i].ID == eventID {
			event = &options[i]
			break
		}
	}
	if event == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	setlist, err := services.JoinSetlist(events, items, eventID)
	if err != nil {
		return h.sheetError(c, err)
	}

	return c.JSON(fiber.Map{
		"event":   event,
		"count":   len(setlist),
		"setlist": setlist,
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"cache":     h.fetcher.Stats(),
	})
}

// parseWindow reads the optional start/end query parameters. The
// default window spans the fetched past and forecast days around
// today, matching the data the weather source returns.
func (h *Handler) parseWindow(startStr, endStr string) (models.DateWindow, error) {
	today := truncateToday()
	window := models.DateWindow{
		Start: today.AddDate(0, 0, -h.cfg.OpenMeteo.PastDays),
		End:   today.AddDate(0, 0, h.cfg.OpenMeteo.ForecastDays-1),
	}

	if startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return models.DateWindow{}, errors.New("Invalid start date, expected YYYY-MM-DD")
		}
		window.Start = start
	}
	if endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return models.DateWindow{}, errors.New("Invalid end date, expected YYYY-MM-DD")
		}
		window.End = end
	}

	if window.End.Before(window.Start) {
		return models.DateWindow{}, errors.New("End date must not precede start date")
	}
	if window.End.Sub(window.Start) > maxWindowDays*24*time.Hour {
		return models.DateWindow{}, errors.New("Window must not exceed 14 days")
	}

	return window, nil
}

func (h *Handler) geocodeError(c *fiber.Ctx, city string, err error) error {
	if errors.Is(err, client.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "City not found: " + city,
		})
	}
	h.logger.Error("Geocoding failed", zap.String("city", city), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to geocode city",
	})
}

func (h *Handler) sheetError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrMissingJoinKey) || errors.Is(err, services.ErrMissingRequiredColumn) {
		h.logger.Error("Sheet structure invalid", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	h.logger.Error("Sheet join failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to build setlist",
	})
}

func truncateToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

var startTime = time.Now()
