package services

import (
	"errors"
	"fmt"
	"time"

	"dashboard-hub/internal/models"
)

var (
	// ErrInvalidWindow is returned when a window ends before it starts.
	ErrInvalidWindow = errors.New("invalid date window")

	// ErrWindowOutOfRange signals that the requested window did not
	// intersect the series and the summary covers the full range
	// instead. The returned summary is still valid.
	ErrWindowOutOfRange = errors.New("window out of series range")

	// ErrRaggedSeries is returned when the parallel arrays of a series
	// differ in length.
	ErrRaggedSeries = errors.New("ragged weather series")
)

// Summarize reduces the readings whose date falls within the inclusive
// window to max/min temperature and max windspeed. An empty
// intersection falls back to the entire series and reports
// ErrWindowOutOfRange alongside the valid summary.
func Summarize(series models.WeatherSeries, window models.DateWindow) (models.WeatherSummary, error) {
	if len(series.Temperature) != series.Len() || len(series.Windspeed) != series.Len() {
		return models.WeatherSummary{}, fmt.Errorf("%w: %d times, %d temperatures, %d windspeeds",
			ErrRaggedSeries, series.Len(), len(series.Temperature), len(series.Windspeed))
	}
	if series.Len() == 0 {
		return models.WeatherSummary{}, fmt.Errorf("%w: empty series", ErrWindowOutOfRange)
	}
	if window.End.Before(window.Start) {
		return models.WeatherSummary{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidWindow, window.End.Format("2006-01-02"), window.Start.Format("2006-01-02"))
	}

	indices := make([]int, 0, series.Len())
	for i, ts := range series.Times {
		day := truncateToDay(ts)
		if !day.Before(window.Start) && !day.After(window.End) {
			indices = append(indices, i)
		}
	}

	fellBack := false
	if len(indices) == 0 {
		fellBack = true
		for i := range series.Times {
			indices = append(indices, i)
		}
	}

	summary := models.WeatherSummary{
		MaxTemp:      series.Temperature[indices[0]],
		MinTemp:      series.Temperature[indices[0]],
		MaxWindspeed: series.Windspeed[indices[0]],
	}
	for _, i := range indices[1:] {
		if series.Temperature[i] > summary.MaxTemp {
			summary.MaxTemp = series.Temperature[i]
		}
		if series.Temperature[i] < summary.MinTemp {
			summary.MinTemp = series.Temperature[i]
		}
		if series.Windspeed[i] > summary.MaxWindspeed {
			summary.MaxWindspeed = series.Windspeed[i]
		}
	}

	if fellBack {
		return summary, ErrWindowOutOfRange
	}
	return summary, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
