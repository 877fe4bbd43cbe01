package services

import (
	"errors"

	"dashboard-hub/internal/models"
)

// BuildRouteSummary composes the distance between two locations with
// the windowed weather summary of the destination. It has no side
// effects; a window falling outside the series is absorbed into
// WindowAdjusted, every other child failure propagates.
func BuildRouteSummary(from, to models.Location, series models.WeatherSeries, window models.DateWindow) (models.RouteSummary, error) {
	km, err := DistanceKm(from, to)
	if err != nil {
		return models.RouteSummary{}, err
	}

	summary, err := Summarize(series, window)
	adjusted := false
	if err != nil {
		if !errors.Is(err, ErrWindowOutOfRange) {
			return models.RouteSummary{}, err
		}
		adjusted = true
	}

	return models.RouteSummary{
		From:           from,
		To:             to,
		DistanceKm:     km,
		Weather:        summary,
		WindowAdjusted: adjusted,
	}, nil
}
