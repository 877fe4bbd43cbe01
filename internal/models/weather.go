package models

import (
	"time"
)

// WeatherSeries holds hourly readings as parallel, index-aligned arrays.
// The arrays must never be ragged.
type WeatherSeries struct {
	Times       []time.Time `json:"times"`
	Temperature []float64   `json:"temperature"`
	Windspeed   []float64   `json:"windspeed"`
}

// Len returns the number of readings in the series.
func (s WeatherSeries) Len() int {
	return len(s.Times)
}

// DateWindow is an inclusive date range used to restrict a series
// before aggregation. Start and End are dates at midnight.
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WeatherSummary holds scalar reductions over a windowed series.
type WeatherSummary struct {
	MaxTemp      float64 `json:"max_temp"`
	MinTemp      float64 `json:"min_temp"`
	MaxWindspeed float64 `json:"max_windspeed"`
}

// RouteSummary is the display-ready record for one from/to request.
// WindowAdjusted is set when the requested window missed the series
// and the summary fell back to the full range.
type RouteSummary struct {
	From           Location       `json:"from"`
	To             Location       `json:"to"`
	DistanceKm     float64        `json:"distance_km"`
	Weather        WeatherSummary `json:"weather"`
	WindowAdjusted bool           `json:"window_adjusted"`
}
