package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-hub/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSeries() models.WeatherSeries {
	return models.WeatherSeries{
		Times: []time.Time{
			time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 2, 6, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC),
		},
		Temperature: []float64{18.5, 27.0, 22.3, 31.2},
		Windspeed:   []float64{12.0, 8.5, 19.4, 6.0},
	}
}

func TestSummarize_FullWindow(t *testing.T) {
	summary, err := Summarize(testSeries(), models.DateWindow{
		Start: day(2026, 8, 1),
		End:   day(2026, 8, 3),
	})
	require.NoError(t, err)

	assert.Equal(t, 31.2, summary.MaxTemp)
	assert.Equal(t, 18.5, summary.MinTemp)
	assert.Equal(t, 19.4, summary.MaxWindspeed)
}

func TestSummarize_PartialWindow(t *testing.T) {
	summary, err := Summarize(testSeries(), models.DateWindow{
		Start: day(2026, 8, 1),
		End:   day(2026, 8, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 27.0, summary.MaxTemp)
	assert.Equal(t, 18.5, summary.MinTemp)
	assert.Equal(t, 12.0, summary.MaxWindspeed)
}

func TestSummarize_WindowOutOfRangeFallsBack(t *testing.T) {
	summary, err := Summarize(testSeries(), models.DateWindow{
		Start: day(2026, 9, 1),
		End:   day(2026, 9, 5),
	})
	assert.ErrorIs(t, err, ErrWindowOutOfRange)

	// The summary still covers the whole series.
	assert.Equal(t, 31.2, summary.MaxTemp)
	assert.Equal(t, 18.5, summary.MinTemp)
	assert.Equal(t, 19.4, summary.MaxWindspeed)
}

func TestSummarize_InvalidWindow(t *testing.T) {
	_, err := Summarize(testSeries(), models.DateWindow{
		Start: day(2026, 8, 3),
		End:   day(2026, 8, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestSummarize_RaggedSeries(t *testing.T) {
	series := testSeries()
	series.Windspeed = series.Windspeed[:2]

	_, err := Summarize(series, models.DateWindow{
		Start: day(2026, 8, 1),
		End:   day(2026, 8, 3),
	})
	assert.ErrorIs(t, err, ErrRaggedSeries)
}

func TestSummarize_EmptySeries(t *testing.T) {
	_, err := Summarize(models.WeatherSeries{}, models.DateWindow{
		Start: day(2026, 8, 1),
		End:   day(2026, 8, 3),
	})
	assert.ErrorIs(t, err, ErrWindowOutOfRange)
}
