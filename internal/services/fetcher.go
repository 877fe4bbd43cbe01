package services

import (
	"context"

	"github.com/mmcdole/gofeed"

	"dashboard-hub/internal/models"
	"dashboard-hub/pkg/client"
)

// DataFetcher is the fetch surface the dashboards consume. The core
// components are purely functional over the values it returns.
type DataFetcher interface {
	FetchEvents(ctx context.Context) (models.Table, error)
	FetchItems(ctx context.Context) (models.Table, error)
	FetchFeed(ctx context.Context, query string) ([]*gofeed.Item, error)
	Geocode(ctx context.Context, city string) (models.Location, error)
	FetchWeather(ctx context.Context, lat, lon float64, pastDays, forecastDays int) (models.WeatherSeries, error)
}

// RemoteFetcher binds the HTTP clients into one DataFetcher.
type RemoteFetcher struct {
	meteo  *client.OpenMeteoClient
	news   *client.NewsClient
	sheets *client.SheetClient
}

func NewRemoteFetcher(meteo *client.OpenMeteoClient, news *client.NewsClient, sheets *client.SheetClient) *RemoteFetcher {
	return &RemoteFetcher{
		meteo:  meteo,
		news:   news,
		sheets: sheets,
	}
}

func (f *RemoteFetcher) FetchEvents(ctx context.Context) (models.Table, error) {
	return f.sheets.FetchEvents(ctx)
}

func (f *RemoteFetcher) FetchItems(ctx context.Context) (models.Table, error) {
	return f.sheets.FetchItems(ctx)
}

func (f *RemoteFetcher) FetchFeed(ctx context.Context, query string) ([]*gofeed.Item, error) {
	return f.news.FetchFeed(ctx, query)
}

func (f *RemoteFetcher) Geocode(ctx context.Context, city string) (models.Location, error) {
	return f.meteo.Geocode(ctx, city)
}

func (f *RemoteFetcher) FetchWeather(ctx context.Context, lat, lon float64, pastDays, forecastDays int) (models.WeatherSeries, error) {
	return f.meteo.FetchWeather(ctx, lat, lon, pastDays, forecastDays)
}
