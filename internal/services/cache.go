package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"dashboard-hub/internal/models"
)

type cacheItem struct {
	data      interface{}
	expiresAt time.Time
}

// CachedFetcher memoizes DataFetcher calls with a time-bounded TTL.
// Expired items are dropped on access; the wrapped fetcher is only
// consulted on a miss.
type CachedFetcher struct {
	inner  DataFetcher
	ttl    time.Duration
	logger *zap.Logger

	mu     sync.RWMutex
	items  map[string]cacheItem
	hits   int
	misses int
}

func NewCachedFetcher(inner DataFetcher, ttl time.Duration, logger *zap.Logger) *CachedFetcher {
	return &CachedFetcher{
		inner:  inner,
		ttl:    ttl,
		logger: logger,
		items:  make(map[string]cacheItem),
	}
}

func (c *CachedFetcher) lookup(key string) (interface{}, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return item.data, true
}

func (c *CachedFetcher) store(key string, data interface{}) {
	c.mu.Lock()
	c.items[key] = cacheItem{
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *CachedFetcher) fetch(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	if data, ok := c.lookup(key); ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		c.logger.Debug("cache hit", zap.String("key", key))
		return data, nil
	}

	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
	c.logger.Debug("cache miss", zap.String("key", key))

	data, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	c.store(key, data)
	return data, nil
}

func (c *CachedFetcher) FetchEvents(ctx context.Context) (models.Table, error) {
	data, err := c.fetch(ctx, "sheet:events", func(ctx context.Context) (interface{}, error) {
		return c.inner.FetchEvents(ctx)
	})
	if err != nil {
		return models.Table{}, err
	}
	return data.(models.Table), nil
}

func (c *CachedFetcher) FetchItems(ctx context.Context) (models.Table, error) {
	data, err := c.fetch(ctx, "sheet:items", func(ctx context.Context) (interface{}, error) {
		return c.inner.FetchItems(ctx)
	})
	if err != nil {
		return models.Table{}, err
	}
	return data.(models.Table), nil
}

func (c *CachedFetcher) FetchFeed(ctx context.Context, query string) ([]*gofeed.Item, error) {
	data, err := c.fetch(ctx, "feed:"+query, func(ctx context.Context) (interface{}, error) {
		return c.inner.FetchFeed(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	return data.([]*gofeed.Item), nil
}

func (c *CachedFetcher) Geocode(ctx context.Context, city string) (models.Location, error) {
	data, err := c.fetch(ctx, "geocode:"+city, func(ctx context.Context) (interface{}, error) {
		return c.inner.Geocode(ctx, city)
	})
	if err != nil {
		return models.Location{}, err
	}
	return data.(models.Location), nil
}

func (c *CachedFetcher) FetchWeather(ctx context.Context, lat, lon float64, pastDays, forecastDays int) (models.WeatherSeries, error) {
	key := fmt.Sprintf("weather:%.4f,%.4f:%d:%d", lat, lon, pastDays, forecastDays)
	data, err := c.fetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return c.inner.FetchWeather(ctx, lat, lon, pastDays, forecastDays)
	})
	if err != nil {
		return models.WeatherSeries{}, err
	}
	return data.(models.WeatherSeries), nil
}

// Stats reports cache counters for the health endpoint.
func (c *CachedFetcher) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"items":  len(c.items),
		"hits":   c.hits,
		"misses": c.misses,
		"ttl":    c.ttl.String(),
	}
}
