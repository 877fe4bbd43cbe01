package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"dashboard-hub/internal/config"
	"dashboard-hub/internal/services"
)

// Warmer periodically refreshes the default dashboard data through the
// caching fetcher so user requests render from warm entries.
type Warmer struct {
	fetcher  services.DataFetcher
	cfg      *config.Config
	logger   *zap.Logger
	cron     *cron.Cron
	lastWarm time.Time
}

func NewWarmer(fetcher services.DataFetcher, cfg *config.Config, logger *zap.Logger) *Warmer {
	return &Warmer{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger,
		cron:    cron.New(),
	}
}

func (w *Warmer) Start() error {
	if _, err := w.cron.AddFunc(w.cfg.Scheduler.CronSpec, w.warm); err != nil {
		return err
	}
	w.cron.Start()

	w.logger.Info("Warm-up scheduler started",
		zap.String("spec", w.cfg.Scheduler.CronSpec))

	// Warm immediately on start.
	go w.warm()

	return nil
}

func (w *Warmer) Stop() {
	w.logger.Info("Stopping warm-up scheduler")
	<-w.cron.Stop().Done()
}

func (w *Warmer) warm() {
	startedAt := time.Now()
	w.lastWarm = startedAt

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	w.warmRoute(ctx)
	w.warmNews(ctx)
	w.warmSheets(ctx)

	w.logger.Info("Warm-up cycle completed",
		zap.Duration("duration", time.Since(startedAt)))
}

func (w *Warmer) warmRoute(ctx context.Context) {
	for _, city := range []string{w.cfg.Scheduler.DefaultFrom, w.cfg.Scheduler.DefaultTo} {
		loc, err := w.fetcher.Geocode(ctx, city)
		if err != nil {
			w.logger.Warn("Warm-up geocode failed", zap.String("city", city), zap.Error(err))
			continue
		}
		if city == w.cfg.Scheduler.DefaultTo {
			if _, err := w.fetcher.FetchWeather(ctx, loc.Latitude, loc.Longitude,
				w.cfg.OpenMeteo.PastDays, w.cfg.OpenMeteo.ForecastDays); err != nil {
				w.logger.Warn("Warm-up weather fetch failed", zap.String("city", city), zap.Error(err))
			}
		}
	}
}

func (w *Warmer) warmNews(ctx context.Context) {
	if _, err := w.fetcher.FetchFeed(ctx, w.cfg.News.DefaultQuery); err != nil {
		w.logger.Warn("Warm-up feed fetch failed",
			zap.String("query", w.cfg.News.DefaultQuery),
			zap.Error(err))
	}
}

func (w *Warmer) warmSheets(ctx context.Context) {
	if w.cfg.Sheets.BaseURL == "" {
		return
	}
	if _, err := w.fetcher.FetchEvents(ctx); err != nil {
		w.logger.Warn("Warm-up events fetch failed", zap.Error(err))
	}
	if _, err := w.fetcher.FetchItems(ctx); err != nil {
		w.logger.Warn("Warm-up items fetch failed", zap.Error(err))
	}
}
