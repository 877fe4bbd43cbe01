package services

import (
	"time"

	"github.com/mmcdole/gofeed"

	"dashboard-hub/internal/models"
)

// DefaultFeedLimit caps how many entries a feed view shows.
const DefaultFeedLimit = 15

const (
	feedTimeLayout    = "Mon, 02 Jan 2006 15:04:05 MST"
	displayTimeLayout = "2006-01-02 15:04"
)

// FormatFeedEntry normalizes one feed item for display. A published
// date that cannot be parsed is kept verbatim rather than failing.
func FormatFeedEntry(item *gofeed.Item) models.FeedEntry {
	published := item.Published
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.Format(displayTimeLayout)
	} else if t, err := time.Parse(feedTimeLayout, item.Published); err == nil {
		published = t.Format(displayTimeLayout)
	}

	return models.FeedEntry{
		Title:     item.Title,
		Published: published,
		Summary:   item.Description,
		Link:      item.Link,
	}
}

// FormatFeed normalizes up to limit entries, preserving the order the
// feed delivered them in. A non-positive limit uses DefaultFeedLimit.
func FormatFeed(items []*gofeed.Item, limit int) []models.FeedEntry {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if len(items) > limit {
		items = items[:limit]
	}

	entries := make([]models.FeedEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, FormatFeedEntry(item))
	}
	return entries
}
