package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

// NewsClient fetches search results from a Google-News-style RSS
// endpoint and parses them with gofeed.
type NewsClient struct {
	*BaseClient
	searchURL string
	parser    *gofeed.Parser
}

func NewNewsClient(searchURL string, config ClientConfig, logger *zap.Logger) *NewsClient {
	return &NewsClient{
		BaseClient: NewBaseClient("newsfeed", config, logger),
		searchURL:  searchURL,
		parser:     gofeed.NewParser(),
	}
}

// FetchFeed runs the keyword search and returns the raw feed items in
// the order the feed delivered them (typically reverse-chronological).
func (c *NewsClient) FetchFeed(ctx context.Context, query string) ([]*gofeed.Item, error) {
	reqURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en",
		c.searchURL, url.QueryEscape(query))

	data, err := c.GetWithRetry(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed for %q: %w", query, err)
	}

	feed, err := c.parser.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	c.logger.Debug("feed fetched",
		zap.String("query", query),
		zap.Int("items", len(feed.Items)))

	return feed.Items, nil
}
