// Package feedmeta verifies that a URL actually serves a parseable feed.
// Unlike the discovery engine's cheap sniff, this runs a real feed parser,
// so its errors are meaningful and surfaced.
package feedmeta

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

type Info struct {
	Title string
	Type  string
	Items int
}

type Checker struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Checker{
		parser:  gofeed.NewParser(),
		timeout: timeout,
	}
}

// Describe fetches and parses the feed at feedURL.
func (c *Checker) Describe(ctx context.Context, feedURL string) (*Info, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return &Info{
		Title: feed.Title,
		Type:  feed.FeedType,
		Items: len(feed.Items),
	}, nil
}
