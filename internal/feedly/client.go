// Package feedly queries the Feedly cloud search API for feeds by domain.
// This is the search-based alternative to scanning a page's HTML.
package feedly

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/publicsuffix"
)

const DefaultEndpoint = "https://cloud.feedly.com/v3/search/feeds"

// Options configures a Client.
type Options struct {
	// Endpoint of the search API. Defaults to the Feedly cloud endpoint.
	Endpoint string
	// Count is the number of results requested per query. Defaults to 500.
	Count int
	// Throttle is the pause between search requests. The endpoint needs no
	// API key but occasionally answers 403, apparently from an undocumented
	// throttle; spacing requests out avoids most of it. Defaults to 5s.
	Throttle time.Duration
	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

type Client struct {
	endpoint   string
	count      int
	throttle   time.Duration
	httpClient *http.Client
}

func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Count <= 0 {
		opts.Count = 500
	}
	if opts.Throttle <= 0 {
		opts.Throttle = 5 * time.Second
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint:   opts.Endpoint,
		count:      opts.Count,
		throttle:   opts.Throttle,
		httpClient: opts.HTTPClient,
	}
}

type searchResponse struct {
	Results []struct {
		FeedID string `json:"feedId"`
	} `json:"results"`
}

// Search yields feeds the search API knows for the page's site, deduplicated.
// It queries the full hostname, the registrable domain and the bare domain
// label, and widens the search with every same-site feed hostname it finds.
// Failed queries are skipped; only context errors end the sequence early.
func (c *Client) Search(ctx context.Context, pageURL string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		hostname := hostnameOf(pageURL)
		if hostname == "" {
			return
		}

		queries := []string{hostname}
		if root, err := publicsuffix.EffectiveTLDPlusOne(hostname); err == nil {
			queries = append(queries, root)
			if label, _, ok := strings.Cut(root, "."); ok {
				queries = append(queries, label)
			}
		}

		checked := make(map[string]struct{})
		foundHosts := make(map[string]struct{})
		foundFeeds := make(map[string]struct{})

		for i := 0; i < len(queries); i++ {
			query := queries[i]
			if _, ok := checked[query]; ok {
				continue
			}
			checked[query] = struct{}{}

			if i > 0 {
				select {
				case <-ctx.Done():
					yield("", ctx.Err())
					return
				case <-time.After(c.throttle):
				}
			}

			feeds, err := c.search(ctx, query)
			if err != nil {
				if ctx.Err() != nil {
					yield("", ctx.Err())
					return
				}
				log.Debug("search query skipped", "query", query, "error", err)
				continue
			}

			for _, feedURL := range feeds {
				host := hostnameOf(feedURL)
				if host == "" || !strings.HasSuffix(host, hostname) {
					continue
				}
				if _, ok := foundHosts[host]; !ok {
					foundHosts[host] = struct{}{}
					queries = append(queries, host)
				}
				if _, ok := foundFeeds[feedURL]; ok {
					continue
				}
				foundFeeds[feedURL] = struct{}{}
				if !yield(feedURL, nil) {
					return
				}
			}
		}
	}
}

func (c *Client) search(ctx context.Context, query string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("count", fmt.Sprint(c.count))
	req.URL.RawQuery = params.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search %q: status %d", query, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("search %q: decode response: %w", query, err)
	}

	var urls []string
	for _, result := range body.Results {
		// Feed identifiers come back as "feed/<url>".
		if feedURL, ok := strings.CutPrefix(result.FeedID, "feed/"); ok && feedURL != "" {
			urls = append(urls, feedURL)
		}
	}
	return urls, nil
}

// hostnameOf extracts the hostname from a URL or bare domain.
func hostnameOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Hostname() == "" {
		u, err = url.Parse("https://" + raw)
		if err != nil {
			return ""
		}
	}
	return u.Hostname()
}
