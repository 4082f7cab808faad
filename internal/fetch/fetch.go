// Package fetch retrieves page text for the discovery engine.
package fetch

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Fetcher retrieves the text of a web page. Implementations must not fail:
// any error condition (unreachable host, bad scheme, redirect loop, non-2xx
// after retries) yields an empty string, so callers treat "no page" and
// "empty page" identically.
type Fetcher interface {
	Fetch(ctx context.Context, url string) string
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) string

func (f FetcherFunc) Fetch(ctx context.Context, url string) string {
	return f(ctx, url)
}

// Options controls HTTP fetching behaviour.
type Options struct {
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int64
	Retries      int
}

// HTTPFetcher is the default Fetcher, backed by a shared http.Client.
// The client timeout bounds each individual request, which keeps a single
// stuck fetch from holding a caller's wall-clock budget hostage forever.
type HTTPFetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	retries      int
}

func NewHTTPFetcher(opts Options) *HTTPFetcher {
	if opts.UserAgent == "" {
		opts.UserAgent = "feedseek/0.1"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.Retries <= 0 {
		opts.Retries = 5
	}

	transport := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		userAgent:    opts.UserAgent,
		maxBodyBytes: opts.MaxBodyBytes,
		retries:      opts.Retries,
	}
}

// retryable server statuses, retried with linear backoff.
var retryStatus = map[int]bool{
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) string {
	for attempt := 0; attempt < f.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ""
			case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return ""
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			log.Debug("fetch failed", "url", url, "error", err)
			return ""
		}

		if retryStatus[resp.StatusCode] {
			resp.Body.Close()
			log.Debug("fetch retrying", "url", url, "status", resp.StatusCode, "attempt", attempt+1)
			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
		resp.Body.Close()
		if err != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
			log.Debug("fetch discarded", "url", url, "status", resp.StatusCode)
			return ""
		}
		return string(body)
	}
	return ""
}
