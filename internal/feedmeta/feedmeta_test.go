package feedmeta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Example Blog</title>
    <link>https://example.com</link>
    <item><title>First</title><link>https://example.com/1</link></item>
    <item><title>Second</title><link>https://example.com/2</link></item>
  </channel>
</rss>`

func TestDescribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	checker := NewChecker(5 * time.Second)
	info, err := checker.Describe(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("failed to describe feed: %v", err)
	}

	if info.Title != "Example Blog" {
		t.Errorf("expected title Example Blog, got %s", info.Title)
	}
	if info.Type != "rss" {
		t.Errorf("expected type rss, got %s", info.Type)
	}
	if info.Items != 2 {
		t.Errorf("expected 2 items, got %d", info.Items)
	}
}

func TestDescribeNotAFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head></head><body>hello</body></html>"))
	}))
	defer srv.Close()

	checker := NewChecker(5 * time.Second)
	if _, err := checker.Describe(context.Background(), srv.URL); err == nil {
		t.Error("expected error for non-feed content")
	}
}
