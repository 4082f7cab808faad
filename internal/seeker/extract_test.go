package seeker

import (
	"slices"
	"testing"

	"github.com/julienpequegnot/feedseek/internal/htmldoc"
)

func collect(t *testing.T, seq func(func(string) bool)) []string {
	t.Helper()
	var out []string
	seq(func(u string) bool {
		out = append(out, u)
		return true
	})
	return out
}

func TestDeclaredFeedLinks(t *testing.T) {
	doc := htmldoc.Parse(`<html><head>
		<link type="application/rss+xml" href="/a.rss">
		<link type="text/css" href="/style.css">
		<link type="application/atom+xml" href="https://other.test/b.atom">
		<link type="application/rss+xml">
	</head><body></body></html>`)

	got := collect(t, declaredFeedLinks(doc, "http://x.test"))
	want := []string{"http://x.test/a.rss", "https://other.test/b.atom"}
	if !slices.Equal(got, want) {
		t.Errorf("declared links = %v, want %v", got, want)
	}
}

func TestAnchorFeedLinksTwoPassOrder(t *testing.T) {
	// The keyword-only match appears first in the document but must be
	// produced after the suffix match.
	doc := htmldoc.Parse(`<html><head></head><body>
		<a href="/news/feed-archive">archive</a>
		<a href="/updates.rss">updates</a>
		<a href="/about">about</a>
	</body></html>`)

	got := collect(t, anchorFeedLinks(doc, "http://x.test"))
	want := []string{
		"http://x.test/updates.rss",       // suffix pass
		"http://x.test/news/feed-archive", // keyword pass
		"http://x.test/updates.rss",       // keyword pass matches it again; dedup is downstream
	}
	if !slices.Equal(got, want) {
		t.Errorf("anchor links = %v, want %v", got, want)
	}
}

func TestAnchorFeedLinksFilterAppliesToRawHref(t *testing.T) {
	// The base URL contains "xml" but the href does not; the raw href is
	// what gets classified, so nothing should match.
	doc := htmldoc.Parse(`<html><head></head><body><a href="/about">about</a></body></html>`)

	got := collect(t, anchorFeedLinks(doc, "http://xml.test"))
	if len(got) != 0 {
		t.Errorf("expected no anchor links, got %v", got)
	}
}

func TestGuessFeedPaths(t *testing.T) {
	got := collect(t, guessFeedPaths("http://x.test/blog/post"))

	if len(got) != len(guessPaths) {
		t.Fatalf("expected %d guesses, got %d", len(guessPaths), len(got))
	}
	// Relative guesses replace the last path segment; query guesses keep it.
	if got[0] != "http://x.test/blog/index.xml" {
		t.Errorf("first guess = %s, want http://x.test/blog/index.xml", got[0])
	}
	if !slices.Contains(got, "http://x.test/blog/post?feed=rss") {
		t.Errorf("expected query-style guess, got %v", got)
	}
	if !slices.Contains(got, "http://x.test/blog/feeds/posts/default") {
		t.Errorf("expected Blogger-style guess, got %v", got)
	}
}

func TestStripQuery(t *testing.T) {
	if got := stripQuery("http://x.test/a?b=c"); got != "http://x.test/a" {
		t.Errorf("stripQuery = %s, want http://x.test/a", got)
	}
	if got := stripQuery("http://x.test/a"); got != "http://x.test/a" {
		t.Errorf("stripQuery = %s, want http://x.test/a", got)
	}
}
